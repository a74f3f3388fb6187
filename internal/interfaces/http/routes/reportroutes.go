package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler        *handlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth())
	{
		// Any authenticated user may file a report; the queue and its
		// actions are capability-gated.
		reports.POST("", config.ReportHandler.CreateReport)
		reports.GET("",
			config.PermissionMiddleware.RequirePermission("reports", "resolve"),
			config.ReportHandler.ListReports)

		reports.POST("/:id/claim",
			config.PermissionMiddleware.RequirePermission("reports", "resolve"),
			config.ReportHandler.ClaimReport)
		reports.POST("/:id/resolve",
			config.PermissionMiddleware.RequirePermission("reports", "resolve"),
			config.ReportHandler.ResolveReport)
		reports.POST("/:id/dismiss",
			config.PermissionMiddleware.RequirePermission("reports", "resolve"),
			config.ReportHandler.DismissReport)
	}
}
