package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type AppealRouteConfig struct {
	AppealHandler        *handlers.AppealHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAppealRoutes(engine *gin.Engine, config *AppealRouteConfig) {
	appeals := engine.Group("/appeals")
	appeals.Use(config.AuthMiddleware.RequireAuth())
	{
		appeals.POST("", config.AppealHandler.SubmitAppeal)
		appeals.GET("",
			config.PermissionMiddleware.RequirePermission("appeals", "decide"),
			config.AppealHandler.ListAppeals)
		appeals.POST("/:id/decide",
			config.PermissionMiddleware.RequirePermission("appeals", "decide"),
			config.AppealHandler.DecideAppeal)
	}
}
