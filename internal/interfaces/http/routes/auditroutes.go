package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type AuditRouteConfig struct {
	AuditHandler         *handlers.AuditHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAuditRoutes(engine *gin.Engine, config *AuditRouteConfig) {
	audit := engine.Group("/audit")
	audit.Use(config.AuthMiddleware.RequireAuth())
	audit.Use(config.PermissionMiddleware.RequireAdmin())
	{
		audit.GET("", config.AuditHandler.ListAuditLog)
	}
}
