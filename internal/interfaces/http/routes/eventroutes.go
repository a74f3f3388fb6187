package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type EventRouteConfig struct {
	EventsHandler        *handlers.EventsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEventRoutes(engine *gin.Engine, config *EventRouteConfig) {
	events := engine.Group("/events")
	events.Use(config.AuthMiddleware.RequireAuth())
	events.Use(config.PermissionMiddleware.RequireStaff())
	{
		events.GET("", config.EventsHandler.Stream)
	}
}
