package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)

		// Named paths before /:id so the router does not capture them.
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)
		notifications.POST("/read-all", config.NotificationHandler.MarkAllAsRead)

		notifications.POST("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
