package routes

import (
	"github.com/gin-gonic/gin"

	"crest/internal/interfaces/http/handlers"
	"crest/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/:id/messages",
			config.TicketHandler.GetConversation)
		tickets.POST("/:id/messages",
			config.TicketHandler.AppendMessage)
		tickets.POST("/:id/transfer",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.TransferTicket)
		tickets.POST("/:id/lock",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.LockTicket)
		tickets.POST("/:id/unlock",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.UnlockTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.PermissionMiddleware.RequirePermission("tickets", "manage"),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
