package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/merojugx/mero/internal/interfaces/http/handlers/ticket"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.DELETE("/:id/comments/:commentId", config.TicketHandler.DeleteComment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
