package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTicket(c *ginext.Context)
	GetTicket(c *ginext.Context)
	ApproveTicket(c *ginext.Context)
	RejectTicket(c *ginext.Context)
	SetTicketPrice(c *ginext.Context)
	StartCheckout(c *ginext.Context)
	StripeWebhook(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetOwnerTickets(c *ginext.Context)
	GetTrialStatus(c *ginext.Context)
	GetStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Tickets
		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets/:id", h.GetTicket)
		api.POST("/tickets/:id/approve", h.ApproveTicket)
		api.POST("/tickets/:id/reject", h.RejectTicket)
		api.POST("/tickets/:id/price", h.SetTicketPrice)
		api.POST("/tickets/:id/checkout", h.StartCheckout)

		// Payment provider callbacks
		api.POST("/stripe/webhook", h.StripeWebhook)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/tickets", h.GetOwnerTickets)
		api.GET("/users/:id/trial", h.GetTrialStatus)

		// Admin
		api.GET("/admin/stats", h.GetStats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
