package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateOffering(c *ginext.Context)
	GetOffering(c *ginext.Context)
	ListOfferings(c *ginext.Context)
	UpdateOffering(c *ginext.Context)
	DeleteOffering(c *ginext.Context)
	SetMultiDay(c *ginext.Context)
	AddSessions(c *ginext.Context)
	OfferAgain(c *ginext.Context)
	DuplicateOffering(c *ginext.Context)
	GetTierUsage(c *ginext.Context)

	RegisterForSession(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	CancelSession(c *ginext.Context)
	GetSessionCapacity(c *ginext.Context)

	RegisterForSeries(c *ginext.Context)
	CancelSeriesRegistration(c *ginext.Context)
	CancelSeries(c *ginext.Context)
	GetSeriesCapacity(c *ginext.Context)

	CancelPriceTier(c *ginext.Context)

	ListCancellations(c *ginext.Context)
	ResolveCancellation(c *ginext.Context)

	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserRegistrations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Offerings
		api.POST("/offerings", h.CreateOffering)
		api.GET("/offerings", h.ListOfferings)
		api.GET("/offerings/:id", h.GetOffering)
		api.PUT("/offerings/:id", h.UpdateOffering)
		api.DELETE("/offerings/:id", h.DeleteOffering)
		api.PUT("/offerings/:id/multi-day", h.SetMultiDay)
		api.POST("/offerings/:id/sessions", h.AddSessions)
		api.POST("/offerings/:id/offer-again", h.OfferAgain)
		api.POST("/offerings/:id/duplicate", h.DuplicateOffering)
		api.GET("/offerings/:id/tier-usage", h.GetTierUsage)

		// Sessions
		api.POST("/sessions/:id/register", h.RegisterForSession)
		api.DELETE("/sessions/:id/registrations/:userId", h.CancelRegistration)
		api.POST("/sessions/:id/cancel", h.CancelSession)
		api.GET("/sessions/:id/capacity", h.GetSessionCapacity)

		// Series
		api.POST("/series/:key/register", h.RegisterForSeries)
		api.DELETE("/series/:key/registrations/:userId", h.CancelSeriesRegistration)
		api.POST("/series/:key/cancel", h.CancelSeries)
		api.GET("/series/:key/capacity", h.GetSeriesCapacity)

		// Price tiers
		api.POST("/tiers/:id/cancel", h.CancelPriceTier)

		// Cancellation records
		api.GET("/cancellations", h.ListCancellations)
		api.POST("/cancellations/:id/resolve", h.ResolveCancellation)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/registrations", h.GetUserRegistrations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
