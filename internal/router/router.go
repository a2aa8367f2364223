package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ApproveReservation(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
}

// InitRouter собирает маршруты API. metricsHandler может быть nil,
// тогда /metrics не публикуется.
func InitRouter(mode string, h Handler, metricsHandler http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/reservation")
	{
		api.GET("", h.ListReservations)
		api.POST("", h.CreateReservation)
		api.GET("/:id", h.GetReservation)
		api.PUT("/:id", h.UpdateReservation)

		// Lifecycle
		api.DELETE("/:id/cancel", h.CancelReservation)
		api.POST("/:id/approve", h.ApproveReservation)

		// Availability
		api.POST("/availability/check", h.CheckAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metricsHandler != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metricsHandler.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}

// DefaultMetricsHandler отдаёт метрики из глобального реестра prometheus.
func DefaultMetricsHandler() http.Handler {
	return promhttp.Handler()
}
