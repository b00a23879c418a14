package routes

import (
	"grubdash-api/handlers"
	"grubdash-api/metrics"
	"grubdash-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// NewRouter builds the engine with the middleware chain, /metrics and all
// resource routes
func NewRouter(h *handlers.Handler, logger *log.Entry, m *metrics.HTTPMetrics, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger.WithField("component", "http")),
		middleware.Metrics(m),
		middleware.CORS(),
	)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoMethod)

	// ── Service info ───────────────────────────────────────────────
	r.GET("/health", handlers.Health)
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Dishes ─────────────────────────────────────────────────────
	dishes := r.Group("/dishes")
	{
		dishes.GET("", h.ListDishes)
		dishes.POST("", h.CreateDish)
		dishes.GET("/:dishId", h.DishExists(), h.ReadDish)
		dishes.PUT("/:dishId", h.DishExists(), h.UpdateDish)
		dishes.DELETE("/:dishId", h.DeleteDish)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := r.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:orderId", h.OrderExists(), h.ReadOrder)
		orders.PUT("/:orderId", h.OrderExists(), h.UpdateOrder)
		orders.DELETE("/:orderId", h.OrderExists(), h.DeleteOrder)
	}
}
