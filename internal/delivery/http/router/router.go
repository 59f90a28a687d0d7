// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	sharedmw "notifier/internal/delivery/middleware"

	"notifier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EventHandler        *handler.EventHandler
	RequestIDMiddleware *sharedmw.RequestIDMiddleware
	LoggerMiddleware    *sharedmw.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler *handler.EventHandler
	requestID    *sharedmw.RequestIDMiddleware
	logger       *sharedmw.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler: params.EventHandler,
		requestID:    params.RequestIDMiddleware,
		logger:       params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)
	e.Use(r.logger.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	eventGroup := e.Group("/events")
	{
		eventGroup.POST("/quote", r.eventHandler.NewQuote)
		eventGroup.POST("/payment", r.eventHandler.PaymentReceived)
		eventGroup.POST("/order", r.eventHandler.OrderUpdate)
		eventGroup.POST("/vendor-location", r.eventHandler.VendorNearby)
	}
}
