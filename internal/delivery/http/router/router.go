// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sentinel/internal/delivery/http/middleware"
	"sentinel/internal/delivery/http/router/handler"
	"sentinel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	LocationHandler *handler.LocationHandler
	IdentityHandler *handler.IdentityHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	locationHandler *handler.LocationHandler
	identityHandler *handler.IdentityHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		locationHandler: params.LocationHandler,
		identityHandler: params.IdentityHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	v1 := e.Group("/v1")

	// Identity is public so followers can scan it
	v1.GET("/identity", r.identityHandler.GetIdentity)
	v1.GET("/identity/qr", r.identityHandler.GetIdentityQR)

	// Everything else needs a device token
	devices := v1.Group("", r.authMiddleware.Authenticate)
	{
		devices.POST("/locations", r.locationHandler.ReportLocation)
		devices.GET("/locations", r.locationHandler.ListHistory)
		devices.GET("/locations/latest", r.locationHandler.LatestHistory)
		devices.GET("/position", r.locationHandler.GetPosition)
	}
}
