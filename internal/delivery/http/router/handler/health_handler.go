// Package handler contains the HTTP handlers of the agent API.
package handler

import (
	"net/http"
	"time"

	"sentinel/internal/delivery/http/response"
	"sentinel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
}

// HealthHandler reports liveness of the agent itself.
type HealthHandler struct {
	trackingUC usecase.TrackingUsecase
	startedAt  time.Time
	now        func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		trackingUC: params.TrackingUC,
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string     `json:"status"`
	Uptime      string     `json:"uptime"`
	HasPosition bool       `json:"has_position"`
	LastFixAt   *time.Time `json:"last_fix_at,omitempty"`
}

// HealthCheck always answers 200 while the process serves requests.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	resp := HealthResponse{
		Status: "ok",
		Uptime: h.now().Sub(h.startedAt).Truncate(time.Second).String(),
	}
	if pos, ok := h.trackingUC.LatestPosition(); ok {
		resp.HasPosition = true
		resp.LastFixAt = &pos.ObservedAt
	}

	return response.Success(c, http.StatusOK, resp)
}
