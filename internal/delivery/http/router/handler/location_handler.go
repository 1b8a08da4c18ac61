package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sentinel/internal/delivery/context"
	"sentinel/internal/delivery/http/response"
	"sentinel/internal/domain/constants"
	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/repository"
	"sentinel/internal/errors"
	"sentinel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	HistoryUC  usecase.HistoryUsecase
	Logger     *slog.Logger
}

// LocationHandler ingests device positions and serves the location history.
type LocationHandler struct {
	trackingUC usecase.TrackingUsecase
	historyUC  usecase.HistoryUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		trackingUC: params.TrackingUC,
		historyUC:  params.HistoryUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest is the body of POST /v1/locations. Pointers tell a
// missing coordinate apart from zero.
type ReportLocationRequest struct {
	Lat       *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon       *float64 `json:"lon" validate:"required,min=-180,max=180"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Timestamp *int64   `json:"timestamp,omitempty" validate:"omitempty,min=0"` // unix seconds of the fix
}

// PublishResponse describes the events published for a position.
type PublishResponse struct {
	Kind        int       `json:"kind"`
	Geohash     string    `json:"geohash"`
	EventIDs    []string  `json:"event_ids"`
	PublishedAt time.Time `json:"published_at"`
}

// HistoryQuery selects stored locations.
type HistoryQuery struct {
	Author string `query:"author" validate:"required,len=64,hexadecimal"`
	DTag   string `query:"d_tag"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

// ReportLocation stores the device's fix as the latest position and
// publishes it immediately.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	device, _ := deliverycontext.GetDevice(c)

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.AppError(c, err)
	}

	pos := &entity.Position{
		Lat:      *req.Lat,
		Lon:      *req.Lon,
		Accuracy: req.Accuracy,
		Source:   constants.PositionSourceHTTP,
	}
	if req.Timestamp != nil {
		pos.ObservedAt = time.Unix(*req.Timestamp, 0).UTC()
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	result, err := h.trackingUC.ReportPosition(ctx, pos)
	if err != nil {
		logger.Warn("Failed to report position", slog.String("device", device), slog.Any("error", err))

		return response.AppError(c, err)
	}

	logger.Info("Position reported",
		slog.String("device", device),
		slog.String("geohash", result.Geohash),
		slog.Int("events", len(result.EventIDs)),
	)

	return response.Success(c, http.StatusCreated, PublishResponse{
		Kind:        result.Kind,
		Geohash:     result.Geohash,
		EventIDs:    result.EventIDs,
		PublishedAt: result.PublishedAt,
	})
}

// GetPosition returns the latest fix held by the agent.
func (h *LocationHandler) GetPosition(c echo.Context) error {
	pos, ok := h.trackingUC.LatestPosition()
	if !ok {
		return response.NotFound(c, "NO_POSITION", "No position reported yet")
	}

	return response.Success(c, http.StatusOK, pos)
}

// ListHistory returns recorded locations of an author, newest first.
func (h *LocationHandler) ListHistory(c echo.Context) error {
	query, err := h.bindHistoryQuery(c)
	if err != nil {
		return err
	}

	records, err := h.historyUC.Recent(c.Request().Context(), query.Author, query.DTag, query.Limit)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// LatestHistory returns the newest recorded location of an author.
func (h *LocationHandler) LatestHistory(c echo.Context) error {
	query, err := h.bindHistoryQuery(c)
	if err != nil {
		return err
	}

	record, err := h.historyUC.Latest(c.Request().Context(), query.Author, query.DTag)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return response.NotFound(c, "LOCATION_NOT_FOUND", "No location recorded")
	}
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

func (h *LocationHandler) bindHistoryQuery(c echo.Context) (*HistoryQuery, error) {
	var query HistoryQuery
	if err := c.Bind(&query); err != nil {
		return nil, domainerrors.ErrInputValidation.WithDetails("invalid query")
	}
	if err := c.Validate(&query); err != nil {
		return nil, err
	}

	return &query, nil
}
