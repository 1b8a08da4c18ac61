package service

import (
	"context"

	"sentinel/internal/domain/entity"
)

// AlertNotifier delivers a liveness alert to one destination.
type AlertNotifier interface {
	Notify(ctx context.Context, alert *entity.Alert) error
}
