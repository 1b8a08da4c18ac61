package alert

import (
	"context"
	"log/slog"

	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
)

const pushTitle = "Location alert"

// PushNotifier sends the alert as a mobile push to the configured devices.
type PushNotifier struct {
	service service.NotificationService
	tokens  []string
	logger  *slog.Logger
}

func NewPushNotifier(svc service.NotificationService, tokens []string, logger *slog.Logger) *PushNotifier {
	return &PushNotifier{
		service: svc,
		tokens:  append([]string(nil), tokens...),
		logger:  logger,
	}
}

func (n *PushNotifier) Notify(ctx context.Context, alert *entity.Alert) error {
	if len(n.tokens) == 0 {
		return nil
	}

	result, err := n.service.SendBatchNotification(ctx, n.tokens, pushTitle, alert.Message, map[string]string{
		"alert_id": alert.ID.String(),
		"target":   alert.Target,
	})
	if err != nil {
		return err
	}

	if len(result.InvalidTokens) > 0 {
		n.logger.Warn("[Push] Device tokens rejected",
			slog.Int("count", len(result.InvalidTokens)),
		)
	}
	if result.SuccessCount == 0 {
		return errors.Errorf("push rejected by all %d devices", len(n.tokens))
	}

	return nil
}
