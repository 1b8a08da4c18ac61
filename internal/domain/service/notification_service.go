package service

import (
	"context"
)

// PushResult summarises a multicast push.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // tokens the push provider reported as unregistered or invalid
}

// NotificationService defines the interface for mobile push providers
type NotificationService interface {
	// SendBatchNotification sends the same push to every device token.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (*PushResult, error)
}
