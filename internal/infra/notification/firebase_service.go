package notification

import (
	"context"

	"sentinel/internal/domain/service"
	"sentinel/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the Firebase limit per multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatchNotification sends push notifications to multiple device tokens,
// splitting into chunks of at most 500 tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: make([]string, 0)}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		// Collect invalid tokens
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}
