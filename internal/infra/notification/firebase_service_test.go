package notification

import (
	"context"
	"testing"

	"sentinel/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls [][]string
	err   error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, message.Tokens)
	if f.err != nil {
		return nil, f.err
	}

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{
		SuccessCount: len(message.Tokens),
		Responses:    responses,
	}, nil
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "token"
	}

	return out
}

func TestSendBatchNotification_ChunksTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatchNotification(context.Background(), tokens(1201), "title", "body", nil)
	require.NoError(t, err)

	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[1], 500)
	assert.Len(t, sender.calls[2], 201)
	assert.Equal(t, 1201, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
}

func TestSendBatchNotification_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatchNotification(context.Background(), nil, "title", "body", nil)
	require.NoError(t, err)
	assert.Empty(t, sender.calls)
	assert.Zero(t, result.SuccessCount)
}

func TestSendBatchNotification_ClientError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	_, err := svc.SendBatchNotification(context.Background(), tokens(2), "title", "body", nil)
	assert.Error(t, err)
}
