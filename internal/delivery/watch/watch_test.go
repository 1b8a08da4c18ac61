package watch

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/errors"
	mockUC "sentinel/internal/mocks/usecase"
	"sentinel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcher_ResubscribesUntilStopped(t *testing.T) {
	input := &usecase.FollowInput{Target: "t", AlertAfter: time.Minute}
	follow := mockUC.NewMockFollowUsecase(t)

	// The first session ends with the relay feed, the second blocks until stop.
	follow.EXPECT().
		Follow(mock.Anything, input, mock.Anything).
		Return(errors.New("relay feed ended")).
		Once()
	resubscribed := make(chan struct{})
	follow.EXPECT().
		Follow(mock.Anything, input, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *usecase.FollowInput, onRecord func(*entity.LocationRecord)) error {
			onRecord(&entity.LocationRecord{Geohash: "u4pruydq", Lat: 57.6, Lon: 10.4})
			onRecord(&entity.LocationRecord{Geohash: "u4pruydr", Lat: 57.7, Lon: 10.4})
			close(resubscribed)
			<-ctx.Done()

			return nil
		}).
		Once()

	w := newWatcher(input, follow, discard())
	w.retryDelay = time.Millisecond

	served := make(chan error, 1)
	go func() { served <- w.Serve(context.Background()) }()

	select {
	case <-resubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not resubscribe")
	}

	require.NoError(t, w.stop(context.Background()))
	assert.NoError(t, <-served)
	assert.Equal(t, "u4pruydr", w.last.Geohash)
}

func TestWatcher_InvalidInputIsFatal(t *testing.T) {
	input := &usecase.FollowInput{Target: "nobody"}
	follow := mockUC.NewMockFollowUsecase(t)
	follow.EXPECT().
		Follow(mock.Anything, input, mock.Anything).
		Return(domainerrors.ErrMalformedIdentity).
		Once()

	err := newWatcher(input, follow, discard()).Serve(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrMalformedIdentity)
}

func TestWatcher_Disabled(t *testing.T) {
	w := newWatcher(nil, mockUC.NewMockFollowUsecase(t), discard())

	require.NoError(t, w.Serve(context.Background()))
	require.NoError(t, w.stop(context.Background()))
}
