package usecase

import (
	"context"
	"time"

	"sentinel/internal/domain/entity"
)

// FollowInput configures a follow session.
type FollowInput struct {
	Target        string // hex public key
	Display       string // name used in alerts, defaults to Target
	DTag          string
	AlertAfter    time.Duration
	CheckInterval time.Duration
	// Record stores every received location in the repository.
	Record bool
}

// FollowUsecase watches an identity live and alerts when it goes silent.
type FollowUsecase interface {
	// Follow blocks until ctx is done or the relay feed ends. onRecord is
	// called for every decoded location, from a single goroutine.
	Follow(ctx context.Context, input *FollowInput, onRecord func(*entity.LocationRecord)) error
}
