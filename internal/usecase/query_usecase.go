package usecase

import (
	"context"
	"time"

	"sentinel/internal/domain/entity"
)

// DefaultQueryLimit is the number of events requested per query.
const DefaultQueryLimit = 20

// QueryInput selects the locations to fetch.
type QueryInput struct {
	Author string // hex public key
	DTag   string // empty matches every device
	Limit  int
	Since  time.Time
}

// QueryResult holds the decoded records, newest first, and how many events
// were skipped because they could not be parsed or decrypted.
type QueryResult struct {
	Records []*entity.LocationRecord
	Skipped int
}

// QueryUsecase fetches stored locations from relays.
type QueryUsecase interface {
	Query(ctx context.Context, input *QueryInput) (*QueryResult, error)
}
