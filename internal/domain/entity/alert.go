package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert is raised when a followed identity stays silent for longer than the
// liveness threshold.
type Alert struct {
	ID        uuid.UUID     `json:"id"`
	Target    string        `json:"target"`    // npub of the followed identity
	Threshold time.Duration `json:"threshold"` // configured silence limit
	Silence   time.Duration `json:"silence"`   // observed silence at check time
	LastSeen  time.Time     `json:"last_seen"`
	RaisedAt  time.Time     `json:"raised_at"`
	Message   string        `json:"message"`
}
