package service

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
)

// RelayClient is the transport to a set of nostr relays.
type RelayClient interface {
	// Connect opens connections to urls. Relays that cannot be reached are
	// skipped; it fails only when none connect.
	Connect(ctx context.Context, urls []string) error

	// Publish sends a signed event to every connected relay and succeeds if
	// at least one accepted it.
	Publish(ctx context.Context, event nostr.Event) error

	// Subscribe streams events matching filter until ctx is done. Events
	// seen on several relays are delivered once.
	Subscribe(ctx context.Context, filter nostr.Filter) (<-chan *nostr.Event, error)

	// Fetch returns the stored events matching filter, newest first.
	Fetch(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)

	// Close disconnects from every relay.
	Close() error
}
