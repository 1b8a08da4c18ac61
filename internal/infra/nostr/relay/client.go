// Package relay implements service.RelayClient over plain websocket
// connections to each relay.
package relay

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"sentinel/internal/domain/service"
	"sentinel/internal/errors"

	"github.com/nbd-wtf/go-nostr"
	cache "github.com/patrickmn/go-cache"
)

const (
	// seenTTL bounds how long an event id is remembered for de-duplication.
	seenTTL             = 10 * time.Minute
	seenCleanupInterval = time.Minute
	subscriptionBuffer  = 64
)

// Client fans operations out to every connected relay.
type Client struct {
	logger *slog.Logger

	mu     sync.Mutex
	relays []*nostr.Relay
}

var _ service.RelayClient = (*Client)(nil)

// NewClient returns a client with no connections.
func NewClient(logger *slog.Logger) *Client {
	return &Client{logger: logger}
}

// Connect opens a connection to each url.
func (c *Client) Connect(ctx context.Context, urls []string) error {
	var errs []error
	connected := 0
	for _, url := range urls {
		r, err := nostr.RelayConnect(ctx, url)
		if err != nil {
			c.logger.Warn("Failed to connect to relay", slog.String("relay", url), slog.Any("error", err))
			errs = append(errs, errors.Wrapf(err, "connect %s", url))

			continue
		}

		c.mu.Lock()
		c.relays = append(c.relays, r)
		c.mu.Unlock()
		connected++
		c.logger.Debug("Connected to relay", slog.String("relay", url))
	}

	if connected == 0 {
		if len(errs) == 0 {
			return errors.New("no relays given")
		}

		return errors.Join(errs...)
	}

	return nil
}

// Publish sends event to every relay in parallel.
func (c *Client) Publish(ctx context.Context, event nostr.Event) error {
	relays := c.connected()
	if len(relays) == 0 {
		return errors.New("not connected to any relay")
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errs     []error
		accepted int
	)
	for _, r := range relays {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := r.Publish(ctx, event)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, errors.Wrapf(err, "publish to %s", r.URL))

				return
			}
			accepted++
		}()
	}
	wg.Wait()

	for _, err := range errs {
		c.logger.Warn("Relay rejected event", slog.String("event_id", event.ID), slog.Any("error", err))
	}
	if accepted == 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Subscribe merges the subscriptions of every relay into one channel,
// dropping events already delivered by another relay. The channel is closed
// once ctx is done and every relay subscription has ended.
func (c *Client) Subscribe(ctx context.Context, filter nostr.Filter) (<-chan *nostr.Event, error) {
	relays := c.connected()
	if len(relays) == 0 {
		return nil, errors.New("not connected to any relay")
	}

	seen := cache.New(seenTTL, seenCleanupInterval)
	out := make(chan *nostr.Event, subscriptionBuffer)

	var wg sync.WaitGroup
	for _, r := range relays {
		sub, err := r.Subscribe(ctx, nostr.Filters{filter})
		if err != nil {
			c.logger.Warn("Failed to subscribe", slog.String("relay", r.URL), slog.Any("error", err))

			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sub.Unsub()

			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-sub.Events:
					if !ok {
						return
					}
					// Add fails when the id is already present.
					if err := seen.Add(ev.ID, struct{}{}, cache.DefaultExpiration); err != nil {
						continue
					}
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

// Fetch queries every relay for stored events and merges the results.
func (c *Client) Fetch(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	relays := c.connected()
	if len(relays) == 0 {
		return nil, errors.New("not connected to any relay")
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		batches [][]*nostr.Event
		errs    []error
	)
	for _, r := range relays {
		wg.Add(1)
		go func() {
			defer wg.Done()

			events, err := r.QuerySync(ctx, filter)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, errors.Wrapf(err, "query %s", r.URL))

				return
			}
			batches = append(batches, events)
		}()
	}
	wg.Wait()

	if len(batches) == 0 {
		return nil, errors.Join(errs...)
	}
	for _, err := range errs {
		c.logger.Warn("Relay query failed", slog.Any("error", err))
	}

	return mergeEvents(batches, filter.Limit), nil
}

// Close disconnects from every relay.
func (c *Client) Close() error {
	c.mu.Lock()
	relays := c.relays
	c.relays = nil
	c.mu.Unlock()

	var errs []error
	for _, r := range relays {
		if err := r.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close %s", r.URL))
		}
	}

	return errors.Join(errs...)
}

func (c *Client) connected() []*nostr.Relay {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.relays)
}

// mergeEvents de-duplicates by id and orders newest first. A positive limit
// truncates the result.
func mergeEvents(batches [][]*nostr.Event, limit int) []*nostr.Event {
	seen := make(map[string]struct{})
	var merged []*nostr.Event
	for _, batch := range batches {
		for _, ev := range batch {
			if ev == nil {
				continue
			}
			if _, ok := seen[ev.ID]; ok {
				continue
			}
			seen[ev.ID] = struct{}{}
			merged = append(merged, ev)
		}
	}

	slices.SortStableFunc(merged, func(a, b *nostr.Event) int {
		switch {
		case a.CreatedAt > b.CreatedAt:
			return -1
		case a.CreatedAt < b.CreatedAt:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
