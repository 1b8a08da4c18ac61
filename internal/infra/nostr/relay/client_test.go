package relay

import (
	"context"
	"log/slog"
	"testing"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEvents_DedupesAndSortsNewestFirst(t *testing.T) {
	a := &nostr.Event{ID: "a", CreatedAt: 100}
	b := &nostr.Event{ID: "b", CreatedAt: 300}
	c := &nostr.Event{ID: "c", CreatedAt: 200}

	merged := mergeEvents([][]*nostr.Event{{a, b}, {b, c, nil}}, 0)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMergeEvents_Limit(t *testing.T) {
	merged := mergeEvents([][]*nostr.Event{{
		{ID: "a", CreatedAt: 1},
		{ID: "b", CreatedAt: 2},
		{ID: "c", CreatedAt: 3},
	}}, 2)

	require.Len(t, merged, 2)
	assert.Equal(t, "c", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)
}

func TestClient_NotConnected(t *testing.T) {
	client := NewClient(slog.Default())
	ctx := context.Background()

	assert.Error(t, client.Publish(ctx, nostr.Event{}))

	_, err := client.Fetch(ctx, nostr.Filter{})
	assert.Error(t, err)

	_, err = client.Subscribe(ctx, nostr.Filter{})
	assert.Error(t, err)

	assert.NoError(t, client.Close())
}

func TestClient_ConnectWithoutRelays(t *testing.T) {
	client := NewClient(slog.Default())
	assert.Error(t, client.Connect(context.Background(), nil))
}
