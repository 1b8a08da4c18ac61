package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sentinel/internal/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.UpdateObserved("npub1a")
	m.UpdateObserved("npub1a")
	m.AlertRaised("npub1a")
	m.AlertDelivered("npub1a", nil)
	m.AlertDelivered("npub1a", errors.New("down"))
	m.EventPublished(30472)
	m.EventSkipped("decryption")
	m.SilenceObserved("npub1a", 42*time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(m.locationUpdates.WithLabelValues("npub1a")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.alerts.WithLabelValues("npub1a", ResultRaised)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.alerts.WithLabelValues("npub1a", ResultDelivered)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.alerts.WithLabelValues("npub1a", ResultFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.publishedEvents.WithLabelValues("30472")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.skippedEvents.WithLabelValues("decryption")), 0)
	assert.InDelta(t, 42, testutil.ToFloat64(m.secondsSinceUpdate.WithLabelValues("npub1a")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.EventPublished(30473)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `sentinel_published_events_total{kind="30473"} 1`))
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
