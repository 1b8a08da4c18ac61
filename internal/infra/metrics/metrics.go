// Package metrics exports the agent and follow counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const Namespace = "sentinel"

// Alert results
const (
	ResultRaised    = "raised"
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	locationUpdates    *prometheus.CounterVec
	alerts             *prometheus.CounterVec
	publishedEvents    *prometheus.CounterVec
	skippedEvents      *prometheus.CounterVec
	secondsSinceUpdate *prometheus.GaugeVec
}

// New registers every collector, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		locationUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "location_updates_total",
			Help:      "Number of location updates observed from a followed identity.",
		}, []string{"target"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "alerts_total",
			Help:      "Number of liveness alerts by result.",
		}, []string{"target", "result"}),
		publishedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "published_events_total",
			Help:      "Number of location events accepted by at least one relay.",
		}, []string{"kind"}),
		skippedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "skipped_events_total",
			Help:      "Number of received events skipped, by error category.",
		}, []string{"category"}),
		secondsSinceUpdate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "seconds_since_update",
			Help:      "Silence of a followed identity at the last check.",
		}, []string{"target"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.locationUpdates,
		m.alerts,
		m.publishedEvents,
		m.skippedEvents,
		m.secondsSinceUpdate,
	)

	return m
}

func (m *Metrics) UpdateObserved(target string) {
	m.locationUpdates.WithLabelValues(target).Inc()
	m.secondsSinceUpdate.WithLabelValues(target).Set(0)
}

func (m *Metrics) AlertRaised(target string) {
	m.alerts.WithLabelValues(target, ResultRaised).Inc()
}

func (m *Metrics) AlertDelivered(target string, err error) {
	result := ResultDelivered
	if err != nil {
		result = ResultFailed
	}
	m.alerts.WithLabelValues(target, result).Inc()
}

func (m *Metrics) SilenceObserved(target string, silence time.Duration) {
	m.secondsSinceUpdate.WithLabelValues(target).Set(silence.Seconds())
}

func (m *Metrics) EventPublished(kind int) {
	m.publishedEvents.WithLabelValues(strconv.Itoa(kind)).Inc()
}

func (m *Metrics) EventSkipped(category string) {
	m.skippedEvents.WithLabelValues(category).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
