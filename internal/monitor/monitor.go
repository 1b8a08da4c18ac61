// Package monitor watches a followed identity for silence and raises an
// alert when no location update has been observed within a threshold.
//
// Two goroutines share the last-seen timestamp: a consumer that resets it
// for every observed update and a checker that wakes on a fixed interval.
// Every read-compare-reset happens under one mutex. Alerts are delivered by
// detached goroutines so a slow or failing sink never delays a reset or the
// next check.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/domain/service"
	"sentinel/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCheckInterval   = 10 * time.Second
	DefaultDispatchTimeout = 15 * time.Second
)

// Recorder receives monitor events for metrics. All methods must be safe
// for concurrent use.
type Recorder interface {
	UpdateObserved(target string)
	AlertRaised(target string)
	AlertDelivered(target string, err error)
	SilenceObserved(target string, silence time.Duration)
}

// Params configures a Monitor.
type Params struct {
	Target          string        // display name of the followed identity (npub)
	Threshold       time.Duration // silence tolerated before alerting
	CheckInterval   time.Duration // defaults to DefaultCheckInterval
	DispatchTimeout time.Duration // per alert delivery, defaults to DefaultDispatchTimeout
	Notifier        service.AlertNotifier
	Recorder        Recorder
	Logger          *slog.Logger
	Clock           func() time.Time
}

// State is the liveness of the followed identity.
type State int

const (
	// StateArmed means the last update is within the threshold.
	StateArmed State = iota
	// StateSilent means the threshold has passed and the next check alerts.
	StateSilent
)

func (s State) String() string {
	if s == StateSilent {
		return "silent"
	}

	return "armed"
}

// Snapshot is a consistent view of the monitor state.
type Snapshot struct {
	LastSeen time.Time
	Updates  int
	Alerts   int
}

// Monitor is the liveness watchdog for one followed identity.
type Monitor struct {
	target          string
	threshold       time.Duration
	checkInterval   time.Duration
	dispatchTimeout time.Duration
	notifier        service.AlertNotifier
	recorder        Recorder
	logger          *slog.Logger
	clock           func() time.Time

	mu       sync.Mutex
	lastSeen time.Time
	updates  int
	alerts   int

	dispatches sync.WaitGroup
}

// New returns an armed monitor whose last-seen time is the current clock.
func New(params Params) (*Monitor, error) {
	if params.Threshold <= 0 {
		return nil, domainerrors.ErrInputValidation.WithDetails("alert threshold must be positive")
	}

	m := &Monitor{
		target:          params.Target,
		threshold:       params.Threshold,
		checkInterval:   params.CheckInterval,
		dispatchTimeout: params.DispatchTimeout,
		notifier:        params.Notifier,
		recorder:        params.Recorder,
		logger:          params.Logger,
		clock:           params.Clock,
	}
	if m.checkInterval <= 0 {
		m.checkInterval = DefaultCheckInterval
	}
	if m.dispatchTimeout <= 0 {
		m.dispatchTimeout = DefaultDispatchTimeout
	}
	if m.recorder == nil {
		m.recorder = nopRecorder{}
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	m.lastSeen = m.clock()

	return m, nil
}

// Observe records an update seen at at. Older observations never move the
// last-seen time backwards.
func (m *Monitor) Observe(at time.Time) {
	m.mu.Lock()
	if at.After(m.lastSeen) {
		m.lastSeen = at
	}
	m.updates++
	m.mu.Unlock()

	m.recorder.UpdateObserved(m.target)
}

// Check compares the silence at now against the threshold. When it is
// reached, the alert is handed to the notifier and last-seen is reset to now
// so that a full new silence period must pass before the next alert.
func (m *Monitor) Check(now time.Time) (*entity.Alert, bool) {
	m.mu.Lock()
	silence := now.Sub(m.lastSeen)
	if silence < m.threshold {
		m.mu.Unlock()
		m.recorder.SilenceObserved(m.target, silence)

		return nil, false
	}

	alert := &entity.Alert{
		ID:        uuid.New(),
		Target:    m.target,
		Threshold: m.threshold,
		Silence:   silence,
		LastSeen:  m.lastSeen,
		RaisedAt:  now,
		Message:   fmt.Sprintf("ALERT: No location update from %s for %s", m.target, util.FormatDuration(m.threshold)),
	}
	m.lastSeen = now
	m.alerts++
	m.mu.Unlock()

	m.recorder.AlertRaised(m.target)
	m.dispatch(alert)

	return alert, true
}

// State reports whether the identity is silent at now.
func (m *Monitor) State(now time.Time) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSeen) >= m.threshold {
		return StateSilent
	}

	return StateArmed
}

// Snapshot returns the current state.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		LastSeen: m.lastSeen,
		Updates:  m.updates,
		Alerts:   m.alerts,
	}
}

// Run starts the update consumer and the periodic checker. It returns when
// ctx is done or updates is closed, after in-flight alert deliveries finish.
func (m *Monitor) Run(ctx context.Context, updates <-chan time.Time) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()

		return m.consume(ctx, updates)
	})
	g.Go(func() error {
		return m.checkLoop(ctx)
	})

	err := g.Wait()
	m.dispatches.Wait()

	return err
}

func (m *Monitor) consume(ctx context.Context, updates <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case at, ok := <-updates:
			if !ok {
				m.logger.Info("Update stream closed, stopping monitor", slog.String("target", m.target))

				return nil
			}
			m.Observe(at)
		}
	}
}

func (m *Monitor) checkLoop(ctx context.Context) error {
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Check(m.clock())
		}
	}
}

func (m *Monitor) dispatch(alert *entity.Alert) {
	m.logger.Warn(alert.Message,
		slog.String("alert_id", alert.ID.String()),
		slog.String("target", alert.Target),
		slog.Duration("silence", alert.Silence),
	)

	if m.notifier == nil {
		return
	}

	m.dispatches.Add(1)
	go func() {
		defer m.dispatches.Done()

		ctx, cancel := context.WithTimeout(context.Background(), m.dispatchTimeout)
		defer cancel()

		err := m.notifier.Notify(ctx, alert)
		m.recorder.AlertDelivered(alert.Target, err)
		if err != nil {
			m.logger.Warn("Alert delivery failed",
				slog.String("alert_id", alert.ID.String()),
				slog.Any("error", domainerrors.ErrDeliveryFailed.WithDetails(err.Error())),
			)
		}
	}()
}

type nopRecorder struct{}

func (nopRecorder) UpdateObserved(string)                 {}
func (nopRecorder) AlertRaised(string)                    {}
func (nopRecorder) AlertDelivered(string, error)          {}
func (nopRecorder) SilenceObserved(string, time.Duration) {}
