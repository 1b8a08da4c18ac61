package alert

import (
	"context"
	"sync"

	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
)

// MultiNotifier delivers to every sink concurrently. One failing sink does
// not stop the others; all failures are joined.
type MultiNotifier struct {
	notifiers []service.AlertNotifier
}

func NewMultiNotifier(notifiers ...service.AlertNotifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (m *MultiNotifier) Notify(ctx context.Context, alert *entity.Alert) error {
	errs := make([]error, len(m.notifiers))

	var wg sync.WaitGroup
	for i, notifier := range m.notifiers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = notifier.Notify(ctx, alert)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Len is the number of sinks.
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}
