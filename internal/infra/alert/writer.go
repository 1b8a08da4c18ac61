package alert

import (
	"context"
	"fmt"
	"io"
	"sync"

	"sentinel/internal/domain/entity"
	"sentinel/internal/errors"
)

// WriterNotifier prints the alert message as a line, for terminals.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, alert *entity.Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintln(n.w, alert.Message)

	return errors.WithStack(err)
}
