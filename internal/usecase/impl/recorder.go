package impl

// EventRecorder receives publish and skip counts for metrics. It must be
// safe for concurrent use.
type EventRecorder interface {
	EventPublished(kind int)
	EventSkipped(category string)
}

type nopRecorder struct{}

func (nopRecorder) EventPublished(int)  {}
func (nopRecorder) EventSkipped(string) {}

func recorderOrNop(r EventRecorder) EventRecorder {
	if r == nil {
		return nopRecorder{}
	}

	return r
}
