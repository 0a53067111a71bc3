package port

import (
	"time"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

// PreviewEventKind identifies a preview lifecycle event.
type PreviewEventKind string

const (
	PreviewEventScheduled PreviewEventKind = "scheduled"
	PreviewEventCancelled PreviewEventKind = "cancelled"
	PreviewEventShown     PreviewEventKind = "shown"
	PreviewEventReady     PreviewEventKind = "ready"
	PreviewEventFailed    PreviewEventKind = "failed"
	PreviewEventClosed    PreviewEventKind = "closed"
)

// PreviewEvent describes a transition of the preview controller.
type PreviewEvent struct {
	Kind      PreviewEventKind
	PreviewID string
	URL       string
	Placement entity.Placement
	Reason    entity.DismissReason
	Err       error
	At        time.Time
}

// PreviewObserver is notified of preview events on the loop.
type PreviewObserver interface {
	PreviewChanged(ev PreviewEvent)
}

// PreviewObserverFunc adapts a function to PreviewObserver.
type PreviewObserverFunc func(ev PreviewEvent)

// PreviewChanged implements PreviewObserver.
func (f PreviewObserverFunc) PreviewChanged(ev PreviewEvent) {
	f(ev)
}
