package bootstrap

import (
	"sync"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
)

// TraceSource tells where a trace entry came from.
type TraceSource string

const (
	SourceStep    TraceSource = "step"
	SourcePreview TraceSource = "preview"
)

// TraceEntry is one line of a session trace.
type TraceEntry struct {
	Offset    time.Duration
	Source    TraceSource
	Kind      string
	Detail    string
	PreviewID string
	URL       string
	Placement *entity.Placement
	Reason    entity.DismissReason
	Err       string
}

// Trace collects scripted steps and preview events in the order they
// happened, stamped relative to the session start.
type Trace struct {
	start time.Time

	mu      sync.Mutex
	entries []TraceEntry
}

var _ port.PreviewObserver = (*Trace)(nil)

// NewTrace creates an empty trace starting at start.
func NewTrace(start time.Time) *Trace {
	return &Trace{start: start}
}

// PreviewChanged implements port.PreviewObserver.
func (t *Trace) PreviewChanged(ev port.PreviewEvent) {
	entry := TraceEntry{
		Offset:    ev.At.Sub(t.start),
		Source:    SourcePreview,
		Kind:      string(ev.Kind),
		PreviewID: ev.PreviewID,
		URL:       ev.URL,
		Reason:    ev.Reason,
	}
	if ev.Kind == port.PreviewEventShown {
		placement := ev.Placement
		entry.Placement = &placement
	}
	if ev.Err != nil {
		entry.Err = ev.Err.Error()
	}
	t.add(entry)
}

// Step records a scripted input at.
func (t *Trace) Step(at time.Time, st Step) {
	t.add(TraceEntry{
		Offset: at.Sub(t.start),
		Source: SourceStep,
		Kind:   st.Action,
		Detail: st.Describe(),
	})
}

// Note records a free-form session message.
func (t *Trace) Note(at time.Time, kind, detail string) {
	t.add(TraceEntry{Offset: at.Sub(t.start), Source: SourceStep, Kind: kind, Detail: detail})
}

func (t *Trace) add(e TraceEntry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
}

// Entries returns a copy of the recorded entries.
func (t *Trace) Entries() []TraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TraceEntry(nil), t.entries...)
}

// PreviewKinds returns the kinds of the preview events, in order.
func (t *Trace) PreviewKinds() []string {
	var kinds []string
	for _, e := range t.Entries() {
		if e.Source == SourcePreview {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}
