package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/linkpeek/internal/logging"
)

type phase struct {
	name string
	took time.Duration
}

// phaseTimer measures session setup on the wall clock, independent of the
// scheduler, so virtual runs still report real costs.
type phaseTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

func newPhaseTimer() *phaseTimer {
	now := time.Now()
	return &phaseTimer{start: now, last: now}
}

// Mark closes the phase that started at the previous mark.
func (t *phaseTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	t.phases = append(t.phases, phase{name: name, took: now.Sub(t.last)})
	t.last = now
}

func (t *phaseTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ev := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		ev = ev.Dur(p.name, p.took)
	}
	ev.Msg("session timing")
}
