package mainloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
)

// Loop is a real-time single-threaded event loop implementing port.Scheduler.
// Callbacks run one at a time on the goroutine executing Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

var _ port.Scheduler = (*Loop)(nil)

// NewLoop creates an idle loop. Call Run to start processing.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1), done: make(chan struct{})}
}

// Post queues fn. Safe from any goroutine; dropped after Run returns.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc posts fn to the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped.Load() {
				return
			}
			t.fired.Store(true)
			fn()
		})
	})
	return t
}

// Now returns the wall clock.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Done is closed once Run has returned. Callbacks posted after that are
// dropped, so callers waiting on a posted callback should also wait on Done.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Run processes callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		wasClosed := l.closed
		l.closed = true
		l.queue = nil
		l.mu.Unlock()
		if !wasClosed {
			close(l.done)
		}
	}()

	for {
		l.drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

// Stop prevents the callback. A callback already posted but not yet run is
// also suppressed, so Stop called on the loop always wins.
func (t *loopTimer) Stop() bool {
	if t.fired.Load() {
		return false
	}
	t.timer.Stop()
	return !t.stopped.Swap(true)
}
