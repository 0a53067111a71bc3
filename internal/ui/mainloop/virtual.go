package mainloop

import (
	"container/heap"
	"sync"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
)

// VirtualLoop is a deterministic port.Scheduler driven by a manual clock.
// Time only moves when Advance is called, which makes it suitable for
// replaying scripted sessions and for tests.
type VirtualLoop struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers timerHeap
	posted []func()
}

var _ port.Scheduler = (*VirtualLoop)(nil)

// NewVirtualLoop creates a loop whose clock starts at start.
func NewVirtualLoop(start time.Time) *VirtualLoop {
	return &VirtualLoop{now: start}
}

// Post queues fn for the next Advance or RunPending. Safe from any goroutine.
func (v *VirtualLoop) Post(fn func()) {
	if fn == nil {
		return
	}
	v.mu.Lock()
	v.posted = append(v.posted, fn)
	v.mu.Unlock()
}

// AfterFunc schedules fn at Now()+d.
func (v *VirtualLoop) AfterFunc(d time.Duration, fn func()) port.Timer {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTimer{loop: v, when: v.now.Add(d), seq: v.seq, fn: fn}
	heap.Push(&v.timers, t)
	return t
}

// Now returns the virtual clock.
func (v *VirtualLoop) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Advance moves the clock forward by d, running posted callbacks and every
// timer that comes due, in due-time order.
func (v *VirtualLoop) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	for {
		v.runPosted()

		v.mu.Lock()
		next := v.popDueLocked(target)
		if next == nil {
			v.now = target
			v.mu.Unlock()
			break
		}
		v.now = next.when
		v.mu.Unlock()

		next.fn()
	}
	v.runPosted()
}

// RunPending runs posted callbacks and timers due now without moving the clock.
func (v *VirtualLoop) RunPending() {
	v.Advance(0)
}

// PendingTimers returns the number of armed timers.
func (v *VirtualLoop) PendingTimers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, t := range v.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// NextDue returns the due time of the earliest armed timer.
func (v *VirtualLoop) NextDue() (time.Time, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for v.timers.Len() > 0 && v.timers[0].stopped {
		heap.Pop(&v.timers)
	}
	if v.timers.Len() == 0 {
		return time.Time{}, false
	}
	return v.timers[0].when, true
}

func (v *VirtualLoop) runPosted() {
	for {
		v.mu.Lock()
		batch := v.posted
		v.posted = nil
		v.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}

func (v *VirtualLoop) popDueLocked(target time.Time) *virtualTimer {
	for v.timers.Len() > 0 {
		t := v.timers[0]
		if t.stopped {
			heap.Pop(&v.timers)
			continue
		}
		if t.when.After(target) {
			return nil
		}
		heap.Pop(&v.timers)
		t.fired = true
		return t
	}
	return nil
}

type virtualTimer struct {
	loop    *VirtualLoop
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
	index   int
}

func (t *virtualTimer) Stop() bool {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type timerHeap []*virtualTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*virtualTimer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
