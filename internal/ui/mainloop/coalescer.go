// Package mainloop provides the single-threaded event loops that drive the
// preview controller, plus helpers for feeding them from other goroutines.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into a single loop callback.
// The most recently posted callback for a key wins. Post may be called from
// any goroutine; the merged callback runs wherever post delivers it.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
	merged    uint64
}

// NewCoalescer creates a coalescer delivering work through post,
// usually a Scheduler's Post method.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key. If work for key is already queued, fn
// replaces it and no new callback is posted.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	if _, queued := c.pending[key]; queued {
		c.pending[key] = fn
		c.merged++
		c.mu.Unlock()
		return
	}
	c.pending[key] = fn
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed && fn != nil {
		fn()
	}
}

// Merged returns how many posts were folded into an already queued one.
func (c *Coalescer) Merged() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
