package port

import "time"

// Timer is a cancellable deferred callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the callback.
	Stop() bool
}

// Scheduler is the host's single-threaded event loop.
// Callbacks passed to Post and AfterFunc run serialized on the loop.
// Post is the only method safe to call from other goroutines.
type Scheduler interface {
	Post(fn func())
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}
