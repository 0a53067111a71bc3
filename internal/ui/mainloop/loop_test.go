package mainloop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsPostedCallbacksInOrder(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	results := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		v := i
		l.Post(func() { results <- v })
	}

	for want := 1; want <= 3; want++ {
		select {
		case got := <-results:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for callback")
		}
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestLoop_AfterFuncAndStop(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	var stoppedFired atomic.Bool
	fired := make(chan struct{})

	stopped := l.AfterFunc(20*time.Millisecond, func() { stoppedFired.Store(true) })
	l.Post(func() { stopped.Stop() })
	l.AfterFunc(60*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	assert.False(t, stoppedFired.Load())
}

func TestLoop_DoneClosesAndLatePostsAreDropped(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = l.Run(ctx) }()

	select {
	case <-l.Done():
		t.Fatal("done before Run returned")
	default:
	}

	cancel()
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done not closed after cancel")
	}

	var ran atomic.Bool
	l.Post(func() { ran.Store(true) })
	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran.Load())
}
