package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestVirtualLoop_TimersFireInDueOrder(t *testing.T) {
	v := NewVirtualLoop(epoch)

	var order []string
	v.AfterFunc(300*time.Millisecond, func() { order = append(order, "hide") })
	v.AfterFunc(100*time.Millisecond, func() { order = append(order, "show") })
	v.AfterFunc(100*time.Millisecond, func() { order = append(order, "show-2") })

	v.Advance(99 * time.Millisecond)
	assert.Empty(t, order)

	v.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"show", "show-2"}, order)

	v.Advance(time.Second)
	assert.Equal(t, []string{"show", "show-2", "hide"}, order)
	assert.Equal(t, epoch.Add(1100*time.Millisecond), v.Now())
}

func TestVirtualLoop_ClockAtFireTime(t *testing.T) {
	v := NewVirtualLoop(epoch)

	var firedAt time.Time
	v.AfterFunc(250*time.Millisecond, func() { firedAt = v.Now() })
	v.Advance(time.Second)

	assert.Equal(t, epoch.Add(250*time.Millisecond), firedAt)
}

func TestVirtualLoop_StopPreventsCallback(t *testing.T) {
	v := NewVirtualLoop(epoch)

	fired := false
	timer := v.AfterFunc(10*time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing prevented")
	assert.Equal(t, 0, v.PendingTimers())

	v.Advance(time.Second)
	assert.False(t, fired)
}

func TestVirtualLoop_CallbacksCanArmTimers(t *testing.T) {
	v := NewVirtualLoop(epoch)

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			v.AfterFunc(10*time.Millisecond, tick)
		}
	}
	v.AfterFunc(10*time.Millisecond, tick)

	v.Advance(100 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestVirtualLoop_PostRunsOnAdvance(t *testing.T) {
	v := NewVirtualLoop(epoch)

	ran := 0
	v.Post(func() { ran++ })
	assert.Equal(t, 0, ran)

	v.RunPending()
	assert.Equal(t, 1, ran)
	assert.Equal(t, epoch, v.Now())
}

func TestVirtualLoop_NextDueSkipsStopped(t *testing.T) {
	v := NewVirtualLoop(epoch)

	_, ok := v.NextDue()
	assert.False(t, ok)

	early := v.AfterFunc(50*time.Millisecond, func() {})
	v.AfterFunc(200*time.Millisecond, func() {})
	due, ok := v.NextDue()
	assert.True(t, ok)
	assert.Equal(t, epoch.Add(50*time.Millisecond), due)

	early.Stop()
	due, ok = v.NextDue()
	assert.True(t, ok)
	assert.Equal(t, epoch.Add(200*time.Millisecond), due)
	assert.Equal(t, 1, v.PendingTimers())
}
