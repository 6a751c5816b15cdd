package poll

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 10 * time.Millisecond

func TestPoller_StartTicksRepeatedly(t *testing.T) {
	p := New(tick)
	var calls atomic.Int32

	p.Start(func(context.Context) { calls.Add(1) })
	defer p.Stop()

	require.True(t, p.Running())
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, tick)
}

func TestPoller_StopHaltsFurtherTicks(t *testing.T) {
	req := require.New(t)
	p := New(tick)
	var calls atomic.Int32

	p.Start(func(context.Context) { calls.Add(1) })
	req.Eventually(func() bool { return calls.Load() >= 1 }, time.Second, tick)

	p.Stop()
	req.False(p.Running())

	// Goroutines dispatched before Stop may still be landing; let them settle.
	time.Sleep(2 * tick)
	settled := calls.Load()
	time.Sleep(10 * tick)
	req.Equal(settled, calls.Load())
}

func TestPoller_StartReplacesRunningLoop(t *testing.T) {
	req := require.New(t)
	p := New(tick)
	var first, second atomic.Int32

	p.Start(func(context.Context) { first.Add(1) })
	req.Eventually(func() bool { return first.Load() >= 1 }, time.Second, tick)

	p.Start(func(context.Context) { second.Add(1) })
	defer p.Stop()

	time.Sleep(2 * tick)
	settled := first.Load()
	req.Eventually(func() bool { return second.Load() >= 3 }, time.Second, tick)
	req.Equal(settled, first.Load(), "the replaced loop must not keep ticking")
}

func TestPoller_StopWhenIdleIsNoop(t *testing.T) {
	p := New(tick)

	p.Stop()
	p.Stop()

	require.False(t, p.Running())
}

func TestPoller_TickContextIsCancelledByStop(t *testing.T) {
	req := require.New(t)
	p := New(tick)
	ctxs := make(chan context.Context, 1)

	p.Start(func(ctx context.Context) {
		select {
		case ctxs <- ctx:
		default:
		}
	})

	var ctx context.Context
	req.Eventually(func() bool {
		select {
		case ctx = <-ctxs:
			return true
		default:
			return false
		}
	}, time.Second, tick)

	p.Stop()
	req.ErrorIs(ctx.Err(), context.Canceled)
}
