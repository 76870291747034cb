package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewmyth/screenwatch/pkg/pipeline"
	"github.com/dewmyth/screenwatch/pkg/scheduler/mocks"
)

func TestScheduler_RunsImmediatelyAndOnTicks(t *testing.T) {
	var calls int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) pipeline.Result {
			atomic.AddInt32(&calls, 1)
			return pipeline.Result{NewMovies: 1}
		},
	}

	s := New(runner, 20*time.Millisecond)
	s.Start(context.Background())

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 3
	}, time.Second, 5*time.Millisecond, "expected the immediate run plus at least two ticks")

	s.Stop()
}

func TestScheduler_StopHaltsRuns(t *testing.T) {
	var calls int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) pipeline.Result {
			atomic.AddInt32(&calls, 1)
			return pipeline.Result{}
		},
	}

	s := New(runner, 10*time.Millisecond)
	s.Start(context.Background())

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 1
	}, time.Second, time.Millisecond)

	s.Stop()
	after := atomic.LoadInt32(&calls)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls), "no runs after Stop")
}

func TestScheduler_RunFailureKeepsLoopAlive(t *testing.T) {
	var calls int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) pipeline.Result {
			atomic.AddInt32(&calls, 1)
			return pipeline.Result{Err: errors.New("fetch failed")}
		},
	}

	s := New(runner, 15*time.Millisecond)
	s.Start(context.Background())

	// failures are logged, the loop keeps ticking
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 2
	}, time.Second, 5*time.Millisecond)

	s.Stop()
}

func TestScheduler_ParentContextCancel(t *testing.T) {
	var calls int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) pipeline.Result {
			atomic.AddInt32(&calls, 1)
			return pipeline.Result{}
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := New(runner, 10*time.Millisecond)
	s.Start(ctx)

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := atomic.LoadInt32(&calls)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls))

	s.Stop() // still safe after the context is gone
}

func TestScheduler_DefaultInterval(t *testing.T) {
	s := New(&mocks.RunnerMock{}, 0)
	assert.Equal(t, 15*time.Minute, s.interval)
}
