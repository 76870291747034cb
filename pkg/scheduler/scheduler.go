// Package scheduler triggers ingestion runs on a fixed interval. The "when" is
// decided here; the "what" lives in the pipeline, which the on-demand HTTP
// trigger calls directly with the same semantics.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/dewmyth/screenwatch/pkg/pipeline"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner executes one ingestion cycle
type Runner interface {
	Run(ctx context.Context) pipeline.Result
}

// Scheduler invokes the runner periodically
type Scheduler struct {
	runner   Runner
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// New creates a scheduler. The interval defaults to 15 minutes, matching the
// upstream page's refresh cadence.
func New(runner Runner, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{runner: runner, interval: interval}
}

// Start begins the periodic runs, the first one immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v", s.interval)
}

// Stop cancels the loop and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce invokes the runner; run failures are already logged by the pipeline
// and never crash the loop
func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res := s.runner.Run(ctx)
	if res.Err != nil {
		lgr.Printf("[WARN] scheduled run failed: %v", res.Err)
		return
	}
	lgr.Printf("[DEBUG] scheduled run completed, %d new movies", res.NewMovies)
}
