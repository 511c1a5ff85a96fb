// Package worker runs the periodic background jobs: chain observation,
// address pool upkeep and owner notifications.
package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"coinledger/internal/metrics"

	"go.uber.org/zap"
)

// Runner executes a Job on an interval and on demand, never more than one
// run at a time.
type Runner struct {
	name     string
	logs     *zap.SugaredLogger
	job      Job
	interval time.Duration
	metrics  Metrics
	running  atomic.Bool
	wake     chan struct{}
}

func NewRunner(logger *zap.SugaredLogger, name string, job Job, interval time.Duration, m Metrics) *Runner {
	return &Runner{
		name:     name,
		logs:     logger.With("worker", name),
		job:      job,
		interval: interval,
		metrics:  m,
		wake:     make(chan struct{}, 1),
	}
}

// RunOnce runs the job unless a run is already in flight. It reports
// whether the job ran.
func (r *Runner) RunOnce(ctx context.Context) (ran bool) {
	if !r.running.CompareAndSwap(false, true) {
		r.logs.Debugw("previous run still in progress, skipping")
		r.metrics.Cycle(r.name, metrics.ResultSkipped, 0)
		return false
	}
	defer r.running.Store(false)
	ran = true

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.logs.Errorw("run panicked", "panic", fmt.Sprint(p))
			r.metrics.Cycle(r.name, metrics.ResultPanic, time.Since(start))
		}
	}()

	if err := r.job.Run(ctx); err != nil {
		r.logs.Errorw("run failed", "error", err, "took", time.Since(start).String())
		r.metrics.Cycle(r.name, metrics.ResultError, time.Since(start))
		return true
	}

	r.logs.Debugw("run finished", "took", time.Since(start).String())
	r.metrics.Cycle(r.name, metrics.ResultOK, time.Since(start))
	return true
}

// Trigger requests an extra run from the Start loop without waiting for it.
// At most one request is held: triggers that arrive while a run is in
// progress coalesce into a single follow-up run.
func (r *Runner) Trigger() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *Runner) Running() bool {
	return r.running.Load()
}

// Start runs the job immediately and then every interval, or sooner when
// triggered, until ctx is done. Runs do not see the cancellation of ctx, so
// an in-flight run always completes before Start returns.
func (r *Runner) Start(ctx context.Context) {
	r.logs.Infow("worker started", "interval", r.interval.String())
	timer := time.NewTimer(0)
	defer timer.Stop()

	runCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logs.Infow("worker stopped")
			return
		case <-timer.C:
		case <-r.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}

		r.RunOnce(runCtx)
		timer.Reset(r.interval)
	}
}
