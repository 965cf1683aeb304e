package worker

import (
	"context"
	"fmt"

	"leakwatch/internal/monitor"
	"leakwatch/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// LeakCycleWorker is a River worker that runs one leak re-check cycle per
// job. Errors are returned so River records the failed run; the next
// periodic tick enqueues a fresh cycle regardless.
type LeakCycleWorker struct {
	river.WorkerDefaults[monitor.LeakCycleArgs]

	monitor monitor.Service
}

// NewLeakCycleWorker constructs a LeakCycleWorker driving the given service.
func NewLeakCycleWorker(monitor monitor.Service) *LeakCycleWorker {
	return &LeakCycleWorker{monitor: monitor}
}

// Work executes a single leak cycle.
func (w *LeakCycleWorker) Work(ctx context.Context, job *river.Job[monitor.LeakCycleArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.monitor.RunLeakCycle(ctx); err != nil {
		logger.Error(ctx, "leak cycle failed", zap.Error(err))

		return fmt.Errorf("could not run leak cycle: %w", err)
	}

	logger.Info(ctx, "leak cycle finished")

	return nil
}

// DarkWebCycleWorker is a River worker that runs one dark-web scan cycle
// per job.
type DarkWebCycleWorker struct {
	river.WorkerDefaults[monitor.DarkWebCycleArgs]

	monitor monitor.Service
}

// NewDarkWebCycleWorker constructs a DarkWebCycleWorker driving the given
// service.
func NewDarkWebCycleWorker(monitor monitor.Service) *DarkWebCycleWorker {
	return &DarkWebCycleWorker{monitor: monitor}
}

// Work executes a single dark-web cycle.
func (w *DarkWebCycleWorker) Work(ctx context.Context, job *river.Job[monitor.DarkWebCycleArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.monitor.RunDarkWebCycle(ctx); err != nil {
		logger.Error(ctx, "dark web cycle failed", zap.Error(err))

		return fmt.Errorf("could not run dark web cycle: %w", err)
	}

	logger.Info(ctx, "dark web cycle finished")

	return nil
}
