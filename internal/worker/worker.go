// Package worker runs the background job client that drives the recurring
// monitoring cycles.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"leakwatch/internal/config"
	"leakwatch/internal/monitor"
	"leakwatch/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options carries the periodic schedules of the monitoring cycles.
type Options struct {
	// LeakInterval is how often the leak re-check cycle is enqueued.
	LeakInterval time.Duration
	// DarkWebInterval is how often the dark-web scan cycle is enqueued.
	DarkWebInterval time.Duration
}

// NewOptions builds Options from the service configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LeakInterval:    cfg.Monitor.LeakInterval,
		DarkWebInterval: cfg.Monitor.DarkWebInterval,
	}
}

// Start registers the cycle workers and launches the River client with both
// cycles on their periodic schedules. Cycles run one at a time: they pace
// themselves with per-item delays, so parallelism would only multiply
// upstream request rates.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	monitorService monitor.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLeakCycleWorker(monitorService))
	river.AddWorker(workers, NewDarkWebCycleWorker(monitorService))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 1},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.LeakInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return monitor.LeakCycleArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
			river.NewPeriodicJob(
				river.PeriodicInterval(options.DarkWebInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return monitor.DarkWebCycleArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
