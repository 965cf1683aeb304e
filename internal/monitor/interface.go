// Package monitor manages watched identifiers and drives the recurring
// re-check cycles that alert users to newly observed exposures.
package monitor

import (
	"context"

	"leakwatch/pkg/domain"
)

//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Service interface {
	// AddWatch registers an identifier for recurring checking. The owner
	// needs an active paid plan and a free slot within the plan's watch
	// limit. Re-adding a removed value reactivates the old watch.
	AddWatch(ctx context.Context, userID domain.UserID, value string) (*domain.Watch, error)
	// RemoveWatch deactivates the watch. Removing an unknown or foreign
	// watch reports not-found.
	RemoveWatch(ctx context.Context, userID domain.UserID, id domain.WatchID) error
	// Watches lists the user's active watches.
	Watches(ctx context.Context, userID domain.UserID) ([]domain.Watch, error)

	// RunLeakCycle re-checks every active watch against the breach sources,
	// stalest first, and notifies owners whose breach totals increased.
	// Exactly one notification is sent per observed state change, ever.
	RunLeakCycle(ctx context.Context) error
	// RunDarkWebCycle scans every active watch of dark-web entitled owners
	// and alerts on findings not seen before.
	RunDarkWebCycle(ctx context.Context) error
}
