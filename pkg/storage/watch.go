package storage

import (
	"context"
	"time"

	"leakwatch/pkg/domain"
)

// WatchStorage defines CRUD and query operations for watched identifiers.
// A watch is unique per (user, value); removing one deactivates it and
// re-adding the same value reactivates the existing row.
type WatchStorage interface {
	// StoreWatch inserts a watch for the user, or reactivates a previously
	// removed watch with the same value. Returns the stored row, or nil when
	// an active watch with this value already exists.
	StoreWatch(ctx context.Context, watch domain.Watch) (*domain.Watch, error)
	// DeactivateWatch marks the watch inactive and returns the updated row,
	// or nil if no active watch with this ID belongs to the user.
	DeactivateWatch(ctx context.Context, userID domain.UserID, id domain.WatchID) (*domain.Watch, error)
	// UserWatches returns the user's active watches ordered by creation time.
	UserWatches(ctx context.Context, userID domain.UserID) ([]domain.Watch, error)
	// ActiveWatchCount returns the number of active watches the user holds.
	ActiveWatchCount(ctx context.Context, userID domain.UserID) (int64, error)
	// ActiveWatches returns every active watch across all users, ordered by
	// last check time ascending with never-checked watches first, so the
	// scheduler always serves the stalest entries first.
	ActiveWatches(ctx context.Context) ([]domain.Watch, error)
	// RecordWatchResult persists the outcome of a completed check: the check
	// timestamp and the breach total observed. It must only be called after
	// a successful check so that failed checks retry with the previous state.
	RecordWatchResult(ctx context.Context, id domain.WatchID, checkedAt time.Time, breachCount int) error
}
