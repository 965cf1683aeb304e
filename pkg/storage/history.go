package storage

import (
	"context"

	"leakwatch/pkg/domain"
)

// HistoryStorage persists the per-user check history. Stored query values
// are expected to be masked by the caller before they reach this layer.
type HistoryStorage interface {
	// StoreCheck appends a history entry and returns the stored row.
	StoreCheck(ctx context.Context, record domain.CheckRecord) (*domain.CheckRecord, error)
	// UserChecks returns the user's most recent history entries, newest
	// first, limited by limit.
	UserChecks(ctx context.Context, userID domain.UserID, limit uint) ([]domain.CheckRecord, error)
}
