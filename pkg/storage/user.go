package storage

import (
	"context"
	"time"

	"leakwatch/pkg/domain"
)

// UserStorage defines persistence operations for users. Users are keyed both
// by their internal ID and by the chat ID of the messaging surface they
// arrived from.
type UserStorage interface {
	// UpsertUser inserts a user for the given chat ID or returns the existing
	// row when one is already present. New users start on the free plan.
	UpsertUser(ctx context.Context, chatID int64) (*domain.User, error)
	// UserByID fetches a user by internal ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByChatID fetches a user by chat ID. Returns nil when not found.
	UserByChatID(ctx context.Context, chatID int64) (*domain.User, error)
	// SetPlan replaces the user's plan and its expiry, returning the updated
	// row, or nil when the user does not exist.
	SetPlan(ctx context.Context, id domain.UserID, plan domain.Plan, expiresAt time.Time) (*domain.User, error)
}
