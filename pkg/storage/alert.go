package storage

import (
	"context"

	"leakwatch/pkg/domain"
)

// AlertStorage persists dark-web alerts attached to users.
type AlertStorage interface {
	// StoreAlert inserts a dark-web alert and returns the stored row.
	StoreAlert(ctx context.Context, alert domain.DarkWebAlert) (*domain.DarkWebAlert, error)
	// UserAlerts returns the user's alerts, newest first, limited by limit.
	// When unreadOnly is set, alerts already marked read are excluded.
	UserAlerts(ctx context.Context, userID domain.UserID, unreadOnly bool, limit uint) ([]domain.DarkWebAlert, error)
	// MarkAlertsRead marks all of the user's alerts as read.
	MarkAlertsRead(ctx context.Context, userID domain.UserID) error
}
