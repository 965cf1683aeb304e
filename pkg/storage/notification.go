package storage

import (
	"context"

	"leakwatch/pkg/domain"
)

// NotificationStorage persists the append-only notification log that backs
// exactly-once alert delivery. The (user, kind, fingerprint) triple is the
// deduplication key.
type NotificationStorage interface {
	// WasNotified reports whether a notification with this fingerprint has
	// already been recorded for the user within the kind's namespace.
	WasNotified(ctx context.Context, userID domain.UserID, kind domain.NotificationKind, fingerprint string) (bool, error)
	// AppendNotification records a delivered notification. It returns false
	// without error when an identical (user, kind, fingerprint) row already
	// exists, making the append idempotent under races.
	AppendNotification(ctx context.Context, record domain.NotificationRecord) (bool, error)
}
