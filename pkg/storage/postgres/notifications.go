package postgres

import (
	"context"
	"fmt"

	"leakwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const notificationLogTable = "notification_log"

// WasNotified reports whether a notification with this fingerprint has
// already been recorded for the user within the kind's namespace.
func (p *PgSQL) WasNotified(ctx context.Context,
	userID domain.UserID,
	kind domain.NotificationKind,
	fingerprint string) (bool, error) {
	count, err := p.Builder.From(notificationLogTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("kind").Eq(string(kind)),
			goqu.I("fingerprint").Eq(fingerprint),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not query notification log in pg: %w", err)
	}

	return count > 0, nil
}

// AppendNotification records a delivered notification. The unique constraint
// on (user_id, kind, fingerprint) makes the append idempotent: a duplicate
// insert is skipped and reported as false.
func (p *PgSQL) AppendNotification(ctx context.Context, record domain.NotificationRecord) (bool, error) {
	res, err := p.Builder.Insert(notificationLogTable).
		Rows(PgNotification{
			UserID:      uuid.UUID(record.UserID),
			Kind:        string(record.Kind),
			Fingerprint: record.Fingerprint,
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not append notification log in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
