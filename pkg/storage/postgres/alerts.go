package postgres

import (
	"context"
	"fmt"

	"leakwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const darkwebAlertsTable = "darkweb_alerts"

// StoreAlert inserts a dark-web alert and returns the stored row.
func (p *PgSQL) StoreAlert(ctx context.Context, alert domain.DarkWebAlert) (*domain.DarkWebAlert, error) {
	var pgAlert PgAlert
	pgAlert.FromDomain(alert)

	var row PgAlert
	found, err := p.Builder.Insert(darkwebAlertsTable).
		Rows(pgAlert).
		Returning(&PgAlert{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store alert into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserAlerts returns the user's alerts, newest first, limited by limit.
func (p *PgSQL) UserAlerts(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	limit uint) ([]domain.DarkWebAlert, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if unreadOnly {
		w = append(w, goqu.I("is_read").IsFalse())
	}

	var rows []PgAlert
	if err := p.Builder.From(darkwebAlertsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user alerts from pg: %w", err)
	}

	return pgAlertsToDomain(rows), nil
}

// MarkAlertsRead marks all of the user's alerts as read.
func (p *PgSQL) MarkAlertsRead(ctx context.Context, userID domain.UserID) error {
	_, err := p.Builder.Update(darkwebAlertsTable).
		Set(goqu.Record{
			"is_read": true,
		}).Where(
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("is_read").IsFalse(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark alerts read in pg: %w", err)
	}

	return nil
}
