package postgres

import (
	"context"
	"fmt"
	"time"

	"leakwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const watchesTable = "watches"

// StoreWatch inserts a watch, or reactivates an existing (user, value) row
// that was previously removed. Reactivation keeps the old check state so a
// re-added watch does not re-alert on breaches already notified. Returns nil
// when an active watch for this (user, value) already exists.
func (p *PgSQL) StoreWatch(ctx context.Context, watch domain.Watch) (*domain.Watch, error) {
	var pgWatch PgWatch
	pgWatch.FromDomain(watch)

	var row PgWatch
	found, err := p.Builder.Insert(watchesTable).
		Rows(pgWatch).
		OnConflict(goqu.DoUpdate("user_id, value", goqu.Record{
			"is_active": true,
		}).Where(goqu.I("watches.is_active").IsFalse())).
		Returning(&PgWatch{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store watch into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeactivateWatch marks the watch inactive and returns the updated row, or
// nil if no active watch with this ID belongs to the user.
func (p *PgSQL) DeactivateWatch(ctx context.Context,
	userID domain.UserID,
	id domain.WatchID) (*domain.Watch, error) {
	var row PgWatch
	found, err := p.Builder.Update(watchesTable).
		Set(goqu.Record{
			"is_active": false,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("is_active").IsTrue(),
	).Returning(&PgWatch{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not deactivate watch in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserWatches returns the user's active watches ordered by creation time.
func (p *PgSQL) UserWatches(ctx context.Context, userID domain.UserID) ([]domain.Watch, error) {
	var rows []PgWatch
	if err := p.Builder.From(watchesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_active").IsTrue(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user watches from pg: %w", err)
	}

	return pgWatchesToDomain(rows), nil
}

// ActiveWatchCount returns the number of active watches the user holds.
func (p *PgSQL) ActiveWatchCount(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(watchesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_active").IsTrue(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user watches in pg: %w", err)
	}

	return count, nil
}

// ActiveWatches returns every active watch ordered stalest-first: watches
// never checked come before all others, then by last check time ascending.
func (p *PgSQL) ActiveWatches(ctx context.Context) ([]domain.Watch, error) {
	var rows []PgWatch
	if err := p.Builder.From(watchesTable).
		Where(goqu.I("is_active").IsTrue()).
		Order(
			goqu.I("last_checked").Asc().NullsFirst(),
			goqu.I("created_at").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active watches from pg: %w", err)
	}

	return pgWatchesToDomain(rows), nil
}

// RecordWatchResult persists the timestamp and breach total of a completed
// check.
func (p *PgSQL) RecordWatchResult(ctx context.Context,
	id domain.WatchID,
	checkedAt time.Time,
	breachCount int) error {
	_, err := p.Builder.Update(watchesTable).
		Set(goqu.Record{
			"last_checked":      checkedAt,
			"last_breach_count": breachCount,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not record watch result in pg: %w", err)
	}

	return nil
}
