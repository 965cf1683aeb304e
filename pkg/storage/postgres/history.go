package postgres

import (
	"context"
	"fmt"

	"leakwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const checkHistoryTable = "check_history"

// StoreCheck appends a history entry and returns the stored row.
func (p *PgSQL) StoreCheck(ctx context.Context, record domain.CheckRecord) (*domain.CheckRecord, error) {
	var pgCheck PgCheck
	if err := pgCheck.FromDomain(record); err != nil {
		return nil, err
	}

	var row PgCheck
	found, err := p.Builder.Insert(checkHistoryTable).
		Rows(pgCheck).
		Returning(&PgCheck{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store check into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserChecks returns the user's most recent history entries, newest first.
func (p *PgSQL) UserChecks(ctx context.Context,
	userID domain.UserID,
	limit uint) ([]domain.CheckRecord, error) {
	var rows []PgCheck
	if err := p.Builder.From(checkHistoryTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user checks from pg: %w", err)
	}

	return pgChecksToDomain(rows)
}
