package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"leakwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const usersTable = "users"

// UpsertUser inserts a user row for the chat ID if none exists, returning
// the row either way. The insert is a no-op upsert so concurrent first
// contacts from the same chat resolve to a single row.
func (p *PgSQL) UpsertUser(ctx context.Context, chatID int64) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(PgUser{ChatID: chatID, Plan: string(domain.PlanFree)}).
		OnConflict(goqu.DoNothing()).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user into pg: %w", err)
	}
	if found {
		return row.ToDomain(), nil
	}

	// conflict path: the row already existed, fetch it
	return p.UserByChatID(ctx, chatID)
}

// UserByID fetches a user by internal ID. Returns nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByChatID fetches a user by chat ID. Returns nil when not found.
func (p *PgSQL) UserByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("chat_id").Eq(chatID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by chat id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SetPlan replaces the user's plan and its expiry, returning the updated row.
func (p *PgSQL) SetPlan(ctx context.Context,
	id domain.UserID,
	plan domain.Plan,
	expiresAt time.Time) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"plan": string(plan),
			"plan_expires_at": sql.NullTime{
				Time:  expiresAt,
				Valid: !expiresAt.IsZero(),
			},
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user plan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
