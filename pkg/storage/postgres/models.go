package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"leakwatch/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	ChatID int64     `db:"chat_id"`

	Plan          string       `db:"plan"`
	PlanExpiresAt sql.NullTime `db:"plan_expires_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:            domain.UserID(p.ID),
		ChatID:        p.ChatID,
		Plan:          domain.Plan(p.Plan),
		PlanExpiresAt: p.PlanExpiresAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

type PgWatch struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Value    string `db:"value"`
	IsActive bool   `db:"is_active"`

	LastChecked     sql.NullTime  `db:"last_checked"      goqu:"skipinsert"`
	LastBreachCount sql.NullInt64 `db:"last_breach_count" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgWatch) ToDomain() *domain.Watch {
	return &domain.Watch{
		ID:              domain.WatchID(p.ID),
		UserID:          domain.UserID(p.UserID),
		Value:           p.Value,
		Active:          p.IsActive,
		LastChecked:     p.LastChecked.Time,
		LastBreachCount: int(p.LastBreachCount.Int64),
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgWatch) FromDomain(watch domain.Watch) {
	*p = PgWatch{
		ID:       uuid.UUID(watch.ID),
		UserID:   uuid.UUID(watch.UserID),
		Value:    watch.Value,
		IsActive: watch.Active,
		LastChecked: sql.NullTime{
			Time:  watch.LastChecked,
			Valid: !watch.LastChecked.IsZero(),
		},
		LastBreachCount: sql.NullInt64{
			Int64: int64(watch.LastBreachCount),
			Valid: !watch.LastChecked.IsZero(),
		},
		CreatedAt: watch.CreatedAt,
	}
}

func pgWatchesToDomain(watches []PgWatch) []domain.Watch {
	out := make([]domain.Watch, 0, len(watches))
	for _, w := range watches {
		out = append(out, *w.ToDomain())
	}

	return out
}

type PgNotification struct {
	UserID      uuid.UUID `db:"user_id"`
	Kind        string    `db:"kind"`
	Fingerprint string    `db:"fingerprint"`
	SentAt      time.Time `db:"sent_at" goqu:"skipinsert"`
}

type PgCheck struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	CheckType  string `db:"check_type"`
	QueryValue string `db:"query_value"`
	QueryHash  string `db:"query_hash"`

	BreachesFound int             `db:"breaches_found"`
	Result        json.RawMessage `db:"result"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCheck) ToDomain() (*domain.CheckRecord, error) {
	rec := &domain.CheckRecord{
		ID:            p.ID,
		UserID:        domain.UserID(p.UserID),
		CheckType:     domain.CheckType(p.CheckType),
		QueryValue:    p.QueryValue,
		QueryHash:     p.QueryHash,
		BreachesFound: p.BreachesFound,
		CreatedAt:     p.CreatedAt,
	}

	if len(p.Result) > 0 && string(p.Result) != "null" {
		var result domain.AggregatedResult
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal check result: %w", err)
		}

		rec.Result = &result
	}

	return rec, nil
}

func (p *PgCheck) FromDomain(rec domain.CheckRecord) error {
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("could not marshal check result: %w", err)
	}

	*p = PgCheck{
		ID:            rec.ID,
		UserID:        uuid.UUID(rec.UserID),
		CheckType:     string(rec.CheckType),
		QueryValue:    rec.QueryValue,
		QueryHash:     rec.QueryHash,
		BreachesFound: rec.BreachesFound,
		Result:        result,
		CreatedAt:     rec.CreatedAt,
	}

	return nil
}

func pgChecksToDomain(checks []PgCheck) ([]domain.CheckRecord, error) {
	out := make([]domain.CheckRecord, 0, len(checks))
	for _, c := range checks {
		d, err := c.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgAlert struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	AlertType    string         `db:"alert_type"`
	Source       string         `db:"source"`
	MatchedValue string         `db:"matched_value"`
	Severity     string         `db:"severity"`
	Context      sql.NullString `db:"context"`

	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAlert) ToDomain() *domain.DarkWebAlert {
	return &domain.DarkWebAlert{
		ID:           domain.AlertID(p.ID),
		UserID:       domain.UserID(p.UserID),
		AlertType:    p.AlertType,
		Source:       p.Source,
		MatchedValue: p.MatchedValue,
		Severity:     domain.Severity(p.Severity),
		Context:      p.Context.String,
		Read:         p.IsRead,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgAlert) FromDomain(alert domain.DarkWebAlert) {
	*p = PgAlert{
		ID:           uuid.UUID(alert.ID),
		UserID:       uuid.UUID(alert.UserID),
		AlertType:    alert.AlertType,
		Source:       alert.Source,
		MatchedValue: alert.MatchedValue,
		Severity:     string(alert.Severity),
		Context: sql.NullString{
			String: alert.Context,
			Valid:  alert.Context != "",
		},
		IsRead:    alert.Read,
		CreatedAt: alert.CreatedAt,
	}
}

func pgAlertsToDomain(alerts []PgAlert) []domain.DarkWebAlert {
	out := make([]domain.DarkWebAlert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, *a.ToDomain())
	}

	return out
}
