package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// Plan is the subscription tier of a user.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPremium  Plan = "premium"
	PlanBusiness Plan = "business"
)

// User is the owner of watched identifiers and the recipient of alerts.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// ChatID is the messaging-surface address alerts are delivered to.
	ChatID int64 `json:"chatId"`
	// Plan is the current subscription tier.
	Plan Plan `json:"plan"`
	// PlanExpiresAt is when the paid plan lapses; zero means no paid plan.
	PlanExpiresAt time.Time `json:"planExpiresAt,omitempty"`

	// CreatedAt is when the user was first seen.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the user row was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entitled reports whether the user holds an unexpired paid plan at the
// given instant. Monitoring requires entitlement.
func (u User) Entitled(now time.Time) bool {
	if u.Plan == PlanFree {
		return false
	}

	return !u.PlanExpiresAt.IsZero() && u.PlanExpiresAt.After(now)
}

// DarkWebEntitled reports whether the user may receive dark-web scan
// results. Both paid tiers qualify.
func (u User) DarkWebEntitled(now time.Time) bool {
	return u.Entitled(now) && (u.Plan == PlanPremium || u.Plan == PlanBusiness)
}
