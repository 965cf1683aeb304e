// Package breachsource defines the abstraction over remote breach-index
// providers: query by identifier, get raw breach records back.
package breachsource

import (
	"context"

	"leakwatch/pkg/domain"
)

// Source is the abstraction for remote breach indexes. Implementations look
// up identifiers and return raw, unclassified breach records.
//
//go:generate mockgen -package mockbreachsource -source=interface.go -destination=mock/mockbreachsource.go *
type Source interface {
	// Lookup returns the breach records the provider knows for the given
	// identifier. A clean identifier yields an empty slice and nil error.
	// Transport failures, rate limiting and credential problems are returned
	// as semantic errors; callers recover them into degraded results.
	Lookup(ctx context.Context, identifier string) ([]domain.BreachRecord, error)

	// PasteCount returns how many paste-site appearances the provider knows
	// for the identifier. Lookup failures resolve to zero, never an error;
	// paste data is advisory.
	PasteCount(ctx context.Context, identifier string) int
}
