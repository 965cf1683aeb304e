// Package breach merges breach records from the remote index and the local
// catalog into one ranked, deduplicated result per identifier.
package breach

import (
	"context"

	"leakwatch/pkg/domain"
)

//go:generate mockgen -package mockbreach -source=interface.go -destination=mock/mockbreach.go *
type Checker interface {
	// Check looks the identifier up in all configured sources and returns
	// the merged result. Source failures degrade the result (error field
	// set, remote records missing); they are never returned as an error.
	// Only validation failures surface as errors.
	Check(ctx context.Context, value string, queryType domain.QueryType) (*domain.AggregatedResult, error)
}
