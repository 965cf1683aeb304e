// Package darkweb scans underground sources for exposed identifiers. The
// current implementation combines the real paste index with a domain-risk
// heuristic; dedicated dark-web intelligence APIs can be slotted in behind
// the same interface.
package darkweb

import (
	"context"

	"leakwatch/pkg/domain"
)

//go:generate mockgen -package mockdarkweb -source=interface.go -destination=mock/mockdarkweb.go *
type Scanner interface {
	// Scan looks the identifier up across the configured sources. Source
	// failures degrade the result (error field set, findings possibly
	// partial); they are never returned as an error.
	Scan(ctx context.Context, value string, queryType domain.QueryType) domain.DarkWebResult
}
