package breachsource

import (
	"context"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"
)

// Disabled is a Source whose credentials were never configured. Every lookup
// reports the source as unavailable, so checks degrade instead of the
// process refusing to start.
type Disabled struct{}

// Lookup always fails with ErrUnavailable.
func (Disabled) Lookup(_ context.Context, _ string) ([]domain.BreachRecord, error) {
	return nil, serrors.With(serrors.ErrUnavailable, "breach source not configured")
}

// PasteCount always returns zero.
func (Disabled) PasteCount(_ context.Context, _ string) int { return 0 }

var _ Source = Disabled{}
