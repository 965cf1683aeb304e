// Package password analyzes password strength and checks compromise status
// through a privacy-preserving k-anonymity range lookup. The raw password is
// never persisted, logged, or transmitted.
package password

import (
	"context"

	"leakwatch/pkg/domain"
)

//go:generate mockgen -package mockpassword -source=interface.go -destination=mock/mockpassword.go *
type Assessor interface {
	// Assess analyzes the password's composition, entropy and pattern risk,
	// merges in the compromise lookup, and returns the assessment. A failed
	// range lookup leaves CompromiseChecked false instead of erroring.
	Assess(ctx context.Context, password string) (*domain.PasswordAssessment, error)
}
