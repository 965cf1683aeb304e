package breach

import (
	"leakwatch/internal/config"
	"leakwatch/pkg/domain"
)

// criticalDataClasses expose financial instruments or government identity
// documents; their presence alone makes a breach critical.
var criticalDataClasses = []string{
	"Credit cards",
	"Bank account numbers",
	"Passport numbers",
	"Government issued IDs",
	"Social security numbers",
}

// highDataClasses expose authentication material.
var highDataClasses = []string{
	"Passwords",
	"Auth tokens",
	"Security questions and answers",
}

// Thresholds are the pwn-count boundaries used by the classifier. They are
// product heuristics, not correctness constants, and therefore configurable.
type Thresholds struct {
	// CriticalPwnCount upgrades a credential-exposing breach to critical.
	CriticalPwnCount int64
	// HighPwnCount makes any breach at least high.
	HighPwnCount int64
	// MediumPwnCount makes any breach at least medium.
	MediumPwnCount int64
}

// DefaultThresholds returns the production classification boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalPwnCount: 1_000_000,
		HighPwnCount:     10_000_000,
		MediumPwnCount:   100_000,
	}
}

// NewThresholds constructs Thresholds from the provided application config.
func NewThresholds(cfg *config.Config) Thresholds {
	return Thresholds{
		CriticalPwnCount: cfg.Severity.CriticalPwnCount,
		HighPwnCount:     cfg.Severity.HighPwnCount,
		MediumPwnCount:   cfg.Severity.MediumPwnCount,
	}
}

// Classify assigns a severity tier to the breach based on what data classes
// it exposed and how many accounts were affected.
func (t Thresholds) Classify(record domain.BreachRecord) domain.Severity {
	hasCritical := hasAnyClass(record, criticalDataClasses)
	hasHigh := hasAnyClass(record, highDataClasses)

	switch {
	case hasCritical:
		return domain.SeverityCritical
	case hasHigh && record.PwnCount > t.CriticalPwnCount:
		return domain.SeverityCritical
	case hasHigh:
		return domain.SeverityHigh
	case record.PwnCount > t.HighPwnCount:
		return domain.SeverityHigh
	case record.PwnCount > t.MediumPwnCount:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func hasAnyClass(record domain.BreachRecord, classes []string) bool {
	for _, c := range classes {
		if record.HasDataClass(c) {
			return true
		}
	}

	return false
}
