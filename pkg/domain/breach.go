package domain

import (
	"time"
)

// Severity is the ordinal danger classification of a breach.
// It is stored and transmitted as a lowercase string.
type Severity string

const (
	// SeverityCritical marks breaches exposing financial instruments,
	// government IDs, or passwords at very large scale.
	SeverityCritical Severity = "critical"
	// SeverityHigh marks breaches exposing passwords or very large
	// populations of accounts.
	SeverityHigh Severity = "high"
	// SeverityMedium marks breaches with a large affected population but no
	// directly reusable secrets.
	SeverityMedium Severity = "medium"
	// SeverityLow marks everything else.
	SeverityLow Severity = "low"
)

// Rank returns the sort rank of the severity: critical=0 .. low=3.
// Unknown values rank as medium.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 2
	}
}

// QueryType identifies the kind of identifier a check was performed on.
type QueryType string

const (
	QueryTypeEmail    QueryType = "email"
	QueryTypePhone    QueryType = "phone"
	QueryTypeUsername QueryType = "username"
)

// BreachRecord describes one documented incident exposing data categories
// for a population of accounts. Records are immutable once produced; Name is
// the unique key used when merging records from multiple sources.
type BreachRecord struct {
	// Name is the upstream-unique identifier of the incident.
	Name string `json:"name"`
	// Title is the human-readable name of the breached service.
	Title string `json:"title"`
	// Domain is the primary domain of the breached service.
	Domain string `json:"domain,omitempty"`
	// BreachDate is the upstream-reported date of the incident (YYYY-MM-DD).
	BreachDate string `json:"breachDate,omitempty"`
	// AddedDate is when the incident was added to the upstream index.
	AddedDate string `json:"addedDate,omitempty"`
	// PwnCount is the number of affected accounts.
	PwnCount int64 `json:"pwnCount"`
	// Description is free-form upstream text about the incident.
	Description string `json:"description,omitempty"`
	// DataClasses is the set of exposed data categories
	// (e.g. "Email addresses", "Passwords").
	DataClasses []string `json:"dataClasses"`
	// Verified reports whether the incident has been confirmed upstream.
	Verified bool `json:"verified"`
	// Severity is the assigned danger tier. Empty means not yet classified.
	Severity Severity `json:"severity,omitempty"`
}

// HasDataClass reports whether the record exposes the given data category.
func (b BreachRecord) HasDataClass(class string) bool {
	for _, dc := range b.DataClasses {
		if dc == class {
			return true
		}
	}

	return false
}

// AggregatedResult is the outcome of checking one identifier against all
// breach sources. It is created per call and not persisted automatically;
// the same shape round-trips through JSON when a check is stored in history,
// so fresh scans and stored results expose identical accessors.
type AggregatedResult struct {
	// Query is the identifier that was checked.
	Query string `json:"query"`
	// QueryType is the kind of identifier.
	QueryType QueryType `json:"queryType"`
	// Breaches is ordered by ascending severity rank (critical first);
	// ties preserve merge order (remote before local).
	Breaches []BreachRecord `json:"breaches"`
	// PasteCount is the number of paste-site appearances of the identifier.
	PasteCount int `json:"pasteCount"`
	// Err carries a source failure description. A non-empty Err means the
	// check is degraded and must not be presented as "clean".
	Err string `json:"error,omitempty"`
	// CheckedAt is when the check was performed.
	CheckedAt time.Time `json:"checkedAt"`
}

// TotalBreaches returns the number of merged breach records.
func (r AggregatedResult) TotalBreaches() int { return len(r.Breaches) }

// IsCompromised reports whether the identifier appeared in any breach.
func (r AggregatedResult) IsCompromised() bool { return len(r.Breaches) > 0 }

// Degraded reports whether a source failed during the check.
func (r AggregatedResult) Degraded() bool { return r.Err != "" }

// criticalDataClasses is the set of exposed categories considered directly
// abusable.
var criticalDataClasses = map[string]struct{}{ //nolint: gochecknoglobals
	"Passwords":               {},
	"Credit cards":            {},
	"Bank account numbers":    {},
	"Social security numbers": {},
	"Passport numbers":        {},
	"Government issued IDs":   {},
	"Auth tokens":             {},
}

// CriticalDataLeaked returns the distinct critical data categories exposed
// across all breaches of the result, in first-seen order.
func (r AggregatedResult) CriticalDataLeaked() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, b := range r.Breaches {
		for _, dc := range b.DataClasses {
			if _, crit := criticalDataClasses[dc]; !crit {
				continue
			}
			if _, dup := seen[dc]; dup {
				continue
			}
			seen[dc] = struct{}{}
			out = append(out, dc)
		}
	}

	return out
}
