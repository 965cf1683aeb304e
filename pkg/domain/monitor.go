package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchID uniquely identifies a watched identifier.
type WatchID uuid.UUID

// Watch is an identifier registered for recurring breach re-checking.
// It is created on monitor-add, mutated only by the monitoring scheduler,
// and soft-deleted (Active=false) on removal.
type Watch struct {
	// ID is the unique identifier of the watch.
	ID WatchID `json:"id"`
	// UserID is the owner of the watch.
	UserID UserID `json:"userId"`

	// Value is the watched identifier (an email address).
	Value string `json:"value"`
	// Active is false once the watch has been removed.
	Active bool `json:"active"`

	// LastChecked is when the scheduler last completed a check for this
	// watch. Zero means never checked.
	LastChecked time.Time `json:"lastChecked,omitempty"`
	// LastBreachCount is the breach total observed at the last completed
	// check. It is not monotone: an upstream correction may lower it, and a
	// later increase must still trigger a notification.
	LastBreachCount int `json:"lastBreachCount"`

	// CreatedAt is when the watch was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationKind namespaces notification fingerprints. The two kinds use
// independent fingerprint spaces.
type NotificationKind string

const (
	// NotificationBreachDelta is sent when a watch's breach total increases.
	NotificationBreachDelta NotificationKind = "breach_delta"
	// NotificationDarkWeb is sent when a dark-web scan produces a new finding.
	NotificationDarkWeb NotificationKind = "darkweb"
)

// NotificationRecord is an append-only log entry proving an alert was sent.
// Existence of a matching (UserID, Kind, Fingerprint) row is the sole
// deduplication gate; no two rows may share that triple.
type NotificationRecord struct {
	UserID UserID `json:"userId"`
	// Kind is the fingerprint namespace.
	Kind NotificationKind `json:"kind"`
	// Fingerprint is the deterministic hash of the observed state change.
	Fingerprint string `json:"fingerprint"`
	// SentAt is when the alert was delivered.
	SentAt time.Time `json:"sentAt"`
}

// AlertID uniquely identifies a stored dark-web alert.
type AlertID uuid.UUID

// DarkWebFinding is one hit produced by the dark-web scanning collaborator.
type DarkWebFinding struct {
	// Source is the category of the place the data was found
	// (forum, marketplace, paste, database).
	Source string `json:"source"`
	// SourceName is the display name of the concrete source.
	SourceName string `json:"sourceName"`
	// DataType describes what was exposed (credentials, database, personal_info).
	DataType string `json:"dataType"`
	// MatchedValue is the masked identifier that matched.
	MatchedValue string `json:"matchedValue"`
	// Context is a human-readable description of the finding.
	Context string `json:"context,omitempty"`
	// Severity is the danger tier of the finding.
	Severity Severity `json:"severity"`
	// FoundDate is the upstream-reported date (YYYY-MM-DD).
	FoundDate string `json:"foundDate,omitempty"`
}

// DarkWebResult is the outcome of scanning one identifier.
type DarkWebResult struct {
	Query     string           `json:"query"`
	QueryType QueryType        `json:"queryType"`
	Findings  []DarkWebFinding `json:"findings"`
	// Err carries a scan failure description; findings may be partial.
	Err string `json:"error,omitempty"`
}

// HasFindings reports whether the scan produced any hits.
func (r DarkWebResult) HasFindings() bool { return len(r.Findings) > 0 }

// MaxSeverity returns the most dangerous severity among the findings, or
// the empty string when there are none.
func (r DarkWebResult) MaxSeverity() Severity {
	var max Severity
	for _, f := range r.Findings {
		if max == "" || f.Severity.Rank() < max.Rank() {
			max = f.Severity
		}
	}

	return max
}

// DarkWebAlert is a persisted dark-web finding attached to a user.
type DarkWebAlert struct {
	ID     AlertID `json:"id"`
	UserID UserID  `json:"userId"`

	AlertType    string   `json:"alertType"`
	Source       string   `json:"source"`
	MatchedValue string   `json:"matchedValue"`
	Severity     Severity `json:"severity"`
	Context      string   `json:"context,omitempty"`

	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckType identifies what kind of value a history entry was recorded for.
type CheckType string

const (
	CheckTypeEmail    CheckType = "email"
	CheckTypePhone    CheckType = "phone"
	CheckTypeUsername CheckType = "username"
	CheckTypePassword CheckType = "password"
)

// CheckRecord is one entry of a user's check history. QueryValue is stored
// masked; QueryHash allows matching repeated checks without retaining the
// raw identifier.
type CheckRecord struct {
	ID     uuid.UUID `json:"id"`
	UserID UserID    `json:"userId"`

	CheckType  CheckType `json:"checkType"`
	QueryValue string    `json:"queryValue"`
	QueryHash  string    `json:"queryHash"`

	BreachesFound int `json:"breachesFound"`
	// Result is the serialized AggregatedResult of the check, when any.
	Result *AggregatedResult `json:"result,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
