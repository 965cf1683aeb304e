package domain

// StrengthTier buckets a password score into a user-facing rating.
type StrengthTier string

const (
	StrengthTerrible  StrengthTier = "terrible"
	StrengthWeak      StrengthTier = "weak"
	StrengthFair      StrengthTier = "fair"
	StrengthStrong    StrengthTier = "strong"
	StrengthExcellent StrengthTier = "excellent"
)

// PasswordAssessment is the outcome of analyzing one password. It never
// contains the password itself. Created per call, never persisted.
type PasswordAssessment struct {
	// Length is the rune count of the password.
	Length int `json:"length"`

	// Character-class composition flags.
	HasUpper   bool `json:"hasUpper"`
	HasLower   bool `json:"hasLower"`
	HasDigits  bool `json:"hasDigits"`
	HasSpecial bool `json:"hasSpecial"`
	HasUnicode bool `json:"hasUnicode"`

	// PatternRisk reports whether the password matches a curated common
	// password, a keyboard sequence, or a weak structural pattern.
	PatternRisk bool `json:"patternRisk"`

	// EntropyBits is the estimated entropy, rounded to one decimal.
	EntropyBits float64 `json:"entropyBits"`
	// CrackTimeDisplay is a human-readable offline crack-time estimate.
	CrackTimeDisplay string `json:"crackTimeDisplay"`

	// CompromiseCount is how many times the password was observed in known
	// breach corpuses. Zero means not observed (or lookup unavailable, see
	// CompromiseChecked).
	CompromiseCount int `json:"compromiseCount"`
	// CompromiseChecked is false when the range lookup failed and the
	// compromise state is unknown.
	CompromiseChecked bool `json:"compromiseChecked"`

	// Score is the aggregate strength score, clamped to [0,100].
	Score int `json:"score"`
	// Tier buckets Score into a rating.
	Tier StrengthTier `json:"tier"`

	// Warnings and Suggestions are ordered, user-facing feedback lines.
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// IsCompromised reports whether the password was found in known breaches.
func (a PasswordAssessment) IsCompromised() bool { return a.CompromiseCount > 0 }
