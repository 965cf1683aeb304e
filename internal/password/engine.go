package password

import (
	"context"
	"crypto/sha1" //nolint: gosec
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"unicode"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/hashrange"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/metrics"
	"leakwatch/pkg/serrors"

	"go.uber.org/zap"
)

// guessesPerSecond is the assumed offline attack rate (a single modern GPU
// rig against a fast hash) used for crack-time estimates.
const guessesPerSecond = 1e10

const hashPrefixLen = 5

// Engine is the concrete implementation of the Assessor interface. It is
// stateless and safe for concurrent use. Identical input plus an identical
// range answer always produces an identical assessment.
type Engine struct {
	ranges hashrange.Source
}

// NewEngine constructs an Engine over the given hash range source.
func NewEngine(ranges hashrange.Source) *Engine {
	return &Engine{ranges: ranges}
}

// Assess analyzes the password and returns the full assessment.
func (e *Engine) Assess(ctx context.Context, pw string) (*domain.PasswordAssessment, error) {
	if pw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "empty password")
	}

	runes := []rune(pw)

	a := &domain.PasswordAssessment{
		Length: len(runes),
	}
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			a.HasLower = true
		case r >= 'A' && r <= 'Z':
			a.HasUpper = true
		case r >= '0' && r <= '9':
			a.HasDigits = true
		case r < 128 && (unicode.IsPunct(r) || unicode.IsSymbol(r) || r == ' '):
			a.HasSpecial = true
		case r >= 128:
			a.HasUnicode = true
			if unicode.IsUpper(r) {
				a.HasUpper = true
			}
			if unicode.IsLower(r) {
				a.HasLower = true
			}
		}
	}

	a.PatternRisk = hasPatternRisk(pw)
	a.EntropyBits = entropyBits(runes)
	a.CrackTimeDisplay = crackTimeDisplay(a.EntropyBits)
	a.Score = score(runes, a)
	a.Tier = tier(a.Score)
	a.Warnings, a.Suggestions = feedback(runes, a)

	count, err := e.compromiseCount(ctx, pw)
	if err != nil {
		metrics.SourceErrorsTotal.WithLabelValues("hash_range").Inc()
		logger.Warn(ctx, "compromise lookup failed", zap.Error(err))
	} else {
		a.CompromiseChecked = true
		a.CompromiseCount = count
	}

	if a.IsCompromised() {
		a.Warnings = append([]string{
			fmt.Sprintf("This password appeared in %d known breaches, change it everywhere immediately", count),
		}, a.Warnings...)
		a.Score = max(0, a.Score-40)
		if a.Score < 20 {
			a.Tier = domain.StrengthTerrible
		}
	}

	return a, nil
}

// compromiseCount performs the k-anonymity lookup: only the first five hex
// characters of the password's SHA-1 leave the process, and the remaining 35
// are compared locally against the returned range.
func (e *Engine) compromiseCount(ctx context.Context, pw string) (int, error) {
	sum := sha1.Sum([]byte(pw)) //nolint: gosec
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:hashPrefixLen], digest[hashPrefixLen:]

	entries, err := e.ranges.Range(ctx, prefix)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if entry.Suffix == suffix {
			return int(entry.Count), nil
		}
	}

	return 0, nil
}

// entropyBits estimates entropy as length times log2 of the accumulated
// alphabet size, scaled down for repeated characters.
func entropyBits(runes []rune) float64 {
	var hasLower, hasUpper, hasDigit, hasSpecial, hasCyrillic, hasOther bool
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < 128:
			hasSpecial = true
		case isCyrillic(r):
			hasCyrillic = true
		default:
			hasOther = true
		}
	}

	charset := 0
	if hasLower {
		charset += 26
	}
	if hasUpper {
		charset += 26
	}
	if hasDigit {
		charset += 10
	}
	if hasSpecial {
		charset += 32
	}
	if hasCyrillic {
		charset += 66
	}
	if hasOther {
		charset += 100
	}
	if charset == 0 {
		charset = 1
	}

	entropy := float64(len(runes)) * math.Log2(float64(charset))

	uniqueRatio := float64(distinctRunes(runes)) / float64(len(runes))
	entropy *= math.Max(0.5, uniqueRatio)

	return math.Round(entropy*10) / 10
}

func isCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}

// crackTimeDisplay renders 2^entropy guesses at the fixed offline rate into
// a human time bucket.
func crackTimeDisplay(entropyBits float64) string {
	seconds := math.Pow(2, entropyBits) / guessesPerSecond

	const (
		minute = 60
		hour   = 3600
		day    = 86400
		month  = day * 30
		year   = day * 365
	)

	switch {
	case seconds < 0.001:
		return "instant"
	case seconds < 1:
		return fmt.Sprintf("%.0f ms", seconds*1000)
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < month:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < year:
		return fmt.Sprintf("%.0f months", seconds/month)
	case seconds < year*100:
		return fmt.Sprintf("%.0f years", seconds/year)
	case seconds < year*1e6:
		return fmt.Sprintf("%.0f thousand years", seconds/(year*1e3))
	case seconds < year*1e9:
		return fmt.Sprintf("%.0f million years", seconds/(year*1e6))
	default:
		return "astronomically large"
	}
}

// score aggregates the strength signals into a 0-100 value: length tier up
// to 30, character-class diversity up to 31, entropy tier up to 25 and
// uniqueness ratio up to 15, minus penalties for pattern risk and very short
// passwords.
func score(runes []rune, a *domain.PasswordAssessment) int {
	s := 0

	length := len(runes)
	switch {
	case length >= 16:
		s += 30
	case length >= 12:
		s += 25
	case length >= 10:
		s += 20
	case length >= 8:
		s += 15
	case length >= 6:
		s += 10
	default:
		s += 5
	}

	classes := 0
	for _, has := range []bool{a.HasUpper, a.HasLower, a.HasDigits, a.HasSpecial} {
		if has {
			classes++
		}
	}
	s += classes * 7
	if a.HasUnicode {
		s += 3
	}

	switch {
	case a.EntropyBits >= 80:
		s += 25
	case a.EntropyBits >= 60:
		s += 20
	case a.EntropyBits >= 40:
		s += 15
	case a.EntropyBits >= 25:
		s += 10
	default:
		s += 5
	}

	uniqueRatio := float64(distinctRunes(runes)) / float64(length)
	s += int(uniqueRatio * 15)

	if a.PatternRisk {
		s -= 30
	}
	if length < 6 {
		s -= 20
	}

	return max(0, min(100, s))
}

func tier(score int) domain.StrengthTier {
	switch {
	case score < 20:
		return domain.StrengthTerrible
	case score < 40:
		return domain.StrengthWeak
	case score < 60:
		return domain.StrengthFair
	case score < 80:
		return domain.StrengthStrong
	default:
		return domain.StrengthExcellent
	}
}

// feedback produces ordered, user-facing warning and suggestion lines.
func feedback(runes []rune, a *domain.PasswordAssessment) (warnings, suggestions []string) {
	if a.Length < 8 {
		warnings = append(warnings, "Password is too short")
		suggestions = append(suggestions, "Use at least 12 characters")
	}

	if !a.HasUpper {
		suggestions = append(suggestions, "Add uppercase letters (A-Z)")
	}
	if !a.HasLower {
		suggestions = append(suggestions, "Add lowercase letters (a-z)")
	}
	if !a.HasDigits {
		suggestions = append(suggestions, "Add digits (0-9)")
	}
	if !a.HasSpecial {
		suggestions = append(suggestions, "Add special characters (!@#$%^&*)")
	}

	if a.PatternRisk {
		warnings = append(warnings, "Password is based on a well-known pattern")
		suggestions = append(suggestions, "Avoid dictionary words and keyboard sequences")
	}

	if distinctRunes(runes) <= 3 {
		warnings = append(warnings, "Too few distinct characters")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Password looks solid")
	}

	return warnings, suggestions
}

// Ensure Engine conforms to the Assessor interface at compile time.
var _ Assessor = (*Engine)(nil)
