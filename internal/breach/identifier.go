package breach

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[78]?\d{10}$`)
	phoneNoise   = regexp.MustCompile(`[\s\-()+]`)
)

// NormalizeIdentifier validates an identifier against its declared type and
// returns the canonical form used for lookups and hashing. Emails are
// lower-cased, phones are normalized to +7XXXXXXXXXX, usernames are
// lower-cased and trimmed. Malformed input is rejected before any external
// call is made.
func NormalizeIdentifier(value string, queryType domain.QueryType) (string, error) {
	value = strings.TrimSpace(value)

	switch queryType {
	case domain.QueryTypeEmail:
		if !emailPattern.MatchString(value) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid email address")
		}

		return strings.ToLower(value), nil
	case domain.QueryTypePhone:
		cleaned := phoneNoise.ReplaceAllString(value, "")
		if !phonePattern.MatchString(cleaned) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid phone number")
		}

		return normalizePhone(cleaned), nil
	case domain.QueryTypeUsername:
		if value == "" || strings.ContainsAny(value, " \t@") {
			return "", serrors.With(serrors.ErrBadRequest, "invalid username")
		}

		return strings.ToLower(value), nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unsupported query type %q", queryType)
	}
}

// normalizePhone converts a digits-only local phone to E.164 form. A leading
// 8 in an 11-digit number is the domestic trunk prefix and becomes 7.
func normalizePhone(cleaned string) string {
	if strings.HasPrefix(cleaned, "8") && len(cleaned) == 11 {
		cleaned = "7" + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "7") {
		cleaned = "7" + cleaned
	}

	return "+" + cleaned
}

// Mask obscures an identifier for display and persistence so that history
// rows and alerts never retain the raw value.
func Mask(value string, queryType domain.QueryType) string {
	if queryType == domain.QueryTypeEmail {
		if name, host, ok := strings.Cut(value, "@"); ok && name != "" {
			if len(name) <= 2 {
				return name[:1] + "***@" + host
			}

			return name[:1] + "***" + name[len(name)-1:] + "@" + host
		}
	}
	if queryType == domain.QueryTypePhone && len(value) > 4 {
		return value[:4] + "****" + value[len(value)-2:]
	}
	if len(value) < 2 {
		return "***"
	}

	return value[:2] + "***"
}

// HashIdentifier returns the hex SHA-256 of the canonical identifier. It is
// stored alongside masked values to match repeated checks without keeping
// the raw identifier.
func HashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))

	return hex.EncodeToString(sum[:])
}
