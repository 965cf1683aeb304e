// Package hashrange defines the abstraction for k-anonymity compromised
// password lookups. The caller hashes a password with SHA-1, sends only the
// first five hex characters of the digest, and matches the remaining 35
// characters locally against the returned suffixes.
package hashrange

import "context"

// Entry is a single hash suffix within a prefix range alongside the number
// of times the full hash was observed in known breaches.
type Entry struct {
	Suffix string // Suffix is the upper-cased 35-character SHA-1 hex tail.
	Count  int64  // Count is how many times this hash was seen.
}

// Source serves hash ranges for 5-character SHA-1 prefixes.
//
//go:generate mockgen -package mockhashrange -source=interface.go -destination=mock/mockhashrange.go *
type Source interface {
	// Range returns all known hash suffixes for the given 5-character
	// upper-cased hex prefix.
	Range(ctx context.Context, prefix string) ([]Entry, error)
}
