package breach

import (
	"strings"

	"leakwatch/pkg/domain"
)

// Catalog is a curated, in-memory set of large known breaches keyed by the
// breached service's domain. It supplements the remote index with regional
// incidents the index covers poorly, and keeps email checks partially useful
// when the remote source is unavailable. Matching is pure, no I/O.
type Catalog struct {
	// entries keep their construction order so match results are
	// deterministic for a given identifier.
	entries []domain.BreachRecord
}

// NewCatalog builds a catalog from the given records, keyed by their domain.
func NewCatalog(records ...domain.BreachRecord) *Catalog {
	return &Catalog{entries: records}
}

// DefaultCatalog returns the built-in catalog of known large breaches of
// Russian consumer services. Severity is intentionally left unset here and
// assigned by the classifier like for remote records.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		domain.BreachRecord{
			Name:        "MailRu2014",
			Title:       "Mail.ru",
			Domain:      "mail.ru",
			BreachDate:  "2014-09-01",
			PwnCount:    4660000,
			DataClasses: []string{"Email addresses", "Passwords"},
			Description: "Mail.ru account database leaked in 2014",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "Yandex2014",
			Title:       "Yandex",
			Domain:      "yandex.ru",
			BreachDate:  "2014-09-01",
			PwnCount:    1260000,
			DataClasses: []string{"Email addresses", "Passwords"},
			Description: "Yandex account credentials leaked in 2014",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "VK2012",
			Title:       "VKontakte",
			Domain:      "vk.com",
			BreachDate:  "2012-01-01",
			PwnCount:    93388000,
			DataClasses: []string{"Email addresses", "Passwords", "Phone numbers", "Names"},
			Description: "Large-scale VK breach from 2012",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "Rambler2012",
			Title:       "Rambler",
			Domain:      "rambler.ru",
			BreachDate:  "2012-01-01",
			PwnCount:    91000000,
			DataClasses: []string{"Email addresses", "Passwords"},
			Description: "Rambler account database leak",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "CDEK2022",
			Title:       "CDEK",
			Domain:      "cdek.ru",
			BreachDate:  "2022-05-01",
			PwnCount:    19000000,
			DataClasses: []string{"Email addresses", "Phone numbers", "Names", "Physical addresses"},
			Description: "CDEK customer data leak",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "DeliveryClub2022",
			Title:       "Delivery Club",
			Domain:      "delivery-club.ru",
			BreachDate:  "2022-06-01",
			PwnCount:    21000000,
			DataClasses: []string{"Email addresses", "Phone numbers", "Names", "Physical addresses", "Purchases"},
			Description: "Delivery Club order data leak",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "Pikabu2022",
			Title:       "Pikabu",
			Domain:      "pikabu.ru",
			BreachDate:  "2022-07-01",
			PwnCount:    7900000,
			DataClasses: []string{"Email addresses", "Passwords", "Usernames"},
			Description: "Pikabu user database leak",
			Verified:    true,
		},
		domain.BreachRecord{
			Name:        "GeekBrains2022",
			Title:       "GeekBrains",
			Domain:      "geekbrains.ru",
			BreachDate:  "2022-06-01",
			PwnCount:    6000000,
			DataClasses: []string{"Email addresses", "Phone numbers", "Names", "Passwords"},
			Description: "GeekBrains student data leak",
			Verified:    true,
		},
	)
}

// Match returns catalog records whose domain matches the domain portion of
// the identifier, either exactly or as a parent domain (a@corp.mail.ru
// matches mail.ru). Identifiers without a domain portion match nothing.
func (c *Catalog) Match(identifier string) []domain.BreachRecord {
	lowered := strings.ToLower(identifier)
	at := strings.LastIndex(lowered, "@")
	if at < 0 || at == len(lowered)-1 {
		return nil
	}
	identifierDomain := lowered[at+1:]

	var matches []domain.BreachRecord
	for _, record := range c.entries {
		if identifierDomain == record.Domain || strings.HasSuffix(identifierDomain, "."+record.Domain) {
			matches = append(matches, record)
		}
	}

	return matches
}
