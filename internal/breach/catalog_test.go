package breach_test

import (
	"testing"

	"leakwatch/internal/breach"
	"leakwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestCatalog_Match(t *testing.T) {
	catalog := breach.DefaultCatalog()

	cases := []struct {
		name       string
		identifier string
		want       []string
	}{
		{
			name:       "exact domain match",
			identifier: "user@mail.ru",
			want:       []string{"MailRu2014"},
		},
		{
			name:       "subdomain matches parent",
			identifier: "user@corp.mail.ru",
			want:       []string{"MailRu2014"},
		},
		{
			name:       "case insensitive",
			identifier: "User@MAIL.RU",
			want:       []string{"MailRu2014"},
		},
		{
			name:       "unrelated domain",
			identifier: "user@example.com",
			want:       nil,
		},
		{
			name:       "no suffix confusion with lookalike domain",
			identifier: "user@notmail.ru",
			want:       nil,
		},
		{
			name:       "no domain portion",
			identifier: "plain-username",
			want:       nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matches := catalog.Match(tc.identifier)
			var names []string
			for _, m := range matches {
				names = append(names, m.Name)
			}

			require.Equal(t, tc.want, names)
		})
	}
}

func TestThresholds_Classify(t *testing.T) {
	thresholds := breach.DefaultThresholds()

	cases := []struct {
		name   string
		record domain.BreachRecord
		want   domain.Severity
	}{
		{
			name:   "financial data is always critical",
			record: domain.BreachRecord{PwnCount: 100, DataClasses: []string{"Credit cards"}},
			want:   domain.SeverityCritical,
		},
		{
			name:   "passwords over a million accounts is critical",
			record: domain.BreachRecord{PwnCount: 4_660_000, DataClasses: []string{"Passwords"}},
			want:   domain.SeverityCritical,
		},
		{
			name:   "passwords alone is high",
			record: domain.BreachRecord{PwnCount: 500, DataClasses: []string{"Passwords"}},
			want:   domain.SeverityHigh,
		},
		{
			name:   "very large population is high",
			record: domain.BreachRecord{PwnCount: 20_000_000, DataClasses: []string{"Email addresses"}},
			want:   domain.SeverityHigh,
		},
		{
			name:   "large population is medium",
			record: domain.BreachRecord{PwnCount: 200_000, DataClasses: []string{"Email addresses"}},
			want:   domain.SeverityMedium,
		},
		{
			name:   "small breach is low",
			record: domain.BreachRecord{PwnCount: 5_000, DataClasses: []string{"Email addresses"}},
			want:   domain.SeverityLow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, thresholds.Classify(tc.record))
		})
	}
}
