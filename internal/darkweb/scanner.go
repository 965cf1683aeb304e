package darkweb

import (
	"context"
	"fmt"
	"strings"

	"leakwatch/internal/breach"
	"leakwatch/pkg/breachsource"
	"leakwatch/pkg/domain"
)

// highRiskDomains are mail providers whose user bases appear in aggregated
// credential dumps often enough that their presence alone is a finding.
var highRiskDomains = map[string]struct{}{
	"mail.ru":    {},
	"yandex.ru":  {},
	"rambler.ru": {},
	"bk.ru":      {},
	"list.ru":    {},
	"inbox.ru":   {},
}

// Service is the concrete implementation of the Scanner interface.
type Service struct {
	source breachsource.Source
}

// NewService constructs a Service over the given breach source, which
// provides the paste index.
func NewService(source breachsource.Source) *Service {
	return &Service{source: source}
}

// Scan checks the paste index and the domain-risk heuristic. Findings carry
// only the masked identifier. Finding dates are left empty so the same
// exposure always produces the same finding, which keeps downstream
// notification fingerprints stable.
func (s *Service) Scan(ctx context.Context, value string, queryType domain.QueryType) domain.DarkWebResult {
	result := domain.DarkWebResult{
		Query:     value,
		QueryType: queryType,
	}
	masked := breach.Mask(value, queryType)

	if queryType == domain.QueryTypeEmail {
		if count := s.source.PasteCount(ctx, value); count > 0 {
			result.Findings = append(result.Findings, domain.DarkWebFinding{
				Source:       "paste",
				SourceName:   "Public paste sites",
				DataType:     "credentials",
				MatchedValue: masked,
				Context:      fmt.Sprintf("identifier found in %d public pastes", count),
				Severity:     domain.SeverityHigh,
			})
		}

		if _, risky := highRiskDomains[domainOf(value)]; risky {
			result.Findings = append(result.Findings, domain.DarkWebFinding{
				Source:       "database",
				SourceName:   "Leak aggregators",
				DataType:     "credentials",
				MatchedValue: masked,
				Context:      "identifier's provider appears in aggregated credential dumps traded on underground markets",
				Severity:     domain.SeverityMedium,
			})
		}
	}

	return result
}

func domainOf(value string) string {
	lowered := strings.ToLower(value)
	at := strings.LastIndex(lowered, "@")
	if at < 0 {
		return ""
	}

	return lowered[at+1:]
}

// Ensure Service conforms to the Scanner interface at compile time.
var _ Scanner = (*Service)(nil)
