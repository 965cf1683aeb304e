package monitor

import (
	"fmt"
	"html"
	"strings"

	"leakwatch/internal/breach"
	"leakwatch/pkg/domain"
)

// maxListedBreaches bounds the per-message breach listing; the rest is
// summarized with a counter line.
const maxListedBreaches = 5

var severityIcons = map[domain.Severity]string{ //nolint: gochecknoglobals
	domain.SeverityCritical: "🔴",
	domain.SeverityHigh:     "🟠",
	domain.SeverityMedium:   "🟡",
	domain.SeverityLow:      "🟢",
}

// breachDeltaMessage renders the alert sent when a watch's breach total
// increased. The identifier is masked; message text is Telegram HTML.
func breachDeltaMessage(value string, result *domain.AggregatedResult, oldCount int) string {
	var b strings.Builder

	b.WriteString("🚨 <b>New breach detected!</b>\n\n")
	fmt.Fprintf(&b, "Identifier: <code>%s</code>\n", html.EscapeString(breach.Mask(value, domain.QueryTypeEmail)))
	fmt.Fprintf(&b, "Known breaches: <b>%d</b> (was %d)\n\n", result.TotalBreaches(), oldCount)

	for i, record := range result.Breaches {
		if i == maxListedBreaches {
			fmt.Fprintf(&b, "… and %d more\n", len(result.Breaches)-maxListedBreaches)

			break
		}

		icon := severityIcons[record.Severity]
		fmt.Fprintf(&b, "%s <b>%s</b>", icon, html.EscapeString(record.Title))
		if record.BreachDate != "" {
			fmt.Fprintf(&b, " (%s)", html.EscapeString(record.BreachDate))
		}
		b.WriteString("\n")
	}

	if leaked := result.CriticalDataLeaked(); len(leaked) > 0 {
		fmt.Fprintf(&b, "\n⚠️ Exposed: %s\n", html.EscapeString(strings.Join(leaked, ", ")))
	}

	b.WriteString("\nChange the affected passwords and enable two-factor authentication.")

	return b.String()
}

// darkWebMessage renders the alert sent for one new dark-web finding.
func darkWebMessage(value string, finding domain.DarkWebFinding) string {
	var b strings.Builder

	b.WriteString("🕵️ <b>Dark web alert</b>\n\n")
	fmt.Fprintf(&b, "Identifier: <code>%s</code>\n", html.EscapeString(breach.Mask(value, domain.QueryTypeEmail)))
	fmt.Fprintf(&b, "Source: <b>%s</b>\n", html.EscapeString(finding.SourceName))
	fmt.Fprintf(&b, "Severity: %s %s\n", severityIcons[finding.Severity], finding.Severity)
	if finding.Context != "" {
		fmt.Fprintf(&b, "\n%s\n", html.EscapeString(finding.Context))
	}

	b.WriteString("\nReview where this identifier is used and rotate any shared credentials.")

	return b.String()
}
