package breach

import (
	"context"
	"sort"
	"time"

	"leakwatch/pkg/breachsource"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/metrics"

	"go.uber.org/zap"
)

// Aggregator is the concrete implementation of the Checker interface. It
// queries the remote breach index and the local catalog independently and
// merges their answers. It holds no mutable state and is safe for
// concurrent use.
type Aggregator struct {
	remote     breachsource.Source
	catalog    *Catalog
	thresholds Thresholds
}

// New constructs an Aggregator over the given remote source and catalog.
func New(remote breachsource.Source, catalog *Catalog, thresholds Thresholds) *Aggregator {
	return &Aggregator{
		remote:     remote,
		catalog:    catalog,
		thresholds: thresholds,
	}
}

// Check validates the identifier, looks it up in both sources and returns
// the merged result.
//
// Merge rules: union by record name; when a name exists in both sources the
// remote record wins and local-only records are appended after the remote
// ones. Records arriving without a severity get one assigned by the
// classifier. The final order is ascending severity rank with ties keeping
// merge order, so remote records come before local ones within a tier.
//
// A remote transport failure sets the result's error field and leaves the
// remote leg empty; local matches are still returned. The failure is never
// propagated to the caller.
func (a *Aggregator) Check(ctx context.Context,
	value string,
	queryType domain.QueryType) (*domain.AggregatedResult, error) {
	normalized, err := NormalizeIdentifier(value, queryType)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.CheckDuration.Observe(time.Since(start).Seconds())
	}()

	result := &domain.AggregatedResult{
		Query:     normalized,
		QueryType: queryType,
		CheckedAt: time.Now().UTC(),
	}

	remote, err := a.remote.Lookup(ctx, normalized)
	if err != nil {
		metrics.SourceErrorsTotal.WithLabelValues("remote_index").Inc()
		logger.Warn(ctx, "remote breach lookup failed",
			zap.String("queryType", string(queryType)),
			zap.Error(err))

		result.Err = "breach index unavailable"
	}

	seen := make(map[string]struct{}, len(remote))
	for _, record := range remote {
		seen[record.Name] = struct{}{}
		result.Breaches = append(result.Breaches, a.classified(record))
	}

	for _, record := range a.catalog.Match(normalized) {
		if _, ok := seen[record.Name]; ok {
			continue
		}

		result.Breaches = append(result.Breaches, a.classified(record))
	}

	sort.SliceStable(result.Breaches, func(i, j int) bool {
		return result.Breaches[i].Severity.Rank() < result.Breaches[j].Severity.Rank()
	})

	// pastes are advisory and only meaningful for emails
	if queryType == domain.QueryTypeEmail && result.Err == "" {
		result.PasteCount = a.remote.PasteCount(ctx, normalized)
	}

	outcome := "ok"
	if result.Degraded() {
		outcome = "degraded"
	}
	metrics.ChecksTotal.WithLabelValues(string(queryType), outcome).Inc()

	return result, nil
}

func (a *Aggregator) classified(record domain.BreachRecord) domain.BreachRecord {
	if record.Severity == "" {
		record.Severity = a.thresholds.Classify(record)
	}

	return record
}

// Ensure Aggregator conforms to the Checker interface at compile time.
var _ Checker = (*Aggregator)(nil)
