package monitor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/metrics"
	"leakwatch/pkg/serrors"
	"leakwatch/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fingerprint hashes the observed state change into the deterministic key of
// the notification log. Parts are joined with ":" before hashing, so the
// same state always yields the same fingerprint.
func fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))

	return hex.EncodeToString(sum[:])
}

// RunLeakCycle re-checks every active watch, stalest first. Failures of a
// single watch are logged and never abort the cycle; the failed watch keeps
// its previous state and is retried next cycle.
func (s *service) RunLeakCycle(ctx context.Context) error {
	watches, err := s.storage.ActiveWatches(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not fetch active watches")
	}

	logger.Info(ctx, "starting leak cycle", zap.Int("watches", len(watches)))

	for i, watch := range watches {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return err
			}
		}

		if err := s.checkWatch(ctx, watch); err != nil {
			logger.Error(ctx, "watch check failed",
				zap.String("watchId", uuid.UUID(watch.ID).String()),
				zap.Error(err))
		}
	}

	metrics.MonitorCyclesTotal.WithLabelValues("leak").Inc()

	return nil
}

// RunDarkWebCycle scans the watches of dark-web entitled owners. Like the
// leak cycle, per-item failures are logged and skipped.
func (s *service) RunDarkWebCycle(ctx context.Context) error {
	watches, err := s.storage.ActiveWatches(ctx)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not fetch active watches")
	}

	logger.Info(ctx, "starting dark web cycle", zap.Int("watches", len(watches)))

	for i, watch := range watches {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return err
			}
		}

		if err := s.scanWatch(ctx, watch); err != nil {
			logger.Error(ctx, "watch scan failed",
				zap.String("watchId", uuid.UUID(watch.ID).String()),
				zap.Error(err))
		}
	}

	metrics.MonitorCyclesTotal.WithLabelValues("darkweb").Inc()

	return nil
}

// pause waits the configured inter-item delay, keeping upstream request
// rates low. It is skipped before the first item of a cycle.
func (s *service) pause(ctx context.Context) error {
	if s.options.ItemDelay <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.options.ItemDelay):
		return nil
	}
}

func (s *service) checkWatch(ctx context.Context, watch domain.Watch) error {
	user, err := s.storage.UserByID(ctx, watch.UserID)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not fetch watch owner")
	}
	// Lapsed subscriptions keep their watches but stop being checked.
	if user == nil || !user.Entitled(time.Now()) {
		return nil
	}

	checkCtx, cancel := context.WithTimeout(ctx, s.options.CheckTimeout)
	defer cancel()

	result, err := s.checker.Check(checkCtx, watch.Value, domain.QueryTypeEmail)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not check watch")
	}
	if result.Degraded() {
		// Keep the previous state so the next cycle retries from it.
		logger.Warn(ctx, "skipping degraded check result",
			zap.String("watchId", uuid.UUID(watch.ID).String()),
			zap.String("error", result.Err))

		return nil
	}

	newCount := result.TotalBreaches()
	oldCount := watch.LastBreachCount

	if err := s.storage.RecordWatchResult(ctx, watch.ID, time.Now(), newCount); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not record watch result")
	}

	// Only increases alert: an upstream correction that lowers the count
	// must stay silent, but a later rise above the corrected value alerts
	// again because the fingerprint is derived from the new total.
	if newCount <= oldCount {
		return nil
	}

	return s.notifyBreachDelta(ctx, user, watch, result, oldCount)
}

func (s *service) notifyBreachDelta(ctx context.Context,
	user *domain.User,
	watch domain.Watch,
	result *domain.AggregatedResult,
	oldCount int) error {
	fp := fingerprint(watch.Value, strconv.Itoa(result.TotalBreaches()))

	sent, err := s.storage.WasNotified(ctx, user.ID, domain.NotificationBreachDelta, fp)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not consult notification log")
	}
	if sent {
		return nil
	}

	if err := s.notifier.Notify(ctx, user.ChatID, breachDeltaMessage(watch.Value, result, oldCount)); err != nil {
		// The log entry is only appended after delivery, so a failed send
		// never burns the fingerprint.
		return serrors.Wrap(serrors.ErrInternal, err, "could not deliver breach alert")
	}

	if _, err := s.storage.AppendNotification(ctx, domain.NotificationRecord{
		UserID:      user.ID,
		Kind:        domain.NotificationBreachDelta,
		Fingerprint: fp,
		SentAt:      time.Now(),
	}); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not append notification log")
	}

	metrics.NotificationsSentTotal.WithLabelValues(string(domain.NotificationBreachDelta)).Inc()

	return nil
}

func (s *service) scanWatch(ctx context.Context, watch domain.Watch) error {
	user, err := s.storage.UserByID(ctx, watch.UserID)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not fetch watch owner")
	}
	if user == nil || !user.DarkWebEntitled(time.Now()) {
		return nil
	}

	scanCtx, cancel := context.WithTimeout(ctx, s.options.CheckTimeout)
	defer cancel()

	result := s.scanner.Scan(scanCtx, watch.Value, domain.QueryTypeEmail)

	for _, finding := range result.Findings {
		if err := s.handleFinding(ctx, user, watch, finding); err != nil {
			logger.Error(ctx, "could not handle dark web finding",
				zap.String("watchId", uuid.UUID(watch.ID).String()),
				zap.String("source", finding.SourceName),
				zap.Error(err))
		}
	}

	return nil
}

func (s *service) handleFinding(ctx context.Context,
	user *domain.User,
	watch domain.Watch,
	finding domain.DarkWebFinding) error {
	fp := fingerprint(watch.Value, finding.SourceName, finding.FoundDate)

	sent, err := s.storage.WasNotified(ctx, user.ID, domain.NotificationDarkWeb, fp)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not consult notification log")
	}
	if sent {
		return nil
	}

	if err := s.notifier.Notify(ctx, user.ChatID, darkWebMessage(watch.Value, finding)); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not deliver dark web alert")
	}

	// Alert row and log entry land together: a crash between them would
	// otherwise leave an alert the user was never deduplicated against.
	err = s.storage.WithTx(ctx, func(str storage.AllStorage) error {
		if _, err := str.StoreAlert(ctx, domain.DarkWebAlert{
			UserID:       user.ID,
			AlertType:    finding.DataType,
			Source:       finding.SourceName,
			MatchedValue: finding.MatchedValue,
			Severity:     finding.Severity,
			Context:      finding.Context,
		}); err != nil {
			return fmt.Errorf("could not store alert: %w", err)
		}

		if _, err := str.AppendNotification(ctx, domain.NotificationRecord{
			UserID:      user.ID,
			Kind:        domain.NotificationDarkWeb,
			Fingerprint: fp,
			SentAt:      time.Now(),
		}); err != nil {
			return fmt.Errorf("could not append notification log: %w", err)
		}

		return nil
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not persist dark web alert")
	}

	metrics.NotificationsSentTotal.WithLabelValues(string(domain.NotificationDarkWeb)).Inc()

	return nil
}
