package monitor_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	mockbreach "leakwatch/internal/breach/mock"
	mockdarkweb "leakwatch/internal/darkweb/mock"
	"leakwatch/internal/monitor"
	"leakwatch/pkg/domain"
	mocknotify "leakwatch/pkg/notify/mock"
	"leakwatch/pkg/serrors"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/require"
)

const testEmail = "victim@example.com"

type testDeps struct {
	storage  *storageStub
	checker  *mockbreach.MockChecker
	scanner  *mockdarkweb.MockScanner
	notifier *mocknotify.MockNotifier
	service  monitor.Service
}

func newTestService(t *testing.T) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		storage:  newStorageStub(),
		checker:  mockbreach.NewMockChecker(ctrl),
		scanner:  mockdarkweb.NewMockScanner(ctrl),
		notifier: mocknotify.NewMockNotifier(ctrl),
	}
	deps.service = monitor.New(deps.storage, deps.checker, deps.scanner, deps.notifier, monitor.Options{
		ItemDelay:    0,
		CheckTimeout: time.Minute,
	})

	return deps
}

func futureExpiry() time.Time { return time.Now().Add(24 * time.Hour) }

// resultWith builds a non-degraded check result carrying n breach records.
func resultWith(n int) *domain.AggregatedResult {
	result := &domain.AggregatedResult{
		Query:     testEmail,
		QueryType: domain.QueryTypeEmail,
		CheckedAt: time.Now(),
	}
	for i := 0; i < n; i++ {
		result.Breaches = append(result.Breaches, domain.BreachRecord{
			Name:        fmt.Sprintf("Breach%d", i),
			Title:       fmt.Sprintf("Breach %d", i),
			BreachDate:  "2024-01-01",
			PwnCount:    1000,
			DataClasses: []string{"Email addresses"},
			Severity:    domain.SeverityLow,
		})
	}

	return result
}

// testFingerprint mirrors the scheduler's fingerprint derivation so tests
// can pre-seed the notification log.
func testFingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))

	return hex.EncodeToString(sum[:])
}

func TestService_AddWatch(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())

	watch, err := deps.service.AddWatch(ctx, user.ID, " Victim@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, testEmail, watch.Value)
	require.True(t, watch.Active)

	watches, err := deps.service.Watches(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, watches, 1)
}

func TestService_AddWatch_duplicateRejected(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())

	_, err := deps.service.AddWatch(ctx, user.ID, testEmail)
	require.NoError(t, err)

	_, err = deps.service.AddWatch(ctx, user.ID, testEmail)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_AddWatch_reactivationKeepsState(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	old := deps.storage.addWatch(user.ID, testEmail, 3)

	require.NoError(t, deps.service.RemoveWatch(ctx, user.ID, old.ID))

	watch, err := deps.service.AddWatch(ctx, user.ID, testEmail)
	require.NoError(t, err)
	require.True(t, watch.Active)
	require.Equal(t, 3, watch.LastBreachCount)
}

func TestService_AddWatch_freePlanRejected(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanFree, time.Time{})

	_, err := deps.service.AddWatch(context.Background(), user.ID, testEmail)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestService_AddWatch_limitReached(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	for i := 0; i < 5; i++ {
		deps.storage.addWatch(user.ID, fmt.Sprintf("user%d@example.com", i), 0)
	}

	_, err := deps.service.AddWatch(context.Background(), user.ID, testEmail)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_AddWatch_invalidEmail(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())

	_, err := deps.service.AddWatch(context.Background(), user.ID, "not an email")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_AddWatch_unknownUser(t *testing.T) {
	deps := newTestService(t)

	_, err := deps.service.AddWatch(context.Background(), domain.UserID{}, testEmail)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_RemoveWatch(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	stranger := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 0)

	require.ErrorIs(t, deps.service.RemoveWatch(ctx, stranger.ID, watch.ID), serrors.ErrNotFound)

	require.NoError(t, deps.service.RemoveWatch(ctx, user.ID, watch.ID))
	require.ErrorIs(t, deps.service.RemoveWatch(ctx, user.ID, watch.ID), serrors.ErrNotFound)
}

func TestService_RunLeakCycle_notifiesOnIncrease(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 2)

	deps.checker.EXPECT().
		Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(resultWith(5), nil)

	var message string
	deps.notifier.EXPECT().
		Notify(gomock.Any(), user.ChatID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, text string) error {
			message = text

			return nil
		})

	require.NoError(t, deps.service.RunLeakCycle(ctx))

	updated := deps.storage.watchByID(watch.ID)
	require.Equal(t, 5, updated.LastBreachCount)
	require.False(t, updated.LastChecked.IsZero())
	require.Equal(t, 1, deps.storage.notificationCount())

	// The raw identifier must never appear in the alert.
	require.NotContains(t, message, testEmail)
	require.Contains(t, message, "v***m@example.com")
	require.Contains(t, message, "<b>5</b>")
}

func TestService_RunLeakCycle_unchangedStaysSilent(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 2)

	deps.checker.EXPECT().
		Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(resultWith(2), nil)

	require.NoError(t, deps.service.RunLeakCycle(context.Background()))

	updated := deps.storage.watchByID(watch.ID)
	require.False(t, updated.LastChecked.IsZero())
	require.Zero(t, deps.storage.notificationCount())
}

func TestService_RunLeakCycle_decreaseThenIncreaseAlertsAgain(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 5)

	// An upstream correction lowers the total; the later rise back above the
	// corrected baseline must alert even though 5 was seen before.
	gomock.InOrder(
		deps.checker.EXPECT().
			Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
			Return(resultWith(3), nil),
		deps.checker.EXPECT().
			Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
			Return(resultWith(5), nil),
	)
	deps.notifier.EXPECT().Notify(gomock.Any(), user.ChatID, gomock.Any()).Return(nil)

	require.NoError(t, deps.service.RunLeakCycle(ctx))
	require.Zero(t, deps.storage.notificationCount())
	require.Equal(t, 3, deps.storage.watchByID(watch.ID).LastBreachCount)

	require.NoError(t, deps.service.RunLeakCycle(ctx))
	require.Equal(t, 1, deps.storage.notificationCount())
	require.Equal(t, 5, deps.storage.watchByID(watch.ID).LastBreachCount)
}

func TestService_RunLeakCycle_fingerprintDeduplicates(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 2)

	// The same state change was already notified, e.g. by a previous
	// process before it crashed between logging and persisting the count.
	_, err := deps.storage.AppendNotification(ctx, domain.NotificationRecord{
		UserID:      user.ID,
		Kind:        domain.NotificationBreachDelta,
		Fingerprint: testFingerprint(testEmail, "5"),
		SentAt:      time.Now(),
	})
	require.NoError(t, err)

	deps.checker.EXPECT().
		Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(resultWith(5), nil)

	require.NoError(t, deps.service.RunLeakCycle(ctx))

	require.Equal(t, 1, deps.storage.notificationCount())
	require.Equal(t, 5, deps.storage.watchByID(watch.ID).LastBreachCount)
}

func TestService_RunLeakCycle_degradedKeepsState(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 2)

	degraded := resultWith(1)
	degraded.Err = "breach index unavailable"
	deps.checker.EXPECT().
		Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(degraded, nil)

	require.NoError(t, deps.service.RunLeakCycle(context.Background()))

	updated := deps.storage.watchByID(watch.ID)
	require.True(t, updated.LastChecked.IsZero())
	require.Equal(t, 2, updated.LastBreachCount)
	require.Zero(t, deps.storage.notificationCount())
}

func TestService_RunLeakCycle_sendFailureLeavesNoLogEntry(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	watch := deps.storage.addWatch(user.ID, testEmail, 2)

	deps.checker.EXPECT().
		Check(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(resultWith(5), nil)
	deps.notifier.EXPECT().
		Notify(gomock.Any(), user.ChatID, gomock.Any()).
		Return(serrors.KindOnly(serrors.ErrUnavailable))

	require.NoError(t, deps.service.RunLeakCycle(context.Background()))

	require.Zero(t, deps.storage.notificationCount())
	require.Equal(t, 5, deps.storage.watchByID(watch.ID).LastBreachCount)
}

func TestService_RunLeakCycle_skipsLapsedOwners(t *testing.T) {
	deps := newTestService(t)

	expired := deps.storage.addUser(domain.PlanPremium, time.Now().Add(-time.Hour))
	deps.storage.addWatch(expired.ID, testEmail, 0)

	require.NoError(t, deps.service.RunLeakCycle(context.Background()))
}

func TestService_RunLeakCycle_itemFailureDoesNotAbortCycle(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	deps.storage.addWatch(user.ID, "first@example.com", 0)
	deps.storage.addWatch(user.ID, "second@example.com", 0)

	deps.checker.EXPECT().
		Check(gomock.Any(), "first@example.com", domain.QueryTypeEmail).
		Return(nil, serrors.KindOnly(serrors.ErrInternal))
	deps.checker.EXPECT().
		Check(gomock.Any(), "second@example.com", domain.QueryTypeEmail).
		Return(resultWith(1), nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), user.ChatID, gomock.Any()).Return(nil)

	require.NoError(t, deps.service.RunLeakCycle(context.Background()))
	require.Equal(t, 1, deps.storage.notificationCount())
}

func TestService_RunDarkWebCycle_alertsOncePerFinding(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanPremium, futureExpiry())
	deps.storage.addWatch(user.ID, testEmail, 0)

	finding := domain.DarkWebFinding{
		Source:       "paste",
		SourceName:   "Public paste sites",
		DataType:     "credentials",
		MatchedValue: "v***m@example.com",
		Context:      "identifier found in 3 public pastes",
		Severity:     domain.SeverityHigh,
	}
	deps.scanner.EXPECT().
		Scan(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(domain.DarkWebResult{
			Query:     testEmail,
			QueryType: domain.QueryTypeEmail,
			Findings:  []domain.DarkWebFinding{finding},
		}).
		Times(2)
	deps.notifier.EXPECT().Notify(gomock.Any(), user.ChatID, gomock.Any()).Return(nil)

	// The second cycle sees the identical finding and must stay silent.
	require.NoError(t, deps.service.RunDarkWebCycle(ctx))
	require.NoError(t, deps.service.RunDarkWebCycle(ctx))

	alerts, err := deps.storage.UserAlerts(ctx, user.ID, false, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "Public paste sites", alerts[0].Source)
	require.Equal(t, domain.SeverityHigh, alerts[0].Severity)
	require.Equal(t, 1, deps.storage.notificationCount())
}

func TestService_RunDarkWebCycle_skipsFreeUsers(t *testing.T) {
	deps := newTestService(t)

	user := deps.storage.addUser(domain.PlanFree, time.Time{})
	deps.storage.addWatch(user.ID, testEmail, 0)

	require.NoError(t, deps.service.RunDarkWebCycle(context.Background()))
}

func TestService_RunDarkWebCycle_sendFailureStoresNothing(t *testing.T) {
	deps := newTestService(t)
	ctx := context.Background()

	user := deps.storage.addUser(domain.PlanBusiness, futureExpiry())
	deps.storage.addWatch(user.ID, testEmail, 0)

	deps.scanner.EXPECT().
		Scan(gomock.Any(), testEmail, domain.QueryTypeEmail).
		Return(domain.DarkWebResult{
			Query:     testEmail,
			QueryType: domain.QueryTypeEmail,
			Findings: []domain.DarkWebFinding{{
				Source:     "database",
				SourceName: "Leak aggregators",
				DataType:   "database",
				Severity:   domain.SeverityMedium,
			}},
		})
	deps.notifier.EXPECT().
		Notify(gomock.Any(), user.ChatID, gomock.Any()).
		Return(serrors.KindOnly(serrors.ErrUnavailable))

	require.NoError(t, deps.service.RunDarkWebCycle(ctx))

	alerts, err := deps.storage.UserAlerts(ctx, user.ID, false, 10)
	require.NoError(t, err)
	require.Empty(t, alerts)
	require.Zero(t, deps.storage.notificationCount())
}
