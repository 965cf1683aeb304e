package postgres_test

import (
	"context"
	"testing"

	"leakwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_AppendNotification_idempotent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 2001)

	rec := domain.NotificationRecord{
		UserID:      user.ID,
		Kind:        domain.NotificationBreachDelta,
		Fingerprint: "abc123",
	}

	notified, err := pg.WasNotified(ctx, user.ID, rec.Kind, rec.Fingerprint)
	require.NoError(t, err)
	require.False(t, notified)

	inserted, err := pg.AppendNotification(ctx, rec)
	require.NoError(t, err)
	require.True(t, inserted)

	// second append with the same triple is a silent no-op
	inserted, err = pg.AppendNotification(ctx, rec)
	require.NoError(t, err)
	require.False(t, inserted)

	notified, err = pg.WasNotified(ctx, user.ID, rec.Kind, rec.Fingerprint)
	require.NoError(t, err)
	require.True(t, notified)
}

func TestPgSQL_Notifications_kindsAreIndependent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 2002)

	inserted, err := pg.AppendNotification(ctx, domain.NotificationRecord{
		UserID:      user.ID,
		Kind:        domain.NotificationBreachDelta,
		Fingerprint: "same-fingerprint",
	})
	require.NoError(t, err)
	require.True(t, inserted)

	// same fingerprint under a different kind is a distinct notification
	inserted, err = pg.AppendNotification(ctx, domain.NotificationRecord{
		UserID:      user.ID,
		Kind:        domain.NotificationDarkWeb,
		Fingerprint: "same-fingerprint",
	})
	require.NoError(t, err)
	require.True(t, inserted)
}
