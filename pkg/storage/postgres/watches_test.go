package postgres_test

import (
	"context"
	"testing"
	"time"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, pg *postgres.PgSQL, chatID int64) *domain.User {
	t.Helper()

	user, err := pg.UpsertUser(context.Background(), chatID)
	require.NoError(t, err)
	require.NotNil(t, user)

	return user
}

func TestPgSQL_StoreWatch_andReactivate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 1001)

	watch, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID,
		Value:  "victim@example.com",
		Active: true,
	})
	require.NoError(t, err)
	require.NotNil(t, watch)
	require.True(t, watch.Active)
	require.True(t, watch.LastChecked.IsZero())

	// removing then re-adding the same value must reuse the row and keep
	// its check state
	require.NoError(t, pg.RecordWatchResult(ctx, watch.ID, time.Now().UTC(), 3))

	removed, err := pg.DeactivateWatch(ctx, user.ID, watch.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	require.False(t, removed.Active)

	again, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID,
		Value:  "victim@example.com",
		Active: true,
	})
	require.NoError(t, err)
	require.NotNil(t, again)
	require.Equal(t, watch.ID, again.ID)
	require.True(t, again.Active)
	require.Equal(t, 3, again.LastBreachCount)
}

func TestPgSQL_StoreWatch_duplicateActive(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 1006)

	watch, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID,
		Value:  "victim@example.com",
		Active: true,
	})
	require.NoError(t, err)
	require.NotNil(t, watch)

	dup, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID,
		Value:  "victim@example.com",
		Active: true,
	})
	require.NoError(t, err)
	require.Nil(t, dup)
}

func TestPgSQL_DeactivateWatch_wrongUser(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestUser(t, pg, 1002)
	other := createTestUser(t, pg, 1003)

	watch, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: owner.ID,
		Value:  "victim@example.com",
		Active: true,
	})
	require.NoError(t, err)

	removed, err := pg.DeactivateWatch(ctx, other.ID, watch.ID)
	require.NoError(t, err)
	require.Nil(t, removed)
}

func TestPgSQL_ActiveWatches_stalestFirst(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 1004)

	checked, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID, Value: "a@example.com", Active: true,
	})
	require.NoError(t, err)
	require.NoError(t, pg.RecordWatchResult(ctx, checked.ID, time.Now().UTC(), 1))

	never, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID, Value: "b@example.com", Active: true,
	})
	require.NoError(t, err)

	inactive, err := pg.StoreWatch(ctx, domain.Watch{
		UserID: user.ID, Value: "c@example.com", Active: true,
	})
	require.NoError(t, err)
	_, err = pg.DeactivateWatch(ctx, user.ID, inactive.ID)
	require.NoError(t, err)

	watches, err := pg.ActiveWatches(ctx)
	require.NoError(t, err)
	require.Len(t, watches, 2)
	// never-checked first, checked last
	require.Equal(t, never.ID, watches[0].ID)
	require.Equal(t, checked.ID, watches[1].ID)
}

func TestPgSQL_ActiveWatchCount(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, 1005)

	count, err := pg.ActiveWatchCount(ctx, user.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = pg.StoreWatch(ctx, domain.Watch{UserID: user.ID, Value: "a@example.com", Active: true})
	require.NoError(t, err)
	_, err = pg.StoreWatch(ctx, domain.Watch{UserID: user.ID, Value: "b@example.com", Active: true})
	require.NoError(t, err)

	count, err = pg.ActiveWatchCount(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
