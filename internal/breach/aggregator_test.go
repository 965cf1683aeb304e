package breach_test

import (
	"context"
	"testing"

	"leakwatch/internal/breach"
	mockbreachsource "leakwatch/pkg/breachsource/mock"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/require"
)

func newTestAggregator(t *testing.T) (*gomock.Controller, *mockbreachsource.MockSource, *breach.Aggregator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mockbreachsource.NewMockSource(ctrl)
	agg := breach.New(source, breach.DefaultCatalog(), breach.DefaultThresholds())

	return ctrl, source, agg
}

func TestAggregator_Check_localCatalogOnly(t *testing.T) {
	ctrl, source, agg := newTestAggregator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source.EXPECT().Lookup(ctx, "user@mail.ru").Return(nil, nil)
	source.EXPECT().PasteCount(ctx, "user@mail.ru").Return(0)

	result, err := agg.Check(ctx, "user@mail.ru", domain.QueryTypeEmail)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalBreaches())
	require.True(t, result.IsCompromised())
	require.False(t, result.Degraded())

	// passwords exposed and more than a million accounts affected
	require.Equal(t, "MailRu2014", result.Breaches[0].Name)
	require.Equal(t, domain.SeverityCritical, result.Breaches[0].Severity)
}

func TestAggregator_Check_remoteWinsOnNameCollision(t *testing.T) {
	ctrl, source, agg := newTestAggregator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source.EXPECT().Lookup(ctx, "user@mail.ru").Return([]domain.BreachRecord{
		{
			Name:        "MailRu2014",
			Domain:      "mail.ru",
			PwnCount:    25000000,
			DataClasses: []string{"Email addresses", "Passwords"},
			Verified:    true,
		},
	}, nil)
	source.EXPECT().PasteCount(ctx, "user@mail.ru").Return(2)

	result, err := agg.Check(ctx, "user@mail.ru", domain.QueryTypeEmail)
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalBreaches())
	// the remote version of the record won the merge
	require.Equal(t, int64(25000000), result.Breaches[0].PwnCount)
	require.Equal(t, 2, result.PasteCount)
}

func TestAggregator_Check_degradedOnRemoteFailure(t *testing.T) {
	ctrl, source, agg := newTestAggregator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source.EXPECT().Lookup(ctx, "user@mail.ru").
		Return(nil, serrors.With(serrors.ErrUnavailable, "connection refused"))
	// no PasteCount call on a degraded check

	result, err := agg.Check(ctx, "user@mail.ru", domain.QueryTypeEmail)
	require.NoError(t, err)
	require.True(t, result.Degraded())
	// local catalog matches still merge into a degraded result
	require.Equal(t, 1, result.TotalBreaches())
	require.Zero(t, result.PasteCount)
}

func TestAggregator_Check_sortedBySeverity(t *testing.T) {
	ctrl, source, agg := newTestAggregator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source.EXPECT().Lookup(ctx, "user@example.com").Return([]domain.BreachRecord{
		{Name: "SmallForum", PwnCount: 50_000, DataClasses: []string{"Email addresses"}},
		{Name: "CardLeak", PwnCount: 10_000, DataClasses: []string{"Credit cards"}},
		{Name: "BigDirectory", PwnCount: 20_000_000, DataClasses: []string{"Email addresses"}},
		{Name: "PasswordDump", PwnCount: 200_000, DataClasses: []string{"Passwords"}},
	}, nil)
	source.EXPECT().PasteCount(ctx, "user@example.com").Return(0)

	result, err := agg.Check(ctx, "user@example.com", domain.QueryTypeEmail)
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalBreaches())

	for i := 1; i < len(result.Breaches); i++ {
		require.LessOrEqual(t,
			result.Breaches[i-1].Severity.Rank(),
			result.Breaches[i].Severity.Rank())
	}
	require.Equal(t, "CardLeak", result.Breaches[0].Name)
	require.Equal(t, "SmallForum", result.Breaches[3].Name)
}

func TestAggregator_Check_rejectsInvalidInput(t *testing.T) {
	ctrl, _, agg := newTestAggregator(t)
	defer ctrl.Finish()

	// no source expectations: validation fails before any external call
	_, err := agg.Check(context.Background(), "not-an-email", domain.QueryTypeEmail)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAggregator_Check_normalizesPhone(t *testing.T) {
	ctrl, source, agg := newTestAggregator(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source.EXPECT().Lookup(ctx, "+79261234567").Return(nil, nil)

	result, err := agg.Check(ctx, "8 (926) 123-45-67", domain.QueryTypePhone)
	require.NoError(t, err)
	require.Equal(t, "+79261234567", result.Query)
	require.False(t, result.IsCompromised())
}
