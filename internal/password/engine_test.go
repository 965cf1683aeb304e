package password_test

import (
	"context"
	"testing"

	"leakwatch/internal/password"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/hashrange"
	mockhashrange "leakwatch/pkg/hashrange/mock"
	"leakwatch/pkg/serrors"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/require"
)

// SHA-1("password") = 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8.
const (
	passwordPrefix = "5BAA6"
	passwordSuffix = "1E4C9B93F3F0682250B6CF8331B7EE68FD8"
)

func newTestEngine(t *testing.T) (*gomock.Controller, *mockhashrange.MockSource, *password.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ranges := mockhashrange.NewMockSource(ctrl)
	engine := password.NewEngine(ranges)

	return ctrl, ranges, engine
}

func TestEngine_Assess_compromisedCommonPassword(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, passwordPrefix).Return([]hashrange.Entry{
		{Suffix: "003D68EB55068C33ACE09247EE4C639306B", Count: 3},
		{Suffix: passwordSuffix, Count: 3861493},
	}, nil)

	a, err := engine.Assess(ctx, "password")
	require.NoError(t, err)

	require.Equal(t, 8, a.Length)
	require.True(t, a.HasLower)
	require.False(t, a.HasUpper)
	require.True(t, a.PatternRisk)
	require.InDelta(t, 32.9, a.EntropyBits, 0.01)

	require.True(t, a.CompromiseChecked)
	require.Equal(t, 3861493, a.CompromiseCount)
	require.True(t, a.IsCompromised())

	require.Equal(t, 0, a.Score)
	require.Equal(t, domain.StrengthTerrible, a.Tier)
	require.NotEmpty(t, a.Warnings)
	// the compromise warning comes first
	require.Contains(t, a.Warnings[0], "known breaches")
}

func TestEngine_Assess_strongPassword(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, gomock.Any()).Return(nil, nil)

	a, err := engine.Assess(ctx, "kT9#mQ2$vX7!pL4&wZ8@")
	require.NoError(t, err)

	require.True(t, a.HasUpper)
	require.True(t, a.HasLower)
	require.True(t, a.HasDigits)
	require.True(t, a.HasSpecial)
	require.False(t, a.PatternRisk)
	require.False(t, a.IsCompromised())
	require.GreaterOrEqual(t, a.Score, 80)
	require.Equal(t, domain.StrengthExcellent, a.Tier)
	require.Equal(t, "astronomically large", a.CrackTimeDisplay)
}

func TestEngine_Assess_scoreBounds(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, gomock.Any()).Return(nil, nil).AnyTimes()

	for _, pw := range []string{
		"a", "1234", "aaaa", "qwerty", "пароль", "Tr0ub4dour&3",
		"correct horse battery staple", "ПарольСКириллицей123!",
	} {
		a, err := engine.Assess(ctx, pw)
		require.NoError(t, err, pw)
		require.GreaterOrEqual(t, a.Score, 0, pw)
		require.LessOrEqual(t, a.Score, 100, pw)
	}
}

func TestEngine_Assess_deterministic(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, gomock.Any()).Return([]hashrange.Entry{
		{Suffix: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", Count: 10},
	}, nil).Times(2)

	first, err := engine.Assess(ctx, "Tr0ub4dour&3")
	require.NoError(t, err)
	second, err := engine.Assess(ctx, "Tr0ub4dour&3")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEngine_Assess_rangeLookupFailure(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "timeout"))

	a, err := engine.Assess(ctx, "Tr0ub4dour&3")
	require.NoError(t, err)
	// compromise state unknown, not silently "clean"
	require.False(t, a.CompromiseChecked)
	require.False(t, a.IsCompromised())
	require.Positive(t, a.Score)
}

func TestEngine_Assess_emptyPassword(t *testing.T) {
	ctrl, _, engine := newTestEngine(t)
	defer ctrl.Finish()

	_, err := engine.Assess(context.Background(), "")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEngine_Assess_russianKeyboardSequence(t *testing.T) {
	ctrl, ranges, engine := newTestEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	ranges.EXPECT().Range(ctx, gomock.Any()).Return(nil, nil)

	a, err := engine.Assess(ctx, "йцукен123")
	require.NoError(t, err)
	require.True(t, a.PatternRisk)
	require.True(t, a.HasUnicode)
}
