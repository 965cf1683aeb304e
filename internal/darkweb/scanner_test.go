package darkweb_test

import (
	"context"
	"testing"

	"leakwatch/internal/darkweb"
	mockbreachsource "leakwatch/pkg/breachsource/mock"
	"leakwatch/pkg/domain"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/require"
)

func TestService_Scan_pasteFindings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mockbreachsource.NewMockSource(ctrl)
	svc := darkweb.NewService(source)

	ctx := context.Background()
	source.EXPECT().PasteCount(ctx, "victim@example.com").Return(4)

	result := svc.Scan(ctx, "victim@example.com", domain.QueryTypeEmail)
	require.True(t, result.HasFindings())
	require.Len(t, result.Findings, 1)
	require.Equal(t, "paste", result.Findings[0].Source)
	require.Equal(t, domain.SeverityHigh, result.Findings[0].Severity)
	require.Equal(t, domain.SeverityHigh, result.MaxSeverity())
	// only the masked identifier leaves the scanner
	require.NotContains(t, result.Findings[0].MatchedValue, "victim")
}

func TestService_Scan_highRiskDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mockbreachsource.NewMockSource(ctrl)
	svc := darkweb.NewService(source)

	ctx := context.Background()
	source.EXPECT().PasteCount(ctx, "user@mail.ru").Return(0)

	result := svc.Scan(ctx, "user@mail.ru", domain.QueryTypeEmail)
	require.Len(t, result.Findings, 1)
	require.Equal(t, "database", result.Findings[0].Source)
	require.Equal(t, domain.SeverityMedium, result.Findings[0].Severity)
}

func TestService_Scan_deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mockbreachsource.NewMockSource(ctrl)
	svc := darkweb.NewService(source)

	ctx := context.Background()
	source.EXPECT().PasteCount(ctx, "user@mail.ru").Return(2).Times(2)

	first := svc.Scan(ctx, "user@mail.ru", domain.QueryTypeEmail)
	second := svc.Scan(ctx, "user@mail.ru", domain.QueryTypeEmail)
	require.Equal(t, first, second)
}

func TestService_Scan_cleanIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mockbreachsource.NewMockSource(ctrl)
	svc := darkweb.NewService(source)

	ctx := context.Background()
	source.EXPECT().PasteCount(ctx, "user@example.com").Return(0)

	result := svc.Scan(ctx, "user@example.com", domain.QueryTypeEmail)
	require.False(t, result.HasFindings())
	require.Equal(t, domain.Severity(""), result.MaxSeverity())
}
