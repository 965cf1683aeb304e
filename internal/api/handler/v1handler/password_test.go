package v1handler_test

import (
	"context"
	"net/http"
	"testing"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"

	"go.uber.org/mock/gomock"

	"github.com/stretchr/testify/require"
)

func TestAssessPassword(t *testing.T) {
	th := newTestHandler(t)
	th.expectUser()

	th.assessor.EXPECT().
		Assess(gomock.Any(), "kT9#mQ2$vX7!").
		Return(&domain.PasswordAssessment{
			Length:            12,
			HasUpper:          true,
			HasLower:          true,
			HasDigits:         true,
			HasSpecial:        true,
			Score:             85,
			Tier:              domain.StrengthExcellent,
			CompromiseChecked: true,
		}, nil)

	var stored domain.CheckRecord
	th.storage.EXPECT().
		StoreCheck(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.CheckRecord) (*domain.CheckRecord, error) {
			stored = record

			return &record, nil
		})

	rec := th.do(t, http.MethodPost, "/passwords", `{"password":"kT9#mQ2$vX7!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.PasswordAssessment
	decodeBody(t, rec, &resp)
	require.Equal(t, 85, resp.Score)
	require.Equal(t, domain.StrengthExcellent, resp.Tier)

	// Nothing password-derived may land in history.
	require.Equal(t, domain.CheckTypePassword, stored.CheckType)
	require.Equal(t, "********", stored.QueryValue)
	require.Empty(t, stored.QueryHash)
	require.NotContains(t, rec.Body.String(), "kT9#mQ2$vX7!")
}

func TestAssessPassword_empty(t *testing.T) {
	th := newTestHandler(t)
	th.expectUser()

	th.assessor.EXPECT().
		Assess(gomock.Any(), "").
		Return(nil, serrors.With(serrors.ErrBadRequest, "password must not be empty"))

	rec := th.do(t, http.MethodPost, "/passwords", `{"password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
