package v1handler

import (
	"net/http"

	"leakwatch/internal/breach"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/serrors"

	"go.uber.org/zap"
)

type checkRequest struct {
	// Value is the identifier to check.
	Value string `json:"value"`
	// Type is one of "email", "phone", "username".
	Type string `json:"type"`
}

type checksResponse struct {
	Checks []domain.CheckRecord `json:"checks"`
}

// CreateCheck runs an identifier check and records it in the caller's
// history with a masked query value.
func (h *Handler) CreateCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	queryType := domain.QueryType(req.Type)
	switch queryType {
	case domain.QueryTypeEmail, domain.QueryTypePhone, domain.QueryTypeUsername:
	default:
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "unknown query type %q", req.Type))

		return
	}

	result, err := h.deps.Checker.Check(ctx, req.Value, queryType)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	user := userFromContext(ctx)
	if _, err := h.deps.Storage.StoreCheck(ctx, domain.CheckRecord{
		UserID:        user.ID,
		CheckType:     domain.CheckType(queryType),
		QueryValue:    breach.Mask(result.Query, queryType),
		QueryHash:     breach.HashIdentifier(result.Query),
		BreachesFound: result.TotalBreaches(),
		Result:        result,
	}); err != nil {
		// History is best effort, the check result is still served.
		logger.Warn(ctx, "could not store check history", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, result)
}

// ListChecks returns the caller's most recent check history entries.
func (h *Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	checks, err := h.deps.Storage.UserChecks(ctx, user.ID, limitParam(r))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not fetch check history"))

		return
	}
	if checks == nil {
		checks = []domain.CheckRecord{}
	}

	writeJSON(w, http.StatusOK, checksResponse{Checks: checks})
}
