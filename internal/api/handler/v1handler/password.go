package v1handler

import (
	"net/http"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"

	"go.uber.org/zap"
)

type passwordRequest struct {
	Password string `json:"password"`
}

// AssessPassword analyzes the submitted password. Only the fact that a
// password was checked is recorded in history; neither the password nor
// anything derived from it is persisted.
func (h *Handler) AssessPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req passwordRequest
	if err := readJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	assessment, err := h.deps.Assessor.Assess(ctx, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	user := userFromContext(ctx)
	if _, err := h.deps.Storage.StoreCheck(ctx, domain.CheckRecord{
		UserID:        user.ID,
		CheckType:     domain.CheckTypePassword,
		QueryValue:    "********",
		BreachesFound: assessment.CompromiseCount,
	}); err != nil {
		logger.Warn(ctx, "could not store check history", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, assessment)
}
