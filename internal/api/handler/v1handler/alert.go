package v1handler

import (
	"net/http"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"
)

type alertsResponse struct {
	Alerts []domain.DarkWebAlert `json:"alerts"`
}

// ListAlerts returns the caller's dark-web alerts, newest first. With
// ?unread=true only alerts not yet marked read are returned.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	unreadOnly := r.URL.Query().Get("unread") == "true"

	alerts, err := h.deps.Storage.UserAlerts(ctx, userFromContext(ctx).ID, unreadOnly, limitParam(r))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not fetch alerts"))

		return
	}
	if alerts == nil {
		alerts = []domain.DarkWebAlert{}
	}

	writeJSON(w, http.StatusOK, alertsResponse{Alerts: alerts})
}

// MarkAlertsRead marks all of the caller's alerts as read.
func (h *Handler) MarkAlertsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.deps.Storage.MarkAlertsRead(ctx, userFromContext(ctx).ID); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not mark alerts read"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
