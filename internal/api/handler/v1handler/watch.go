package v1handler

import (
	"net/http"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type watchRequest struct {
	// Value is the email address to put under monitoring.
	Value string `json:"value"`
}

type watchesResponse struct {
	Watches []domain.Watch `json:"watches"`
}

// CreateWatch registers an identifier for recurring checking.
func (h *Handler) CreateWatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req watchRequest
	if err := readJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	watch, err := h.deps.Monitor.AddWatch(ctx, userFromContext(ctx).ID, req.Value)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusCreated, watch)
}

// ListWatches returns the caller's active watches.
func (h *Handler) ListWatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	watches, err := h.deps.Monitor.Watches(ctx, userFromContext(ctx).ID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if watches == nil {
		watches = []domain.Watch{}
	}

	writeJSON(w, http.StatusOK, watchesResponse{Watches: watches})
}

// DeleteWatch removes a watch by ID.
func (h *Handler) DeleteWatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "malformed watch id"))

		return
	}

	if err := h.deps.Monitor.RemoveWatch(ctx, userFromContext(ctx).ID, domain.WatchID(id)); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
