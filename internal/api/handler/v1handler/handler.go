// Package v1handler implements the v1 HTTP API handlers.
package v1handler

import (
	"net/http"

	"leakwatch/internal/breach"
	"leakwatch/internal/monitor"
	"leakwatch/internal/password"
	"leakwatch/pkg/storage"

	"github.com/go-chi/chi/v5"
)

// DefaultLimit is the page size used when the caller does not provide one.
const DefaultLimit = 20

// MaxLimit caps caller-provided page sizes.
const MaxLimit = 100

// Deps carries the collaborators the handlers dispatch to.
type Deps struct {
	Checker  breach.Checker
	Assessor password.Assessor
	Monitor  monitor.Service
	Storage  storage.Storage
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router. Every route runs behind the identity
// middleware that resolves the calling chat to a user.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.withUser)

	r.Post("/checks", h.CreateCheck)
	r.Get("/checks", h.ListChecks)

	r.Post("/passwords", h.AssessPassword)

	r.Post("/watches", h.CreateWatch)
	r.Get("/watches", h.ListWatches)
	r.Delete("/watches/{id}", h.DeleteWatch)

	r.Get("/alerts", h.ListAlerts)
	r.Post("/alerts/read", h.MarkAlertsRead)

	return r
}
