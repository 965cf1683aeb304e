package v1handler

import (
	"context"
	"net/http"
	"strconv"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/serrors"
)

type ctxKey string

const userCtxKey ctxKey = "user"

// ChatIDHeader identifies the calling chat. Authenticating the chat surface
// is out of scope here; the gateway in front is trusted to set the header.
const ChatIDHeader = "X-Chat-Id"

// withUser resolves the calling chat to a user, creating one on first
// contact, and stores it in the request context.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		chatID, err := strconv.ParseInt(r.Header.Get(ChatIDHeader), 10, 64)
		if err != nil {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized,
				"missing or malformed %s header", ChatIDHeader))

			return
		}

		user, err := h.deps.Storage.UpsertUser(ctx, chatID)
		if err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrInternal, err, "could not resolve user"))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userCtxKey, user)))
	})
}

// userFromContext returns the user stored by withUser. Handlers run behind
// the middleware, so the user is always present.
func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey).(*domain.User)

	return user
}
