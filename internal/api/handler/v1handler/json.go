package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"leakwatch/pkg/logger"
	"leakwatch/pkg/serrors"
)

// maxBodyBytes bounds request payloads; every v1 request body is tiny.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON error envelope of the v1 API.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusForKind maps the error taxonomy onto HTTP statuses and provides the
// fallback message used when the error carries none.
func statusForKind(err error) (int, string) {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests, "rate limited"
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "upstream unavailable"
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout, "timed out"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// writeError renders err through the v1 error envelope. Internal failures
// are logged with their cause but never leak details to the caller.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, message := statusForKind(err)

	code := serrors.ErrInternal.Error()
	var serr *serrors.Error
	if errors.As(err, &serr) {
		code = serr.Kind().Error()
		if status != http.StatusInternalServerError && serr.Message() != "" {
			message = serr.Message()
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
		code = serrors.ErrInternal.Error()
	}

	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// limitParam parses the "limit" query parameter, applying the default and
// the cap. Malformed or non-positive values fall back to the default.
func limitParam(r *http.Request) uint {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}

	return uint(limit)
}
