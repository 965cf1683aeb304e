package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"leakwatch/pkg/notify/telegram"
	"leakwatch/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *telegram.Client {
	return telegram.New(&http.Client{Transport: fn}, "test-token", "")
}

func TestClient_Notify_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			ChatID int64  `json:"chat_id"`
			Text   string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, int64(42), body.ChatID)
		require.Equal(t, "hello", body.Text)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
		}, nil
	})

	require.NoError(t, c.Notify(context.Background(), 42, "hello"))
}

func TestClient_Notify_logicalFailure(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader(`{"ok":false,"description":"chat not found"}`)),
		}, nil
	})

	err := c.Notify(context.Background(), 42, "hello")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
	require.Contains(t, err.Error(), "chat not found")
}

func TestClient_Notify_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"ok":false}`)),
		}, nil
	})

	err := c.Notify(context.Background(), 42, "hello")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrRateLimited))
}

func TestClient_Notify_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})

	err := c.Notify(context.Background(), 42, "hello")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}
