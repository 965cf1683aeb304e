package pwnedpasswords_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"leakwatch/pkg/hashrange/pwnedpasswords"
	"leakwatch/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *pwnedpasswords.Client {
	return pwnedpasswords.New(&http.Client{Transport: fn}, "")
}

func TestClient_Range_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.pwnedpasswords.com", r.URL.Host)
		require.Equal(t, "/range/5BAA6", r.URL.Path)

		body := strings.Join([]string{
			"003D68EB55068C33ACE09247EE4C639306B:3",
			"1E4C9B93F3F0682250B6CF8331B7EE68FD8:3861493",
			"",
			"garbage-line-without-separator",
			"813AAAA:notanumber",
		}, "\r\n")

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	entries, err := c.Range(context.Background(), "5baa6")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "1E4C9B93F3F0682250B6CF8331B7EE68FD8", entries[1].Suffix)
	require.Equal(t, int64(3861493), entries[1].Count)
}

func TestClient_Range_badPrefix(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	_, err := c.Range(context.Background(), "5BAA")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrBadRequest))
}

func TestClient_Range_serverError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})

	_, err := c.Range(context.Background(), "5BAA6")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}

func TestClient_Range_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("timeout")
	})

	_, err := c.Range(context.Background(), "5BAA6")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}
