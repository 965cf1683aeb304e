// Package pwnedpasswords implements hashrange.Source on top of the public
// Pwned Passwords range API. No API key is required and no password material
// ever leaves the process, only a 5-character hash prefix.
package pwnedpasswords

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"leakwatch/pkg/hashrange"
	"leakwatch/pkg/serrors"
)

// DefaultBaseURL is the production endpoint of the range API.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// Client fetches hash ranges from the Pwned Passwords API. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a Client. An empty baseURL selects the production endpoint.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Range fetches /range/{prefix} and parses the SUFFIX:COUNT lines. Lines
// that do not parse are skipped rather than failing the whole range.
func (c *Client) Range(ctx context.Context, prefix string) ([]hashrange.Entry, error) {
	if len(prefix) != 5 { //nolint: mnd
		return nil, serrors.With(serrors.ErrBadRequest, "prefix must be 5 hex characters, got %q", prefix)
	}

	endpoint := c.baseURL + "/range/" + strings.ToUpper(prefix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach password range api")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUnavailable, "password range api returned %d", resp.StatusCode)
	}

	var entries []hashrange.Entry

	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		suffix, countStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		count, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			continue
		}

		entries = append(entries, hashrange.Entry{
			Suffix: strings.ToUpper(strings.TrimSpace(suffix)),
			Count:  count,
		})
	}

	if err := sc.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read range response")
	}

	return entries, nil
}

// Ensure Client conforms to the hashrange.Source interface at compile time.
var _ hashrange.Source = (*Client)(nil)
