// Package hibp provides a breachsource.Source implementation backed by the
// Have I Been Pwned v3 API.
package hibp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"leakwatch/pkg/breachsource"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/serrors"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production endpoint of the HIBP v3 API.
const DefaultBaseURL = "https://haveibeenpwned.com/api/v3"

// defaultUserAgent identifies the service to HIBP, which rejects requests
// without a user agent.
const defaultUserAgent = "leakwatch"

// Client talks to the Have I Been Pwned REST API and fulfills the
// breachsource.Source interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
}

// New constructs a Client using the provided http.Client and API key. An
// empty baseURL selects the production endpoint.
func New(httpClient *http.Client, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  defaultUserAgent,
	}
}

// breachPayload mirrors the HIBP breach model.
// https://haveibeenpwned.com/API/v3#BreachModel
type breachPayload struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	Domain      string   `json:"Domain"`
	BreachDate  string   `json:"BreachDate"`
	AddedDate   string   `json:"AddedDate"`
	PwnCount    int64    `json:"PwnCount"`
	Description string   `json:"Description"`
	DataClasses []string `json:"DataClasses"`
	IsVerified  bool     `json:"IsVerified"`
}

// Lookup queries /breachedaccount for the identifier with full (untruncated)
// breach bodies. A 404 means the identifier is clean and yields an empty
// result; 401, 429 and other non-2xx answers map to the semantic error
// taxonomy.
func (c *Client) Lookup(ctx context.Context, identifier string) ([]domain.BreachRecord, error) {
	// Without a key every call would 401 anyway; skip the round trip.
	if c.apiKey == "" {
		return nil, serrors.With(serrors.ErrUnavailable, "breach index api key is not configured")
	}

	endpoint := c.baseURL + "/breachedaccount/" + url.PathEscape(identifier) + "?truncateResponse=false"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach breach index")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// not found upstream means not breached
		return nil, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid breach index api key")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "breach index rate limit exceeded")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUnavailable,
			"breach index returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var payload []breachPayload
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
	}

	records := make([]domain.BreachRecord, 0, len(payload))
	for _, p := range payload {
		records = append(records, domain.BreachRecord{
			Name:        p.Name,
			Title:       p.Title,
			Domain:      p.Domain,
			BreachDate:  p.BreachDate,
			AddedDate:   p.AddedDate,
			PwnCount:    p.PwnCount,
			Description: p.Description,
			DataClasses: p.DataClasses,
			Verified:    p.IsVerified,
		})
	}

	return records, nil
}

// PasteCount queries /pasteaccount for the identifier. Any failure resolves
// to zero; paste counts are advisory and never degrade a check.
func (c *Client) PasteCount(ctx context.Context, identifier string) int {
	if c.apiKey == "" {
		return 0
	}

	endpoint := c.baseURL + "/pasteaccount/" + url.PathEscape(identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug(ctx, "paste lookup failed", zap.Error(err))

		return 0
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0
	}

	var pastes []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&pastes); err != nil {
		logger.Debug(ctx, "could not decode paste response", zap.Error(err))

		return 0
	}

	return len(pastes)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("user-agent", c.userAgent)
}

// Ensure Client conforms to the breachsource.Source interface at compile time.
var _ breachsource.Source = (*Client)(nil)
