// Package telegram implements notify.Notifier using the Telegram Bot API
// sendMessage method.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"leakwatch/pkg/notify"
	"leakwatch/pkg/serrors"
)

// DefaultBaseURL is the production Telegram Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// Client sends messages through a Telegram bot. It is safe for concurrent
// use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New constructs a Client for the given bot token. An empty baseURL selects
// the production endpoint.
func New(httpClient *http.Client, token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type sendMessageReq struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageRes struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify posts a sendMessage call for the chat. Telegram reports logical
// failures in the response body with ok=false, so both the HTTP status and
// the body are checked.
func (c *Client) Notify(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageReq{ChatID: chatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := c.baseURL + "/bot" + c.token + "/sendMessage"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach telegram")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "telegram rate limit exceeded")
	}

	var res sendMessageRes
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not decode telegram response")
	}

	if !res.OK {
		return serrors.With(serrors.ErrUnavailable, "telegram rejected message: %s", res.Description)
	}

	return nil
}

// Ensure Client conforms to the notify.Notifier interface at compile time.
var _ notify.Notifier = (*Client)(nil)
