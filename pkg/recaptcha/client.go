// Package recaptcha verifies bot-detection tokens against the Google
// reCAPTCHA siteverify endpoint. Uses raw HTTP calls (no SDK).
package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// scoreThreshold is the minimum v3 score accepted as human.
const scoreThreshold = 0.5

// Verifier checks a client-supplied token.
type Verifier interface {
	// Verify returns true when the token passes verification.
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// ErrNotConfigured is returned when no secret key is set.
var ErrNotConfigured = errors.New("recaptcha: not configured")

// Client is the siteverify implementation of Verifier.
type Client struct {
	Secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewClient creates a Client with the given secret key.
func NewClient(secret string) *Client {
	return &Client{
		Secret:     secret,
		verifyURL:  "https://www.google.com/recaptcha/api/siteverify",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Verifier = (*Client)(nil)

// Verify posts the token to siteverify and applies the score threshold.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if c.Secret == "" {
		return false, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("secret", c.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool    `json:"success"`
		Score   float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.Success && result.Score > scoreThreshold, nil
}
