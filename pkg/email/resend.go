package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ResendSender delivers mail through the Resend transactional email API.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
type ResendSender struct {
	APIKey     string
	baseURL    string
	httpClient *http.Client
}

// NewResendSender creates a ResendSender with the given API key.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		APIKey:     apiKey,
		baseURL:    "https://api.resend.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Sender = (*ResendSender)(nil)

// resendRequest is the POST /emails payload.
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// Send posts msg to the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if s.APIKey == "" {
		return ErrNotConfigured
	}

	from := msg.From
	if msg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", msg.FromName, msg.From)
	}
	payload, err := json.Marshal(resendRequest{
		From:    from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
