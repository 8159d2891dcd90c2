// Package email provides provider-polymorphic outbound email delivery.
// Each provider implements the single-method Sender contract; the provider is
// selected at construction time from configuration.
package email

import (
	"context"
	"errors"
)

// Message is one outbound email with HTML and plain-text alternatives.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Sender delivers a single message. Implementations make exactly one attempt;
// retries and failure handling are the caller's concern.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ErrNotConfigured is returned when a provider is missing required credentials.
var ErrNotConfigured = errors.New("email: provider not configured")
