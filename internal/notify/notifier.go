// Package notify renders and dispatches the best-effort emails triggered by
// an accepted submission: an admin notification and a user confirmation.
// Outcomes are logged, never propagated; a missing sender or admin address
// degrades each call to a logged no-op that still reports success, so
// operator misconfiguration cannot fail a user's submission.
package notify

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/atelier/backend/internal/model"
	"github.com/atelier/backend/pkg/email"
)

// Config carries the addressing used on outbound mail.
type Config struct {
	AdminEmail string
	FromEmail  string
	FromName   string
	WebsiteURL string
}

// Notifier sends submission emails through an injected email.Sender.
// A nil sender is valid and means "log only".
type Notifier struct {
	sender email.Sender
	cfg    Config
}

// New creates a Notifier. sender may be nil when no provider is configured.
func New(sender email.Sender, cfg Config) *Notifier {
	return &Notifier{sender: sender, cfg: cfg}
}

// NotifyAdmin sends the admin notification for sub. Returns true on success
// or when delivery is skipped because no provider/recipient is configured.
func (n *Notifier) NotifyAdmin(ctx context.Context, sub *model.Submission) bool {
	if n.sender == nil || n.cfg.AdminEmail == "" {
		slog.Info("admin notification skipped: email not configured",
			"submission_id", sub.ID)
		return true
	}

	data := n.templateData(sub)
	html, text, err := render(adminHTML.Execute, adminText.Execute, data)
	if err != nil {
		slog.Error("admin notification template failed", "error", err, "submission_id", sub.ID)
		return false
	}

	err = n.sender.Send(ctx, email.Message{
		FromName: sub.Name,
		From:     n.cfg.FromEmail,
		To:       n.cfg.AdminEmail,
		ReplyTo:  sub.Email,
		Subject:  "[Contact] " + sub.Subject,
		Text:     text,
		HTML:     html,
	})
	if err != nil {
		slog.Error("admin notification failed", "error", err, "submission_id", sub.ID)
		return false
	}
	slog.Info("admin notification sent", "submission_id", sub.ID, "to", n.cfg.AdminEmail)
	return true
}

// ConfirmUser sends the confirmation email to the submitter. Same degrade
// policy as NotifyAdmin.
func (n *Notifier) ConfirmUser(ctx context.Context, sub *model.Submission) bool {
	if n.sender == nil {
		slog.Info("user confirmation skipped: email not configured",
			"submission_id", sub.ID)
		return true
	}

	data := n.templateData(sub)
	html, text, err := render(confirmHTML.Execute, confirmText.Execute, data)
	if err != nil {
		slog.Error("user confirmation template failed", "error", err, "submission_id", sub.ID)
		return false
	}

	err = n.sender.Send(ctx, email.Message{
		FromName: n.cfg.FromName,
		From:     n.cfg.FromEmail,
		To:       sub.Email,
		Subject:  "We received your message",
		Text:     text,
		HTML:     html,
	})
	if err != nil {
		slog.Error("user confirmation failed", "error", err, "submission_id", sub.ID)
		return false
	}
	slog.Info("user confirmation sent", "submission_id", sub.ID, "to", sub.Email)
	return true
}

func (n *Notifier) templateData(sub *model.Submission) templateData {
	var locParts []string
	for _, p := range []string{sub.City, sub.Region, sub.Country} {
		if p != "" {
			locParts = append(locParts, p)
		}
	}
	return templateData{
		Name:       sub.Name,
		Email:      sub.Email,
		Subject:    sub.Subject,
		Message:    sub.Message,
		ReceivedAt: sub.CreatedAt.Format(time.RFC1123),
		WebsiteURL: n.cfg.WebsiteURL,
		IPAddress:  sub.IPAddress,
		Location:   strings.Join(locParts, ", "),
	}
}

// render executes the HTML and text templates against data.
func render(htmlExec, textExec func(w io.Writer, data any) error, data templateData) (html, text string, err error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := htmlExec(&htmlBuf, data); err != nil {
		return "", "", err
	}
	if err := textExec(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), textBuf.String(), nil
}
