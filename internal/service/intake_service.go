package service

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/model"
)

// ErrBotDetected is returned when the honeypot or bot-verification check
// fails. Handlers must map it to a generic invalid-submission response so the
// detection mechanism is never revealed.
var ErrBotDetected = errors.New("bot detected")

// ErrInvalidStatus is returned by UpdateStatus for an unknown status value.
var ErrInvalidStatus = errors.New("invalid status")

// SubmitRequest is a raw contact-form submission as received from the client.
// Website is the hidden honeypot field and must arrive empty; CaptchaToken is
// the optional bot-verification token.
type SubmitRequest struct {
	Name         string
	Email        string
	Subject      string
	Message      string
	Website      string
	CaptchaToken string
}

// IntakeService runs the contact intake pipeline and the administrative
// operations over stored submissions.
type IntakeService interface {
	// Submit runs validation, abuse checks, persistence, and notification
	// dispatch for one submission. Validation failures return
	// *validate.Error; bot signals return ErrBotDetected. A spam verdict is
	// not an error: the submission is persisted with a spam source tag and
	// returned normally.
	Submit(ctx context.Context, req SubmitRequest, meta model.RequestMeta) (*model.Submission, error)

	// List returns submissions matching the filter plus store-wide stats.
	List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, model.SubmissionStats, error)

	// UpdateStatus transitions a submission to the given status.
	// Returns ErrInvalidStatus for unknown values and repository.ErrNotFound
	// for unknown ids.
	UpdateStatus(ctx context.Context, id string, status model.Status) error
}

// Notifier dispatches the best-effort emails for an accepted submission.
// Implementations report success/failure for logging only.
type Notifier interface {
	NotifyAdmin(ctx context.Context, sub *model.Submission) bool
	ConfirmUser(ctx context.Context, sub *model.Submission) bool
}
