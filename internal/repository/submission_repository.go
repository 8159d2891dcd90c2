package repository

import (
	"context"

	"github.com/atelier/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	// Save assigns sub.ID and timestamps and appends the submission.
	Save(ctx context.Context, sub *model.Submission) error

	// List returns submissions matching the filter, newest first.
	List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error)

	// UpdateStatus sets the status of the submission with the given id and
	// bumps UpdatedAt. Returns ErrNotFound if no such submission exists.
	UpdateStatus(ctx context.Context, id string, status model.Status) error

	// Stats returns aggregate counts over the whole store.
	Stats(ctx context.Context) (model.SubmissionStats, error)
}
