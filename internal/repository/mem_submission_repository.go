package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/atelier/backend/internal/model"
	"github.com/google/uuid"
)

// MemSubmissionRepository is the in-memory implementation of
// SubmissionRepository. Contents live for the lifetime of the process only:
// a restart discards every submission. Construct one instance per process and
// inject it where needed.
type MemSubmissionRepository struct {
	mu          sync.RWMutex
	submissions []*model.Submission
	byID        map[string]*model.Submission
}

// NewMemSubmissionRepository creates an empty in-memory repository.
func NewMemSubmissionRepository() *MemSubmissionRepository {
	return &MemSubmissionRepository{
		byID: make(map[string]*model.Submission),
	}
}

// Ensure MemSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*MemSubmissionRepository)(nil)

// Save assigns a fresh UUID and UTC timestamps, then appends a private copy
// of the submission. The id is assigned exactly once; callers must not set it
// themselves. Storing a copy keeps the caller's struct detached from the
// store, so later status updates cannot race with readers of the returned
// value.
func (r *MemSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	now := time.Now().UTC()
	sub.ID = uuid.NewString()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	stored := *sub

	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

// List returns copies of submissions matching the filter, sorted by CreatedAt
// descending. Limit truncates the result after filtering and sorting.
// Returning copies means callers can read the result while concurrent status
// updates mutate the store.
func (r *MemSubmissionRepository) List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error) {
	r.mu.RLock()
	matched := make([]*model.Submission, 0, len(r.submissions))
	for _, sub := range r.submissions {
		if filter.Status != "" && sub.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && sub.Priority != filter.Priority {
			continue
		}
		c := *sub
		matched = append(matched, &c)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// UpdateStatus sets the status and bumps UpdatedAt, even when the status
// value is unchanged (each call is a valid transition).
func (r *MemSubmissionRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	sub.Status = status
	sub.UpdatedAt = time.Now().UTC()
	return nil
}

// Stats returns total count, per-status counts, and the number of submissions
// received in the last 24 hours.
func (r *MemSubmissionRepository) Stats(ctx context.Context) (model.SubmissionStats, error) {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := model.SubmissionStats{
		Total:    len(r.submissions),
		ByStatus: make(map[string]int),
	}
	for _, sub := range r.submissions {
		stats.ByStatus[string(sub.Status)]++
		if sub.CreatedAt.After(cutoff) {
			stats.Recent++
		}
	}
	return stats, nil
}
