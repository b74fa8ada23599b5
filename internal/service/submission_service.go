package service

import (
	"context"

	"github.com/brightelectricals/backend/internal/model"
)

// Notifier delivers an out-of-band notification for a new submission.
// Delivery is best-effort: implementations report success as a bool and
// never fail the submission itself.
type Notifier interface {
	SendContactNotification(ctx context.Context, sub *model.ContactSubmission) bool
}

// SubmissionService defines the business logic for contact-form
// submissions and their dashboard lifecycle.
type SubmissionService interface {
	// Submit stores a new submission. ID, CreatedAt and Addressed are
	// populated by the persistence layer.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns up to limit submissions, newest first.
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)

	// Get returns a submission by id, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)

	// Delete removes a submission. Idempotent.
	Delete(ctx context.Context, id string) error

	// MarkAddressed flags a submission as handled by staff. Idempotent.
	MarkAddressed(ctx context.Context, id string) error

	// Edit overwrites the five editable fields of a submission.
	Edit(ctx context.Context, id string, edit model.SubmissionEdit) error

	// Count returns the all-time number of submissions.
	Count(ctx context.Context) (int, error)
}
