package service

import (
	"context"
	"log/slog"

	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/repository"
)

// submissionServiceImpl is the production implementation of
// SubmissionService.
type submissionServiceImpl struct {
	repo     repository.SubmissionRepository
	notifier Notifier // nil when outbound email is not configured
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository. notifier may be nil to disable email notifications.
func NewSubmissionService(repo repository.SubmissionRepository, notifier Notifier) SubmissionService {
	return &submissionServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the submission and then fires the notification email.
// Notification failure never fails the submission.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if err := s.repo.Create(ctx, sub); err != nil {
		return err
	}
	if s.notifier != nil {
		if !s.notifier.SendContactNotification(ctx, sub) {
			slog.Warn("contact notification not delivered", "submission_id", sub.ID)
		}
	}
	return nil
}

func (s *submissionServiceImpl) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, limit)
}

func (s *submissionServiceImpl) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *submissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *submissionServiceImpl) MarkAddressed(ctx context.Context, id string) error {
	return s.repo.MarkAddressed(ctx, id)
}

func (s *submissionServiceImpl) Edit(ctx context.Context, id string, edit model.SubmissionEdit) error {
	return s.repo.Edit(ctx, id, edit)
}

func (s *submissionServiceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
