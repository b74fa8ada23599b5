package service

import (
	"context"

	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/repository"
)

// clickServiceImpl is the production implementation of ClickService.
type clickServiceImpl struct {
	repo repository.ClickRepository
}

// NewClickService creates a ClickService backed by the given repository.
func NewClickService(repo repository.ClickRepository) ClickService {
	return &clickServiceImpl{repo: repo}
}

func (s *clickServiceImpl) Track(ctx context.Context, click *model.ButtonClick) error {
	return s.repo.Track(ctx, click)
}

func (s *clickServiceImpl) List(ctx context.Context, limit int) ([]*model.ButtonClick, error) {
	return s.repo.List(ctx, limit)
}

func (s *clickServiceImpl) Stats(ctx context.Context) ([]model.ClickStat, error) {
	return s.repo.Stats(ctx)
}
