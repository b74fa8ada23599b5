package service

import (
	"context"

	"github.com/brightelectricals/backend/internal/model"
)

// ClickService defines the business logic for call-to-action click
// tracking and aggregation.
type ClickService interface {
	// Track stores a new click event. ID and ClickedAt are populated by
	// the persistence layer.
	Track(ctx context.Context, click *model.ButtonClick) error

	// List returns up to limit clicks, newest first.
	List(ctx context.Context, limit int) ([]*model.ButtonClick, error)

	// Stats returns all-time click counts grouped by (type, label),
	// ordered by count descending.
	Stats(ctx context.Context) ([]model.ClickStat, error)
}
