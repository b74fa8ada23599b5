package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightelectricals/backend/internal/model"
)

// ClickRepository defines the persistence interface for button-click
// events. Clicks are append-only: there is no update or delete.
type ClickRepository interface {
	// Track inserts the click, assigning ID and ClickedAt on the passed
	// struct.
	Track(ctx context.Context, click *model.ButtonClick) error
	// List returns up to limit clicks, newest first. limit <= 0 means the
	// default of 100.
	List(ctx context.Context, limit int) ([]*model.ButtonClick, error)
	// Stats groups all-time clicks by (type, label), ordered by count
	// descending. Ties are broken lexicographically for determinism.
	Stats(ctx context.Context) ([]model.ClickStat, error)
}

const defaultClickLimit = 100

// PgClickRepository is the PostgreSQL implementation of ClickRepository.
type PgClickRepository struct {
	pool *pgxpool.Pool
}

// NewPgClickRepository creates a PgClickRepository backed by the given pool.
func NewPgClickRepository(pool *pgxpool.Pool) *PgClickRepository {
	return &PgClickRepository{pool: pool}
}

var _ ClickRepository = (*PgClickRepository)(nil)

func (r *PgClickRepository) Track(ctx context.Context, click *model.ButtonClick) error {
	click.ID = uuid.NewString()
	click.ClickedAt = time.Now().UTC()

	var metadata any
	if len(click.Metadata) > 0 {
		metadata = []byte(click.Metadata)
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO button_clicks
		 (id, button_type, button_label, clicked_at, ip_address, user_agent, metadata)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`,
		click.ID, click.ButtonType, click.ButtonLabel, click.ClickedAt,
		click.IPAddress, click.UserAgent, metadata,
	)
	return err
}

func (r *PgClickRepository) List(ctx context.Context, limit int) ([]*model.ButtonClick, error) {
	if limit <= 0 {
		limit = defaultClickLimit
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, button_type, button_label, clicked_at,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), metadata
		 FROM button_clicks
		 ORDER BY clicked_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []*model.ButtonClick
	for rows.Next() {
		var c model.ButtonClick
		var metadata []byte
		if err := rows.Scan(&c.ID, &c.ButtonType, &c.ButtonLabel, &c.ClickedAt,
			&c.IPAddress, &c.UserAgent, &metadata); err != nil {
			return nil, err
		}
		c.Metadata = metadata
		clicks = append(clicks, &c)
	}
	return clicks, rows.Err()
}

func (r *PgClickRepository) Stats(ctx context.Context) ([]model.ClickStat, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT button_type, button_label, COUNT(*)::int
		 FROM button_clicks
		 GROUP BY button_type, button_label
		 ORDER BY COUNT(*) DESC, button_type, button_label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.ClickStat
	for rows.Next() {
		var s model.ClickStat
		if err := rows.Scan(&s.ButtonType, &s.ButtonLabel, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
