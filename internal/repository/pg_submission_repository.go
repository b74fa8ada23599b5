package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightelectricals/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	// Create inserts the submission, assigning ID, CreatedAt and
	// Addressed=false on the passed struct.
	Create(ctx context.Context, sub *model.ContactSubmission) error
	// List returns up to limit submissions, newest first. limit <= 0 means
	// the default of 50.
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)
	// FindByID returns the submission or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	// Delete removes the submission. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
	// MarkAddressed sets addressed=true. Idempotent; absent ids are no-ops.
	MarkAddressed(ctx context.Context, id string) error
	// Edit overwrites the five editable text fields, leaving id, createdAt
	// and addressed untouched.
	Edit(ctx context.Context, id string, edit model.SubmissionEdit) error
	// Count returns the all-time number of submissions.
	Count(ctx context.Context) (int, error)
}

const defaultSubmissionLimit = 50

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	sub.Addressed = false

	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions
		 (id, name, email, phone, service, message, created_at, user_agent, ip, addressed)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)`,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Service, sub.Message,
		sub.CreatedAt, sub.UserAgent, sub.IP, sub.Addressed,
	)
	return err
}

const submissionColumns = `id, name, email, COALESCE(phone, ''), service, message,
	created_at, COALESCE(user_agent, ''), COALESCE(ip, ''), addressed`

func (r *PgSubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	if limit <= 0 {
		limit = defaultSubmissionLimit
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+`
		 FROM contact_submissions
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

func (r *PgSubmissionRepository) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	row := r.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions WHERE id = $1`, id)
	err := scanSubmission(row, &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	return err
}

func (r *PgSubmissionRepository) MarkAddressed(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET addressed = TRUE WHERE id = $1`, id)
	return err
}

func (r *PgSubmissionRepository) Edit(ctx context.Context, id string, edit model.SubmissionEdit) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions
		 SET name = $2, email = $3, phone = NULLIF($4, ''), service = $5, message = $6
		 WHERE id = $1`,
		id, edit.Name, edit.Email, edit.Phone, edit.Service, edit.Message,
	)
	return err
}

func (r *PgSubmissionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	return n, err
}

func scanSubmission(row pgx.Row, s *model.ContactSubmission) error {
	return row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Service, &s.Message,
		&s.CreatedAt, &s.UserAgent, &s.IP, &s.Addressed)
}
