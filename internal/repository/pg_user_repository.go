package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightelectricals/backend/internal/model"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint error.
const uniqueViolation = "23505"

// PgUserRepository is the PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository creates a PgUserRepository backed by the given pool.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

// Create inserts a users row with an application-generated UUID and
// populates user.ID. A duplicate username maps to ErrUsernameTaken.
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		id, user.Username, user.Password,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUsernameTaken
		}
		return err
	}
	user.ID = id
	return nil
}

// FindByID returns the user with the given id, or ErrNotFound.
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findBy(ctx, "id", id)
}

// FindByUsername returns the user with the given username, or ErrNotFound.
func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *PgUserRepository) findBy(ctx context.Context, column, value string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE `+column+` = $1`,
		value,
	).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
