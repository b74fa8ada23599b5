package repository

import (
	"context"

	"github.com/brightelectricals/backend/internal/model"
)

// DB is the minimal health-check view of a database handle.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists provisioned dashboard accounts.
type UserRepository interface {
	// Create inserts the user and populates user.ID. Returns
	// ErrUsernameTaken when the username is already in use.
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
