// Command provision creates a dashboard account. It is the only writer of
// the users table; no HTTP endpoint touches accounts.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightelectricals/backend/internal/logging"
	"github.com/brightelectricals/backend/internal/model"
	"github.com/brightelectricals/backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup(os.Getenv("LOG_LEVEL"))

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: provision <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL must be set")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, dbURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logging.Fatal("password hash failed", "error", err)
	}

	user := &model.User{Username: username, Password: string(hash)}
	repo := repository.NewPgUserRepository(pool)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			logging.Fatal("username already taken", "username", username)
		}
		logging.Fatal("create user failed", "error", err)
	}

	slog.Info("account provisioned", "user_id", user.ID, "username", username)
}
