package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brightelectricals/backend/internal/model"
)

func TestPgUserRepository_CreateAndFind(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgUserRepository(pool)

	username := fmt.Sprintf("test-user-%d", time.Now().UnixNano())
	user := &model.User{Username: username, Password: "bcrypt-hash-placeholder"}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected ID to be set after Create")
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Username != username {
		t.Errorf("expected username %q, got %q", username, byID.Username)
	}

	byName, err := repo.FindByUsername(ctx, username)
	if err != nil {
		t.Fatalf("FindByUsername failed: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected id %q, got %q", user.ID, byName.ID)
	}

	if _, err := repo.FindByUsername(ctx, "no-such-user"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for absent username, got %v", err)
	}
}

// TestPgUserRepository_DuplicateUsername verifies the unique constraint
// maps to ErrUsernameTaken.
func TestPgUserRepository_DuplicateUsername(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgUserRepository(pool)

	username := fmt.Sprintf("dup-user-%d", time.Now().UnixNano())
	first := &model.User{Username: username, Password: "hash"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := &model.User{Username: username, Password: "hash"}
	if err := repo.Create(ctx, second); err != ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}
