package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brightelectricals/backend/internal/model"
)

func newSubmission(name, email string) *model.ContactSubmission {
	return &model.ContactSubmission{
		Name:    name,
		Email:   email,
		Service: "Wiring",
		Message: "Need a quote",
	}
}

func TestMemorySubmissionRepository_CreateAssignsServerFields(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	before := time.Now().UTC()
	sub := newSubmission("Jane Doe", "jane@example.com")
	sub.Addressed = true // client-supplied value must be ignored
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	after := time.Now().UTC()

	if sub.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if sub.CreatedAt.Before(before) || sub.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not in [%v, %v]", sub.CreatedAt, before, after)
	}
	if sub.Addressed {
		t.Error("expected Addressed to be reset to false on create")
	}
}

func TestMemorySubmissionRepository_ListNewestFirstAndLimit(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		sub := newSubmission(name, name+"@example.com")
		if err := repo.Create(ctx, sub); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, sub.ID)
		time.Sleep(2 * time.Millisecond) // distinct timestamps
	}

	subs, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions with limit=2, got %d", len(subs))
	}
	if subs[0].ID != ids[2] || subs[1].ID != ids[1] {
		t.Errorf("expected newest-first order [%s %s], got [%s %s]",
			ids[2], ids[1], subs[0].ID, subs[1].ID)
	}
}

func TestMemorySubmissionRepository_FindByID(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	sub := newSubmission("Jane Doe", "jane@example.com")
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Email != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %q", found.Email)
	}

	if _, err := repo.FindByID(ctx, "no-such-id"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for absent id, got %v", err)
	}
}

// TestMemorySubmissionRepository_DeleteIdempotent verifies deleting twice
// succeeds both times.
func TestMemorySubmissionRepository_DeleteIdempotent(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	sub := newSubmission("Jane Doe", "jane@example.com")
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("first Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, sub.ID); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
	if _, err := repo.FindByID(ctx, sub.ID); err != ErrNotFound {
		t.Errorf("expected submission gone after delete, got %v", err)
	}
}

func TestMemorySubmissionRepository_MarkAddressedIdempotent(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	sub := newSubmission("Jane Doe", "jane@example.com")
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := repo.MarkAddressed(ctx, sub.ID); err != nil {
			t.Fatalf("MarkAddressed call %d failed: %v", i+1, err)
		}
	}
	found, err := repo.FindByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !found.Addressed {
		t.Error("expected addressed=true after MarkAddressed")
	}

	// Absent id is a no-op, not an error.
	if err := repo.MarkAddressed(ctx, "no-such-id"); err != nil {
		t.Errorf("expected no error for absent id, got %v", err)
	}
}

// TestMemorySubmissionRepository_EditRoundTrip verifies the five editable
// fields change while id, createdAt and addressed stay untouched.
func TestMemorySubmissionRepository_EditRoundTrip(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	sub := newSubmission("Jane Doe", "jane@example.com")
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.MarkAddressed(ctx, sub.ID); err != nil {
		t.Fatalf("MarkAddressed failed: %v", err)
	}

	edit := model.SubmissionEdit{
		Name:    "Janet Doe",
		Email:   "janet@example.com",
		Phone:   "555-0100",
		Service: "Rewiring",
		Message: "Updated quote request",
	}
	if err := repo.Edit(ctx, sub.ID, edit); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	found, err := repo.FindByID(ctx, sub.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Name != edit.Name || found.Email != edit.Email || found.Phone != edit.Phone ||
		found.Service != edit.Service || found.Message != edit.Message {
		t.Errorf("expected edited fields %+v, got %+v", edit, found)
	}
	if found.ID != sub.ID {
		t.Error("expected id unchanged by edit")
	}
	if !found.CreatedAt.Equal(sub.CreatedAt) {
		t.Error("expected createdAt unchanged by edit")
	}
	if !found.Addressed {
		t.Error("expected addressed unchanged by edit")
	}
}

func TestMemorySubmissionRepository_Count(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, newSubmission("n", "n@example.com")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count=3, got %d", n)
	}
}

func TestMemoryClickRepository_TrackAssignsServerFields(t *testing.T) {
	repo := NewMemoryClickRepository()
	ctx := context.Background()

	before := time.Now().UTC()
	click := &model.ButtonClick{ButtonType: "call", ButtonLabel: "Call Us"}
	if err := repo.Track(ctx, click); err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	after := time.Now().UTC()

	if click.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if click.ClickedAt.Before(before) || click.ClickedAt.After(after) {
		t.Errorf("ClickedAt %v not in [%v, %v]", click.ClickedAt, before, after)
	}
}

func TestMemoryClickRepository_ListNewestFirstAndLimit(t *testing.T) {
	repo := NewMemoryClickRepository()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ {
		click := &model.ButtonClick{ButtonType: "call", ButtonLabel: "Call Us"}
		if err := repo.Track(ctx, click); err != nil {
			t.Fatalf("Track failed: %v", err)
		}
		ids = append(ids, click.ID)
		time.Sleep(2 * time.Millisecond)
	}

	clicks, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(clicks) != 3 {
		t.Fatalf("expected at most 3 clicks with limit=3, got %d", len(clicks))
	}
	if clicks[0].ID != ids[3] {
		t.Errorf("expected newest click first, got %s", clicks[0].ID)
	}
}

// TestMemoryClickRepository_Stats verifies grouping, counting and
// count-descending order.
func TestMemoryClickRepository_Stats(t *testing.T) {
	repo := NewMemoryClickRepository()
	ctx := context.Background()

	track := func(typ, label string, n int) {
		for i := 0; i < n; i++ {
			click := &model.ButtonClick{ButtonType: typ, ButtonLabel: label}
			if err := repo.Track(ctx, click); err != nil {
				t.Fatalf("Track failed: %v", err)
			}
		}
	}
	track("call", "Call Us", 5)
	track("email", "Email Us", 2)
	track("whatsapp", "Chat", 2)

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(stats))
	}
	if stats[0].ButtonType != "call" || stats[0].Count != 5 {
		t.Errorf("expected call/5 ranked first, got %+v", stats[0])
	}
	// Ties break lexicographically by type for determinism.
	if stats[1].ButtonType != "email" || stats[2].ButtonType != "whatsapp" {
		t.Errorf("expected tie order email then whatsapp, got %+v then %+v", stats[1], stats[2])
	}
}
