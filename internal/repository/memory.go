package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brightelectricals/backend/internal/model"
)

// MemorySubmissionRepository is an in-memory SubmissionRepository used by
// the test suite. It honors the same contract as the PostgreSQL
// implementation: server-assigned ids and timestamps, newest-first
// ordering, idempotent delete/mark.
type MemorySubmissionRepository struct {
	mu   sync.Mutex
	subs map[string]*model.ContactSubmission
}

// NewMemorySubmissionRepository creates an empty in-memory repository.
func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{subs: make(map[string]*model.ContactSubmission)}
}

var _ SubmissionRepository = (*MemorySubmissionRepository)(nil)

func (r *MemorySubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	sub.Addressed = false
	stored := *sub
	r.subs[sub.ID] = &stored
	return nil
}

func (r *MemorySubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	if limit <= 0 {
		limit = defaultSubmissionLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ContactSubmission, 0, len(r.subs))
	for _, s := range r.subs {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemorySubmissionRepository) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.subs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *MemorySubmissionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, id)
	return nil
}

func (r *MemorySubmissionRepository) MarkAddressed(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.subs[id]; ok {
		s.Addressed = true
	}
	return nil
}

func (r *MemorySubmissionRepository) Edit(ctx context.Context, id string, edit model.SubmissionEdit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.subs[id]; ok {
		s.Name = edit.Name
		s.Email = edit.Email
		s.Phone = edit.Phone
		s.Service = edit.Service
		s.Message = edit.Message
	}
	return nil
}

func (r *MemorySubmissionRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs), nil
}

// MemoryClickRepository is an in-memory ClickRepository with the same
// contract as the PostgreSQL implementation.
type MemoryClickRepository struct {
	mu     sync.Mutex
	clicks []*model.ButtonClick
}

// NewMemoryClickRepository creates an empty in-memory repository.
func NewMemoryClickRepository() *MemoryClickRepository {
	return &MemoryClickRepository{}
}

var _ ClickRepository = (*MemoryClickRepository)(nil)

func (r *MemoryClickRepository) Track(ctx context.Context, click *model.ButtonClick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	click.ID = uuid.NewString()
	click.ClickedAt = time.Now().UTC()
	stored := *click
	r.clicks = append(r.clicks, &stored)
	return nil
}

func (r *MemoryClickRepository) List(ctx context.Context, limit int) ([]*model.ButtonClick, error) {
	if limit <= 0 {
		limit = defaultClickLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy in reverse insertion order so the stable sort keeps the most
	// recently tracked click first when timestamps tie.
	out := make([]*model.ButtonClick, 0, len(r.clicks))
	for i := len(r.clicks) - 1; i >= 0; i-- {
		copied := *r.clicks[i]
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClickedAt.After(out[j].ClickedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryClickRepository) Stats(ctx context.Context) ([]model.ClickStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct{ typ, label string }
	counts := make(map[key]int)
	for _, c := range r.clicks {
		counts[key{c.ButtonType, c.ButtonLabel}]++
	}

	stats := make([]model.ClickStat, 0, len(counts))
	for k, n := range counts {
		stats = append(stats, model.ClickStat{ButtonType: k.typ, ButtonLabel: k.label, Count: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].ButtonType != stats[j].ButtonType {
			return stats[i].ButtonType < stats[j].ButtonType
		}
		return stats[i].ButtonLabel < stats[j].ButtonLabel
	})
	return stats, nil
}
