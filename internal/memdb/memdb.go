// Package memdb keeps content items in process memory. It backs local runs
// and tests and behaves like the PostgreSQL repository.
package memdb

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daniilsolovey/content-admin/internal/content"
)

type Repository struct {
	mu    sync.RWMutex
	items map[content.Type]map[string]content.Item
	now   func() time.Time
	newID func() string
}

func New() *Repository {
	items := make(map[content.Type]map[string]content.Item, len(content.Types))
	for _, t := range content.Types {
		items[t] = make(map[string]content.Item)
	}

	return &Repository{
		items: items,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock replaces the clock used for CreatedAt and UpdatedAt.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

func (r *Repository) List(ctx context.Context, q content.Query) ([]content.Item, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	matched := make([]content.Item, 0, len(r.items[q.Type]))
	for _, it := range r.items[q.Type] {
		if q.Match(&it) {
			matched = append(matched, it)
		}
	}
	r.mu.RUnlock()

	content.Describe(q.Type).Sort(matched)

	total := len(matched)
	from := q.Offset()
	if from >= total {
		return []content.Item{}, total, nil
	}
	to := from + q.PageSize
	if to > total {
		to = total
	}

	return matched[from:to], total, nil
}

func (r *Repository) Get(ctx context.Context, t content.Type, id string) (content.Item, error) {
	if err := ctx.Err(); err != nil {
		return content.Item{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[t][id]
	if !ok {
		return content.Item{}, &content.NotFoundError{Type: t, ID: id}
	}

	return it, nil
}

func (r *Repository) Create(ctx context.Context, it content.Item) (content.Item, error) {
	if err := ctx.Err(); err != nil {
		return content.Item{}, err
	}

	now := r.now().UTC().Truncate(time.Microsecond)
	it.ID = r.newID()
	it.CreatedAt = now
	it.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.Type][it.ID] = it

	return it, nil
}

// Update replaces the stored item, keeping its identity, creation time and
// creator. A set it.UpdatedAt must match the stored one.
func (r *Repository) Update(ctx context.Context, it content.Item) (content.Item, error) {
	if err := ctx.Err(); err != nil {
		return content.Item{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[it.Type][it.ID]
	if !ok {
		return content.Item{}, &content.NotFoundError{Type: it.Type, ID: it.ID}
	}
	if !it.UpdatedAt.IsZero() && !it.UpdatedAt.Equal(prev.UpdatedAt) {
		return content.Item{}, content.ErrConflict
	}

	it.CreatedAt = prev.CreatedAt
	it.CreatedBy = prev.CreatedBy
	it.UpdatedAt = content.Touch(prev.UpdatedAt, r.now())
	r.items[it.Type][it.ID] = it

	return it, nil
}

func (r *Repository) Delete(ctx context.Context, t content.Type, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t][id]; !ok {
		return &content.NotFoundError{Type: t, ID: id}
	}
	delete(r.items[t], id)

	return nil
}
