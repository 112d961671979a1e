package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/daniilsolovey/content-admin/internal/metrics"
)

// SystemActor is recorded as creator when no admin identity is known.
const SystemActor = "system"

// maxUpdateAttempts bounds how often Update re-reads an item that keeps
// changing underneath it.
const maxUpdateAttempts = 3

// Coordinator validates and applies mutations and keeps the listing cache
// in step with the repository.
type Coordinator struct {
	repo    Repository
	cache   Cache
	log     *slog.Logger
	timeout time.Duration
}

func NewCoordinator(repo Repository, cache Cache, logger *slog.Logger) *Coordinator {
	if cache == nil {
		cache = NopCache{}
	}

	return &Coordinator{
		repo:    repo,
		cache:   cache,
		log:     logger,
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the per-call repository timeout; zero disables it.
func (c *Coordinator) WithTimeout(d time.Duration) *Coordinator {
	c.timeout = d
	return c
}

// Create stores a new item of type t built from draft. A missing status
// defaults to draft.
func (c *Coordinator) Create(ctx context.Context, t Type, actor string, draft Fields) (Item, error) {
	if strings.TrimSpace(actor) == "" {
		actor = SystemActor
	}

	it := Item{Type: t, Status: StatusDraft, CreatedBy: actor}
	draft.Apply(&it)
	if it.Status == "" {
		it.Status = StatusDraft
	}
	prepare(&it)

	if err := Validate(&it, true); err != nil {
		metrics.RecordMutation(string(t), "create", "invalid")
		return Item{}, err
	}

	var created Item
	err := callRepo(ctx, c.timeout, "create", func(ctx context.Context) error {
		var err error
		created, err = c.repo.Create(ctx, it)
		return err
	})
	if err != nil {
		metrics.RecordMutation(string(t), "create", "error")
		c.log.Error("create content failed", "type", t, "error", err)
		return Item{}, err
	}

	c.invalidate(ctx, t, "")
	metrics.RecordMutation(string(t), "create", "ok")
	c.log.Info("content created", "type", t, "id", created.ID, "createdBy", created.CreatedBy)

	return created, nil
}

// Update applies patch to the stored item id. The merged item must pass
// validation before it reaches the repository. When another writer gets
// there first the item is re-read and the patch applied again.
func (c *Coordinator) Update(ctx context.Context, t Type, id string, patch Fields) (Item, error) {
	var (
		updated Item
		err     error
	)
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		updated, err = c.update(ctx, t, id, patch)
		if !errors.Is(err, ErrConflict) {
			break
		}
		c.log.Debug("content changed during update, retrying", "type", t, "id", id, "attempt", attempt)
	}
	if err != nil {
		return Item{}, err
	}

	c.invalidate(ctx, t, id)
	metrics.RecordMutation(string(t), "update", "ok")
	c.log.Info("content updated", "type", t, "id", id)

	return updated, nil
}

// update merges patch onto the stored item and writes it back only if
// nobody changed the item in between.
func (c *Coordinator) update(ctx context.Context, t Type, id string, patch Fields) (Item, error) {
	var current Item
	err := callRepo(ctx, c.timeout, "get", func(ctx context.Context) error {
		var err error
		current, err = c.repo.Get(ctx, t, id)
		return err
	})
	if err != nil {
		metrics.RecordMutation(string(t), "update", resultOf(err))
		return Item{}, err
	}

	next := current
	patch.Apply(&next)
	prepare(&next)
	next.UpdatedAt = current.UpdatedAt

	if err := Validate(&next, false); err != nil {
		metrics.RecordMutation(string(t), "update", "invalid")
		return Item{}, err
	}

	var updated Item
	err = callRepo(ctx, c.timeout, "update", func(ctx context.Context) error {
		var err error
		updated, err = c.repo.Update(ctx, next)
		return err
	})
	if err != nil {
		metrics.RecordMutation(string(t), "update", resultOf(err))
		if !errors.Is(err, ErrConflict) {
			c.log.Error("update content failed", "type", t, "id", id, "error", err)
		}
		return Item{}, err
	}

	return updated, nil
}

// Delete removes id. Deleting a missing id reports a *NotFoundError, also
// when it was deleted before.
func (c *Coordinator) Delete(ctx context.Context, t Type, id string) error {
	err := callRepo(ctx, c.timeout, "delete", func(ctx context.Context) error {
		return c.repo.Delete(ctx, t, id)
	})
	if err != nil {
		metrics.RecordMutation(string(t), "delete", resultOf(err))
		return err
	}

	c.invalidate(ctx, t, id)
	metrics.RecordMutation(string(t), "delete", "ok")
	c.log.Info("content deleted", "type", t, "id", id)

	return nil
}

func (c *Coordinator) invalidate(ctx context.Context, t Type, id string) {
	if id != "" {
		if err := c.cache.InvalidateItem(ctx, t, id); err != nil {
			c.log.Warn("cache item invalidation failed", "type", t, "id", id, "error", err)
		}
	}

	if err := c.cache.InvalidateList(ctx, t); err != nil {
		c.log.Warn("cache list invalidation failed", "type", t, "error", err)
	}
}

// prepare normalizes client input before validation.
func prepare(it *Item) {
	it.Title = strings.TrimSpace(it.Title)
	it.LinkURL = strings.TrimSpace(it.LinkURL)
	it.Version = strings.TrimSpace(it.Version)
	if it.Type == TypeNotice {
		it.Content = SanitizeRichText(it.Content)
	}
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	}

	return "error"
}
