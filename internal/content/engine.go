package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/content-admin/internal/metrics"
)

// DefaultTimeout bounds a single repository call.
const DefaultTimeout = 5 * time.Second

// ListParams is one listing request as issued by a client screen.
type ListParams struct {
	Type     Type
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

// Lister produces pages of a listing.
type Lister interface {
	List(ctx context.Context, p ListParams) (Page, error)
}

// Engine serves listings and single items with their effective status.
type Engine struct {
	repo    Repository
	cache   Cache
	log     *slog.Logger
	now     func() time.Time
	timeout time.Duration
}

func NewEngine(repo Repository, cache Cache, logger *slog.Logger) *Engine {
	if cache == nil {
		cache = NopCache{}
	}

	return &Engine{
		repo:    repo,
		cache:   cache,
		log:     logger,
		now:     time.Now,
		timeout: DefaultTimeout,
	}
}

// WithClock replaces the clock used to resolve effective status.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// WithTimeout sets the per-call repository timeout; zero disables it.
func (e *Engine) WithTimeout(d time.Duration) *Engine {
	e.timeout = d
	return e
}

type cachedList struct {
	Items []Item
	Total int
}

// List returns the requested page of p.Type together with the number of
// items matching the search and filters.
func (e *Engine) List(ctx context.Context, p ListParams) (Page, error) {
	start := time.Now()
	now := e.now()

	q, err := BuildQuery(p.Type, p.Search, p.Filters, p.Page, p.PageSize, now)
	if err != nil {
		metrics.ObserveListing(string(p.Type), "invalid", time.Since(start))
		return Page{}, err
	}

	items, total, err := e.load(ctx, q)
	if err != nil {
		metrics.ObserveListing(string(p.Type), "error", time.Since(start))
		return Page{}, err
	}

	page := Page{
		Items:      make([]Listed, len(items)),
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PageSize,
		TotalPages: TotalPages(total, q.PageSize),
	}
	for i := range items {
		page.Items[i] = Listed{Item: items[i], Effective: ResolveStatus(&items[i], now)}
	}

	metrics.ObserveListing(string(p.Type), "ok", time.Since(start))
	return page, nil
}

// Get returns a single item with its effective status.
func (e *Engine) Get(ctx context.Context, t Type, id string) (Listed, error) {
	key := ItemKey(id)

	var it Item
	gen, hit := e.lookup(ctx, t, key, &it)
	if hit {
		return Listed{Item: it, Effective: ResolveStatus(&it, e.now())}, nil
	}

	err := callRepo(ctx, e.timeout, "get", func(ctx context.Context) error {
		var err error
		it, err = e.repo.Get(ctx, t, id)
		return err
	})
	if err != nil {
		return Listed{}, err
	}

	e.store(ctx, t, key, gen, it)
	return Listed{Item: it, Effective: ResolveStatus(&it, e.now())}, nil
}

// Summary counts every item of t by effective status.
func (e *Engine) Summary(ctx context.Context, t Type) (Summary, error) {
	now := e.now()
	sum := Summary{Type: t, ByStatus: make(map[Status]int)}

	for page := 0; ; page++ {
		q, err := BuildQuery(t, "", nil, page, MaxPageSize, now)
		if err != nil {
			return Summary{}, err
		}

		var items []Item
		err = callRepo(ctx, e.timeout, "summary", func(ctx context.Context) error {
			var err error
			items, sum.Total, err = e.repo.List(ctx, q)
			return err
		})
		if err != nil {
			return Summary{}, err
		}

		for i := range items {
			sum.ByStatus[ResolveStatus(&items[i], now)]++
		}
		if len(items) < q.PageSize || q.Offset()+len(items) >= sum.Total {
			return sum, nil
		}
	}
}

func (e *Engine) load(ctx context.Context, q Query) ([]Item, int, error) {
	key := "list:" + q.Key()

	var gen int64
	if q.Cacheable() {
		var (
			cached cachedList
			hit    bool
		)
		if gen, hit = e.lookup(ctx, q.Type, key, &cached); hit {
			return cached.Items, cached.Total, nil
		}
	}

	var (
		items []Item
		total int
	)
	err := callRepo(ctx, e.timeout, "list", func(ctx context.Context) error {
		var err error
		items, total, err = e.repo.List(ctx, q)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Item{}
	}

	if q.Cacheable() {
		e.store(ctx, q.Type, key, gen, cachedList{Items: items, Total: total})
	}

	return items, total, nil
}

// lookup decodes the cached entry into dst. The returned generation is
// the one to pass to store after a miss.
func (e *Engine) lookup(ctx context.Context, t Type, key string, dst any) (int64, bool) {
	data, gen, ok, err := e.cache.Lookup(ctx, t, key)
	if err != nil {
		metrics.RecordCacheLookup(string(t), "error")
		e.log.Warn("cache lookup failed", "type", t, "key", key, "error", err)
		return gen, false
	}
	if !ok {
		metrics.RecordCacheLookup(string(t), "miss")
		return gen, false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		metrics.RecordCacheLookup(string(t), "error")
		e.log.Warn("cache entry is corrupt", "type", t, "key", key, "error", err)
		return gen, false
	}

	metrics.RecordCacheLookup(string(t), "hit")
	return gen, true
}

func (e *Engine) store(ctx context.Context, t Type, key string, gen int64, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		e.log.Warn("cache encode failed", "type", t, "key", key, "error", err)
		return
	}

	if err := e.cache.Store(ctx, t, key, gen, data); err != nil {
		e.log.Warn("cache store failed", "type", t, "key", key, "error", err)
	}
}

// callRepo runs fn under the repository timeout and classifies its error:
// missing items pass through, deadlines become ErrTimeout, caller
// cancellation is returned as is and anything else is a RepositoryError.
func callRepo(ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) error) error {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := fn(callCtx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("%s: %w", op, ctx.Err())
	case errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded:
		return &RepositoryError{Op: op, Err: fmt.Errorf("%w after %s", ErrTimeout, timeout)}
	default:
		return &RepositoryError{Op: op, Err: err}
	}
}
