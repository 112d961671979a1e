package content_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/content-admin/internal/cache"
	"github.com/daniilsolovey/content-admin/internal/content"
	"github.com/daniilsolovey/content-admin/internal/memdb"
)

func seedBanners(t *testing.T, repo content.Repository) map[string]content.Item {
	t.Helper()
	ctx := context.Background()

	seed := []content.Item{
		{Type: content.TypeBanner, Status: content.StatusActive, Title: "Summer sale", Description: "Seaside", Priority: 1, StartDate: day(-5), EndDate: day(5)},
		{Type: content.TypeBanner, Status: content.StatusActive, Title: "Autumn", Description: "Mountains", Priority: 2, StartDate: day(10), EndDate: day(20)},
		{Type: content.TypeBanner, Status: content.StatusActive, Title: "Spring", Description: "Flowers", Priority: 3, StartDate: day(-20), EndDate: day(-10)},
		{Type: content.TypeBanner, Status: content.StatusDraft, Title: "Winter", Description: "Snow", Priority: 4, StartDate: day(-5), EndDate: day(5)},
	}

	byTitle := make(map[string]content.Item, len(seed))
	for _, it := range seed {
		created, err := repo.Create(ctx, it)
		require.NoError(t, err)
		byTitle[created.Title] = created
	}

	return byTitle
}

func TestEngine_List(t *testing.T) {
	ctx := context.Background()
	repo := memdb.New().WithClock(clock)
	seedBanners(t, repo)
	engine := content.NewEngine(repo, cache.NewMemory(0), noOpLogger()).WithClock(clock)

	t.Run("effective status and paging", func(t *testing.T) {
		page, err := engine.List(ctx, content.ListParams{Type: content.TypeBanner, PageSize: 3})
		require.NoError(t, err)

		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 3, page.PerPage)
		require.Len(t, page.Items, 3)

		var got []content.Status
		for _, it := range page.Items {
			got = append(got, it.Effective)
		}
		assert.Equal(t, []content.Status{content.StatusActive, content.StatusScheduled, content.StatusEnded}, got)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := engine.List(ctx, content.ListParams{Type: content.TypeBanner, Page: 5})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 4, page.Total)
	})

	t.Run("effective status filter", func(t *testing.T) {
		page, err := engine.List(ctx, content.ListParams{
			Type:    content.TypeBanner,
			Filters: map[string]string{content.FilterEffectiveStatus: "ended"},
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Spring", page.Items[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		page, err := engine.List(ctx, content.ListParams{Type: content.TypeBanner, Search: "nothing like this"})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := engine.List(ctx, content.ListParams{Type: content.TypeBanner, Page: -1})
		var verr *content.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("huge page", func(t *testing.T) {
		_, err := engine.List(ctx, content.ListParams{Type: content.TypeBanner, Page: math.MaxInt / 50, PageSize: 100})
		var verr *content.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "page")
	})
}

func TestEngine_ListUsesCache(t *testing.T) {
	ctx := context.Background()
	calls := 0
	repo := &stubRepository{
		listFunc: func(ctx context.Context, q content.Query) ([]content.Item, int, error) {
			calls++
			return []content.Item{{ID: "1", Type: content.TypeFAQ, Status: content.StatusPublished}}, 1, nil
		},
	}
	engine := content.NewEngine(repo, cache.NewMemory(time.Minute), noOpLogger()).WithClock(clock)

	for i := 0; i < 3; i++ {
		page, err := engine.List(ctx, content.ListParams{Type: content.TypeFAQ})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, content.StatusPublished, page.Items[0].Effective)
	}
	assert.Equal(t, 1, calls)

	_, err := engine.List(ctx, content.ListParams{Type: content.TypeFAQ, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "a different page is a different entry")
}

func TestEngine_Errors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("repository failure", func(t *testing.T) {
		repo := &stubRepository{
			listFunc: func(context.Context, content.Query) ([]content.Item, int, error) { return nil, 0, boom },
		}
		engine := content.NewEngine(repo, nil, noOpLogger())

		_, err := engine.List(context.Background(), content.ListParams{Type: content.TypeNotice})

		var rerr *content.RepositoryError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "list", rerr.Op)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, content.ErrTimeout)
	})

	t.Run("timeout", func(t *testing.T) {
		repo := &stubRepository{
			listFunc: func(ctx context.Context, _ content.Query) ([]content.Item, int, error) {
				<-ctx.Done()
				return nil, 0, ctx.Err()
			},
		}
		engine := content.NewEngine(repo, nil, noOpLogger()).WithTimeout(10 * time.Millisecond)

		_, err := engine.List(context.Background(), content.ListParams{Type: content.TypeNotice})

		assert.ErrorIs(t, err, content.ErrTimeout)
		var rerr *content.RepositoryError
		assert.ErrorAs(t, err, &rerr)
	})

	t.Run("caller cancellation is not a repository error", func(t *testing.T) {
		repo := &stubRepository{
			listFunc: func(ctx context.Context, _ content.Query) ([]content.Item, int, error) {
				<-ctx.Done()
				return nil, 0, ctx.Err()
			},
		}
		engine := content.NewEngine(repo, nil, noOpLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.List(ctx, content.ListParams{Type: content.TypeNotice})

		assert.ErrorIs(t, err, context.Canceled)
		var rerr *content.RepositoryError
		assert.False(t, errors.As(err, &rerr))
	})

	t.Run("missing item", func(t *testing.T) {
		engine := content.NewEngine(memdb.New(), nil, noOpLogger())

		_, err := engine.Get(context.Background(), content.TypeTerm, "missing")

		assert.ErrorIs(t, err, content.ErrNotFound)
		var nf *content.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "missing", nf.ID)
	})
}

func TestEngine_Get(t *testing.T) {
	ctx := context.Background()
	repo := memdb.New().WithClock(clock)
	banners := seedBanners(t, repo)
	engine := content.NewEngine(repo, cache.NewMemory(0), noOpLogger()).WithClock(clock)

	got, err := engine.Get(ctx, content.TypeBanner, banners["Autumn"].ID)
	require.NoError(t, err)
	assert.Equal(t, banners["Autumn"], got.Item)
	assert.Equal(t, content.StatusScheduled, got.Effective)
}

func TestEngine_Summary(t *testing.T) {
	repo := memdb.New().WithClock(clock)
	seedBanners(t, repo)
	engine := content.NewEngine(repo, nil, noOpLogger()).WithClock(clock)

	sum, err := engine.Summary(context.Background(), content.TypeBanner)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, map[content.Status]int{
		content.StatusActive:    1,
		content.StatusScheduled: 1,
		content.StatusEnded:     1,
		content.StatusDraft:     1,
	}, sum.ByStatus)
}
