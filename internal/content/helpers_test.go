package content_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/content-admin/internal/content"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func clock() time.Time { return testNow }

func ptr[T any](v T) *T { return &v }

func day(n int) *time.Time {
	t := testNow.Add(time.Duration(n) * 24 * time.Hour)
	return &t
}

// stubRepository is a manual stub implementation of content.Repository
type stubRepository struct {
	listFunc   func(ctx context.Context, q content.Query) ([]content.Item, int, error)
	getFunc    func(ctx context.Context, t content.Type, id string) (content.Item, error)
	createFunc func(ctx context.Context, it content.Item) (content.Item, error)
	updateFunc func(ctx context.Context, it content.Item) (content.Item, error)
	deleteFunc func(ctx context.Context, t content.Type, id string) error
}

func (s *stubRepository) List(ctx context.Context, q content.Query) ([]content.Item, int, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, q)
	}
	return nil, 0, nil
}

func (s *stubRepository) Get(ctx context.Context, t content.Type, id string) (content.Item, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, t, id)
	}
	return content.Item{}, &content.NotFoundError{Type: t, ID: id}
}

func (s *stubRepository) Create(ctx context.Context, it content.Item) (content.Item, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, it)
	}
	return it, nil
}

func (s *stubRepository) Update(ctx context.Context, it content.Item) (content.Item, error) {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, it)
	}
	return it, nil
}

func (s *stubRepository) Delete(ctx context.Context, t content.Type, id string) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, t, id)
	}
	return nil
}

// listerFunc adapts a function to content.Lister
type listerFunc func(ctx context.Context, p content.ListParams) (content.Page, error)

func (f listerFunc) List(ctx context.Context, p content.ListParams) (content.Page, error) {
	return f(ctx, p)
}
