package db

import (
	"context"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/content-admin/internal/content"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	if testDB == nil {
		t.Skipf("test database unavailable: %v", testDBSetup)
	}
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx).WithClock(func() time.Time { return BaseTime })
	return tx, ctx, repo
}

func listQuery(t *testing.T, typ content.Type, search string, filters map[string]string, page, pageSize int) content.Query {
	t.Helper()

	q, err := content.BuildQuery(typ, search, filters, page, pageSize, BaseTime)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	return q
}

func ids(items []content.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}
