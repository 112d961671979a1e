package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"

	"github.com/daniilsolovey/content-admin/internal/content"
)

// row is a table model convertible to and from content.Item.
type row[M any] interface {
	*M
	toItem() content.Item
	fromItem(content.Item)
}

// table describes how a content.Query maps onto one table.
type table struct {
	id      string
	search  []string
	filters map[string]string
	window  [2]string
	order   []string
}

var tables = map[content.Type]table{
	content.TypeBanner: {
		id:     `"t"."bannerId"`,
		search: []string{`"t"."bannerId"::text`, `"t"."title"`, `"t"."description"`},
		filters: map[string]string{
			content.FilterStatus:   `"t"."status"`,
			content.FilterType:     `"t"."type"`,
			content.FilterPosition: `"t"."position"`,
		},
		window: [2]string{`"t"."startDate"`, `"t"."endDate"`},
		order:  []string{`"t"."priority" ASC`, `"t"."createdAt" DESC`, `"t"."bannerId" ASC`},
	},
	content.TypeFAQ: {
		id:     `"t"."faqId"`,
		search: []string{`"t"."faqId"::text`, `"t"."question"`, `"t"."answer"`},
		filters: map[string]string{
			content.FilterStatus:   `"t"."status"`,
			content.FilterCategory: `"t"."category"`,
			content.FilterPopular:  `"t"."isPopular"`,
		},
		order: []string{`"t"."orderNumber" ASC`, `"t"."createdAt" DESC`, `"t"."faqId" ASC`},
	},
	content.TypeNotice: {
		id:     `"t"."noticeId"`,
		search: []string{`"t"."noticeId"::text`, `"t"."title"`, `"t"."content"`},
		filters: map[string]string{
			content.FilterStatus:    `"t"."status"`,
			content.FilterCategory:  `"t"."category"`,
			content.FilterImportant: `"t"."isImportant"`,
		},
		window: [2]string{`"t"."startDate"`, `"t"."endDate"`},
		order:  []string{`"t"."isImportant" DESC`, `"t"."createdAt" DESC`, `"t"."noticeId" ASC`},
	},
	content.TypeTerm: {
		id:     `"t"."termId"`,
		search: []string{`"t"."termId"::text`, `"t"."title"`, `"t"."content"`},
		filters: map[string]string{
			content.FilterStatus:   `"t"."status"`,
			content.FilterCategory: `"t"."category"`,
			content.FilterRequired: `"t"."isRequired"`,
			content.FilterVersion:  `"t"."version"`,
		},
		order: []string{`"t"."effectiveDate" DESC NULLS LAST`, `"t"."createdAt" DESC`, `"t"."termId" ASC`},
	},
}

// Repository is the PostgreSQL content.Repository.
type Repository struct {
	db  pg.DBI
	now func() time.Time
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

// WithClock replaces the clock used for CreatedAt and UpdatedAt.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// List returns one page of q together with the number of matching rows.
func (r *Repository) List(ctx context.Context, q content.Query) ([]content.Item, int, error) {
	switch q.Type {
	case content.TypeBanner:
		return list[Banner](ctx, r.db, q)
	case content.TypeFAQ:
		return list[Faq](ctx, r.db, q)
	case content.TypeNotice:
		return list[Notice](ctx, r.db, q)
	case content.TypeTerm:
		return list[Term](ctx, r.db, q)
	}

	return nil, 0, fmt.Errorf("list: unsupported content type %q", q.Type)
}

func (r *Repository) Get(ctx context.Context, t content.Type, id string) (content.Item, error) {
	switch t {
	case content.TypeBanner:
		return get[Banner](ctx, r.db, t, id)
	case content.TypeFAQ:
		return get[Faq](ctx, r.db, t, id)
	case content.TypeNotice:
		return get[Notice](ctx, r.db, t, id)
	case content.TypeTerm:
		return get[Term](ctx, r.db, t, id)
	}

	return content.Item{}, fmt.Errorf("get: unsupported content type %q", t)
}

func (r *Repository) Create(ctx context.Context, it content.Item) (content.Item, error) {
	now := r.now().UTC().Truncate(time.Microsecond)
	it.ID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now

	switch it.Type {
	case content.TypeBanner:
		return insert[Banner](ctx, r.db, it)
	case content.TypeFAQ:
		return insert[Faq](ctx, r.db, it)
	case content.TypeNotice:
		return insert[Notice](ctx, r.db, it)
	case content.TypeTerm:
		return insert[Term](ctx, r.db, it)
	}

	return content.Item{}, fmt.Errorf("create: unsupported content type %q", it.Type)
}

// Update rewrites the row of it.ID inside a transaction, keeping the stored
// creation time and creator and moving updatedAt strictly forward. A set
// it.UpdatedAt must match the locked row or ErrConflict is returned.
func (r *Repository) Update(ctx context.Context, it content.Item) (content.Item, error) {
	switch it.Type {
	case content.TypeBanner:
		return update[Banner](ctx, r.db, it, r.now())
	case content.TypeFAQ:
		return update[Faq](ctx, r.db, it, r.now())
	case content.TypeNotice:
		return update[Notice](ctx, r.db, it, r.now())
	case content.TypeTerm:
		return update[Term](ctx, r.db, it, r.now())
	}

	return content.Item{}, fmt.Errorf("update: unsupported content type %q", it.Type)
}

func (r *Repository) Delete(ctx context.Context, t content.Type, id string) error {
	switch t {
	case content.TypeBanner:
		return remove[Banner](ctx, r.db, t, id)
	case content.TypeFAQ:
		return remove[Faq](ctx, r.db, t, id)
	case content.TypeNotice:
		return remove[Notice](ctx, r.db, t, id)
	case content.TypeTerm:
		return remove[Term](ctx, r.db, t, id)
	}

	return fmt.Errorf("delete: unsupported content type %q", t)
}

func list[M any, P row[M]](ctx context.Context, db pg.DBI, q content.Query) ([]content.Item, int, error) {
	tbl := tables[q.Type]

	var rows []M
	query := db.ModelContext(ctx, &rows)
	query = applyQuery(query, tbl, q)

	total, err := query.
		OrderExpr(strings.Join(tbl.order, ", ")).
		Limit(q.PageSize).
		Offset(q.Offset()).
		SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", q.Type, err)
	}

	items := make([]content.Item, len(rows))
	for i := range rows {
		items[i] = normalizeItem(P(&rows[i]).toItem())
	}

	return items, total, nil
}

// applyQuery adds the search and filter conditions of q.
func applyQuery(query *orm.Query, tbl table, q content.Query) *orm.Query {
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		query = query.WhereGroup(func(g *orm.Query) (*orm.Query, error) {
			for _, col := range tbl.search {
				g = g.WhereOr(col+` ILIKE ?`, pattern)
			}
			return g, nil
		})
	}

	for field, value := range q.Filters {
		switch field {
		case content.FilterEffectiveStatus:
			query = query.Where(
				`CASE WHEN "t"."status" = ? THEN ? WHEN ? < `+tbl.window[0]+` THEN ? WHEN ? > `+tbl.window[1]+` THEN ? ELSE ? END = ?`,
				content.StatusDraft, content.StatusDraft,
				q.Now, content.StatusScheduled,
				q.Now, content.StatusEnded,
				content.StatusActive,
				value,
			)
		case content.FilterPopular, content.FilterImportant, content.FilterRequired:
			query = query.Where(tbl.filters[field]+` = ?`, value == "true")
		default:
			query = query.Where(tbl.filters[field]+` = ?`, value)
		}
	}

	return query
}

func get[M any, P row[M]](ctx context.Context, db pg.DBI, t content.Type, id string) (content.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return content.Item{}, &content.NotFoundError{Type: t, ID: id}
	}

	m := P(new(M))
	err := db.ModelContext(ctx, m).
		Where(tables[t].id+` = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return content.Item{}, &content.NotFoundError{Type: t, ID: id}
	} else if err != nil {
		return content.Item{}, fmt.Errorf("failed to get %s by id: %w", t, err)
	}

	return normalizeItem(m.toItem()), nil
}

func insert[M any, P row[M]](ctx context.Context, db pg.DBI, it content.Item) (content.Item, error) {
	m := P(new(M))
	m.fromItem(it)

	if _, err := db.ModelContext(ctx, m).Insert(); err != nil {
		return content.Item{}, fmt.Errorf("failed to insert %s: %w", it.Type, err)
	}

	return it, nil
}

func update[M any, P row[M]](ctx context.Context, db pg.DBI, it content.Item, now time.Time) (content.Item, error) {
	if _, err := uuid.Parse(it.ID); err != nil {
		return content.Item{}, &content.NotFoundError{Type: it.Type, ID: it.ID}
	}

	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		prev := P(new(M))
		err := tx.ModelContext(ctx, prev).
			Where(tables[it.Type].id+` = ?`, it.ID).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return &content.NotFoundError{Type: it.Type, ID: it.ID}
		} else if err != nil {
			return fmt.Errorf("failed to lock %s: %w", it.Type, err)
		}

		stored := prev.toItem()
		if !it.UpdatedAt.IsZero() && !it.UpdatedAt.Equal(stored.UpdatedAt) {
			return content.ErrConflict
		}
		it.CreatedAt = stored.CreatedAt.UTC()
		it.CreatedBy = stored.CreatedBy
		it.UpdatedAt = content.Touch(stored.UpdatedAt.UTC(), now)

		m := P(new(M))
		m.fromItem(it)
		if _, err := tx.ModelContext(ctx, m).WherePK().Update(); err != nil {
			return fmt.Errorf("failed to update %s: %w", it.Type, err)
		}

		return nil
	})
	if err != nil {
		return content.Item{}, err
	}

	return it, nil
}

func remove[M any, P row[M]](ctx context.Context, db pg.DBI, t content.Type, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &content.NotFoundError{Type: t, ID: id}
	}

	res, err := db.ModelContext(ctx, P(nil)).
		Where(tables[t].id+` = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t, err)
	}
	if res.RowsAffected() == 0 {
		return &content.NotFoundError{Type: t, ID: id}
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func normalizeItem(it content.Item) content.Item {
	it.CreatedAt = it.CreatedAt.UTC()
	it.UpdatedAt = it.UpdatedAt.UTC()
	return it
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
