package content

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is a normalized listing request against one content type.
// Page is zero-based.
type Query struct {
	Type     Type
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
	Now      time.Time
}

// BuildQuery validates and normalizes a listing request. Empty filter values
// mean "no constraint" and are dropped. A zero pageSize selects the default.
func BuildQuery(t Type, search string, filters map[string]string, page, pageSize int, now time.Time) (Query, error) {
	d := Describe(t)
	verr := &ValidationError{}

	if page < 0 {
		verr.Add("page", "must be zero or greater")
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		verr.Add("pageSize", "must be between 1 and "+strconv.Itoa(MaxPageSize))
	} else if page > (math.MaxInt-pageSize)/pageSize {
		// the end of the page must fit in an int
		verr.Add("page", "is too large")
	}

	q := Query{
		Type:     t,
		Search:   normalize(search),
		Filters:  make(map[string]string, len(filters)),
		Page:     page,
		PageSize: pageSize,
		Now:      now,
	}

	for field, value := range filters {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if !d.Filterable(field) {
			verr.Add(field, "is not a filter of "+string(t))
			continue
		}

		switch field {
		case FilterPopular, FilterImportant, FilterRequired:
			b, err := strconv.ParseBool(value)
			if err != nil {
				verr.Add(field, "must be true or false")
				continue
			}
			value = strconv.FormatBool(b)
		case FilterStatus:
			if !d.HasStatus(Status(value)) {
				verr.Add(field, "unknown status "+strconv.Quote(value))
				continue
			}
		case FilterEffectiveStatus:
			if _, ok := effectiveLabels[Status(value)]; !ok {
				verr.Add(field, "unknown status "+strconv.Quote(value))
				continue
			}
		}

		q.Filters[field] = value
	}

	if err := verr.OrNil(); err != nil {
		return Query{}, err
	}

	return q, nil
}

// Offset is the number of matching items skipped before this page.
func (q Query) Offset() int {
	return q.Page * q.PageSize
}

// Match reports whether it satisfies the search text and every filter.
func (q Query) Match(it *Item) bool {
	if it.Type != q.Type {
		return false
	}

	if q.Search != "" {
		found := false
		for _, s := range Describe(q.Type).searchable(it) {
			if strings.Contains(strings.ToLower(s), q.Search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for field, want := range q.Filters {
		if fieldValue(it, field, q.Now) != want {
			return false
		}
	}

	return true
}

// Cacheable reports whether the result depends only on the stored data.
// Effective-status filters depend on the clock and are never cached.
func (q Query) Cacheable() bool {
	_, timed := q.Filters[FilterEffectiveStatus]
	return !timed
}

// Key is a deterministic identifier of the query, excluding Now.
func (q Query) Key() string {
	v := url.Values{}
	v.Set("search", q.Search)
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	for field, value := range q.Filters {
		v.Set("f."+field, value)
	}

	return v.Encode()
}

// TotalPages is the number of pages needed for total items.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}
