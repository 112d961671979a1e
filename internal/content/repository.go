package content

import (
	"context"
	"time"
)

// Repository is the canonical store of content items. Implementations
// assign ID, CreatedAt and UpdatedAt and report missing items with a
// *NotFoundError. Update treats a non-zero it.UpdatedAt as the version the
// caller read and fails with ErrConflict when the stored row has moved on.
type Repository interface {
	List(ctx context.Context, q Query) ([]Item, int, error)
	Get(ctx context.Context, t Type, id string) (Item, error)
	Create(ctx context.Context, it Item) (Item, error)
	Update(ctx context.Context, it Item) (Item, error)
	Delete(ctx context.Context, t Type, id string) error
}

// Cache holds serialized listings and items per content type.
//
// Listings and items of a type each carry a generation that every
// invalidation advances. Lookup reports the generation it observed and
// Store drops the write when the generation has moved on since, so a
// read that raced a mutation never repopulates the cache with old data.
type Cache interface {
	Lookup(ctx context.Context, t Type, key string) (data []byte, gen int64, ok bool, err error)
	Store(ctx context.Context, t Type, key string, gen int64, data []byte) error
	InvalidateList(ctx context.Context, t Type) error
	InvalidateItem(ctx context.Context, t Type, id string) error
}

// Cache keys of single items live outside the listing generation.
const itemKeyPrefix = "item:"

// ItemKey is the cache key of a single item.
func ItemKey(id string) string {
	return itemKeyPrefix + id
}

// IsItemKey reports whether key addresses a single item.
func IsItemKey(key string) bool {
	return len(key) > len(itemKeyPrefix) && key[:len(itemKeyPrefix)] == itemKeyPrefix
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Lookup(context.Context, Type, string) ([]byte, int64, bool, error) {
	return nil, 0, false, nil
}

func (NopCache) Store(context.Context, Type, string, int64, []byte) error { return nil }
func (NopCache) InvalidateList(context.Context, Type) error               { return nil }
func (NopCache) InvalidateItem(context.Context, Type, string) error       { return nil }

// Touch returns the UpdatedAt for an item last updated at prev. The result
// is strictly after prev even when the clock has not advanced.
func Touch(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}

	return now
}
