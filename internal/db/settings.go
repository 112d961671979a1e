package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// LoadSetting returns the JSON document stored under key. ok is false when
// the key has never been saved.
func (r *Repository) LoadSetting(ctx context.Context, key string) (value []byte, ok bool, err error) {
	s := &Setting{Key: key}
	err = r.db.ModelContext(ctx, s).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to load setting %q: %w", key, err)
	}

	return []byte(s.Value), true, nil
}

// SaveSetting stores value under key, replacing the previous document.
func (r *Repository) SaveSetting(ctx context.Context, key string, value []byte) error {
	s := &Setting{
		Key:       key,
		Value:     string(value),
		UpdatedAt: r.now().UTC(),
	}

	_, err := r.db.ModelContext(ctx, s).
		OnConflict(`("key") DO UPDATE`).
		Set(`"value" = EXCLUDED."value"`).
		Set(`"updatedAt" = EXCLUDED."updatedAt"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}

	return nil
}
