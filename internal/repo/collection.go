package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/store"
)

// Collection persists a whole entity collection as one JSON array under one
// store key. Every mutation path is load, transform in memory, save the full
// array back; there is no append log or partial update.
type Collection[T any] struct {
	store store.Store
	key   string
}

// NewCollection binds an entity type to its store key.
func NewCollection[T any](s store.Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

// Key returns the store key the collection is persisted under.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load reads and decodes the whole collection. A missing key yields an empty
// slice. A corrupt value is logged and the collection resets to empty rather
// than failing the caller.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.WithFields(log.Fields{"key": c.key}).WithError(err).Warn("Stored collection is corrupt, resetting to empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save encodes and rewrites the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}
