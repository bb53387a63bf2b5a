// Package cache stores rendered JSON-LD documents. Keys embed the item's
// last-modified timestamp, so any content edit naturally expires old entries;
// explicit deletion on save is a belt-and-suspenders measure on top.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a key is absent.
var ErrNotFound = errors.New("cache entry not found")

// Cache is the injected cache collaborator. Implementations provide
// racy-but-safe semantics: stale reads are tolerable, corruption is not.
type Cache interface {
	// Get returns the cached value, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key builds the cache key for an item. The timestamp component is the
// invalidation mechanism: two renders of the same item with different
// modification times never collide.
func Key(itemID int64, modified time.Time) string {
	return fmt.Sprintf("schema_%d_%d", itemID, modified.Unix())
}
