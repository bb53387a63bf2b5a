package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

// DefaultBucket is the KV bucket rendered schemas are stored in.
const DefaultBucket = "SCHEMAGEN_CACHE"

// NATSKV is a Cache backed by a NATS JetStream key-value bucket, for
// deployments where multiple render processes share one cache.
type NATSKV struct {
	kv jetstream.KeyValue
}

// NewNATSKV creates a KV-backed cache, creating the bucket if needed.
func NewNATSKV(ctx context.Context, js jetstream.JetStream, bucket string) (*NATSKV, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:      bucket,
			Description: "schemagen rendered JSON-LD cache",
		})
		if err != nil {
			return nil, fmt.Errorf("create cache bucket: %w", err)
		}
	}
	return &NATSKV{kv: kv}, nil
}

// Get returns the cached value, or ErrNotFound.
func (n *NATSKV) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := n.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	return entry.Value(), nil
}

// Set stores a value.
func (n *NATSKV) Set(ctx context.Context, key string, value []byte) error {
	if _, err := n.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Delete removes a key.
func (n *NATSKV) Delete(ctx context.Context, key string) error {
	err := n.kv.Delete(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}
