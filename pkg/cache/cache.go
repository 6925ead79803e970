// Package cache is a small generic key-value cache with TTLs, backed by
// process memory or Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache stores values of type V. A zero TTL in Set means the backend's
// default; a negative TTL means no expiry.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func marshal[V any](v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func unmarshal[V any](data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

var group singleflight.Group

// GetOrSet returns the cached value for key or computes it with fn and
// stores it for ttl. Concurrent misses on the same key of the same cache
// share one call to fn. A failing Set is ignored; the computed value is still returned.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, ttl time.Duration, fn func(context.Context) (V, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	res, err, _ := group.Do(fmt.Sprintf("%p/%s", c, key), func() (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}
