package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Entry is a cached payload plus the moment it was fetched from the source.
type Entry struct {
	Data      []byte    `json:"data"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store persists entries by query key ("employees:all", "employee:<id>").
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	Invalidate(ctx context.Context, key string) error
}

// LoadFunc produces a fresh payload when the cache cannot serve one.
type LoadFunc func(ctx context.Context) ([]byte, error)

// Cache gates re-fetching behind a staleness window: entries younger than the
// window are served as-is, anything older triggers a reload. Concurrent
// misses for the same key collapse into a single load.
type Cache struct {
	store       Store
	staleWindow time.Duration
	sf          singleflight.Group
	logger      *zap.Logger
	now         func() time.Time
}

func New(store Store, staleWindow time.Duration, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache")
	}
	return &Cache{
		store:       store,
		staleWindow: staleWindow,
		logger:      l,
		now:         time.Now,
	}
}

// GetOrLoad returns the cached payload for key when it is still fresh,
// otherwise invokes load and caches the result. The bool reports a cache hit.
// Load failures are never cached.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load LoadFunc) ([]byte, bool, error) {
	if entry, ok, err := c.store.Get(ctx, key); err != nil {
		// A broken store must not take reads down with it.
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok && c.now().Sub(entry.FetchedAt) < c.staleWindow {
		return entry.Data, true, nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		data, err := load(ctx)
		if err != nil {
			return nil, err
		}

		entry := Entry{Data: data, FetchedAt: c.now()}
		if err := c.store.Set(ctx, key, entry); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return data, nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.([]byte), false, nil
}

// Invalidate drops the entry for key so the next read reloads.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.store.Invalidate(ctx, key)
}

// Refetch bypasses the staleness check: it loads fresh data and replaces the
// cached entry, regardless of the current entry's age.
func (c *Cache) Refetch(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	if err := c.store.Invalidate(ctx, key); err != nil {
		c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
	data, _, err := c.GetOrLoad(ctx, key, load)
	return data, err
}

// StaleWindow reports the configured freshness duration.
func (c *Cache) StaleWindow() time.Duration {
	return c.staleWindow
}
