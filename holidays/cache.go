package holidays

import (
	"context"
	"log/slog"
	"time"

	"github.com/warp/leave-planner/calendar"
)

// DefaultCacheKey is the key CachedProvider stores the snapshot under.
const DefaultCacheKey = "holidays:calendar"

// Cache stores calendar snapshots.
type Cache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (h calendar.Holidays, ok bool, err error)
	Set(ctx context.Context, key string, h calendar.Holidays, ttl time.Duration) error
}

// CachedProvider serves snapshots from Cache and falls back to Source on a
// miss. Cache failures are logged and bypassed; Source failures are returned
// unmodified.
type CachedProvider struct {
	Source Provider
	Cache  Cache
	Key    string
	TTL    time.Duration
	Logger *slog.Logger
}

// NewCachedProvider wraps source with cache.
func NewCachedProvider(source Provider, cache Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		Source: source,
		Cache:  cache,
		Key:    DefaultCacheKey,
		TTL:    ttl,
		Logger: slog.Default(),
	}
}

// Fetch returns the cached snapshot or fetches and caches a new one.
func (p *CachedProvider) Fetch(ctx context.Context) (calendar.Holidays, error) {
	h, ok, err := p.Cache.Get(ctx, p.Key)
	if err != nil {
		p.Logger.Warn("holiday_cache_get_failed", "key", p.Key, "error", err.Error())
	} else if ok {
		return h, nil
	}
	return p.Refresh(ctx)
}

// Refresh fetches from Source and overwrites the cached snapshot.
func (p *CachedProvider) Refresh(ctx context.Context) (calendar.Holidays, error) {
	h, err := p.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.Cache.Set(ctx, p.Key, h, p.TTL); err != nil {
		p.Logger.Warn("holiday_cache_set_failed", "key", p.Key, "error", err.Error())
	}
	return h, nil
}
