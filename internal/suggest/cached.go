package suggest

import (
	"context"
	"errors"

	"github.com/rshade/carbonfoot/internal/engine/cache"
	"github.com/rshade/carbonfoot/internal/footprint"
)

// Store persists suggestion lists by key. cache.FileStore implements it.
type Store interface {
	Get(key string) ([]string, error)
	Set(key string, suggestions []string) error
}

// Cached wraps a Suggester and reuses earlier answers for the same prompt.
type Cached struct {
	next  Suggester
	store Store
	scope string
	count int
}

// WithCache wraps s so that results are stored in store. Entries are keyed
// by scope (typically endpoint and model) and the prompt that count
// suggestions for a profile would send. Failures of s are never cached.
func WithCache(s Suggester, store Store, scope string, count int) *Cached {
	if count <= 0 {
		count = DefaultCount
	}
	return &Cached{next: s, store: store, scope: scope, count: count}
}

// Suggest returns the cached list when present, otherwise calls the wrapped
// Suggester and stores a successful result. Store errors are logged and
// otherwise ignored.
func (c *Cached) Suggest(ctx context.Context, p footprint.Profile, b footprint.Breakdown) ([]string, error) {
	log := componentLogger(ctx)
	key := cache.Key(c.scope, BuildPrompt(p, b, c.count))

	got, err := c.store.Get(key)
	switch {
	case err == nil && len(got) > 0:
		log.Debug().Ctx(ctx).Str("cache_key", key[:12]).Msg("using cached suggestions")
		return got, nil
	case err != nil && !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheExpired):
		log.Debug().Ctx(ctx).Err(err).Msg("suggestion cache read failed")
	}

	out, err := c.next.Suggest(ctx, p, b)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		if setErr := c.store.Set(key, out); setErr != nil {
			log.Debug().Ctx(ctx).Err(setErr).Msg("suggestion cache write failed")
		}
	}
	return out, nil
}
