package dceapi

import (
	"time"

	"github.com/maypok86/otter/v2"
)

// refCacheSize bounds the reference cache. The keyspace is tiny (one entry
// per endpoint, language and trade type combination).
const refCacheSize = 128

// refCache memoizes reference-data responses that change at most once per
// trading day. It is opt-in via WithReferenceCache and only consulted by
// endpoints that serve static reference data.
type refCache struct {
	cache *otter.Cache[string, any]
}

func newRefCache(ttl time.Duration) *refCache {
	cache := otter.Must(&otter.Options[string, any]{
		MaximumSize:      refCacheSize,
		ExpiryCalculator: otter.ExpiryCreating[string, any](ttl),
	})

	return &refCache{cache: cache}
}

func (r *refCache) get(key string) (any, bool) {
	entry, ok := r.cache.GetEntry(key)
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

func (r *refCache) set(key string, value any) {
	r.cache.Set(key, value)
}
