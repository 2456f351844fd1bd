package moderation

import (
	"log"
	"sync"
	"time"

	"sensiblenews/internal/metrics"
)

// KeywordCache holds one keyword snapshot for a bounded time. Reads within
// the TTL return the same snapshot instance; the first read after expiry (or
// after Invalidate) reloads synchronously from the store and swaps the
// snapshot reference.
type KeywordCache struct {
	store      KeywordStore
	ttl        time.Duration
	failClosed bool

	mu        sync.Mutex
	snapshot  *KeywordSet
	expiresAt time.Time
}

// NewKeywordCache wraps store with a TTL cache. With failClosed false
// (the default policy) a store failure degrades to an empty keyword set so
// comment posting never depends on the keyword table being reachable.
func NewKeywordCache(store KeywordStore, ttl time.Duration, failClosed bool) *KeywordCache {
	return &KeywordCache{
		store:      store,
		ttl:        ttl,
		failClosed: failClosed,
	}
}

// GetActiveKeywords returns the current snapshot, reloading it if absent or
// expired. The returned set must be treated as read-only.
func (c *KeywordCache) GetActiveKeywords() (*KeywordSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && time.Now().Before(c.expiresAt) {
		return c.snapshot, nil
	}

	set, err := c.store.LoadActiveKeywords()
	if err != nil {
		metrics.KeywordCacheReloads.WithLabelValues("error").Inc()
		log.Printf("Failed to load moderation keywords: %v", err)
		if c.failClosed {
			return nil, err
		}
		// Fail open: cache an empty set until the next expiry so a
		// broken store isn't hammered on every submission.
		set = NewKeywordSet()
	} else {
		metrics.KeywordCacheReloads.WithLabelValues("ok").Inc()
		log.Printf("Loaded %d blocked, %d flagged, %d replacement keywords",
			len(set.Blocked), len(set.Flagged), len(set.Replacements))
	}

	c.snapshot = set
	c.expiresAt = time.Now().Add(c.ttl)
	return c.snapshot, nil
}

// Invalidate clears the cached snapshot so the next read reloads. Called
// after an administrator adds or edits a keyword rule.
func (c *KeywordCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.expiresAt = time.Time{}
}
