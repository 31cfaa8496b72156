// Package cache provides an in-process read cache for expensive dashboard
// and listing queries.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// QueryCache is an LRU cache with a default TTL, per-entry TTL overrides and
// invalidation by key prefix. Writers invalidate the prefixes their mutation
// touches, so a stale window never outlives the default TTL.
type QueryCache struct {
	lru        *expirable.LRU[string, entry]
	defaultTTL time.Duration
}

// New creates a QueryCache holding at most size entries.
func New(size int, defaultTTL time.Duration) *QueryCache {
	if size <= 0 {
		size = 1024
	}
	if defaultTTL <= 0 {
		defaultTTL = time.Minute
	}
	return &QueryCache{
		lru:        expirable.NewLRU[string, entry](size, nil, defaultTTL),
		defaultTTL: defaultTTL,
	}
}

// Get returns the cached value for key, if present and unexpired.
func (c *QueryCache) Get(key string) (any, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value under the default TTL.
func (c *QueryCache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with an explicit TTL. TTLs longer than the
// default are capped by the underlying LRU's eviction window.
func (c *QueryCache) SetWithTTL(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.lru.Add(key, entry{value: value, expiresAt: time.Now().Add(ttl)})
}

// InvalidatePrefix drops every entry whose key starts with prefix.
func (c *QueryCache) InvalidatePrefix(prefix string) {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
