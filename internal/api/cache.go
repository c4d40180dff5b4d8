package api

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mexm/mydmam-browser/internal/constants"
)

// responseCache keeps raw bodies of idempotent search answers, keyed by URL.
// A zero TTL disables it.
type responseCache struct {
	lru *expirable.LRU[string, []byte]
}

func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		return &responseCache{}
	}
	return &responseCache{lru: expirable.NewLRU[string, []byte](constants.SearchCacheSize, nil, ttl)}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c.lru == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *responseCache) put(key string, body []byte) {
	if c.lru == nil {
		return
	}
	c.lru.Add(key, body)
}

func (c *responseCache) clear() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

func (c *responseCache) size() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
