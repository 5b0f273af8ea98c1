package query

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultTemplateCacheSize = 256

// templateCache is a bounded cache mapping filter templates to their token
// streams, keyed by the xxhash of the template text.
//
// Eviction strategy: when the cache reaches its capacity limit the entire map
// is replaced.
//
// Cached token slices are shared and MUST NOT be modified.
//
// A nil *templateCache is a valid, always-empty cache.
type templateCache struct {
	mu    sync.RWMutex
	items map[uint64]cachedTemplate
	max   int
}

type cachedTemplate struct {
	template string
	tokens   []Token
}

func newTemplateCache(size int) *templateCache {
	if size <= 0 {
		return nil
	}
	return &templateCache{
		items: make(map[uint64]cachedTemplate, size),
		max:   size,
	}
}

func (c *templateCache) get(template string) ([]Token, bool) {
	if c == nil {
		return nil, false
	}
	key := xxhash.Sum64String(template)
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	// Guard against hash collisions.
	if !ok || entry.template != template {
		return nil, false
	}
	return entry.tokens, true
}

func (c *templateCache) put(template string, tokens []Token) {
	if c == nil {
		return
	}
	key := xxhash.Sum64String(template)
	c.mu.Lock()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.max {
		c.items = make(map[uint64]cachedTemplate, c.max)
	}
	c.items[key] = cachedTemplate{template: template, tokens: tokens}
	c.mu.Unlock()
}

func (c *templateCache) len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
