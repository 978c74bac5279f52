// Package toolcache is a short-TTL read-through cache for list/describe
// style tool calls. Entries are keyed by (operation, all arguments); writes
// never go through it, and there is no active invalidation; a stale read
// lives at most one TTL.
package toolcache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

// Cache is safe for concurrent use. A zero TTL disables caching entirely.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

// Key builds a stable cache key from an operation name and its arguments.
// json.Marshal sorts map keys, so argument order does not matter.
func Key(op string, args map[string]any) string {
	data, err := json.Marshal(args)
	if err != nil {
		// Unmarshalable args: make the key unique so we never serve a
		// wrong entry.
		return fmt.Sprintf("%s#%p", op, &args)
	}
	return op + "#" + string(data)
}

// Do returns the cached value for key, or runs fill and caches its result.
// Errors are never cached.
func (c *Cache) Do(key string, fill func() (any, error)) (any, error) {
	if c == nil || c.ttl <= 0 {
		return fill()
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.now().Before(e.expires) {
			c.mu.Unlock()
			return e.value, nil
		}
		delete(c.entries, key)
	}
	c.mu.Unlock()

	v, err := fill()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: v, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return v, nil
}

// Len reports the number of live entries, expired ones included until their
// next lookup.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
