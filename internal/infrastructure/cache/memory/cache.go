// Package memory is the default embedding cache: an explicit object with an
// injected TTL, passed to the engine by the caller. Nothing here is shared
// across processes; use the redis cache when sessions span instances.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

type entry struct {
	embedding domain.Embedding
	expiresAt time.Time
}

type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

// New builds a cache whose entries expire after ttl. A ttl of 0 disables
// expiry.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(_ context.Context, text string) (domain.Embedding, bool) {
	c.mu.RLock()
	e, ok := c.entries[text]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, text)
		c.mu.Unlock()
		return nil, false
	}
	return e.embedding, true
}

func (c *Cache) Put(_ context.Context, text string, embedding domain.Embedding) {
	if embedding.Empty() {
		return
	}
	e := entry{embedding: embedding}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[text] = e
	c.mu.Unlock()
}

// Len reports the number of cached entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
