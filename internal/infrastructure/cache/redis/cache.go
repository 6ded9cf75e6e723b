// Package redis is the shared embedding cache for deployments where many
// worker instances score sessions against the same template catalog. Cache
// failures are degraded to misses so the embed path stays fail-soft.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// New wraps an existing redis client. The prefix namespaces keys per
// embedding model so vectors from different models never collide.
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	if prefix == "" {
		prefix = "embedding"
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (c *Cache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return c.prefix + ":" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, text string) (domain.Embedding, bool) {
	data, err := c.client.Get(ctx, c.key(text)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("embedding_cache_get_failed", "error", err)
		return nil, false
	}

	var embedding domain.Embedding
	if err := json.Unmarshal([]byte(data), &embedding); err != nil {
		slog.Warn("embedding_cache_decode_failed", "error", err)
		return nil, false
	}
	return embedding, true
}

func (c *Cache) Put(ctx context.Context, text string, embedding domain.Embedding) {
	if embedding.Empty() {
		return
	}
	data, err := json.Marshal(embedding)
	if err != nil {
		slog.Warn("embedding_cache_encode_failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(text), data, c.ttl).Err(); err != nil {
		slog.Warn("embedding_cache_set_failed", "error", err)
	}
}
