package main

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/mkravets/adaptive-survey/internal/core/usecase"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/cache/redis"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/catalog"
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-embed catalog prompts into the embedding cache",
	Long: `Warm embeds every catalog prompt in one batch and writes the vectors
into the Redis embedding cache, so the first live session does not pay the
embedding latency. Requires CACHE_BACKEND=redis settings (REDIS_ADDR,
REDIS_PREFIX).

Example:
  surveyctl warm --catalog catalog.yaml`,
	RunE: runWarm,
}

func init() {
	rootCmd.AddCommand(warmCmd)
}

func runWarm(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	_, client, err := newEmbeddingEngine(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	cache := redis.New(redisClient, cfg.RedisPrefix, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	templates := cat.Templates()
	texts := make([]string, 0, len(templates))
	for _, template := range templates {
		texts = append(texts, usecase.TruncateRunes(template.Prompt, cfg.EmbedMaxRunes))
	}

	vectors, err := client.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed catalog prompts: %w", err)
	}

	for i, text := range texts {
		cache.Put(ctx, text, vectors[i])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "warmed %d prompts into %s\n", len(texts), cfg.RedisAddr)
	return nil
}
