package bootstrap

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mkravets/adaptive-survey/internal/config"
	"github.com/mkravets/adaptive-survey/internal/core/ports"
	"github.com/mkravets/adaptive-survey/internal/core/usecase"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/cache/memory"
	rediscache "github.com/mkravets/adaptive-survey/internal/infrastructure/cache/redis"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/catalog"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/embedding/ollama"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/queue/nats"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config

	Catalog  *catalog.Catalog
	Embedder ports.Embedder
	Engine   *usecase.Engine
	AssessUC *usecase.AssessAnswerUseCase
	Queue    ports.AnswerQueue

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	engineCfg, err := EngineConfig(cfg)
	if err != nil {
		return nil, err
	}

	executorCfg := resilience.DefaultConfig()
	executorCfg.RateLimitRPS = cfg.EmbedRateLimitRPS
	executorCfg.RateLimitBurst = cfg.EmbedRateLimitBurst
	executor := resilience.NewExecutor(executorCfg)

	embedder := ollama.New(cfg.OllamaURL, cfg.OllamaEmbedModel, executor)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	var cache ports.EmbeddingCache
	var redisClient *goredis.Client
	switch cfg.CacheBackend {
	case "redis":
		redisClient = goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		cache = rediscache.New(redisClient, cfg.RedisPrefix, ttl)
	case "memory", "":
		cache = memory.New(ttl)
	case "none":
		cache = nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	engine := usecase.NewEngine(embedder, cache, engineCfg)
	assessUC := usecase.NewAssessAnswerUseCase(engine, cat.SlotSchemas())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubmitSubject, cfg.NATSScoredSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("init answer queue: %w", err)
	}

	return &App{
		Config: cfg,

		Catalog:  cat,
		Embedder: embedder,
		Engine:   engine,
		AssessUC: assessUC,
		Queue:    queue,

		closeFn: func() {
			queue.Close()
			if redisClient != nil {
				_ = redisClient.Close()
			}
		},
	}, nil
}

// EngineConfig maps the environment config onto engine tunables, loading
// heuristic overrides from HeuristicsPath when one is set.
func EngineConfig(cfg config.Config) (usecase.Config, error) {
	engineCfg := usecase.Config{
		EmbedMaxRunes:       cfg.EmbedMaxRunes,
		RedundancyThreshold: cfg.RedundancyThreshold,
		RedundancySoftFloor: cfg.RedundancySoftFloor,
		FatigueLookback:     cfg.FatigueLookback,
		FatigueTrendWeight:  cfg.FatigueTrendWeight,
		StopThreshold:       cfg.StopThreshold,
		CriticalBoost:       cfg.CriticalBoost,
	}
	if cfg.HeuristicsPath != "" {
		heuristics, err := catalog.LoadHeuristics(cfg.HeuristicsPath)
		if err != nil {
			return usecase.Config{}, fmt.Errorf("load heuristics: %w", err)
		}
		engineCfg.Heuristics = heuristics
	}
	return engineCfg, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
