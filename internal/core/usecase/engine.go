package usecase

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
	"github.com/mkravets/adaptive-survey/internal/core/ports"
)

// Config holds the engine tunables. Zero values are replaced with the
// defaults from DefaultConfig, so a partially filled Config is safe. The
// flip side: no tunable can be set to exactly zero; the smallest effective
// value is an epsilon above it.
type Config struct {
	// EmbedMaxRunes bounds the text sent to the embedding provider.
	EmbedMaxRunes int

	// RedundancyThreshold is the hard-reject similarity gate.
	RedundancyThreshold float64
	// RedundancySoftFloor is where the soft penalty starts rising from 0.
	RedundancySoftFloor float64

	FatigueLookback    int
	FatigueTrendWeight float64
	StopThreshold      float64

	CriticalBoost float64

	// NoveltyGate and ConfidenceGate are the two conditions that must both
	// hold for a contradiction flag; ContradictionSignal is the flagged score.
	NoveltyGate         float64
	ConfidenceGate      float64
	ContradictionSignal float64
	// NeutralNovelty is returned when embeddings are unavailable.
	NeutralNovelty float64

	Heuristics QualityHeuristics
}

func DefaultConfig() Config {
	return Config{
		EmbedMaxRunes: 8000,

		RedundancyThreshold: 0.85,
		RedundancySoftFloor: 0.60,

		FatigueLookback:    3,
		FatigueTrendWeight: 0.3,
		StopThreshold:      0.75,

		CriticalBoost: 0.3,

		NoveltyGate:         0.8,
		ConfidenceGate:      0.6,
		ContradictionSignal: 0.3,
		NeutralNovelty:      0.5,

		Heuristics: DefaultQualityHeuristics(),
	}
}

func (c Config) normalize() Config {
	out := c
	def := DefaultConfig()

	if out.EmbedMaxRunes <= 0 {
		out.EmbedMaxRunes = def.EmbedMaxRunes
	}
	if out.RedundancyThreshold <= 0 || out.RedundancyThreshold > 1 {
		out.RedundancyThreshold = def.RedundancyThreshold
	}
	if out.RedundancySoftFloor <= 0 {
		out.RedundancySoftFloor = def.RedundancySoftFloor
	}
	if out.RedundancySoftFloor >= out.RedundancyThreshold {
		// A threshold configured below the default floor would invert the
		// penalty band; rescale the floor to keep the default proportions.
		out.RedundancySoftFloor = out.RedundancyThreshold * (def.RedundancySoftFloor / def.RedundancyThreshold)
	}
	if out.FatigueLookback <= 0 {
		out.FatigueLookback = def.FatigueLookback
	}
	if out.FatigueTrendWeight <= 0 {
		out.FatigueTrendWeight = def.FatigueTrendWeight
	}
	if out.StopThreshold <= 0 || out.StopThreshold > 1 {
		out.StopThreshold = def.StopThreshold
	}
	if out.CriticalBoost <= 0 {
		out.CriticalBoost = def.CriticalBoost
	}
	if out.NoveltyGate <= 0 || out.NoveltyGate > 1 {
		out.NoveltyGate = def.NoveltyGate
	}
	if out.ConfidenceGate <= 0 || out.ConfidenceGate > 1 {
		out.ConfidenceGate = def.ConfidenceGate
	}
	if out.ContradictionSignal <= 0 || out.ContradictionSignal > 1 {
		out.ContradictionSignal = def.ContradictionSignal
	}
	if out.NeutralNovelty <= 0 || out.NeutralNovelty > 1 {
		out.NeutralNovelty = def.NeutralNovelty
	}
	out.Heuristics = out.Heuristics.normalize()

	return out
}

// Engine scores candidate questions and submitted answers for one survey
// turn. It holds no session state: asked questions, slot views and history
// are passed in per call, so a single Engine is safe for concurrent sessions.
type Engine struct {
	embedder ports.Embedder
	cache    ports.EmbeddingCache
	cfg      Config
	scorer   qualityScorer
}

// NewEngine builds an engine around an embedding provider. The cache is
// optional; pass nil to embed on every call.
func NewEngine(embedder ports.Embedder, cache ports.EmbeddingCache, cfg Config) *Engine {
	cfg = cfg.normalize()
	return &Engine{
		embedder: embedder,
		cache:    cache,
		cfg:      cfg,
		scorer:   newQualityScorer(cfg.Heuristics),
	}
}

// embedText is the fail-soft embedding boundary. Empty input returns an
// empty embedding without touching the provider; any provider failure is
// logged and collapsed to an empty embedding so scoring never blocks on the
// embedding service.
func (e *Engine) embedText(ctx context.Context, text string) domain.Embedding {
	if text == "" || e.embedder == nil {
		return nil
	}
	text = TruncateRunes(text, e.cfg.EmbedMaxRunes)

	if e.cache != nil {
		if vec, ok := e.cache.Get(ctx, text); ok {
			return vec
		}
	}

	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		slog.Warn("embedding_failed", "text_runes", utf8.RuneCountInString(text), "error", err)
		return nil
	}
	if e.cache != nil && len(vec) > 0 {
		e.cache.Put(ctx, text, vec)
	}
	return vec
}

// TruncateRunes caps s at max runes. Cache keys are derived from the
// truncated text, so warmers must apply the same budget.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
