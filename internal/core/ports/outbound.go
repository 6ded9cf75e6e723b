package ports

import (
	"context"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// Embedder builds vectors for prompts and extracted values. Implementations
// return errors; the engine collapses every failure to an empty embedding at
// its boundary.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingCache is an explicit cache object injected by the caller. A miss
// is reported as ok=false; implementations degrade read/write errors to a
// miss so the embed path stays fail-soft.
type EmbeddingCache interface {
	Get(ctx context.Context, text string) (domain.Embedding, bool)
	Put(ctx context.Context, text string, embedding domain.Embedding)
}

// AnswerQueue publishes and consumes answer scoring events.
type AnswerQueue interface {
	PublishAnswerScored(ctx context.Context, assessment domain.AnswerAssessment) error
	SubscribeAnswerSubmitted(ctx context.Context, handler func(context.Context, domain.AnswerSubmitted) error) error
}
