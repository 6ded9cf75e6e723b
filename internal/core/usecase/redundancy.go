package usecase

import (
	"context"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// RedundancyPenalty checks a candidate prompt against the questions already
// asked in the session. The hard reject gate and the soft penalty both come
// from the same max-similarity pass.
//
// Without a vector there is nothing to compare: an empty asked list or a
// failed candidate embedding returns a clean verdict so the question is let
// through rather than silently suppressed.
func (e *Engine) RedundancyPenalty(ctx context.Context, prompt string, asked []domain.AskedQuestion) domain.RedundancyVerdict {
	if len(asked) == 0 {
		return domain.RedundancyVerdict{}
	}

	candidate := e.embedText(ctx, prompt)
	if candidate.Empty() {
		return domain.RedundancyVerdict{}
	}

	maxSim := 0.0
	for _, question := range asked {
		if question.Embedding.Empty() {
			continue
		}
		if sim := Cosine(candidate, question.Embedding); sim > maxSim {
			maxSim = sim
		}
	}

	band := e.cfg.RedundancyThreshold - e.cfg.RedundancySoftFloor
	return domain.RedundancyVerdict{
		Reject:        maxSim >= e.cfg.RedundancyThreshold,
		Penalty:       clamp01((maxSim - e.cfg.RedundancySoftFloor) / band),
		MaxSimilarity: maxSim,
	}
}
