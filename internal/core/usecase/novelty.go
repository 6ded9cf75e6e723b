package usecase

import (
	"context"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// Novelty measures how semantically far a newly extracted value is from the
// stored one. An absent side means maximally novel (1). When embeddings are
// unavailable the result is the neutral default (0.5): moderate novelty
// rather than a bias in either direction.
func (e *Engine) Novelty(ctx context.Context, newValue, existingValue string) float64 {
	if newValue == "" || existingValue == "" {
		return 1
	}

	newEmb := e.embedText(ctx, newValue)
	existingEmb := e.embedText(ctx, existingValue)
	if newEmb.Empty() || existingEmb.Empty() {
		return e.cfg.NeutralNovelty
	}

	return clamp01(1 - Cosine(newEmb, existingEmb))
}

// ContradictionScore reports how consistent a new value is with a slot's
// stored value: 1 means consistent or nothing to conflict with, lower means
// likely contradictory. The flag is deliberately conservative: it fires only
// when the semantic distance is large AND the prior value was weakly held,
// so a confidently-held fact restated in more detail is never flagged.
func (e *Engine) ContradictionScore(ctx context.Context, slotName, newValue string, slots domain.SlotView) float64 {
	state, ok := slots.States[slotName]
	if !ok || state.Value == "" || newValue == "" {
		return 1
	}

	novelty := e.Novelty(ctx, newValue, state.Value)
	if novelty > e.cfg.NoveltyGate && state.Confidence < e.cfg.ConfidenceGate {
		return e.cfg.ContradictionSignal
	}
	return 1
}
