package usecase

import "github.com/mkravets/adaptive-survey/internal/core/domain"

// FatigueRisk estimates respondent disengagement from the quality of the
// last few answers. Base risk is the inverse of average quality; a declining
// quality trend adds more, because degrading engagement is an earlier stop
// signal than persistently low but stable engagement.
func (e *Engine) FatigueRisk(history []domain.ConversationEntry) float64 {
	if len(history) == 0 {
		return 0
	}

	window := history
	if len(window) > e.cfg.FatigueLookback {
		window = window[len(window)-e.cfg.FatigueLookback:]
	}

	qualities := make([]float64, 0, len(window))
	for _, entry := range window {
		qualities = append(qualities, e.scorer.score(entry.Body()))
	}
	if len(qualities) == 0 {
		return 0
	}

	var sum float64
	for _, q := range qualities {
		sum += q
	}
	avg := sum / float64(len(qualities))

	// Trend windows intentionally overlap: with a 3-entry window the middle
	// score counts in both the recent and the earlier mean, smoothing the
	// signal. Keep the overlap; do not split into disjoint windows.
	trend := 0.0
	if len(qualities) >= 2 {
		recent := (qualities[len(qualities)-1] + qualities[len(qualities)-2]) / 2
		var earlierSum float64
		for _, q := range qualities[:len(qualities)-1] {
			earlierSum += q
		}
		earlier := earlierSum / float64(len(qualities)-1)
		if earlier > recent {
			trend = earlier - recent
		}
	}

	return clamp01(1 - avg + e.cfg.FatigueTrendWeight*trend)
}

// SuggestStop reports whether the session should stop asking questions,
// along with the fatigue risk the suggestion is based on.
func (e *Engine) SuggestStop(history []domain.ConversationEntry) (bool, float64) {
	risk := e.FatigueRisk(history)
	return risk >= e.cfg.StopThreshold, risk
}
