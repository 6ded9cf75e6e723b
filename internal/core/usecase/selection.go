package usecase

import (
	"context"
	"sort"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// RankCandidates scores every template against the session state and returns
// the survivors ordered best-first. Hard-rejected near-duplicates are
// dropped; the rest are ranked by expected information gain discounted by
// the soft redundancy penalty.
func (e *Engine) RankCandidates(
	ctx context.Context,
	templates []domain.QuestionTemplate,
	asked []domain.AskedQuestion,
	slots domain.SlotView,
) []domain.ScoredCandidate {
	candidates := make([]domain.ScoredCandidate, 0, len(templates))
	for _, template := range templates {
		verdict := e.RedundancyPenalty(ctx, template.Prompt, asked)
		if verdict.Reject {
			continue
		}
		gain := e.ExpectedInfoGain(template, slots)
		candidates = append(candidates, domain.ScoredCandidate{
			Template:   template,
			InfoGain:   gain,
			Redundancy: verdict,
			Score:      clamp01(gain * (1 - verdict.Penalty)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Template.ID != candidates[j].Template.ID {
			return candidates[i].Template.ID < candidates[j].Template.ID
		}
		return candidates[i].Template.Prompt < candidates[j].Template.Prompt
	})

	return candidates
}
