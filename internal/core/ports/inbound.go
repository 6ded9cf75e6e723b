package ports

import (
	"context"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// QuestionSelector is the inbound contract for next-question selection.
type QuestionSelector interface {
	RedundancyPenalty(ctx context.Context, prompt string, asked []domain.AskedQuestion) domain.RedundancyVerdict
	ExpectedInfoGain(template domain.QuestionTemplate, slots domain.SlotView) float64
	RankCandidates(ctx context.Context, templates []domain.QuestionTemplate, asked []domain.AskedQuestion, slots domain.SlotView) []domain.ScoredCandidate
}

// AnswerScorer is the inbound contract for scoring a submitted answer and the
// respondent's engagement.
type AnswerScorer interface {
	AnswerQuality(answer string) float64
	FatigueRisk(history []domain.ConversationEntry) float64
	SuggestStop(history []domain.ConversationEntry) (bool, float64)
}

// ValueReconciler is the inbound contract for comparing extracted values
// against stored slot state.
type ValueReconciler interface {
	Novelty(ctx context.Context, newValue, existingValue string) float64
	ContradictionScore(ctx context.Context, slotName, newValue string, slots domain.SlotView) float64
}

// AnswerAssessor composes the scoring contracts over one submitted answer
// event for the worker.
type AnswerAssessor interface {
	AssessAnswer(ctx context.Context, submitted domain.AnswerSubmitted) domain.AnswerAssessment
}
