package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

// AssessAnswerUseCase scores one submitted answer end to end for the worker:
// answer quality, fatigue risk over the updated history, and per-slot
// novelty/contradiction for every extracted value. It is total: malformed or
// empty payloads produce a degenerate assessment, never an error.
type AssessAnswerUseCase struct {
	engine  *Engine
	schemas map[string]domain.SlotSchema
}

func NewAssessAnswerUseCase(engine *Engine, schemas map[string]domain.SlotSchema) *AssessAnswerUseCase {
	if schemas == nil {
		schemas = map[string]domain.SlotSchema{}
	}
	return &AssessAnswerUseCase{
		engine:  engine,
		schemas: schemas,
	}
}

func (uc *AssessAnswerUseCase) AssessAnswer(ctx context.Context, submitted domain.AnswerSubmitted) domain.AnswerAssessment {
	states := make(map[string]domain.SlotState, len(submitted.SlotStates))
	for _, state := range submitted.SlotStates {
		states[state.Name] = state
	}
	slots := domain.SlotView{Schemas: uc.schemas, States: states}

	// The submitted answer joins the history tail so the fatigue window sees
	// the respondent's latest engagement level.
	history := append(append([]domain.ConversationEntry{}, submitted.History...), domain.ConversationEntry{Answer: submitted.Answer})
	stop, fatigue := uc.engine.SuggestStop(history)

	names := make([]string, 0, len(submitted.ExtractedValues))
	for name := range submitted.ExtractedValues {
		names = append(names, name)
	}
	sort.Strings(names)

	assessments := make([]domain.SlotAssessment, 0, len(names))
	for _, name := range names {
		value := submitted.ExtractedValues[name]
		existing := ""
		if state, ok := states[name]; ok {
			existing = state.Value
		}
		assessments = append(assessments, domain.SlotAssessment{
			Name:          name,
			Novelty:       uc.engine.Novelty(ctx, value, existing),
			Contradiction: uc.engine.ContradictionScore(ctx, name, value, slots),
		})
	}

	return domain.AnswerAssessment{
		EventID:   uuid.NewString(),
		SessionID: submitted.SessionID,
		Quality:   uc.engine.AnswerQuality(submitted.Answer),
		Fatigue:   fatigue,
		StopHint:  stop,
		Slots:     assessments,
	}
}
