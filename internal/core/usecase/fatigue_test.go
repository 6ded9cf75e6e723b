package usecase

import (
	"testing"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

const detailedAnswer = "The checkout flow breaks because the payment gateway times out after 30 seconds. We see it daily. For example, 12 carts were abandoned yesterday alone."

func TestFatigueRiskEmptyHistory(t *testing.T) {
	engine := newPureEngine()
	if got := engine.FatigueRisk(nil); got != 0 {
		t.Fatalf("fatigue(nil) = %v, expected 0", got)
	}
}

func TestFatigueRiskAllLowQuality(t *testing.T) {
	engine := newPureEngine()
	history := []domain.ConversationEntry{
		{Answer: "idk"},
		{Answer: "idk"},
		{Answer: "idk"},
	}
	if got := engine.FatigueRisk(history); got < 0.99 {
		t.Fatalf("fatigue over terse answers = %v, expected ~1", got)
	}
}

func TestFatigueRiskAllHighQuality(t *testing.T) {
	engine := newPureEngine()
	history := []domain.ConversationEntry{
		{Answer: detailedAnswer},
		{Answer: detailedAnswer},
		{Answer: detailedAnswer},
	}
	if got := engine.FatigueRisk(history); got > 0.01 {
		t.Fatalf("fatigue over detailed answers = %v, expected ~0", got)
	}
}

func TestFatigueRiskDecliningTrendAddsRisk(t *testing.T) {
	engine := newPureEngine()
	declining := []domain.ConversationEntry{
		{Answer: detailedAnswer},
		{Answer: "it broke again"},
		{Answer: "idk"},
	}
	improving := []domain.ConversationEntry{
		{Answer: "idk"},
		{Answer: "it broke again"},
		{Answer: detailedAnswer},
	}

	down := engine.FatigueRisk(declining)
	up := engine.FatigueRisk(improving)
	if down <= up {
		t.Fatalf("declining trend should score higher fatigue: declining=%v improving=%v", down, up)
	}
}

func TestFatigueRiskLookbackWindow(t *testing.T) {
	engine := newPureEngine()
	// Old terse answers outside the 3-entry window must not count.
	history := []domain.ConversationEntry{
		{Answer: "idk"},
		{Answer: "idk"},
		{Answer: detailedAnswer},
		{Answer: detailedAnswer},
		{Answer: detailedAnswer},
	}
	if got := engine.FatigueRisk(history); got > 0.01 {
		t.Fatalf("fatigue = %v, expected ~0 once old entries leave the window", got)
	}
}

func TestFatigueRiskTextFieldFallback(t *testing.T) {
	engine := newPureEngine()
	fromText := engine.FatigueRisk([]domain.ConversationEntry{{Text: detailedAnswer}})
	fromAnswer := engine.FatigueRisk([]domain.ConversationEntry{{Answer: detailedAnswer}})
	if fromText != fromAnswer {
		t.Fatalf("text fallback should score like answer: text=%v answer=%v", fromText, fromAnswer)
	}
}

func TestSuggestStopThreshold(t *testing.T) {
	engine := newPureEngine()
	stop, risk := engine.SuggestStop([]domain.ConversationEntry{
		{Answer: "idk"},
		{Answer: "idk"},
		{Answer: "idk"},
	})
	if !stop {
		t.Fatalf("expected stop suggestion at risk %v", risk)
	}

	keepGoing, _ := engine.SuggestStop([]domain.ConversationEntry{{Answer: detailedAnswer}})
	if keepGoing {
		t.Fatalf("did not expect stop suggestion for an engaged respondent")
	}
}
