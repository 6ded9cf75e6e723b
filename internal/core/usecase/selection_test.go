package usecase

import (
	"context"
	"testing"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

func TestRankCandidatesOrdersByDiscountedGain(t *testing.T) {
	// "stale" duplicates an asked question exactly and must disappear;
	// "related" sits in the soft band and gets discounted below "fresh".
	sim := 0.725
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"ask about budget again": {1, 0},
		"ask about deadline":     {float32(sim), 0.68875},
		"ask about team size":    {0, 1},
	}}
	engine := NewEngine(embedder, nil, Config{})

	asked := []domain.AskedQuestion{{Text: "what is the budget", Embedding: domain.Embedding{1, 0}}}
	view := slotView(
		[]domain.SlotSchema{
			{Name: "deadline", Priority: domain.SlotPriorityNormal},
			{Name: "team", Priority: domain.SlotPriorityNormal},
		},
		nil,
	)
	templates := []domain.QuestionTemplate{
		{ID: "stale", Prompt: "ask about budget again", SlotTargets: []string{"deadline"}},
		{ID: "related", Prompt: "ask about deadline", SlotTargets: []string{"deadline"}},
		{ID: "fresh", Prompt: "ask about team size", SlotTargets: []string{"team"}},
	}

	ranked := engine.RankCandidates(context.Background(), templates, asked, view)
	if len(ranked) != 2 {
		t.Fatalf("expected hard-rejected template dropped, got %d candidates", len(ranked))
	}
	if ranked[0].Template.ID != "fresh" {
		t.Fatalf("expected undiscounted template first, got %s", ranked[0].Template.ID)
	}
	if ranked[1].Template.ID != "related" {
		t.Fatalf("expected soft-penalized template second, got %s", ranked[1].Template.ID)
	}
	if ranked[1].Score >= ranked[0].Score {
		t.Fatalf("expected penalty discount: %v >= %v", ranked[1].Score, ranked[0].Score)
	}
}

func TestRankCandidatesTieBreakByTemplateID(t *testing.T) {
	engine := NewEngine(&stubEmbedder{}, nil, Config{})
	view := slotView(nil, nil)
	templates := []domain.QuestionTemplate{
		{ID: "b", Prompt: "prompt b", SlotTargets: []string{"x"}},
		{ID: "a", Prompt: "prompt a", SlotTargets: []string{"y"}},
	}

	ranked := engine.RankCandidates(context.Background(), templates, nil, view)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ranked))
	}
	if ranked[0].Template.ID != "a" {
		t.Fatalf("expected tie-break by template id, got %s first", ranked[0].Template.ID)
	}
}

func TestRankCandidatesEmptyCatalog(t *testing.T) {
	engine := NewEngine(&stubEmbedder{}, nil, Config{})
	ranked := engine.RankCandidates(context.Background(), nil, nil, slotView(nil, nil))
	if len(ranked) != 0 {
		t.Fatalf("expected no candidates, got %d", len(ranked))
	}
}

func TestRankCandidatesEmbedFailureFallsBackToInfoGain(t *testing.T) {
	engine := NewEngine(&stubEmbedder{err: context.DeadlineExceeded}, nil, Config{})
	asked := []domain.AskedQuestion{{Text: "q", Embedding: domain.Embedding{1, 0}}}
	view := slotView(nil, nil)
	templates := []domain.QuestionTemplate{{ID: "t", Prompt: "p", SlotTargets: []string{"slot"}}}

	ranked := engine.RankCandidates(context.Background(), templates, asked, view)
	if len(ranked) != 1 {
		t.Fatalf("expected candidate to survive embed failure, got %d", len(ranked))
	}
	if ranked[0].Score != 1 {
		t.Fatalf("expected undiscounted info gain, got %v", ranked[0].Score)
	}
}
