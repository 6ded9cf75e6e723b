package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

func TestRedundancyPenaltyEmptyAskedList(t *testing.T) {
	embedder := &stubEmbedder{}
	engine := NewEngine(embedder, nil, Config{})

	verdict := engine.RedundancyPenalty(context.Background(), "anything", nil)
	if verdict.Reject || verdict.Penalty != 0 {
		t.Fatalf("expected clean verdict for empty history, got %+v", verdict)
	}
	if embedder.callCount() != 0 {
		t.Fatalf("expected no embedding call for empty history, got %d", embedder.callCount())
	}
}

func TestRedundancyPenaltyEmbedFailureLetsQuestionThrough(t *testing.T) {
	engine := NewEngine(&stubEmbedder{err: errors.New("rate limited")}, nil, Config{})
	asked := []domain.AskedQuestion{{Text: "q1", Embedding: domain.Embedding{1, 0}}}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if verdict.Reject || verdict.Penalty != 0 {
		t.Fatalf("expected pass-through verdict on embed failure, got %+v", verdict)
	}
}

func TestRedundancyPenaltyIdenticalEmbeddingRejects(t *testing.T) {
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{"candidate": {1, 0}}}, nil, Config{})
	asked := []domain.AskedQuestion{{Text: "q1", Embedding: domain.Embedding{1, 0}}}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if !verdict.Reject {
		t.Fatalf("expected hard reject at maxSim ~1, got %+v", verdict)
	}
	if math.Abs(verdict.Penalty-1) > 1e-6 {
		t.Fatalf("expected penalty 1, got %v", verdict.Penalty)
	}
}

func TestRedundancyPenaltyBelowSoftFloor(t *testing.T) {
	// cos([1,0],[0.5,sqrt(3)/2]) = 0.5, below the 0.6 floor.
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{"candidate": {1, 0}}}, nil, Config{})
	asked := []domain.AskedQuestion{{Text: "q1", Embedding: domain.Embedding{0.5, float32(math.Sqrt(3) / 2)}}}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if verdict.Reject || verdict.Penalty != 0 {
		t.Fatalf("expected zero penalty below soft floor, got %+v", verdict)
	}
}

func TestRedundancyPenaltyMidBand(t *testing.T) {
	// Unit vectors with cos = 0.725, the midpoint of the 0.6-0.85 band.
	sim := 0.725
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{"candidate": {1, 0}}}, nil, Config{})
	asked := []domain.AskedQuestion{{
		Text:      "q1",
		Embedding: domain.Embedding{float32(sim), float32(math.Sqrt(1 - sim*sim))},
	}}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if verdict.Reject {
		t.Fatalf("mid-band similarity must not hard-reject: %+v", verdict)
	}
	if math.Abs(verdict.Penalty-0.5) > 1e-3 {
		t.Fatalf("expected penalty ~0.5 at mid-band, got %v", verdict.Penalty)
	}
}

func TestRedundancyPenaltyLowThresholdKeepsPartialBand(t *testing.T) {
	// Threshold 0.5 sits below the default 0.6 floor; the floor rescales so
	// a clearly distinct candidate still lands inside the band, not at 1.
	sim := 0.40
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{"candidate": {1, 0}}}, nil, Config{RedundancyThreshold: 0.5})
	asked := []domain.AskedQuestion{{
		Text:      "q1",
		Embedding: domain.Embedding{float32(sim), float32(math.Sqrt(1 - sim*sim))},
	}}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if verdict.Reject {
		t.Fatalf("similarity 0.40 must not reject at threshold 0.5: %+v", verdict)
	}
	if verdict.Penalty >= 1 {
		t.Fatalf("expected a partial penalty inside the band, got %v", verdict.Penalty)
	}
	if verdict.Penalty <= 0 {
		t.Fatalf("expected a nonzero penalty above the rescaled floor, got %v", verdict.Penalty)
	}
}

func TestRedundancyPenaltySkipsEntriesWithoutEmbeddings(t *testing.T) {
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{"candidate": {1, 0}}}, nil, Config{})
	asked := []domain.AskedQuestion{
		{Text: "no vector yet"},
		{Text: "distinct", Embedding: domain.Embedding{0, 1}},
	}

	verdict := engine.RedundancyPenalty(context.Background(), "candidate", asked)
	if verdict.Reject || verdict.Penalty != 0 {
		t.Fatalf("expected clean verdict, got %+v", verdict)
	}
	if verdict.MaxSimilarity > 1e-6 {
		t.Fatalf("expected max similarity from the orthogonal entry only, got %v", verdict.MaxSimilarity)
	}
}
