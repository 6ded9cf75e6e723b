package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
)

func TestNoveltyAbsentValues(t *testing.T) {
	engine := NewEngine(&stubEmbedder{}, nil, Config{})

	if got := engine.Novelty(context.Background(), "", "stored"); got != 1 {
		t.Fatalf("novelty with absent new value = %v, expected 1", got)
	}
	if got := engine.Novelty(context.Background(), "new", ""); got != 1 {
		t.Fatalf("novelty with absent existing value = %v, expected 1", got)
	}
}

func TestNoveltyNeutralOnEmbedFailure(t *testing.T) {
	engine := NewEngine(&stubEmbedder{err: errors.New("provider down")}, nil, Config{})

	if got := engine.Novelty(context.Background(), "a", "b"); got != 0.5 {
		t.Fatalf("novelty on embed failure = %v, expected neutral 0.5", got)
	}
}

func TestNoveltyIdenticalValues(t *testing.T) {
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{
		"50k USD": {0.6, 0.8},
	}}, nil, Config{})

	got := engine.Novelty(context.Background(), "50k USD", "50k USD")
	if got > 1e-6 {
		t.Fatalf("novelty of identical values = %v, expected ~0", got)
	}
}

func TestNoveltyOrthogonalValues(t *testing.T) {
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{
		"march": {1, 0},
		"blue":  {0, 1},
	}}, nil, Config{})

	got := engine.Novelty(context.Background(), "march", "blue")
	if math.Abs(got-1) > 1e-6 {
		t.Fatalf("novelty of unrelated values = %v, expected ~1", got)
	}
}

func TestContradictionScoreNoStoredValue(t *testing.T) {
	engine := NewEngine(&stubEmbedder{}, nil, Config{})
	view := slotView(nil, []domain.SlotState{{Name: "budget", Confidence: 0.4}})

	if got := engine.ContradictionScore(context.Background(), "budget", "20k", view); got != 1 {
		t.Fatalf("contradiction without stored value = %v, expected 1", got)
	}
	if got := engine.ContradictionScore(context.Background(), "missing", "20k", view); got != 1 {
		t.Fatalf("contradiction for unknown slot = %v, expected 1", got)
	}
	if got := engine.ContradictionScore(context.Background(), "budget", "", view); got != 1 {
		t.Fatalf("contradiction with empty new value = %v, expected 1", got)
	}
}

func TestContradictionScoreFlagsWeaklyHeldConflict(t *testing.T) {
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{
		"20k": {1, 0},
		"80k": {0, 1},
	}}, nil, Config{})
	view := slotView(nil, []domain.SlotState{{Name: "budget", Value: "80k", Confidence: 0.3}})

	got := engine.ContradictionScore(context.Background(), "budget", "20k", view)
	if got != 0.3 {
		t.Fatalf("contradiction = %v, expected flagged 0.3", got)
	}
}

func TestContradictionScoreConservativeOnConfidentPrior(t *testing.T) {
	// Same wild semantic distance, but the prior is firmly held: no flag.
	engine := NewEngine(&stubEmbedder{vectors: map[string][]float32{
		"20k": {1, 0},
		"80k": {0, 1},
	}}, nil, Config{})
	view := slotView(nil, []domain.SlotState{{Name: "budget", Value: "80k", Confidence: 0.9}})

	got := engine.ContradictionScore(context.Background(), "budget", "20k", view)
	if got != 1 {
		t.Fatalf("contradiction = %v, expected 1 despite high novelty", got)
	}
}

func TestContradictionScoreNeutralNoveltyDoesNotFlag(t *testing.T) {
	// Embed failure yields neutral novelty 0.5, below the 0.8 gate.
	engine := NewEngine(&stubEmbedder{err: errors.New("down")}, nil, Config{})
	view := slotView(nil, []domain.SlotState{{Name: "budget", Value: "80k", Confidence: 0.3}})

	if got := engine.ContradictionScore(context.Background(), "budget", "20k", view); got != 1 {
		t.Fatalf("contradiction = %v, expected 1 when novelty cannot be assessed", got)
	}
}
