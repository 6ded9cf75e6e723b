package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkravets/adaptive-survey/internal/core/usecase"
)

// LoadHeuristics reads a quality-heuristics tuning file. Fields left out of
// the file keep their default values, so a tuning file only needs to state
// what it changes.
func LoadHeuristics(path string) (usecase.QualityHeuristics, error) {
	heuristics := usecase.DefaultQualityHeuristics()

	data, err := os.ReadFile(path)
	if err != nil {
		return heuristics, fmt.Errorf("read heuristics: %w", err)
	}
	if err := yaml.Unmarshal(data, &heuristics); err != nil {
		return heuristics, fmt.Errorf("parse heuristics: %w", err)
	}
	return heuristics, nil
}
