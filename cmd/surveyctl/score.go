package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [answer]",
	Short: "Score a single free-text answer",
	Long: `Score runs the answer quality heuristic on one free-text answer and
prints the score in [0,1]. Runs entirely offline.

Example:
  surveyctl score "The migration took three weeks because of the schema split."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := newOfflineEngine(cfg)
	if err != nil {
		return err
	}

	answer := strings.Join(args, " ")
	fmt.Fprintf(cmd.OutOrStdout(), "quality=%.3f\n", engine.AnswerQuality(answer))
	return nil
}
