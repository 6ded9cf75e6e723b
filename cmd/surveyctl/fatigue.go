package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/adaptive-survey/internal/infrastructure/catalog"
)

var fatigueSessionPath string

var fatigueCmd = &cobra.Command{
	Use:   "fatigue",
	Short: "Estimate fatigue risk from a session snapshot",
	Long: `Fatigue scores the recent answers in a session snapshot and prints the
fatigue risk in [0,1] plus whether the engine would suggest stopping.
Runs entirely offline.

Example:
  surveyctl fatigue --session session.yaml`,
	RunE: runFatigue,
}

func init() {
	fatigueCmd.Flags().StringVar(&fatigueSessionPath, "session", "", "Session snapshot file (required)")
	_ = fatigueCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(fatigueCmd)
}

func runFatigue(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	session, err := catalog.LoadSession(fatigueSessionPath)
	if err != nil {
		return err
	}
	engine, err := newOfflineEngine(cfg)
	if err != nil {
		return err
	}

	stop, risk := engine.SuggestStop(session.History)
	fmt.Fprintf(cmd.OutOrStdout(), "fatigue=%.3f suggest_stop=%v (threshold %.2f)\n",
		risk, stop, cfg.StopThreshold)
	return nil
}
