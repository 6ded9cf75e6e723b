package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkravets/adaptive-survey/internal/bootstrap"
	"github.com/mkravets/adaptive-survey/internal/config"
	"github.com/mkravets/adaptive-survey/internal/core/usecase"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/embedding/ollama"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/resilience"
	"github.com/mkravets/adaptive-survey/internal/observability/logging"
)

var (
	catalogPath    string
	heuristicsPath string
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Offline harness for the adaptive survey scoring engine",
	Long: `surveyctl replays scoring decisions against a question catalog without
a running worker.

Commands:
  rank     Rank catalog questions against a session snapshot
  score    Score a single free-text answer
  fatigue  Estimate fatigue risk from a session snapshot
  warm     Pre-embed catalog prompts into the embedding cache

rank and warm call the embedding service configured via OLLAMA_URL; score
and fatigue run entirely offline.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup("surveyctl", config.Load().LogLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&heuristicsPath, "heuristics", "", "Heuristic overrides file (default: HEURISTICS_PATH)")
}

// loadConfig merges flag overrides over the environment config.
func loadConfig() config.Config {
	cfg := config.Load()
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if heuristicsPath != "" {
		cfg.HeuristicsPath = heuristicsPath
	}
	return cfg
}

// newOfflineEngine builds an engine with no embedding provider. Redundancy
// and novelty degrade to their fail-soft values; quality and fatigue are
// exact.
func newOfflineEngine(cfg config.Config) (*usecase.Engine, error) {
	engineCfg, err := bootstrap.EngineConfig(cfg)
	if err != nil {
		return nil, err
	}
	return usecase.NewEngine(nil, nil, engineCfg), nil
}

// newEmbeddingEngine builds an engine backed by the configured embedding
// service, plus the raw client for batch calls.
func newEmbeddingEngine(cfg config.Config) (*usecase.Engine, *ollama.Client, error) {
	engineCfg, err := bootstrap.EngineConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	executorCfg := resilience.DefaultConfig()
	executorCfg.RateLimitRPS = cfg.EmbedRateLimitRPS
	executorCfg.RateLimitBurst = cfg.EmbedRateLimitBurst
	client := ollama.New(cfg.OllamaURL, cfg.OllamaEmbedModel, resilience.NewExecutor(executorCfg))

	return usecase.NewEngine(client, nil, engineCfg), client, nil
}
