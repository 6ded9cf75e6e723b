package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/adaptive-survey/internal/core/domain"
	"github.com/mkravets/adaptive-survey/internal/infrastructure/catalog"
)

var rankSessionPath string

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank catalog questions against a session snapshot",
	Long: `Rank scores every catalog question against the given session snapshot
and prints the survivors best-first. Questions too similar to ones already
asked are dropped; the rest are ordered by expected information gain
discounted by the soft redundancy penalty.

Example:
  surveyctl rank --catalog catalog.yaml --session session.yaml`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankSessionPath, "session", "", "Session snapshot file (required)")
	_ = rankCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	session, err := catalog.LoadSession(rankSessionPath)
	if err != nil {
		return err
	}

	engine, client, err := newEmbeddingEngine(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// Session snapshots carry asked prompts as text; embed them up front so
	// redundancy checks have vectors to compare against.
	asked := session.Asked
	missing := make([]string, 0, len(asked))
	for _, q := range asked {
		if q.Embedding.Empty() && q.Text != "" {
			missing = append(missing, q.Text)
		}
	}
	if len(missing) > 0 {
		vectors, err := client.Embed(ctx, missing)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: embed asked questions: %v\n", err)
		} else {
			i := 0
			for j := range asked {
				if asked[j].Embedding.Empty() && asked[j].Text != "" {
					asked[j].Embedding = domain.Embedding(vectors[i])
					i++
				}
			}
		}
	}

	ranked := engine.RankCandidates(ctx, cat.Templates(), asked, session.SlotView(cat))
	if len(ranked) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no candidates survived redundancy filtering")
		return nil
	}

	for i, candidate := range ranked {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-12s score=%.3f gain=%.3f penalty=%.3f  %s\n",
			i+1,
			candidate.Template.ID,
			candidate.Score,
			candidate.InfoGain,
			candidate.Redundancy.Penalty,
			candidate.Template.Prompt,
		)
	}
	return nil
}
