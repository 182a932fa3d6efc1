package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quoridor/experiments"
	"quoridor/experiments/metrics"
)

// quoridor selfplay
func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play agents of different depths against each other",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`selfplay runs a round robin between one agent per entry
			of --depths, alternating the first seat between games. A
			depth of 0 stands for an agent playing uniformly random
			legal moves.

			Agent configurations, game results and per-move search
			counters are written as CSV files under a timestamped
			directory of --out.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			depths, _ := cmd.Flags().GetIntSlice("depths")
			games, _ := cmd.Flags().GetInt("games")
			seed, _ := cmd.Flags().GetUint64("seed")
			out, _ := cmd.Flags().GetString("out")

			configs := make([]metrics.AgentConfig, len(depths))
			for i, depth := range depths {
				if depth < 0 {
					return fmt.Errorf("depth must not be negative, got %d", depth)
				}
				configs[i] = metrics.AgentConfig{
					ID:         i + 1,
					Depth:      depth,
					Goroutines: c.Goroutines,
					Seed:       seed,
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := experiments.RunSelfPlay(ctx, configs, games, out)
			if err != nil {
				return err
			}
			for _, config := range configs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d wins\n", config, results.Wins()[config.ID])
			}
			if results.Dir != "" {
				log.Info().Msgf("results written to %s", results.Dir)
			}
			return nil
		},
	}

	cmd.Flags().IntSlice("depths", []int{0, 1, 2}, "Search depth of each agent, 0 for random")
	cmd.Flags().Int("games", experiments.NumGames, "Games per pair of agents")
	cmd.Flags().Uint64("seed", 1, "Seed of the random agents")
	cmd.Flags().String("out", filepath.Join(xdg.DataHome, "quoridor", "experiments"), "Output directory, empty to skip writing")
	cmd.Flags().Int("goroutines", 0, "Goroutines used at the top ply")
	return cmd
}
