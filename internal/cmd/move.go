package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quoridor/game"
	"quoridor/searcher"
)

// quoridor move
func Move() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [FILE]",
		Short: "Recommend a move for a game snapshot",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`move reads a game snapshot in the match server's JSON
			format ("tour", "joueurs", "murs") from FILE, or from standard
			input when FILE is omitted, searches it and prints the chosen
			move as {"coup": ..., "position": [x, y]}.

			The player defaults to the first seat.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var snapshot game.Snapshot
			if err := json.NewDecoder(in).Decode(&snapshot); err != nil {
				return fmt.Errorf("failed to decode snapshot: %w", err)
			}
			state, err := game.FromSnapshot(snapshot)
			if err != nil {
				return err
			}

			player, _ := cmd.Flags().GetString("player")
			if player == "" {
				player = state.Players[0].Name
			}
			if _, err := state.Seat(player); err != nil {
				return err
			}

			minimax := searcher.NewMinimax(
				searcher.WithDepth(c.Depth),
				searcher.WithGoroutines(c.Goroutines),
			)
			move, searchMetric, err := minimax.FindMove(state, player)
			if err != nil {
				return err
			}
			log.Debug().Msgf("searched %d nodes in %s", searchMetric.Nodes, searchMetric.Duration)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			return encoder.Encode(move)
		},
	}

	cmd.Flags().String("player", "", "Name of the player to move")
	cmd.Flags().Int("depth", 0, "Search depth in plies")
	cmd.Flags().Int("goroutines", 0, "Goroutines used at the top ply")
	return cmd
}
