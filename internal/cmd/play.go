package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quoridor/agent"
	"quoridor/communication"
	"quoridor/communication/client"
	"quoridor/config"
	"quoridor/engine"
	"quoridor/game"
	"quoridor/searcher"
)

// SPIN is the spinner character set shown while the server answers.
const SPIN = 14

// quoridor play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play IDUL",
		Short: "Play a match against the match server",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`play creates a match on the match server for the given
			IDUL and plays it until one side reaches its goal row.

			Without --auto the moves are asked on the terminal: first the
			kind (D to move the token, MH or MV to place a horizontal or
			vertical wall) then the position as "x, y". With --auto the
			minimax search picks every move.

			The secret is taken from --secret, or from the secrets map of
			the configuration file.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			idul := args[0]

			if server, _ := cmd.Flags().GetString("server"); server != "" {
				c.Server = server
			}
			if mode, _ := cmd.Flags().GetString("render"); mode != "" {
				if c.Render, err = config.ParseRenderMode(mode); err != nil {
					return err
				}
			}
			renderer, err := c.Renderer()
			if err != nil {
				return err
			}

			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				if secret, err = c.Secret(idul); err != nil {
					return err
				}
			}

			var player agent.Agent
			if auto, _ := cmd.Flags().GetBool("auto"); auto {
				player = agent.NewSearchAgent(searcher.NewMinimax(
					searcher.WithDepth(c.Depth),
					searcher.WithGoroutines(c.Goroutines),
				))
			} else {
				player = agent.NewInteractiveAgent(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			transport := spinningTransport{
				Transport: client.NewClient(c.Server, idul, secret),
				out:       cmd.ErrOrStderr(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			winner, gameMetric, err := engine.RemoteEngine(transport, player, renderer, cmd.OutOrStdout()).Run(ctx)
			if err != nil {
				return err
			}
			log.Debug().Msgf("match won by %s after %d moves in %s", winner, gameMetric.TotalMoves, gameMetric.Duration)
			return nil
		},
	}

	cmd.Flags().Bool("auto", false, "Let the search play every move")
	cmd.Flags().Int("depth", 0, "Search depth in plies for --auto")
	cmd.Flags().Int("goroutines", 0, "Goroutines used at the top ply for --auto")
	cmd.Flags().String("server", "", "Match server URL")
	cmd.Flags().String("secret", "", "Secret token of the IDUL")
	cmd.Flags().String("render", "", fmt.Sprintf("Board rendering (%s or %s)", config.RenderText, config.RenderGraphical))
	return cmd
}

// spinningTransport shows a spinner while waiting on the server.
type spinningTransport struct {
	communication.Transport
	out io.Writer
}

func (t spinningTransport) spin() func() {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
	s.Writer = t.out
	s.Suffix = " waiting for the server"
	s.Start()
	return s.Stop
}

func (t spinningTransport) Create(ctx context.Context) (string, game.Snapshot, error) {
	defer t.spin()()
	return t.Transport.Create(ctx)
}

func (t spinningTransport) Submit(ctx context.Context, id string, move game.GameMove) (communication.Outcome, error) {
	defer t.spin()()
	return t.Transport.Submit(ctx, id, move)
}
