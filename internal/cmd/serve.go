package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"quoridor/agent"
	"quoridor/communication/server"
	"quoridor/searcher"
)

// quoridor serve
func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local match server",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`serve hosts matches over the same HTTP protocol as the
			course's match server, with the minimax search answering
			every move. Players always take the first seat.

			When the configuration file holds secrets, only the listed
			IDULs are accepted; otherwise any basic auth pair is.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			name, _ := cmd.Flags().GetString("name")

			opponent := agent.NewSearchAgent(searcher.NewMinimax(
				searcher.WithDepth(c.Depth),
				searcher.WithGoroutines(c.Goroutines),
			))
			options := []server.Option{
				server.WithOpponentName(name),
				server.WithWalls(c.Walls),
			}
			if len(c.Secrets) > 0 {
				options = append(options, server.WithSecrets(c.Secrets))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.NewServer(opponent, options...).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("name", "robot", "Name of the server's player")
	cmd.Flags().Int("depth", 0, "Search depth in plies")
	cmd.Flags().Int("goroutines", 0, "Goroutines used at the top ply")
	return cmd
}
