package cmd

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"quoridor/config"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:  "quoridor",
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})

			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if cmd.Flag("verbose").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			// --trace wins over --verbose
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("verbose", false, "Show Debug Information")
	root.PersistentFlags().String("config", "", "Configuration file (default $XDG_CONFIG_HOME/"+config.RelativePath+")")

	root.AddCommand(Play())
	root.AddCommand(Move())
	root.AddCommand(Serve())
	root.AddCommand(SelfPlay())

	return root
}

// loadConfig reads the configuration named by --config, then applies the
// depth flag when the command defines one and it was given.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if f := cmd.Flag("depth"); f != nil && f.Changed {
		if c.Depth, err = cmd.Flags().GetInt("depth"); err != nil {
			return config.Config{}, err
		}
	}
	if f := cmd.Flag("goroutines"); f != nil && f.Changed {
		if c.Goroutines, err = cmd.Flags().GetInt("goroutines"); err != nil {
			return config.Config{}, err
		}
	}
	return c, c.Validate()
}
