package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"quoridor/internal/cmd"
)

func main() {
	if err := quoridor(); err != nil {
		log.Fatal().Err(err).Msg("quoridor")
	}
}

func quoridor() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
