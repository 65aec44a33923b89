package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/caixa-dev/caixa/internal/commands"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	rootCmd := commands.NewRootCommand(logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
