package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the search order:
--config, ~/.arcade/configs/defender.yaml, ./configs/defender.yaml,
then the built-in defaults.

Redirect the output to start a custom config:
  defender config > ~/.arcade/configs/defender.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.Marshal(loadConfig())
		exitOnError(err)
		os.Stdout.Write(data)
	},
}
