package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Space Defender in the terminal.

Controls:
  Left/Right, A/D   - Move
  Space/Up          - Fire
  Mouse drag        - Move
  Mouse click       - Fire (start / replay outside a run)
  Enter             - Start from the menu
  R                 - Replay after game over
  M                 - Menu after game over
  P/Esc             - Abandon the run
  Tab               - Run history (outside a run)
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is set.

Examples:
  defender play
  defender play --seed 42
  defender play --config ./my-defender.yaml --log-file defender.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(defender.ID, io.Discard)
	exitOnError(err)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := loadConfig()
	rt := runtimeConfig(width, height)
	logger.Debug("starting", "seed", rt.Seed, "tick_rate", rt.TickRate, "size", [2]int{width, height})

	store := openStore(logger)
	runErr := tui.Run(defender.New(cfg, rt), store, logger, rt, flagPlayer)

	if store != nil {
		store.Close()
	}
	exitOnError(runErr)
}
