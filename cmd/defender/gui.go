package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open Space Defender in a resizable window.

Controls:
  Drag              - Move the ship
  Tap/Click         - Fire (start / replay outside a run)
  Pause button      - Abandon the run
  Arrows, Space     - Move and fire
  F                 - Toggle fullscreen
  S                 - Toggle the starfield
  Q                 - Quit (outside a run)

Fullscreen and starfield choices are remembered between launches.`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(defender.ID, os.Stderr)
	exitOnError(err)
	defer closeLog()

	cfg := loadConfig()
	rt := runtimeConfig(0, 0)

	prefs, err := gui.OpenPrefs(gui.AppName)
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}

	store := openStore(logger)
	runErr := gui.Run(gui.Options{
		Game:   defender.New(cfg, rt),
		Store:  store,
		Prefs:  prefs,
		Logger: logger,
		Player: flagPlayer,
		Seed:   rt.Seed,
	}, rt.Normalized().TickRate)

	if store != nil {
		store.Close()
	}
	exitOnError(runErr)
}
