//go:build mobile

// Package mobile is the ebitenmobile binding for Space Defender.
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.vovakirdan.defender -o build/defender.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Defender.xcframework ./mobile
package mobile

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/platform/gui"
)

func init() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "defender"})

	runtime := core.DefaultConfig()
	runtime.Seed = time.Now().UnixNano()

	prefs, err := gui.OpenPrefs(gui.AppName)
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}

	ebiten.SetTPS(runtime.TickRate)
	mobile.SetGame(gui.NewApp(gui.Options{
		Game:   defender.New(config.DefaultDefenderConfig(), runtime),
		Prefs:  prefs,
		Logger: logger,
		Player: "mobile",
		Seed:   runtime.Seed,
	}))
}

// Dummy is exported so ebitenmobile has a symbol to bind.
func Dummy() {}
