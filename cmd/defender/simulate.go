package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

var (
	flagSimRuns     int
	flagSimMaxTicks int
	flagSimWidth    float64
	flagSimHeight   float64
	flagSimRealtime bool
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play headless runs",
	Long: `Play runs with the built-in autopilot and print a summary of each.

Run i uses seed --seed + i, so the same flags always give the same results.

Examples:
  defender simulate
  defender simulate --runs 20 --seed 1
  defender simulate --realtime --log-level debug
  defender simulate --record --player autopilot`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of runs")
	simulateCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 36000, "Stop a run after this many ticks (0 = no limit)")
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 400, "Play field width")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 800, "Play field height")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the history")
}

// simResult is the outcome of one autopilot run.
type simResult struct {
	Seed     int64
	Snapshot defender.Snapshot
	Crashed  bool
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("defender-sim", os.Stderr)
	exitOnError(err)
	defer closeLog()

	cfg := loadConfig()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store *storage.Store
	if flagSimRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "SEED", "SCORE", "TIME", "KILLS", "ESCAPED", "SHOTS", "ACCURACY", "RESULT")

	best := 0
	for i := 0; i < flagSimRuns; i++ {
		res, err := simulateRun(ctx, cfg, base+int64(i))
		if err != nil {
			logger.Warn("simulation interrupted", "run", i+1, "error", err)
			break
		}

		snap := res.Snapshot
		best = max(best, snap.Score)
		result := "timeout"
		if res.Crashed {
			result = "crashed"
		}
		logger.Debug("run finished", "run", i+1, "seed", res.Seed, "score", snap.Score, "ticks", snap.Stats.Ticks)

		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(res.Seed, 10),
			strconv.Itoa(snap.Score),
			survived(snap.Stats.Ticks),
			strconv.Itoa(snap.Stats.EnemiesDestroyed),
			strconv.Itoa(snap.Stats.EnemiesEscaped),
			strconv.Itoa(snap.Stats.ShotsFired),
			fmt.Sprintf("%.0f%%", snap.Stats.Accuracy()*100),
			result,
		)

		if store != nil && snap.Score > 0 {
			if _, err := store.SaveRun(storage.Run{
				Player:     flagPlayer,
				Score:      snap.Score,
				Ticks:      snap.Stats.Ticks,
				ShotsFired: snap.Stats.ShotsFired,
				Kills:      snap.Stats.EnemiesDestroyed,
				Escaped:    snap.Stats.EnemiesEscaped,
				Seed:       res.Seed,
			}); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	}
	fmt.Println(t.Render())
	fmt.Printf("\nBest score: %d\n", best)
}

// simulateRun plays one autopilot run on a fixed field.
func simulateRun(ctx context.Context, cfg config.DefenderConfig, seed int64) (simResult, error) {
	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
	game := defender.New(cfg, rt)
	game.ReportViewport(flagSimWidth, flagSimHeight)
	game.StartGame()

	pilot := defender.NewAutopilot(cfg)
	runner := &defender.Runner{
		Game:       game,
		MaxTicks:   flagSimMaxTicks,
		BeforeTick: pilot.Decide,
	}
	if flagSimRealtime {
		runner.Interval = defender.IntervalFor(rt.Normalized().TickRate)
	}

	if err := runner.Run(ctx); err != nil {
		return simResult{}, err
	}

	snap := game.Snapshot()
	return simResult{
		Seed:     seed,
		Snapshot: snap,
		Crashed:  snap.Phase == defender.PhaseGameOver,
	}, nil
}
