package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryTop    bool
	flagHistoryPlayer string
	flagInteractive   bool
	flagClear         bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recorded runs, most recent first.

Examples:
  defender history
  defender history --top
  defender history --by alice
  defender history --interactive
  defender history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Sort by score instead of date")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "by", "", "Only show runs by this player")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		exitOnError(store.ClearRuns())
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		exitOnError(tui.RunHistory(store, width, height))
		return
	}

	exitOnError(printHistory(os.Stdout, store))
}

func printHistory(w io.Writer, store *storage.Store) error {
	var (
		runs  []storage.Run
		err   error
		title = "Recent Runs"
	)
	switch {
	case flagHistoryPlayer != "":
		title = "Runs by " + flagHistoryPlayer
		runs, err = store.PlayerRuns(flagHistoryPlayer, flagHistoryLimit)
	case flagHistoryTop:
		title = "Top Runs"
		runs, err = store.TopRuns(flagHistoryLimit)
	default:
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Space Defender - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'defender play' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-7s  %-5s  %-7s  %s\n", "#", "Player", "Score", "Time", "Kills", "Escaped", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-7s  %-7s  %-5s  %-7s  %s\n", "-", "------", "-----", "----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-12s  %-7d  %-7s  %-5d  %-7d  %s\n",
			i+1, r.Player, r.Score, survived(r.Ticks), r.Kills, r.Escaped, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.1f  Kills: %d\n", sum.Runs, sum.BestScore, sum.AvgScore, sum.TotalKills)
	return nil
}

// survived formats ticks as seconds at the configured tick rate.
func survived(ticks int) string {
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(rate))
}
