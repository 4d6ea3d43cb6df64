package defender

import (
	"context"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Runner drives a Game on a fixed timestep until it leaves play.
type Runner struct {
	Game *Game

	// Interval between ticks. Zero or negative runs unthrottled.
	Interval time.Duration

	// MaxTicks stops the loop after this many ticks. Zero means no limit.
	MaxTicks int

	// BeforeTick, if set, supplies the input applied before each tick.
	BeforeTick func(Snapshot) core.InputFrame

	// OnTick, if set, observes the state after each tick.
	OnTick func(Snapshot)
}

// IntervalFor converts a tick rate into a tick interval.
func IntervalFor(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(tickRate)
}

// Run ticks the game while it is playing. It returns nil when the game
// leaves play or MaxTicks is reached, and ctx.Err() when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; r.MaxTicks <= 0 || n < r.MaxTicks; n++ {
		if !r.Game.ShouldContinue() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		if r.BeforeTick != nil {
			r.Game.Apply(r.BeforeTick(r.Game.Snapshot()))
		}
		r.Game.Tick()
		if r.OnTick != nil {
			r.OnTick(r.Game.Snapshot())
		}
	}
	return nil
}
