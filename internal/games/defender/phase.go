package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TapAction returns what a tap or click means in the given phase: start from
// the menu, shoot while playing, replay after game over.
func TapAction(p Phase) core.Action {
	switch p {
	case PhaseMenu:
		return core.ActionConfirm
	case PhasePlaying:
		return core.ActionFire
	case PhaseGameOver:
		return core.ActionRestart
	default:
		return core.ActionNone
	}
}
