package loop

import "github.com/plus3/blockfall/playfield"

// Command is one player or gravity action against a playfield.
type Command uint8

const (
	MoveLeft Command = iota + 1
	MoveRight
	// Tick is one step of gravity; frontends use it as a soft drop.
	Tick
	HardDrop
	RotateClockwise
	RotateCounterClockwise
	Hold
)

// PlayerCommands lists the commands a player can issue.
var PlayerCommands = [...]Command{MoveLeft, MoveRight, Tick, HardDrop, RotateClockwise, RotateCounterClockwise, Hold}

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Tick:
		return "tick"
	case HardDrop:
		return "hard-drop"
	case RotateClockwise:
		return "rotate-cw"
	case RotateCounterClockwise:
		return "rotate-ccw"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}

// Apply runs the command against pf. Unknown commands do nothing.
func (c Command) Apply(pf *playfield.Playfield) {
	switch c {
	case MoveLeft:
		pf.MoveLeft()
	case MoveRight:
		pf.MoveRight()
	case Tick:
		pf.Tick()
	case HardDrop:
		pf.HardDrop()
	case RotateClockwise:
		pf.RotateClockwise()
	case RotateCounterClockwise:
		pf.RotateCounterClockwise()
	case Hold:
		pf.Hold()
	}
}
