package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/ui"
)

// actionFor maps a key press to an action. Letters are matched case-insensitively.
func actionFor(key tcell.Key, r rune) ui.Action {
	switch key {
	case tcell.KeyLeft:
		return ui.Action{Command: loop.MoveLeft}
	case tcell.KeyRight:
		return ui.Action{Command: loop.MoveRight}
	case tcell.KeyDown:
		return ui.Action{Command: loop.HardDrop}
	case tcell.KeyPgUp:
		return ui.Action{Command: loop.RotateClockwise}
	case tcell.KeyPgDn:
		return ui.Action{Command: loop.RotateCounterClockwise}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ui.Action{Quit: true}
	case tcell.KeyRune:
	default:
		return ui.Action{}
	}

	switch unicode.ToLower(r) {
	case 'a':
		return ui.Action{Command: loop.MoveLeft}
	case 'd':
		return ui.Action{Command: loop.MoveRight}
	case 's':
		return ui.Action{Command: loop.HardDrop}
	case 'q':
		return ui.Action{Command: loop.RotateClockwise}
	case 'e':
		return ui.Action{Command: loop.RotateCounterClockwise}
	case 'f', 'c':
		return ui.Action{Command: loop.Hold}
	case 'r':
		return ui.Action{Restart: true}
	}
	return ui.Action{}
}
