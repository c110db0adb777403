package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/ui"
)

var keymap = map[ebiten.Key]ui.Action{
	ebiten.KeyArrowLeft:  {Command: loop.MoveLeft},
	ebiten.KeyA:          {Command: loop.MoveLeft},
	ebiten.KeyArrowRight: {Command: loop.MoveRight},
	ebiten.KeyD:          {Command: loop.MoveRight},
	ebiten.KeyArrowDown:  {Command: loop.HardDrop},
	ebiten.KeyS:          {Command: loop.HardDrop},
	ebiten.KeyQ:          {Command: loop.RotateClockwise},
	ebiten.KeyPageUp:     {Command: loop.RotateClockwise},
	ebiten.KeyE:          {Command: loop.RotateCounterClockwise},
	ebiten.KeyPageDown:   {Command: loop.RotateCounterClockwise},
	ebiten.KeyF:          {Command: loop.Hold},
	ebiten.KeyC:          {Command: loop.Hold},
	ebiten.KeyR:          {Restart: true},
	ebiten.KeyEscape:     {Quit: true},
}

func actionFor(key ebiten.Key) ui.Action {
	return keymap[key]
}
