// Package ui holds what the window and terminal frontends share: a snapshot of a playfield
// laid out for drawing, and the actions keys translate to.
package ui

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
)

// VisibleRows is the number of board rows shown to the player.
const VisibleRows = playfield.Height - playfield.VisibleTop

// Layer tells what occupies a tile of the scene.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerLocked
	LayerGhost
	LayerActive
)

type Tile struct {
	Layer Layer
	Kind  piece.Kind
}

// Scene is a drawable copy of a playfield. Tiles[0] is the top visible row.
type Scene struct {
	Tiles    [VisibleRows][playfield.Width]Tile
	Next     piece.Piece
	Held     piece.Piece
	HasHeld  bool
	CanHold  bool
	Level    int
	Lines    int
	GameOver bool
}

// Capture snapshots pf. The ghost is included when ghost is set and the game is running.
func Capture(pf *playfield.Playfield, ghost bool) Scene {
	sc := Scene{
		Next:     pf.Next(),
		CanHold:  pf.CanHold(),
		Level:    pf.Level(),
		Lines:    pf.Lines(),
		GameOver: pf.GameOver(),
	}
	sc.Held, sc.HasHeld = pf.Held()

	board := pf.Board()
	for y := range VisibleRows {
		for x := range playfield.Width {
			if k, ok := board.At(x, y+playfield.VisibleTop).Kind(); ok {
				sc.Tiles[y][x] = Tile{Layer: LayerLocked, Kind: k}
			}
		}
	}

	active := pf.Active()
	if ghost && !sc.GameOver {
		g := pf.Ghost()
		sc.overlay(g.Cells(), Tile{Layer: LayerGhost, Kind: g.Kind()})
	}
	sc.overlay(active.Cells(), Tile{Layer: LayerActive, Kind: active.Kind()})
	return sc
}

func (sc *Scene) overlay(cells []piece.Point, t Tile) {
	for _, c := range cells {
		y := c.Y - playfield.VisibleTop
		if y < 0 || y >= VisibleRows || c.X < 0 || c.X >= playfield.Width {
			continue
		}
		if t.Layer == LayerGhost && sc.Tiles[y][c.X].Layer != LayerEmpty {
			continue
		}
		sc.Tiles[y][c.X] = t
	}
}

// Action is what a key press asks for.
type Action struct {
	Command loop.Command
	Restart bool
	Quit    bool
}

func (a Action) None() bool {
	return a == Action{}
}

// Apply forwards the action: commands go to send, restarts to restart. It reports whether
// the action asks to quit.
func (a Action) Apply(send func(loop.Command), restart func()) bool {
	switch {
	case a.Quit:
		return true
	case a.Restart:
		restart()
	case a.Command != 0:
		send(a.Command)
	}
	return false
}
