package playfield

import (
	"image/color"

	"github.com/plus3/blockfall/piece"
)

const (
	Width  = 10
	Height = 22
	// VisibleTop is the first row shown to the player; rows above it are the spawn buffer.
	VisibleTop = 2
)

// Cell is either empty (the zero value) or filled by a locked piece of some kind.
type Cell struct {
	kind   piece.Kind
	filled bool
}

func filledCell(k piece.Kind) Cell {
	return Cell{kind: k, filled: true}
}

// Empty reports whether no block occupies the cell.
func (c Cell) Empty() bool {
	return !c.filled
}

// Kind reports the kind of the piece that filled the cell.
func (c Cell) Kind() (piece.Kind, bool) {
	return c.kind, c.filled
}

// Color reports the display color of a filled cell.
func (c Cell) Color() (color.RGBA, bool) {
	if !c.filled {
		return color.RGBA{}, false
	}
	return c.kind.Color(), true
}

// Board holds the locked cells, rows major. It satisfies piece.Board.
type Board [Height][Width]Cell

// Width is the number of columns.
func (b *Board) Width() int {
	return Width
}

// Height is the number of rows, including the hidden spawn rows.
func (b *Board) Height() int {
	return Height
}

// Occupied reports whether (x, y) holds a locked cell. Coordinates off the board are empty.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	return b[y][x].filled
}

// At returns the cell at (x, y), or an empty cell off the board.
func (b *Board) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return Cell{}
	}
	return b[y][x]
}

func (b *Board) stamp(p *piece.Piece) {
	for _, pt := range p.Cells() {
		if pt.X < 0 || pt.Y < 0 || pt.X >= Width || pt.Y >= Height {
			continue
		}
		b[pt.Y][pt.X] = filledCell(p.Kind())
	}
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b[row] {
		if !c.filled {
			return false
		}
	}
	return true
}

// clearRows removes every full row, shifting the rows above it down by one, and reports
// how many rows were removed.
func (b *Board) clearRows() int {
	cleared := 0
	for row := range Height {
		if !b.rowFull(row) {
			continue
		}
		cleared++
		for r := row; r > 0; r-- {
			b[r] = b[r-1]
		}
		b[0] = [Width]Cell{}
	}
	return cleared
}
