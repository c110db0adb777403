// Package piece models a single tetromino: its occupancy grid, its identity and its anchor
// on a board, together with the movement and rotation legality checks against a board
// snapshot.
package piece

import (
	"fmt"
	"image/color"
)

// Board is the read-only view of a playfield a piece is checked against.
type Board interface {
	Width() int
	Height() int
	Occupied(x, y int) bool
}

// Point is an absolute board coordinate.
type Point struct {
	X, Y int
}

type spawn struct {
	shape Shape
	x, y  int
}

var spawns = [...]spawn{
	J: {mustShape("#..", "###", "..."), 3, 0},
	L: {mustShape("..#", "###", "..."), 3, 0},
	O: {mustShape("##", "##"), 4, 0},
	S: {mustShape(".##", "##.", "..."), 3, 0},
	Z: {mustShape("##.", ".##", "..."), 3, 0},
	T: {mustShape(".#.", "###", "..."), 3, 0},
	I: {mustShape("....", "####", "....", "...."), 3, 0},
}

// Piece is a tetromino placed on a board. Pieces are plain values; copies are independent.
type Piece struct {
	kind  Kind
	shape Shape
	x, y  int
}

// New returns a piece of the given kind in its spawn orientation at its spawn anchor.
func New(kind Kind) (Piece, error) {
	if !kind.Valid() {
		return Piece{}, fmt.Errorf("%w: %d", ErrInvalidKind, uint8(kind))
	}
	sp := spawns[kind]
	return Piece{kind: kind, shape: sp.shape, x: sp.x, y: sp.y}, nil
}

// MustNew is like New but panics on an invalid kind.
func MustNew(kind Kind) Piece {
	p, err := New(kind)
	if err != nil {
		panic(err)
	}
	return p
}

// FromShape builds a piece with an explicit grid and anchor.
func FromShape(kind Kind, shape Shape, x, y int) (Piece, error) {
	if !kind.Valid() {
		return Piece{}, fmt.Errorf("%w: %d", ErrInvalidKind, uint8(kind))
	}
	if shape.Size() < MinSize {
		return Piece{}, ErrEmptyShape
	}
	return Piece{kind: kind, shape: shape, x: x, y: y}, nil
}

// Kind is the piece's identity.
func (p Piece) Kind() Kind {
	return p.kind
}

// Color is the display color of the piece's kind.
func (p Piece) Color() color.RGBA {
	return p.kind.Color()
}

// Shape is a copy of the current occupancy grid.
func (p Piece) Shape() Shape {
	return p.shape
}

// Position is the board coordinate of the grid origin.
func (p Piece) Position() (x, y int) {
	return p.x, p.y
}

// MoveLeft shifts the anchor one column left without checking the board.
func (p *Piece) MoveLeft() {
	p.x--
}

// MoveRight shifts the anchor one column right without checking the board.
func (p *Piece) MoveRight() {
	p.x++
}

// MoveDown shifts the anchor one row down without checking the board.
func (p *Piece) MoveDown() {
	p.y++
}

// RotateClockwise turns the grid in place. Legality is checked by CanRotateClockwise.
func (p *Piece) RotateClockwise() {
	p.shape = p.shape.Clockwise()
}

// RotateCounterClockwise turns the grid in place. Legality is checked by
// CanRotateCounterClockwise.
func (p *Piece) RotateCounterClockwise() {
	p.shape = p.shape.CounterClockwise()
}

// CanMoveLeft reports whether the piece fits one column to the left.
func (p Piece) CanMoveLeft(b Board) bool {
	minC := p.shape.ExtentMin(Horizontal)
	if p.x+minC <= 0 {
		return false
	}
	return p.clearOfColumns(b, minC, p.shape.ExtentMax(Horizontal), -1)
}

// CanMoveRight reports whether the piece fits one column to the right.
func (p Piece) CanMoveRight(b Board) bool {
	maxC := p.shape.ExtentMax(Horizontal)
	if p.x+maxC >= b.Width()-1 {
		return false
	}
	return p.clearOfColumns(b, p.shape.ExtentMin(Horizontal), maxC, 1)
}

// CanMoveDown reports whether the piece fits one row lower.
func (p Piece) CanMoveDown(b Board) bool {
	maxR := p.shape.ExtentMax(Vertical)
	if p.y+maxR >= b.Height()-1 {
		return false
	}
	for r := 0; r <= maxR; r++ {
		for c := range p.shape.n {
			if p.shape.cells[r][c] && b.Occupied(p.x+c, p.y+r+1) {
				return false
			}
		}
	}
	return true
}

func (p Piece) clearOfColumns(b Board, from, to, dx int) bool {
	for c := from; c <= to; c++ {
		for r := range p.shape.n {
			if p.shape.cells[r][c] && b.Occupied(p.x+c+dx, p.y+r) {
				return false
			}
		}
	}
	return true
}

// CanRotateClockwise reports whether the clockwise grid fits at the current anchor.
func (p Piece) CanRotateClockwise(b Board) bool {
	return fits(p.shape.Clockwise(), p.x, p.y, b)
}

// CanRotateCounterClockwise reports whether the counterclockwise turn fits at the current
// position.
func (p Piece) CanRotateCounterClockwise(b Board) bool {
	return fits(p.shape.CounterClockwise(), p.x, p.y, b)
}

// fits reports whether shape anchored at (x, y) lies inside b without overlapping it.
func fits(shape Shape, x, y int, b Board) bool {
	if x+shape.ExtentMin(Horizontal) < 0 || x+shape.ExtentMax(Horizontal) >= b.Width() {
		return false
	}
	if y+shape.ExtentMin(Vertical) < 0 || y+shape.ExtentMax(Vertical) >= b.Height() {
		return false
	}
	for r := range shape.n {
		for c := range shape.n {
			if shape.cells[r][c] && b.Occupied(x+c, y+r) {
				return false
			}
		}
	}
	return true
}

// Intersects reports whether any occupied cell overlaps an occupied board cell.
func (p Piece) Intersects(b Board) bool {
	for r := range p.shape.n {
		for c := range p.shape.n {
			if p.shape.cells[r][c] && b.Occupied(p.x+c, p.y+r) {
				return true
			}
		}
	}
	return false
}

// HasThreeOccupiedCorners samples the four corners of the bounding grid at the current
// position. Corners off the board count as occupied.
func (p Piece) HasThreeOccupiedCorners(b Board) bool {
	far := p.shape.n - 1
	corners := [4]Point{
		{p.x, p.y},
		{p.x + far, p.y},
		{p.x, p.y + far},
		{p.x + far, p.y + far},
	}

	sum := 0
	for _, pt := range corners {
		if pt.X < 0 || pt.Y < 0 || pt.X >= b.Width() || pt.Y >= b.Height() || b.Occupied(pt.X, pt.Y) {
			sum++
		}
	}
	return sum >= 3
}

// Ghost returns a copy of p dropped straight down until it rests on b.
func (p Piece) Ghost(b Board) Piece {
	ghost := p
	for ghost.CanMoveDown(b) {
		ghost.MoveDown()
	}
	return ghost
}

// Cells returns the absolute coordinates of every occupied cell, scanning columns left to
// right and each column top to bottom.
func (p Piece) Cells() []Point {
	out := make([]Point, 0, 4)
	for c := range p.shape.n {
		for r := range p.shape.n {
			if p.shape.cells[r][c] {
				out = append(out, Point{X: p.x + c, Y: p.y + r})
			}
		}
	}
	return out
}
