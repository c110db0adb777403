// Package playfield is the game state machine: it owns the board, the active, next and held
// pieces, the randomizer, lock-delay bookkeeping and the line counter, and exposes the
// player commands and the gravity tick.
//
// A Playfield has no internal synchronization. Commands and ticks must come from one
// goroutine at a time; illegal commands are silently ignored so callers can issue them
// speculatively.
package playfield

import (
	"github.com/plus3/blockfall/piece"
)

// TSpinBonus is credited to the line counter when a T locks right after a rotation with at
// least three of its corners occupied.
const TSpinBonus = 4

// clearBonus is indexed by the number of rows removed in a single pass.
var clearBonus = [...]int{0, 1, 3, 5, 8}

// LockEvent describes the most recent lock.
type LockEvent struct {
	// Seq starts at 1 and increases by one per lock.
	Seq   int
	Kind  piece.Kind
	Rows  int
	TSpin bool
	// Credit is what the lock added to the line counter.
	Credit int
}

type Playfield struct {
	board Board
	rng   Randomizer

	active  piece.Piece
	next    piece.Piece
	held    piece.Piece
	hasHeld bool

	lines int
	level int

	lock       lockState
	lastRotate bool
	holdUsed   bool
	lastLock   LockEvent
}

// New returns a playfield at level 1 whose pieces are drawn from rng.
func New(rng Randomizer) *Playfield {
	p := &Playfield{rng: rng, level: 1}
	p.next = p.draw()
	p.spawn()
	return p
}

// NewSeeded returns a playfield backed by a 7-bag seeded with seed.
func NewSeeded(seed uint64) *Playfield {
	return New(NewSeededBag(seed))
}

func (p *Playfield) draw() piece.Piece {
	return piece.MustNew(p.rng.Next())
}

func (p *Playfield) spawn() {
	p.active = p.next
	p.next = p.draw()
	p.holdUsed = false
	p.resetPieceState()
}

func (p *Playfield) resetPieceState() {
	p.lastRotate = false
	p.lock.reset()
	if p.active.Intersects(&p.board) {
		p.lock.phase = PhaseGameOver
	}
}

func (p *Playfield) over() bool {
	return p.lock.phase == PhaseGameOver
}

// MoveLeft shifts the active piece one column left if it fits.
func (p *Playfield) MoveLeft() {
	if p.over() || !p.active.CanMoveLeft(&p.board) {
		return
	}
	p.active.MoveLeft()
	p.lastRotate = false
	p.lock.acted()
}

// MoveRight shifts the active piece one column right if it fits.
func (p *Playfield) MoveRight() {
	if p.over() || !p.active.CanMoveRight(&p.board) {
		return
	}
	p.active.MoveRight()
	p.lastRotate = false
	p.lock.acted()
}

// RotateClockwise turns the active piece in place if the turned grid fits. No kicks are
// tried.
func (p *Playfield) RotateClockwise() {
	if p.over() || !p.active.CanRotateClockwise(&p.board) {
		return
	}
	p.active.RotateClockwise()
	p.lastRotate = true
	p.lock.acted()
}

// RotateCounterClockwise is the mirror of RotateClockwise.
func (p *Playfield) RotateCounterClockwise() {
	if p.over() || !p.active.CanRotateCounterClockwise(&p.board) {
		return
	}
	p.active.RotateCounterClockwise()
	p.lastRotate = true
	p.lock.acted()
}

// Tick applies one step of gravity. A piece that cannot fall locks on this tick if the
// previous event was also gravity. Otherwise it gets one tick of grace, renewed by every
// legal move or rotation until MaxMoves is exceeded.
func (p *Playfield) Tick() {
	if p.over() {
		return
	}
	if p.active.CanMoveDown(&p.board) {
		p.active.MoveDown()
		p.lastRotate = false
		p.lock.fell()
		return
	}
	if p.lock.blockedTick() {
		p.lockActive()
	}
}

// HardDrop drops the active piece as far as it goes and locks it immediately.
func (p *Playfield) HardDrop() {
	if p.over() {
		return
	}
	moved := false
	for p.active.CanMoveDown(&p.board) {
		p.active.MoveDown()
		moved = true
	}
	if moved {
		p.lastRotate = false
	}
	p.lockActive()
}

// Hold banks the active piece, once per spawned piece. The first hold draws a replacement
// from the randomizer; later holds swap with the banked piece. Both sides restart in their
// spawn orientation.
func (p *Playfield) Hold() {
	if p.over() || p.holdUsed {
		return
	}
	kind := p.active.Kind()
	if p.hasHeld {
		p.active = p.held
	} else {
		p.active = p.draw()
		p.hasHeld = true
	}
	p.held = piece.MustNew(kind)
	p.holdUsed = true
	p.resetPieceState()
}

func (p *Playfield) lockActive() {
	ev := LockEvent{Seq: p.lastLock.Seq + 1, Kind: p.active.Kind()}
	if p.tSpin() {
		ev.TSpin = true
		ev.Credit += TSpinBonus
	}

	p.board.stamp(&p.active)
	ev.Rows = p.board.clearRows()
	if ev.Rows < len(clearBonus) {
		ev.Credit += clearBonus[ev.Rows]
	}

	p.lines += ev.Credit
	p.lastLock = ev
	p.spawn()
}

func (p *Playfield) tSpin() bool {
	return p.active.Kind() == piece.T && p.lastRotate && p.active.HasThreeOccupiedCorners(&p.board)
}

// Tile returns the locked cell at (x, y). The active piece is not part of the board.
func (p *Playfield) Tile(x, y int) Cell {
	return p.board.At(x, y)
}

// Board returns a copy of the locked cells.
func (p *Playfield) Board() Board {
	return p.board
}

// Active returns a copy of the falling piece.
func (p *Playfield) Active() piece.Piece {
	return p.active
}

// Ghost is where the active piece would come to rest if dropped.
func (p *Playfield) Ghost() piece.Piece {
	return p.active.Ghost(&p.board)
}

// Next returns the piece that spawns after the active one locks.
func (p *Playfield) Next() piece.Piece {
	return p.next
}

// Held returns the banked piece, if any.
func (p *Playfield) Held() (piece.Piece, bool) {
	return p.held, p.hasHeld
}

// CanHold reports whether Hold would do anything right now.
func (p *Playfield) CanHold() bool {
	return !p.over() && !p.holdUsed
}

// Lines is the line counter, including clear bonuses and T-spin credit.
func (p *Playfield) Lines() int {
	return p.lines
}

// Level is the current level, starting at 1.
func (p *Playfield) Level() int {
	return p.level
}

// SetLevel overrides the level, typically to start a game above level 1.
func (p *Playfield) SetLevel(level int) {
	p.level = level
}

// IncrementLevel charges 5×level lines for the level just completed, then advances it.
// The counter may go negative if the caller levels up early.
func (p *Playfield) IncrementLevel() {
	p.lines -= 5 * p.level
	p.level++
}

// Phase is the lock-delay phase of the active piece.
func (p *Playfield) Phase() Phase {
	return p.lock.phase
}

// GameOver reports whether a spawned piece overlapped the stack.
func (p *Playfield) GameOver() bool {
	return p.over()
}

// LastLock returns the most recent lock, if any piece has locked yet.
func (p *Playfield) LastLock() (LockEvent, bool) {
	return p.lastLock, p.lastLock.Seq > 0
}
