package playfield

// Phase is the lock-delay state of the active piece.
type Phase uint8

const (
	// PhaseFalling: the piece has not been blocked by gravity since it last moved down.
	PhaseFalling Phase = iota
	// PhaseGrounded: gravity was blocked and the lock timer is running.
	PhaseGrounded
	// PhaseGameOver is terminal.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseGrounded:
		return "grounded"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// MaxMoves is the number of moves and rotations a grounded piece may make before the next
// blocked tick locks it regardless of the grace tick.
const MaxMoves = 15

// lockState holds the phase and the data that only means something while grounded.
type lockState struct {
	phase Phase
	// moves counts legal actions since the piece was first grounded.
	moves int
	// gravityLast is set when the latest event was a gravity tick, whether it moved the
	// piece or not. A blocked tick with gravityLast set locks.
	gravityLast bool
}

// reset prepares the state for a freshly spawned or swapped-in piece.
func (s *lockState) reset() {
	*s = lockState{phase: PhaseFalling}
}

func (s *lockState) fell() {
	*s = lockState{phase: PhaseFalling, gravityLast: true}
}

func (s *lockState) acted() {
	s.gravityLast = false
	if s.phase == PhaseGrounded {
		s.moves++
	}
}

// blockedTick records a tick that could not move the piece and reports whether it locks.
// Only a piece that was just spawned, moved or rotated gets a tick of grace.
func (s *lockState) blockedTick() bool {
	if s.gravityLast || (s.phase == PhaseGrounded && s.moves > MaxMoves) {
		return true
	}
	if s.phase != PhaseGrounded {
		*s = lockState{phase: PhaseGrounded}
	}
	s.gravityLast = true
	return false
}
