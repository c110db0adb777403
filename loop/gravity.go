package loop

import (
	"time"
)

const (
	// BaseInterval is the gravity period at level 1.
	BaseInterval = 2 * time.Second
	// MaxSpeedLevel is the level from which gravity stops speeding up.
	MaxSpeedLevel = 20
)

// GravityInterval is the time between ticks at the given level: BaseInterval divided by the
// level, frozen once the level reaches MaxSpeedLevel.
func GravityInterval(level int) time.Duration {
	level = max(1, min(level, MaxSpeedLevel-1))
	return BaseInterval / time.Duration(level)
}

// GravitySystem turns elapsed frame time into Tick commands at the playfield's level rate.
type GravitySystem struct {
	elapsed time.Duration
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if frame.Field.GameOver() {
		s.elapsed = 0
		return
	}

	s.elapsed += time.Duration(frame.DeltaTime * float64(time.Second))
	interval := GravityInterval(frame.Field.Level())
	for s.elapsed >= interval {
		s.elapsed -= interval
		frame.Commands.Push(Tick)
	}
}

// Reset drops any partially elapsed interval.
func (s *GravitySystem) Reset() {
	s.elapsed = 0
}
