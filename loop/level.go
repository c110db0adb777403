package loop

import (
	"github.com/sirupsen/logrus"
)

// LinesPerLevel is the multiplier of the level-up threshold: a game at level n advances
// once its line counter exceeds LinesPerLevel×n.
const LinesPerLevel = 5

// LevelSystem applies the level-up policy. The playfield charges the threshold back to its
// line counter when the level increments.
type LevelSystem struct {
	Logger logrus.FieldLogger
}

func (s *LevelSystem) Execute(frame *UpdateFrame) {
	pf := frame.Field
	if pf.GameOver() || pf.Lines() <= LinesPerLevel*pf.Level() {
		return
	}

	from := pf.Level()
	frame.Commands.Defer(pf.IncrementLevel)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"level":    from + 1,
			"lines":    pf.Lines(),
			"interval": GravityInterval(from + 1),
		}).Info("level up")
	}
}
