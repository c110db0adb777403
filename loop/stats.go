package loop

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/sirupsen/logrus"
)

// GameStats summarizes the locks of one or more games.
type GameStats struct {
	Locks  int
	TSpins int
	// Clears is indexed by the number of rows removed by a lock.
	Clears [5]int
	Games  int
	// GamesOver counts games that reached game over.
	GamesOver int
	byKind    *intmap.Map[piece.Kind, int]
}

// LocksOf is the number of locked pieces of kind k.
func (g *GameStats) LocksOf(k piece.Kind) int {
	if g.byKind == nil {
		return 0
	}
	n, _ := g.byKind.Get(k)
	return n
}

// StatsSystem tallies the locks reported by each frame and logs clears and game over.
type StatsSystem struct {
	Logger logrus.FieldLogger

	stats GameStats
	field *playfield.Playfield
	ended bool
}

func (s *StatsSystem) Execute(frame *UpdateFrame) {
	if s.stats.byKind == nil {
		s.stats.byKind = intmap.New[piece.Kind, int](len(piece.Kinds))
	}
	if frame.Field != s.field {
		s.field = frame.Field
		s.ended = false
		s.stats.Games++
	}

	for _, ev := range frame.Locks {
		s.record(ev)
	}

	if frame.Field.GameOver() && !s.ended {
		s.ended = true
		s.stats.GamesOver++
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{
				"level": frame.Field.Level(),
				"lines": frame.Field.Lines(),
				"locks": s.stats.Locks,
			}).Info("game over")
		}
	}
}

func (s *StatsSystem) record(ev playfield.LockEvent) {
	s.stats.Locks++
	n, _ := s.stats.byKind.Get(ev.Kind)
	s.stats.byKind.Put(ev.Kind, n+1)
	s.stats.Clears[min(ev.Rows, len(s.stats.Clears)-1)]++
	if ev.TSpin {
		s.stats.TSpins++
	}

	if s.Logger != nil && (ev.Rows > 0 || ev.TSpin) {
		s.Logger.WithFields(logrus.Fields{
			"piece":  ev.Kind.String(),
			"rows":   ev.Rows,
			"tspin":  ev.TSpin,
			"credit": ev.Credit,
		}).Debug("lock")
	}
}

// Stats returns the running totals.
func (s *StatsSystem) Stats() *GameStats {
	return &s.stats
}
