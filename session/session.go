// Package session runs consecutive games on one scheduler. It registers the standard
// systems, swaps in a fresh playfield when a restart is requested and tags every game with
// its own id in the log.
package session

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/playfield"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Input loop.InputSource
	// NewField creates the playfield of each game.
	NewField func() *playfield.Playfield
	Logger   logrus.FieldLogger
}

type Session struct {
	scheduler *loop.Scheduler
	gravity   *loop.GravitySystem
	level     *loop.LevelSystem
	stats     *loop.StatsSystem
	newField  func() *playfield.Playfield
	logger    logrus.FieldLogger

	id      uuid.UUID
	restart atomic.Bool
}

// New starts the first game. Systems registered later with Register run after the
// standard ones, so they observe the frame's queued commands.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Session{
		gravity:  &loop.GravitySystem{},
		level:    &loop.LevelSystem{},
		stats:    &loop.StatsSystem{},
		newField: opts.NewField,
		logger:   logger,
	}
	s.begin()

	s.scheduler = loop.NewScheduler(s.newField())
	s.scheduler.Register(&loop.InputSystem{Source: opts.Input})
	s.scheduler.Register(s.gravity)
	s.scheduler.Register(s.level)
	s.scheduler.Register(s.stats)
	s.scheduler.Register(s)
	return s
}

func (s *Session) begin() {
	s.id = uuid.New()
	gameLogger := s.logger.WithField("game", s.id.String())
	s.level.Logger = gameLogger
	s.stats.Logger = gameLogger
	gameLogger.Info("new game")
}

func (s *Session) Register(system loop.System) {
	s.scheduler.Register(system)
}

func (s *Session) Scheduler() *loop.Scheduler {
	return s.scheduler
}

func (s *Session) Field() *playfield.Playfield {
	return s.scheduler.Field()
}

// ID identifies the current game.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Stats() *loop.GameStats {
	return s.stats.Stats()
}

// RequestRestart asks for a new game at the end of the next frame. It is safe to call from
// any goroutine.
func (s *Session) RequestRestart() {
	s.restart.Store(true)
}

func (s *Session) Execute(frame *loop.UpdateFrame) {
	if s.restart.Swap(false) {
		frame.Commands.Defer(s.restartNow)
	}
}

func (s *Session) restartNow() {
	s.scheduler.SetField(s.newField())
	s.gravity.Reset()
	s.begin()
}
