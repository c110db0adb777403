package session_test

import (
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/session"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, input loop.InputSource) (*session.Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	var seed uint64
	s := session.New(session.Options{
		Input: input,
		NewField: func() *playfield.Playfield {
			seed++
			return playfield.NewSeeded(seed)
		},
		Logger: logger,
	})
	return s, hook
}

func TestNewSession(t *testing.T) {
	s, hook := newSession(t, nil)

	require.NotNil(t, s.Field())
	assert.False(t, s.Field().GameOver())
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "new game", hook.LastEntry().Message)
	assert.Equal(t, s.ID().String(), hook.LastEntry().Data["game"])

	stats := s.Scheduler().GetStats()
	assert.Equal(t, 5, stats.SystemCount)
}

func TestRestart(t *testing.T) {
	input := loop.NewChannelInput(4)
	s, hook := newSession(t, input)

	first := s.Field()
	firstID := s.ID()

	input.Send(loop.HardDrop)
	s.RequestRestart()
	s.Scheduler().Once(0)

	_, locked := first.LastLock()
	assert.True(t, locked, "commands of the frame apply before the restart")
	assert.NotSame(t, first, s.Field())
	assert.NotEqual(t, firstID, s.ID())
	assert.Equal(t, s.ID().String(), hook.LastEntry().Data["game"])

	s.Scheduler().Once(0)
	assert.Equal(t, 2, s.Stats().Games)

	_, locked = s.Field().LastLock()
	assert.False(t, locked)
}

func TestRestartResetsGravity(t *testing.T) {
	s, _ := newSession(t, nil)

	s.Scheduler().Once(1.5)
	s.RequestRestart()
	s.Scheduler().Once(0)

	a := s.Field().Active()
	_, y := a.Position()
	s.Scheduler().Once(1.0)
	a = s.Field().Active()
	_, after := a.Position()
	assert.Equal(t, y, after, "partial interval of the old game is dropped")
}

type recorder struct {
	frames int
}

func (r *recorder) Execute(*loop.UpdateFrame) { r.frames++ }

func TestRegisterRunsAfterStandardSystems(t *testing.T) {
	s, _ := newSession(t, nil)
	r := &recorder{}
	s.Register(r)

	s.Scheduler().Once(0)
	s.Scheduler().Once(0)

	assert.Equal(t, 2, r.frames)
	stats := s.Scheduler().GetStats()
	assert.Equal(t, "recorder", stats.Systems[len(stats.Systems)-1].Name)
}
