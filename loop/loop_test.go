package loop_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type only piece.Kind

func (o only) Next() piece.Kind { return piece.Kind(o) }

type scripted struct {
	frames [][]loop.Command
}

func (s *scripted) Poll() []loop.Command {
	if len(s.frames) == 0 {
		return nil
	}
	out := s.frames[0]
	s.frames = s.frames[1:]
	return out
}

func activeY(pf *playfield.Playfield) int {
	a := pf.Active()
	_, y := a.Position()
	return y
}

// fillTwoRowsWithO drops five O pieces side by side, clearing two rows for 3 lines.
func fillTwoRowsWithO(pf *playfield.Playfield) {
	shifts := []int{-4, -2, 0, 2, 4}
	for _, dx := range shifts {
		for ; dx < 0; dx++ {
			pf.MoveLeft()
		}
		for ; dx > 0; dx-- {
			pf.MoveRight()
		}
		pf.HardDrop()
	}
}

func TestGravityInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2, time.Second},
		{4, 500 * time.Millisecond},
		{19, 2 * time.Second / 19},
		{20, 2 * time.Second / 19},
		{50, 2 * time.Second / 19},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, loop.GravityInterval(tt.level), "level %d", tt.level)
	}
}

func TestGravitySystem(t *testing.T) {
	pf := playfield.New(only(piece.O))
	scheduler := loop.NewScheduler(pf)
	scheduler.Register(&loop.GravitySystem{})

	scheduler.Once(1.0)
	assert.Equal(t, 0, activeY(pf))

	scheduler.Once(1.0)
	assert.Equal(t, 1, activeY(pf))

	pf.SetLevel(4)
	scheduler.Once(1.0)
	assert.Equal(t, 3, activeY(pf))
}

func TestCommandsFlush(t *testing.T) {
	pf := playfield.New(only(piece.I))
	scheduler := loop.NewScheduler(pf)
	input := &scripted{frames: [][]loop.Command{
		{loop.MoveLeft, loop.HardDrop, loop.HardDrop},
	}}
	scheduler.Register(&loop.InputSystem{Source: input})

	scheduler.Once(0)

	ev, ok := pf.LastLock()
	require.True(t, ok)
	assert.Equal(t, 2, ev.Seq)
	assert.False(t, pf.Tile(2, 21).Empty())
	assert.False(t, pf.Tile(3, 20).Empty())
}

func TestDeferRunsAfterCommands(t *testing.T) {
	pf := playfield.New(only(piece.I))
	var seen int

	scheduler := loop.NewScheduler(pf)
	scheduler.Register(systemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			ev, _ := frame.Field.LastLock()
			seen = ev.Seq
		})
		frame.Commands.Push(loop.HardDrop)
		assert.Equal(t, 1, frame.Commands.Len())
	}))

	scheduler.Once(0)
	assert.Equal(t, 1, seen)
}

type systemFunc func(frame *loop.UpdateFrame)

func (f systemFunc) Execute(frame *loop.UpdateFrame) { f(frame) }

func TestLevelSystem(t *testing.T) {
	logger, hook := test.NewNullLogger()

	pf := playfield.New(only(piece.O))
	fillTwoRowsWithO(pf)
	fillTwoRowsWithO(pf)
	require.Equal(t, 6, pf.Lines())

	scheduler := loop.NewScheduler(pf)
	scheduler.Register(&loop.LevelSystem{Logger: logger})

	scheduler.Once(0)
	assert.Equal(t, 2, pf.Level())
	assert.Equal(t, 1, pf.Lines())

	// Below the next threshold nothing happens.
	scheduler.Once(0)
	assert.Equal(t, 2, pf.Level())

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "level up", entry.Message)
	assert.Equal(t, 2, entry.Data["level"])
}

func TestStatsSystem(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	pf := playfield.New(only(piece.O))
	input := &scripted{frames: [][]loop.Command{
		{loop.MoveLeft, loop.MoveLeft, loop.MoveLeft, loop.MoveLeft, loop.HardDrop},
		{loop.MoveLeft, loop.MoveLeft, loop.HardDrop},
		{loop.HardDrop},
		{loop.MoveRight, loop.MoveRight, loop.HardDrop},
		{loop.MoveRight, loop.MoveRight, loop.MoveRight, loop.MoveRight, loop.HardDrop},
	}}

	stats := &loop.StatsSystem{Logger: logger}
	scheduler := loop.NewScheduler(pf)
	scheduler.Register(&loop.InputSystem{Source: input})
	scheduler.Register(stats)

	for range 6 {
		scheduler.Once(0)
	}

	s := stats.Stats()
	assert.Equal(t, 5, s.Locks)
	assert.Equal(t, 5, s.LocksOf(piece.O))
	assert.Equal(t, 0, s.LocksOf(piece.T))
	assert.Equal(t, 1, s.Clears[2])
	assert.Equal(t, 4, s.Clears[0])
	assert.Equal(t, 1, s.Games)
	assert.Equal(t, 3, pf.Lines())

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, "lock", hook.LastEntry().Message)
	assert.Equal(t, 2, hook.LastEntry().Data["rows"])
}

func TestStatsSystemCountsGameOverOnce(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pf := playfield.New(only(piece.O))

	stats := &loop.StatsSystem{Logger: logger}
	scheduler := loop.NewScheduler(pf)
	scheduler.Register(&loop.InputSystem{Source: &repeat{cmd: loop.HardDrop}})
	scheduler.Register(stats)

	for range 30 {
		scheduler.Once(0)
	}

	require.True(t, pf.GameOver())
	assert.Equal(t, 1, stats.Stats().GamesOver)
	assert.Equal(t, "game over", hook.LastEntry().Message)

	scheduler.SetField(playfield.New(only(piece.O)))
	scheduler.Once(0)
	assert.Equal(t, 2, stats.Stats().Games)
	assert.Equal(t, 1, stats.Stats().GamesOver)
}

type repeat struct {
	cmd loop.Command
}

func (r *repeat) Poll() []loop.Command { return []loop.Command{r.cmd} }

func TestRestartThroughDefer(t *testing.T) {
	first := playfield.New(only(piece.O))
	second := playfield.New(only(piece.I))

	scheduler := loop.NewScheduler(first)
	restarted := false
	scheduler.Register(systemFunc(func(frame *loop.UpdateFrame) {
		if !restarted {
			restarted = true
			frame.Commands.Push(loop.HardDrop)
			frame.Commands.Defer(func() { scheduler.SetField(second) })
			return
		}
		assert.Same(t, second, frame.Field)
		assert.Empty(t, frame.Locks)
	}))

	scheduler.Once(0)
	assert.Same(t, second, scheduler.Field())
	scheduler.Once(0)

	_, locked := first.LastLock()
	assert.True(t, locked)
}

func TestChannelInput(t *testing.T) {
	in := loop.NewChannelInput(2)
	assert.True(t, in.Send(loop.MoveLeft))
	assert.True(t, in.Send(loop.Hold))
	assert.False(t, in.Send(loop.HardDrop))

	assert.Equal(t, []loop.Command{loop.MoveLeft, loop.Hold}, in.Poll())
	assert.Empty(t, in.Poll())
}

func TestRandomInput(t *testing.T) {
	in := loop.NewRandomInput(rand.New(rand.NewPCG(3, 4)))
	for range 200 {
		cmds := in.Poll()
		assert.LessOrEqual(t, len(cmds), in.MaxPerFrame+1)
		for _, c := range cmds {
			assert.NotEqual(t, "unknown", c.String())
		}
	}
}

func TestSchedulerStats(t *testing.T) {
	pf := playfield.New(only(piece.T))
	scheduler := loop.NewScheduler(pf)
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(&loop.LevelSystem{})

	for range 3 {
		scheduler.Once(0.016)
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, "GravitySystem", stats.Systems[0].Name)
	assert.Equal(t, "LevelSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(3), stats.Systems[1].ExecutionCount)

	gravity := stats.Systems[0]
	assert.LessOrEqual(t, gravity.MinDuration, gravity.AvgDuration())
	assert.LessOrEqual(t, gravity.AvgDuration(), gravity.MaxDuration)
	assert.Equal(t, gravity.TotalDuration/3, gravity.AvgDuration())
}

func TestSchedulerStatsLateRegistration(t *testing.T) {
	scheduler := loop.NewScheduler(playfield.New(only(piece.T)))
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Once(0.016)
	scheduler.Register(&loop.LevelSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, int64(1), stats.TotalExecutions)
	assert.Zero(t, stats.Systems[1].MinDuration)
	assert.Zero(t, stats.Systems[1].AvgDuration())

	scheduler.Once(0.016)
	assert.Equal(t, int64(1), stats.Systems[0].ExecutionCount, "snapshot must not track later frames")
}
