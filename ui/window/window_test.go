package window

import (
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/ui"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type only piece.Kind

func (o only) Next() piece.Kind { return piece.Kind(o) }

func newWindow(t *testing.T) *Window {
	t.Helper()
	logger, _ := test.NewNullLogger()
	w := New(Options{Ghost: true})
	w.Attach(session.New(session.Options{
		Input:    w.Input(),
		NewField: func() *playfield.Playfield { return playfield.New(only(piece.I)) },
		Logger:   logger,
	}))
	return w
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, ui.Action{Command: loop.MoveLeft}, actionFor(ebiten.KeyArrowLeft))
	assert.Equal(t, ui.Action{Command: loop.MoveLeft}, actionFor(ebiten.KeyA))
	assert.Equal(t, ui.Action{Command: loop.MoveRight}, actionFor(ebiten.KeyD))
	assert.Equal(t, ui.Action{Command: loop.HardDrop}, actionFor(ebiten.KeyArrowDown))
	assert.Equal(t, ui.Action{Command: loop.HardDrop}, actionFor(ebiten.KeyS))
	assert.Equal(t, ui.Action{Command: loop.RotateClockwise}, actionFor(ebiten.KeyQ))
	assert.Equal(t, ui.Action{Command: loop.RotateClockwise}, actionFor(ebiten.KeyPageUp))
	assert.Equal(t, ui.Action{Command: loop.RotateCounterClockwise}, actionFor(ebiten.KeyE))
	assert.Equal(t, ui.Action{Command: loop.RotateCounterClockwise}, actionFor(ebiten.KeyPageDown))
	assert.Equal(t, ui.Action{Command: loop.Hold}, actionFor(ebiten.KeyF))
	assert.Equal(t, ui.Action{Command: loop.Hold}, actionFor(ebiten.KeyC))
	assert.Equal(t, ui.Action{Restart: true}, actionFor(ebiten.KeyR))
	assert.Equal(t, ui.Action{Quit: true}, actionFor(ebiten.KeyEscape))
	assert.True(t, actionFor(ebiten.KeyZ).None())
}

func TestPressQueuesCommands(t *testing.T) {
	w := newWindow(t)

	assert.False(t, w.press(ebiten.KeyA))
	assert.False(t, w.press(ebiten.KeyS))
	assert.False(t, w.press(ebiten.KeyZ))
	assert.Equal(t, []loop.Command{loop.MoveLeft, loop.HardDrop}, w.Poll())
	assert.Empty(t, w.Poll())

	assert.True(t, w.press(ebiten.KeyEscape))
}

func TestPressRestart(t *testing.T) {
	w := newWindow(t)
	first := w.session.Field()

	require.False(t, w.press(ebiten.KeyR))
	w.session.Scheduler().Once(0)
	assert.NotSame(t, first, w.session.Field())
}

func TestPolledCommandsReachField(t *testing.T) {
	w := newWindow(t)

	w.press(ebiten.KeyArrowDown)
	w.session.Scheduler().Once(0)

	ev, ok := w.session.Field().LastLock()
	require.True(t, ok)
	assert.Equal(t, piece.I, ev.Kind)
}

func TestGeometry(t *testing.T) {
	x, y := cellOrigin(0, 0)
	assert.Equal(t, float32(boardX), x)
	assert.Equal(t, float32(boardY), y)

	x, y = cellOrigin(playfield.Width-1, ui.VisibleRows-1)
	assert.Equal(t, float32(boardX+(playfield.Width-1)*CellSize), x)
	assert.Equal(t, float32(ScreenHeight-boardY-CellSize), y)

	w, h := newWindow(t).Layout(1, 1)
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}

func TestGhostColor(t *testing.T) {
	c := ghostColor(piece.T.Color())
	assert.Equal(t, color.NRGBA{R: 147, G: 112, B: 219, A: ghostAlpha}, c)
}

func TestRunWithoutSession(t *testing.T) {
	assert.Error(t, New(Options{}).Run())
}

func TestOverlayRecordsFrameTimes(t *testing.T) {
	o := &overlay{history: ui.NewFrameHistory(4)}
	frame := &loop.UpdateFrame{Commands: &loop.Commands{}}

	o.Execute(frame)
	assert.Zero(t, o.history.Len(), "the first frame has nothing to measure against")

	time.Sleep(time.Millisecond)
	o.Execute(frame)
	assert.Equal(t, 1, o.history.Len())
	assert.GreaterOrEqual(t, o.history.Average(), float32(1))
	assert.Zero(t, frame.Commands.Len(), "the panel is deferred, not queued as a command")
}

func TestDebugWidensScreen(t *testing.T) {
	w := newWindow(t)
	assert.Equal(t, ScreenWidth, w.width())

	w.overlay = &overlay{}
	assert.Equal(t, ScreenWidth+DebugWidth, w.width())
}
