// Package window plays blockfall in a desktop window through ebiten. The scheduler is
// stepped from ebiten's Update, so input, gravity and rendering share one goroutine.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/ui"
)

type Options struct {
	Ghost bool
	Title string
	// Debug adds a Dear ImGui panel with frame timings and game counters.
	Debug bool
}

// Window implements ebiten.Game. It is also the input source of its session: keys pressed
// during an Update are handed to the scheduler in the same Update.
type Window struct {
	opts    Options
	session *session.Session
	pending []loop.Command
	keys    []ebiten.Key
	overlay *overlay
}

func New(opts Options) *Window {
	if opts.Title == "" {
		opts.Title = "blockfall"
	}
	return &Window{opts: opts}
}

func (w *Window) Input() loop.InputSource {
	return w
}

// Attach binds the session whose playfield the window shows. With Options.Debug the
// debug panel is registered on the session as its last system.
func (w *Window) Attach(s *session.Session) {
	w.session = s
	if w.opts.Debug {
		w.overlay = newOverlay(w.opts.Title, s)
		s.Register(w.overlay)
	}
}

func (w *Window) Poll() []loop.Command {
	out := w.pending
	w.pending = nil
	return out
}

func (w *Window) queue(cmd loop.Command) {
	w.pending = append(w.pending, cmd)
}

// press handles one key and reports whether it asks to quit.
func (w *Window) press(key ebiten.Key) bool {
	return actionFor(key).Apply(w.queue, w.session.RequestRestart)
}

func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if w.press(k) {
			return ebiten.Termination
		}
	}

	if w.overlay != nil {
		w.overlay.backend.BeginFrame()
		defer w.overlay.backend.EndFrame()
	}
	w.session.Scheduler().Once(1.0 / float64(ebiten.TPS()))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	drawScene(screen, ui.Capture(w.session.Field(), w.opts.Ghost))
	if w.overlay != nil {
		w.overlay.backend.Draw(screen)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	width := w.width()
	if w.overlay != nil {
		w.overlay.backend.Layout(width, ScreenHeight)
	}
	return width, ScreenHeight
}

func (w *Window) width() int {
	if w.overlay != nil {
		return ScreenWidth + DebugWidth
	}
	return ScreenWidth
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func (w *Window) Run() error {
	if w.session == nil {
		return fmt.Errorf("window: no session attached")
	}
	ebiten.SetWindowSize(w.width(), ScreenHeight)
	ebiten.SetWindowTitle(w.opts.Title)
	return ebiten.RunGame(w)
}
