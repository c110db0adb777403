// Package terminal plays blockfall in a terminal through tcell. The scheduler runs on its
// own goroutine at a fixed frame rate; key events are read on another and reach the
// playfield as queued commands.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/ui"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FrameInterval is the scheduler period.
const FrameInterval = time.Second / 60

type Options struct {
	Ghost  bool
	Logger logrus.FieldLogger
}

type Terminal struct {
	screen  tcell.Screen
	session *session.Session
	input   *loop.ChannelInput
	opts    Options
}

// New prepares a terminal frontend. The input returned by Input must be the one the
// session was created with.
func New(screen tcell.Screen, opts Options) *Terminal {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Terminal{
		screen: screen,
		input:  loop.NewChannelInput(64),
		opts:   opts,
	}
}

// Input is the command source fed by key events.
func (t *Terminal) Input() loop.InputSource {
	return t.input
}

// Attach registers the renderer on s. It must be called once before Run.
func (t *Terminal) Attach(s *session.Session) {
	t.session = s
	s.Register(&renderSystem{screen: t.screen, ghost: t.opts.Ghost})
}

// Run plays until Esc is pressed or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) error {
	if t.session == nil {
		return fmt.Errorf("terminal: no session attached")
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	t.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t.session.Scheduler().Run(ctx, FrameInterval)
		// Fini makes PollEvent return nil, which ends the event reader.
		t.screen.Fini()
		return nil
	})
	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			if t.handle(ev) {
				cancel()
			}
		}
	})
	return g.Wait()
}

// handle reacts to one event and reports whether the player asked to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := actionFor(ev.Key(), ev.Rune())
		return action.Apply(t.send, t.session.RequestRestart)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) send(cmd loop.Command) {
	if !t.input.Send(cmd) {
		t.opts.Logger.WithField("command", cmd.String()).Warn("input buffer full, dropping key")
	}
}

type renderSystem struct {
	screen tcell.Screen
	ghost  bool
}

func (r *renderSystem) Execute(frame *loop.UpdateFrame) {
	drawScene(r.screen, ui.Capture(frame.Field, r.ghost))
}
