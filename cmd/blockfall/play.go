package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/ui/terminal"
	"github.com/plus3/blockfall/ui/window"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Long: `Play in a window (default) or in the terminal.

Keys: Left/A and Right/D move, Down/S hard drops, Q/PageUp rotates clockwise,
E/PageDown rotates counter-clockwise, F/C holds, R restarts and Esc quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("ui", config.UIWindow, "frontend: window or terminal")
	flags.Int("level", 1, "starting level")
	flags.Bool("ghost", true, "show where the active piece will land")
	flags.Bool("debug", false, "show the debug panel (window only)")
	_ = a.v.BindPFlag("ui", flags.Lookup("ui"))
	_ = a.v.BindPFlag("start_level", flags.Lookup("level"))
	_ = a.v.BindPFlag("ghost", flags.Lookup("ghost"))
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command) error {
	var (
		s   *session.Session
		err error
	)

	switch a.cfg.UI {
	case config.UITerminal:
		s, err = a.playTerminal(cmd)
	default:
		s, err = a.playWindow()
	}
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), s.Field().Level(), s.Field().Lines(), s.Stats())
	return nil
}

func (a *app) playTerminal(cmd *cobra.Command) (*session.Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	term := terminal.New(screen, terminal.Options{Ghost: a.cfg.Ghost, Logger: a.logger})
	s := session.New(session.Options{
		Input:    term.Input(),
		NewField: a.fieldFactory(),
		Logger:   a.logger,
	})
	term.Attach(s)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) playWindow() (*session.Session, error) {
	win := window.New(window.Options{Ghost: a.cfg.Ghost, Debug: a.cfg.Debug})
	s := session.New(session.Options{
		Input:    win.Input(),
		NewField: a.fieldFactory(),
		Logger:   a.logger,
	})
	win.Attach(s)

	if err := win.Run(); err != nil {
		return nil, fmt.Errorf("window closed with error: %w", err)
	}
	return s, nil
}

func printSummary(w io.Writer, level, lines int, stats *loop.GameStats) {
	title := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow)

	title.Fprintln(w, "blockfall")
	fmt.Fprintf(w, "  level  %s\n", value.Sprint(level))
	fmt.Fprintf(w, "  lines  %s\n", value.Sprint(lines))
	fmt.Fprintf(w, "  pieces %s\n", value.Sprint(stats.Locks))
	fmt.Fprintf(w, "  tspins %s\n", value.Sprint(stats.TSpins))
	fmt.Fprintf(w, "  games  %s\n", value.Sprint(stats.Games))
}
