package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/playfield"
	"github.com/plus3/blockfall/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// stressStep is the simulated time per frame, so gravity runs at its nominal rate no
// matter how fast frames are computed.
const stressStep = 1.0 / 60.0

type stressOptions struct {
	Duration time.Duration
	// Games stops the run after this many games have ended; 0 means no limit.
	Games          int
	Seed           uint64
	StartLevel     int
	GCPauseMetrics bool
}

func newStressCmd(a *app) *cobra.Command {
	var gcPauseMetrics bool

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run headless games with a random player and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := stressOptions{
				Duration:       a.cfg.Stress.Duration,
				Games:          a.cfg.Stress.Games,
				Seed:           a.cfg.Seed,
				StartLevel:     a.cfg.StartLevel,
				GCPauseMetrics: gcPauseMetrics,
			}
			if opts.Seed == 0 {
				opts.Seed = rand.Uint64()
			}

			report := runStress(cmd.Context(), opts, a.logger)

			out := cmd.OutOrStdout()
			color.New(color.FgCyan).Fprintln(out, "--- Stress Test Report ---")
			if err := report.Generate(out); err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}
			color.New(color.FgCyan).Fprintln(out, "--- End of Report ---")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Duration("duration", 10*time.Second, "the total duration the test should run for")
	flags.Int("games", 0, "stop after this many finished games, 0 for no limit")
	flags.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "enable detailed GC pause metrics in the report")
	_ = a.v.BindPFlag("stress.duration", flags.Lookup("duration"))
	_ = a.v.BindPFlag("stress.games", flags.Lookup("games"))
	return cmd
}

// restartOnGameOver starts a new game once the current one has ended.
type restartOnGameOver struct {
	session *session.Session
	ended   *playfield.Playfield
}

func (r *restartOnGameOver) Execute(frame *loop.UpdateFrame) {
	// The restart lands a frame later; ask once per game.
	if frame.Field.GameOver() && frame.Field != r.ended {
		r.ended = frame.Field
		r.session.RequestRestart()
	}
}

func runStress(ctx context.Context, opts stressOptions, logger logrus.FieldLogger) *Report {
	game := 0
	s := session.New(session.Options{
		Input: loop.NewRandomInput(rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))),
		NewField: func() *playfield.Playfield {
			pf := playfield.NewSeeded(opts.Seed + uint64(game))
			pf.SetLevel(max(1, opts.StartLevel))
			game++
			return pf
		},
		Logger: logger,
	})
	s.Register(&restartOnGameOver{session: s})

	report := &Report{
		Duration:       opts.Duration,
		GameLimit:      opts.Games,
		Seed:           opts.Seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.WithField("duration", opts.Duration).Info("running stress games")
	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	startTime := time.Now()
	scheduler := s.Scheduler()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(stressStep)
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(updateStart))

			if opts.Games > 0 && s.Stats().GamesOver >= opts.Games {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(s.Stats(), scheduler.GetStats())

	logger.WithFields(logrus.Fields{
		"frames": report.TotalFrames,
		"games":  report.Games.Games,
	}).Info("stress games finished")
	return report
}
