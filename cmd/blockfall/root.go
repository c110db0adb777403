package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/playfield"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by the subcommands once flags and config are resolved.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *logrus.Logger
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: logrus.New()}

	root := &cobra.Command{
		Use:   "blockfall",
		Short: "A falling-block puzzle game",
		Long: `blockfall drops tetrominoes onto a 10x22 board. Complete rows to clear them, spin
T pieces into tight slots for a bonus, and keep the stack below the spawn area.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "append logs to this file")
	flags.Uint64("seed", 0, "piece randomizer seed, 0 for a random one")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = a.v.BindPFlag("seed", flags.Lookup("seed"))

	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newStressCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	a.logger.SetLevel(level)
	a.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})

	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		a.logger.SetOutput(f)
	case cmd.Name() == "play" && cfg.UI == config.UITerminal:
		// The terminal frontend owns the screen.
		a.logger.SetOutput(io.Discard)
	default:
		a.logger.SetOutput(os.Stderr)
	}

	a.logger.WithFields(logrus.Fields{
		"ui":          cfg.UI,
		"start_level": cfg.StartLevel,
		"seed":        cfg.Seed,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// fieldFactory returns the playfield constructor for new games. With a fixed seed every
// game deals the same sequence.
func (a *app) fieldFactory() func() *playfield.Playfield {
	seed, level := a.cfg.Seed, a.cfg.StartLevel
	return func() *playfield.Playfield {
		var pf *playfield.Playfield
		if seed != 0 {
			pf = playfield.NewSeeded(seed)
		} else {
			pf = playfield.New(playfield.NewBag(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))))
		}
		pf.SetLevel(level)
		return pf
	}
}
