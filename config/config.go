// Package config loads the settings of the blockfall frontends from a YAML file, the
// environment (BLOCKFALL_*) and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

type Config struct {
	UI         string `mapstructure:"ui"`
	StartLevel int    `mapstructure:"start_level"`
	// Seed of the piece randomizer; 0 picks a random seed per game.
	Seed   uint64       `mapstructure:"seed"`
	Ghost  bool         `mapstructure:"ghost"`
	// Debug shows the window frontend's debug panel.
	Debug  bool         `mapstructure:"debug"`
	Log    LogConfig    `mapstructure:"log"`
	Stress StressConfig `mapstructure:"stress"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives the log output; empty means stderr.
	File string `mapstructure:"file"`
}

type StressConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Games    int           `mapstructure:"games"`
}

var ErrInvalid = errors.New("invalid configuration")

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ui", UIWindow)
	v.SetDefault("start_level", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("ghost", true)
	v.SetDefault("debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("stress.duration", 10*time.Second)
	v.SetDefault("stress.games", 0)
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("blockfall")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, if not empty, into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.UI {
	case UIWindow, UITerminal:
	default:
		return fmt.Errorf("%w: ui must be %q or %q, got %q", ErrInvalid, UIWindow, UITerminal, c.UI)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("%w: start_level must be at least 1, got %d", ErrInvalid, c.StartLevel)
	}
	if c.Stress.Duration < 0 || c.Stress.Games < 0 {
		return fmt.Errorf("%w: stress limits must not be negative", ErrInvalid)
	}
	return nil
}
