package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	ModeAsk     = ""
	ModeAnimate = "animate"
	ModeStep    = "step"
)

// PatternConfig places a named preset pattern at a row/column offset
type PatternConfig struct {
	Name string `json:"name"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Rows           int             `json:"rows"`
	Cols           int             `json:"cols"`
	FrameRate      time.Duration   `json:"frame_rate"`
	Mode           string          `json:"mode"`
	MaxGenerations int             `json:"max_generations"`
	StopWhenStable bool            `json:"stop_when_stable"`
	HistorySize    int             `json:"history_size"`
	ShowStats      bool            `json:"show_stats"`
	Patterns       []PatternConfig `json:"patterns"`
}

// DefaultConfig returns the reference 33x44 board animated at 10 frames per second
func DefaultConfig() Config {
	return Config{
		Rows:           33,
		Cols:           44,
		FrameRate:      100 * time.Millisecond,
		Mode:           ModeAsk,
		MaxGenerations: 0, // unbounded
		StopWhenStable: false,
		HistorySize:    5,
		ShowStats:      true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 3 || c.Cols < 3:
		return errors.Errorf("[Validate] grid must be at least 3x3, got %dx%d", c.Rows, c.Cols)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.HistorySize < 1:
		return errors.Errorf("[Validate] history_size must be positive, got %d", c.HistorySize)
	}

	switch c.Mode {
	case ModeAsk, ModeAnimate, ModeStep:
	default:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}

	for i, p := range c.Patterns {
		if p.Name == "" {
			return errors.Errorf("[Validate] pattern %d has no name", i)
		}
	}
	return nil
}
