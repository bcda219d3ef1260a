package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatal(err)
	}
	if config.Rows != 33 || config.Cols != 44 {
		t.Errorf("default grid = %dx%d, want 33x44", config.Rows, config.Cols)
	}
	if config.FrameRate != 100*time.Millisecond {
		t.Errorf("default frame rate = %s, want 100ms", config.FrameRate)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"rows": 20,
		"mode": "step",
		"patterns": [{"name": "blinker", "row": 5, "col": 5}]
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Rows != 20 || config.Mode != ModeStep {
		t.Errorf("rows/mode = %d/%q, want 20/%q", config.Rows, config.Mode, ModeStep)
	}
	if config.Cols != 44 || config.HistorySize != 5 {
		t.Errorf("unset fields lost their defaults: cols %d, history %d", config.Cols, config.HistorySize)
	}
	if len(config.Patterns) != 1 || config.Patterns[0] != (PatternConfig{Name: "blinker", Row: 5, Col: 5}) {
		t.Errorf("patterns = %+v", config.Patterns)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		if !os.IsNotExist(errors.Cause(err)) {
			t.Errorf("err = %v, want a not-exist error", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, `{"rows": `)); err == nil {
			t.Error("LoadConfig accepted malformed json")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, `{"rows": 2}`)); err == nil {
			t.Error("LoadConfig accepted a 2-row grid")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few rows", func(c *Config) { c.Rows = 2 }},
		{"too few cols", func(c *Config) { c.Cols = 0 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"no history", func(c *Config) { c.HistorySize = 0 }},
		{"unknown mode", func(c *Config) { c.Mode = "fast" }},
		{"unnamed pattern", func(c *Config) { c.Patterns = []PatternConfig{{Row: 3, Col: 3}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
