package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielewski/Game-Of-Life/utils"
)

func TestParseFlagsOverrides(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.json")
	opts, err := parseFlags([]string{
		"-config", missing,
		"-mode", "animate",
		"-rows", "20",
		"-delay", "50ms",
	})
	if err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(opts)
	if err != nil {
		t.Fatal(err)
	}
	if config.Mode != utils.ModeAnimate || config.Rows != 20 || config.FrameRate != 50*time.Millisecond {
		t.Errorf("overrides not applied: %+v", config)
	}
	if config.Cols != 44 || config.MaxGenerations != 0 {
		t.Errorf("unset flags changed the config: %+v", config)
	}
}

func TestLoadConfigRejectsInvalidOverrides(t *testing.T) {
	opts, err := parseFlags([]string{
		"-config", filepath.Join(t.TempDir(), "config.json"),
		"-cols", "2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = loadConfig(opts); err == nil {
		t.Error("loadConfig accepted a 2-column grid")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"-speed", "9"}); err == nil {
		t.Error("parseFlags accepted an unknown flag")
	}
}
