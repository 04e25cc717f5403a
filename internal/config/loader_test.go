package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("players:\n  count: 3\nspeed:\n  initial: 150ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Players.Count != 3 {
		t.Errorf("Players.Count = %d, expected 3", cfg.Players.Count)
	}
	if cfg.Speed.Initial != 150*time.Millisecond {
		t.Errorf("Speed.Initial = %v, expected 150ms", cfg.Speed.Initial)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Size != 20 || cfg.Speed.Min != 80*time.Millisecond {
		t.Errorf("defaults lost: grid %d, min %v", cfg.Grid.Size, cfg.Speed.Min)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tiny grid", "grid:\n  size: 4\n"},
		{"too many players", "players:\n  count: 5\n"},
		{"min above initial", "speed:\n  initial: 50ms\n  min: 80ms\n"},
		{"zero reward", "food:\n  reward: 0\n"},
		{"zero obstacle step", "obstacles:\n  step_every: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v\n%s", err, data)
	}
	if cfg.Players.GraceDelay != 500*time.Millisecond {
		t.Errorf("GraceDelay = %v after round trip", cfg.Players.GraceDelay)
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(insane) error = %v", err)
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, err)
	}

	cfg := DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Error("normal preset should not change defaults")
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Speed.Initial >= DefaultSnakeConfig().Speed.Initial {
		t.Errorf("hard preset should start faster, got %v", cfg.Speed.Initial)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	cfg = DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset produced invalid config: %v", err)
	}
}
