package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRoidsConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultRoidsConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
ship:
  turn_divisor: 50
rng:
  seed: [1, 2, 3, 4]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Ship.TurnDivisor != 50 {
		t.Errorf("Ship.TurnDivisor = %d, expected 50", cfg.Ship.TurnDivisor)
	}
	if cfg.Ship.ThrustDivisor != 40 {
		t.Errorf("Ship.ThrustDivisor = %d, expected default 40", cfg.Ship.ThrustDivisor)
	}
	if cfg.RNG.Seed != [4]uint32{1, 2, 3, 4} {
		t.Errorf("RNG.Seed = %v, expected [1 2 3 4]", cfg.RNG.Seed)
	}
	if cfg.Obstacles.Capacity != 28 {
		t.Errorf("Obstacles.Capacity = %d, expected default 28", cfg.Obstacles.Capacity)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("ship: [")); err == nil {
		t.Error("Parse() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoidsConfig)
		fields []string
	}{
		{
			name:   "defaults",
			mutate: func(*RoidsConfig) {},
		},
		{
			name:   "zero width",
			mutate: func(c *RoidsConfig) { c.Playfield.Width = 0 },
			fields: []string{"playfield.width"},
		},
		{
			name: "several problems",
			mutate: func(c *RoidsConfig) {
				c.Obstacles.Capacity = -1
				c.Debris.TTL = 0
			},
			fields: []string{"obstacles.capacity", "debris.ttl"},
		},
		{
			name:   "drag above one",
			mutate: func(c *RoidsConfig) { c.Ship.DragNumerator = 122 },
			fields: []string{"ship.drag_numerator"},
		},
		{
			name:   "spin too fine",
			mutate: func(c *RoidsConfig) { c.Obstacles.SpinDivisor = 512 },
			fields: []string{"obstacles.spin_divisor"},
		},
		{
			name:   "loud",
			mutate: func(c *RoidsConfig) { c.Audio.Volume = 1.5 },
			fields: []string{"audio.volume"},
		},
		{
			name:   "unknown progression",
			mutate: func(c *RoidsConfig) { c.Difficulty.Progression.Type = "score" },
			fields: []string{"difficulty.progression.type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRoidsConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if len(tt.fields) == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected errors for %v", tt.fields)
			}

			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() error %T does not wrap a list", err)
			}
			var got []string
			for _, e := range joined.Unwrap() {
				var ve ValidationError
				if errors.As(e, &ve) {
					got = append(got, ve.Field)
				}
			}
			if !reflect.DeepEqual(got, tt.fields) {
				t.Errorf("Validate() fields = %v, expected %v", got, tt.fields)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roids.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("Timing.TickRate = %d, expected 30", cfg.Timing.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("debris:\n  capacity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Load(bad) error = %v, expected ValidationError", err)
	}
	if ve.Field != "debris.capacity" {
		t.Errorf("ValidationError.Field = %q, expected debris.capacity", ve.Field)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultRoidsConfig()
	want.Ship.TurnDivisor = 64
	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, expected %+v", got, want)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   int
		wantType    string
	}{
		{"", false, 0, "none"},
		{DifficultyFixed, false, 0, "none"},
		{DifficultyEasy, true, 0, "time"},
		{DifficultyNormal, true, 300, "time"},
		{DifficultyHard, true, 700, "time"},
	}

	for _, tt := range tests {
		cfg := DefaultRoidsConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.wantEnabled {
			t.Errorf("ApplyPreset(%q) Enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.wantEnabled)
		}
		if cfg.Difficulty.InitialLevel != tt.wantLevel {
			t.Errorf("ApplyPreset(%q) InitialLevel = %d, expected %d", tt.preset, cfg.Difficulty.InitialLevel, tt.wantLevel)
		}
		if cfg.Difficulty.Progression.Type != tt.wantType {
			t.Errorf("ApplyPreset(%q) Type = %q, expected %q", tt.preset, cfg.Difficulty.Progression.Type, tt.wantType)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, expected %q", got, DifficultyHard)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, expected empty", got)
	}
}
