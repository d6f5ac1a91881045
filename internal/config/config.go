// Package config provides YAML-based configuration loading and difficulty
// management for the game.
package config

// RoidsConfig contains all tunable parameters of a session.
// Lengths are in playfield units; durations are in frames.
type RoidsConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Timing     TimingConfig     `yaml:"timing"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Debris     DebrisConfig     `yaml:"debris"`
	RNG        RNGConfig        `yaml:"rng"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// PlayfieldConfig defines the extents of the toroidal playfield.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame pacing and score derivation.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Frames per second
	FramesPerScore int `yaml:"frames_per_score"` // Frames per score point
}

// ShipConfig defines the ship's handling.
type ShipConfig struct {
	Diameter        int `yaml:"diameter"`
	TurnDivisor     int `yaml:"turn_divisor"`   // One turn / divisor per frame of steering
	ThrustDivisor   int `yaml:"thrust_divisor"` // Unit heading / divisor per frame of thrust
	DragNumerator   int `yaml:"drag_numerator"`
	DragDenominator int `yaml:"drag_denominator"`
}

// ProjectileConfig defines the single projectile.
type ProjectileConfig struct {
	Diameter int `yaml:"diameter"`
	Radius   int `yaml:"radius"`
	Impulse  int `yaml:"impulse"` // Launch speed added along the heading
}

// ObstacleConfig defines obstacle spawning and size.
type ObstacleConfig struct {
	Capacity      int `yaml:"capacity"`
	SpawnInterval int `yaml:"spawn_interval"`
	Diameter      int `yaml:"diameter"`
	Radius        int `yaml:"radius"`
	SpinDivisor   int `yaml:"spin_divisor"` // Max angular velocity is one turn / divisor
}

// DebrisConfig defines debris clusters.
type DebrisConfig struct {
	Capacity int `yaml:"capacity"`
	TTL      int `yaml:"ttl"`
	Diameter int `yaml:"diameter"`
}

// RNGConfig holds the generator seed.
type RNGConfig struct {
	Seed [4]uint32 `yaml:"seed,flow"`
}

// InputConfig tunes how terminal key events become held buttons.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // A key counts as held this long after its last event
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain, 0.0 - 1.0
	Music   bool    `yaml:"music"`
}

// DifficultyConfig defines the spawn cadence progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel int               `yaml:"initial_level"` // Per-mille: 0 = easy, 1000 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Frame at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Spawn interval reduction at max difficulty
	MinInterval       int `yaml:"min_interval"`       // Floor for the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 300
	case DifficultyHard:
		return 700
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RoidsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "none" || cfg.Difficulty.Progression.Type == "" {
			cfg.Difficulty.Progression.Type = "time"
		}
	}
}
