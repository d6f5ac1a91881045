package config

import (
	_ "embed"
)

//go:embed defaults/roids.yaml
var defaultRoidsYAML []byte

// DefaultRoidsConfig returns the built-in configuration.
// It matches defaults/roids.yaml and is used if the embedded file fails to parse.
func DefaultRoidsConfig() RoidsConfig {
	return RoidsConfig{
		Playfield: PlayfieldConfig{
			Width:  240,
			Height: 160,
		},
		Timing: TimingConfig{
			TickRate:       60,
			FramesPerScore: 60,
		},
		Ship: ShipConfig{
			Diameter:        16,
			TurnDivisor:     100,
			ThrustDivisor:   40,
			DragNumerator:   120,
			DragDenominator: 121,
		},
		Projectile: ProjectileConfig{
			Diameter: 8,
			Radius:   4,
			Impulse:  2,
		},
		Obstacles: ObstacleConfig{
			Capacity:      28,
			SpawnInterval: 256,
			Diameter:      16,
			Radius:        8,
			SpinDivisor:   50,
		},
		Debris: DebrisConfig{
			Capacity: 8,
			TTL:      120,
			Diameter: 8,
		},
		RNG: RNGConfig{
			Seed: [4]uint32{1014776995, 476057059, 3301633994, 706340607},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				IntervalReduction: 192,
				MinInterval:       64,
			},
		},
		Input: InputConfig{
			HoldMillis: 180,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.4,
			Music:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRoidsYAML
}
