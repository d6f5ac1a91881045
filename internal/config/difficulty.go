package config

// MaxLevel is the difficulty level at which the full interval reduction applies.
// Levels are per-mille so the cadence stays in integer math.
const MaxLevel = 1000

// DifficultyManager calculates the obstacle spawn cadence from elapsed frames.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clamp(cfg.InitialLevel, 0, MaxLevel),
	}
}

// Level returns the current difficulty level (0 to MaxLevel) after frames.
func (d *DifficultyManager) Level(frames int) int {
	if !d.cfg.Enabled || d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		return MaxLevel
	}
	progress := clamp(frames, 0, maxAt)

	// Interpolate from initial level to MaxLevel
	return d.initialLevel + progress*(MaxLevel-d.initialLevel)/maxAt
}

// SpawnInterval returns the number of frames until the next obstacle spawn.
// Disabled progression always yields base.
func (d *DifficultyManager) SpawnInterval(base int, frames int) int {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(frames)
	result := base - level*d.cfg.Scaling.IntervalReduction/MaxLevel
	minInterval := d.cfg.Scaling.MinInterval
	if minInterval < 1 {
		minInterval = 1
	}
	if result < minInterval {
		result = minInterval
	}
	return result
}

// clamp restricts an int to [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
