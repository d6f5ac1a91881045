package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

// Validate checks that every value the simulation divides by or sizes a pool
// with is usable. All problems are reported together.
func (c RoidsConfig) Validate() error {
	var errs []error

	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("must be positive, got %d", v)})
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("timing.tick_rate", c.Timing.TickRate)
	positive("timing.frames_per_score", c.Timing.FramesPerScore)
	positive("ship.diameter", c.Ship.Diameter)
	positive("ship.turn_divisor", c.Ship.TurnDivisor)
	positive("ship.thrust_divisor", c.Ship.ThrustDivisor)
	positive("ship.drag_denominator", c.Ship.DragDenominator)
	positive("projectile.diameter", c.Projectile.Diameter)
	positive("projectile.radius", c.Projectile.Radius)
	positive("obstacles.capacity", c.Obstacles.Capacity)
	positive("obstacles.spawn_interval", c.Obstacles.SpawnInterval)
	positive("obstacles.diameter", c.Obstacles.Diameter)
	positive("obstacles.radius", c.Obstacles.Radius)
	positive("obstacles.spin_divisor", c.Obstacles.SpinDivisor)
	positive("debris.capacity", c.Debris.Capacity)
	positive("debris.ttl", c.Debris.TTL)
	positive("debris.diameter", c.Debris.Diameter)

	if c.Ship.DragNumerator < 0 || c.Ship.DragNumerator > c.Ship.DragDenominator {
		errs = append(errs, ValidationError{
			Field:   "ship.drag_numerator",
			Message: fmt.Sprintf("must be in [0, %d], got %d", c.Ship.DragDenominator, c.Ship.DragNumerator),
		})
	}

	// One turn / spin_divisor must still be at least one raw angle unit.
	if c.Obstacles.SpinDivisor > 256 {
		errs = append(errs, ValidationError{
			Field:   "obstacles.spin_divisor",
			Message: fmt.Sprintf("must be at most 256, got %d", c.Obstacles.SpinDivisor),
		})
	}

	if c.Input.HoldMillis < 0 {
		errs = append(errs, ValidationError{Field: "input.hold_ms", Message: "must not be negative"})
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, ValidationError{Field: "audio.volume", Message: fmt.Sprintf("must be in [0, 1], got %g", c.Audio.Volume)})
	}

	switch c.Difficulty.Progression.Type {
	case "time", "none", "":
	default:
		errs = append(errs, ValidationError{
			Field:   "difficulty.progression.type",
			Message: fmt.Sprintf("must be \"time\" or \"none\", got %q", c.Difficulty.Progression.Type),
		})
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > MaxLevel {
		errs = append(errs, ValidationError{
			Field:   "difficulty.initial_level",
			Message: fmt.Sprintf("must be in [0, %d], got %d", MaxLevel, c.Difficulty.InitialLevel),
		})
	}

	return errors.Join(errs...)
}
