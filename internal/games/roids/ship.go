package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// Ship frames.
const (
	ShipIdle   = 0
	ShipThrust = 1
)

// Ship is the player's craft.
type Ship struct {
	Pos, Vel  fixed.Vec
	Angle     fixed.Coarse // Heading in turns
	Thrusting bool
	Matrix    fixed.Matrix

	handle Handle
}

// updateShip applies steering, thrust and drag, then moves the ship.
func (g *Game) updateShip(in Input) {
	s := &g.ship
	cfg := g.cfg.Ship

	s.Angle -= fixed.CoarseOne.MulInt(in.Turn).DivInt(cfg.TurnDivisor)
	s.Matrix = fixed.Rotation(s.Angle)

	accel := 0
	variant := ShipIdle
	if in.Thrust {
		accel = 1
		variant = ShipThrust
	}
	s.Thrusting = in.Thrust

	s.Vel = s.Vel.Add(fixed.FromAngle(s.Angle).DivInt(cfg.ThrustDivisor).MulInt(accel))
	s.Vel = s.Vel.MulInt(cfg.DragNumerator).DivInt(cfg.DragDenominator)
	s.Pos = s.Pos.Add(s.Vel).WrapToBounds(cfg.Diameter, g.bounds)

	x, y := topLeft(s.Pos, cfg.Diameter)
	g.renderer.Draw(s.handle, Frame{
		X:       x,
		Y:       y,
		Variant: variant,
		Matrix:  s.Matrix,
		Visible: true,
	})
}
