package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// Obstacle is a drifting, spinning rock.
type Obstacle struct {
	Pos, Vel   fixed.Vec
	Angle      fixed.Coarse
	AngularVel fixed.Coarse
	Variant    int // 0 or 1
	Matrix     fixed.Matrix

	handle Handle
}

// updateObstacles drifts and spins every live obstacle.
func (g *Game) updateObstacles() {
	size := g.cfg.Obstacles.Diameter

	for _, o := range g.obstacles.All() {
		o.Pos = o.Pos.Add(o.Vel)
		o.Angle += o.AngularVel
		o.Pos = o.Pos.WrapToBounds(size, g.bounds)
		o.Matrix = fixed.Rotation(o.Angle)

		x, y := topLeft(o.Pos, size)
		g.renderer.Draw(o.handle, Frame{
			X:       x,
			Y:       y,
			Variant: o.Variant,
			Matrix:  o.Matrix,
			Visible: true,
		})
	}
}
