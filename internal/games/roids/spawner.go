package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// randomVelocity draws a velocity with each component in (-1, 1).
// The x component is drawn first.
func (g *Game) randomVelocity() fixed.Vec {
	x := fixed.FineFromRaw(g.rng.Next()).Rem(fixed.FineOne)
	y := fixed.FineFromRaw(g.rng.Next()).Rem(fixed.FineOne)
	return fixed.Vec{X: x, Y: y}
}

// randomSpin draws an angular velocity and then a starting angle.
func (g *Game) randomSpin() (angularVel, angle fixed.Coarse) {
	maxSpin := fixed.CoarseOne.DivInt(g.cfg.Obstacles.SpinDivisor)
	angularVel = fixed.CoarseFromRaw(g.rng.Next()).Rem(maxSpin)
	angle = fixed.CoarseFromRaw(g.rng.Next()).Rem(fixed.CoarseOne)
	return angularVel, angle
}

// spawnObstacle places a new obstacle at the centre of the playfield.
// The random draws happen even when the pool is full, so a dropped spawn
// still advances the generator.
func (g *Game) spawnObstacle() {
	o := Obstacle{
		Pos:    g.centre,
		Matrix: fixed.Identity,
		handle: g.renderer.Acquire(Sprite{Kind: KindObstacle, Size: g.cfg.Obstacles.Diameter}),
	}
	o.Vel = g.randomVelocity()
	o.AngularVel, o.Angle = g.randomSpin()
	if g.rng.Next()%2 != 0 {
		o.Variant = 1
	}

	if _, ok := g.obstacles.Allocate(o); !ok {
		g.stats.SpawnDropped++
		return
	}
	g.stats.Spawned++
}
