package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// Projectile is the single shot. Only one can be armed at a time.
type Projectile struct {
	Pos, Vel fixed.Vec
	Armed    bool

	handle Handle
}

// fire launches the projectile from the ship along its heading.
// The controls are sampled once more before the launch, consuming the
// sample a later poll would otherwise have returned.
func (g *Game) fire() {
	g.input.Poll()

	p := &g.projectile
	p.Pos = g.ship.Pos
	p.Vel = g.ship.Vel.Add(fixed.FromAngle(g.ship.Angle).MulInt(g.cfg.Projectile.Impulse))
	p.Armed = true

	g.stats.Shots++
	g.audio.Play(EffectShoot)
}

// updateProjectile moves an armed projectile and hides a disarmed one.
func (g *Game) updateProjectile() {
	p := &g.projectile
	size := g.cfg.Projectile.Diameter

	if !p.Armed {
		g.renderer.Draw(p.handle, Frame{Matrix: fixed.Identity})
		return
	}

	p.Pos = p.Pos.Add(p.Vel).WrapToBounds(size, g.bounds)

	x, y := topLeft(p.Pos, size)
	g.renderer.Draw(p.handle, Frame{
		X:       x,
		Y:       y,
		Matrix:  fixed.Identity,
		Visible: true,
	})
}
