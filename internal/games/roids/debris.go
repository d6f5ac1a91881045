package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// FragmentCount is the number of fragments in a debris cluster.
const FragmentCount = 4

// Fragment is one piece of a debris cluster.
type Fragment struct {
	Pos, Vel fixed.Vec
	Variant  int // 0-3

	handle Handle
}

// DebrisCluster is what remains of a destroyed obstacle. Its fragments move
// independently but share one rotation that shrinks as TTL runs out.
type DebrisCluster struct {
	Angle      fixed.Coarse
	AngularVel fixed.Coarse
	TTL        int
	Matrix     fixed.Matrix
	Fragments  [FragmentCount]Fragment
}

// spawnDebris breaks o into a new cluster. For each fragment the variant is
// drawn first, then the velocity jitter. The cluster's spin is only drawn when
// a slot is free to receive it.
func (g *Game) spawnDebris(o Obstacle) {
	c := DebrisCluster{
		TTL:    g.cfg.Debris.TTL,
		Matrix: fixed.Identity,
	}
	for i := range c.Fragments {
		handle := g.renderer.Acquire(Sprite{Kind: KindDebris, Size: g.cfg.Debris.Diameter})
		variant := int(g.rng.Next() % FragmentCount)
		if variant < 0 {
			variant += FragmentCount
		}
		c.Fragments[i] = Fragment{
			Pos:     o.Pos,
			Vel:     o.Vel.Add(g.randomVelocity()),
			Variant: variant,
			handle:  handle,
		}
	}

	if g.debris.HasFree() {
		c.AngularVel, c.Angle = g.randomSpin()
	}
	if _, ok := g.debris.Allocate(c); !ok {
		g.stats.DebrisDropped++
	}
}

// updateDebris ages every cluster, then reclaims the ones that expired.
// A cluster's scale is computed from its TTL before the decrement, so the
// last frame it is drawn uses TTL 1 and zero is never a divisor.
func (g *Game) updateDebris() {
	size := g.cfg.Debris.Diameter
	fullScale := fixed.CoarseFromInt(g.cfg.Debris.TTL)

	for _, c := range g.debris.All() {
		before := c.TTL
		c.TTL--

		c.Angle += c.AngularVel
		c.Matrix = fixed.ScaledRotation(c.Angle, fullScale.DivInt(before))

		for j := range c.Fragments {
			f := &c.Fragments[j]
			f.Pos = f.Pos.Add(f.Vel).WrapToBounds(size, g.bounds)

			x, y := topLeft(f.Pos, size)
			g.renderer.Draw(f.handle, Frame{
				X:       x,
				Y:       y,
				Variant: f.Variant,
				Matrix:  c.Matrix,
				Visible: true,
			})
		}
	}

	for i, c := range g.debris.All() {
		if c.TTL == 0 {
			g.debris.Free(i)
		}
	}
}
