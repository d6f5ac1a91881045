package roids

import "github.com/vovakirdan/tui-roids/internal/fixed"

// detectCollisions tests the armed projectile against live obstacles in slot
// order. The first hit destroys that obstacle, leaves debris in its place and
// disarms the projectile, which ends the pass.
func (g *Game) detectCollisions() {
	if !g.projectile.Armed {
		return
	}
	r := fixed.FineFromInt(g.cfg.Projectile.Radius + g.cfg.Obstacles.Radius)

	for i, o := range g.obstacles.All() {
		if !fixed.CircleOverlap(g.projectile.Pos, o.Pos, r) {
			continue
		}

		g.spawnDebris(*o)
		g.obstacles.Free(i)
		g.projectile.Armed = false
		g.stats.Destroyed++
		g.audio.Play(EffectExplode)
		return
	}
}
