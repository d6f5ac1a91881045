package roids

import (
	"testing"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/fixed"
	"github.com/vovakirdan/tui-roids/internal/rng"
)

func (r *testRig) placeObstacle(pos, vel fixed.Vec) int {
	g := r.game
	i, ok := g.obstacles.Allocate(Obstacle{
		Pos:    pos,
		Vel:    vel,
		Matrix: fixed.Identity,
		handle: g.renderer.Acquire(Sprite{Kind: KindObstacle, Size: 16}),
	})
	if !ok {
		panic("obstacle pool full")
	}
	return i
}

func (r *testRig) armAt(pos fixed.Vec) {
	r.game.projectile.Pos = pos
	r.game.projectile.Armed = true
}

func TestCollisionDestroysObstacle(t *testing.T) {
	rig := newTestRig(config.DefaultRoidsConfig(), nil)
	g := rig.game

	obstaclePos := fixed.V(50, 50)
	obstacleVel := fixed.Vec{X: 300, Y: -200}
	rig.placeObstacle(obstaclePos, obstacleVel)
	rig.armAt(fixed.V(55, 50))

	g.detectCollisions()

	if got := g.ObstacleCount(); got != 0 {
		t.Errorf("ObstacleCount() = %d, expected 0", got)
	}
	if g.Projectile().Armed {
		t.Error("projectile should be disarmed after a hit")
	}
	if got := g.DebrisCount(); got != 1 {
		t.Fatalf("DebrisCount() = %d, expected 1", got)
	}

	for _, c := range g.debris.All() {
		if c.TTL != 120 {
			t.Errorf("TTL = %d, expected 120", c.TTL)
		}
		for j, f := range c.Fragments {
			if f.Pos != obstaclePos {
				t.Errorf("fragment %d Pos = %v, expected %v", j, f.Pos, obstaclePos)
			}
			jitter := f.Vel.Sub(obstacleVel)
			if jitter.X <= -fixed.FineOne || jitter.X >= fixed.FineOne ||
				jitter.Y <= -fixed.FineOne || jitter.Y >= fixed.FineOne {
				t.Errorf("fragment %d jitter = %v, expected within one unit", j, jitter)
			}
			if f.Variant < 0 || f.Variant >= FragmentCount {
				t.Errorf("fragment %d Variant = %d, expected 0-3", j, f.Variant)
			}
		}
	}

	if got := rig.audio.count(EffectExplode); got != 1 {
		t.Errorf("explode sounds = %d, expected 1", got)
	}
	if got := g.Stats().Destroyed; got != 1 {
		t.Errorf("Destroyed = %d, expected 1", got)
	}
	if got := rig.renderer.count(KindObstacle); got != 0 {
		t.Errorf("obstacle handles = %d, expected 0", got)
	}
	if got := rig.renderer.count(KindDebris); got != FragmentCount {
		t.Errorf("debris handles = %d, expected %d", got, FragmentCount)
	}
}

func TestCollisionFirstHitWins(t *testing.T) {
	rig := newTestRig(config.DefaultRoidsConfig(), nil)
	g := rig.game

	rig.placeObstacle(fixed.V(50, 50), fixed.Vec{})
	rig.placeObstacle(fixed.V(52, 50), fixed.Vec{})
	rig.armAt(fixed.V(51, 50))

	g.detectCollisions()

	if g.obstacles.Get(0) != nil {
		t.Error("slot 0 should be destroyed")
	}
	if g.obstacles.Get(1) == nil {
		t.Error("slot 1 should survive; the pass ends at the first hit")
	}
	if got := g.DebrisCount(); got != 1 {
		t.Errorf("DebrisCount() = %d, expected 1", got)
	}
}

func TestCollisionBoundary(t *testing.T) {
	tests := []struct {
		name     string
		distance fixed.Fine
		hit      bool
	}{
		{"touching", fixed.FineFromInt(12), false},
		{"overlapping by one", fixed.FineFromInt(11), true},
		{"apart", fixed.FineFromInt(40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newTestRig(config.DefaultRoidsConfig(), nil)
			rig.placeObstacle(fixed.V(100, 100), fixed.Vec{})
			rig.armAt(fixed.Vec{X: fixed.FineFromInt(100) + tt.distance, Y: fixed.FineFromInt(100)})

			rig.game.detectCollisions()

			if hit := rig.game.ObstacleCount() == 0; hit != tt.hit {
				t.Errorf("hit = %v, expected %v", hit, tt.hit)
			}
		})
	}
}

func TestCollisionIgnoredWhenDisarmed(t *testing.T) {
	rig := newTestRig(config.DefaultRoidsConfig(), nil)
	rig.placeObstacle(fixed.V(100, 100), fixed.Vec{})
	rig.game.projectile.Pos = fixed.V(100, 100)

	rig.game.detectCollisions()

	if got := rig.game.ObstacleCount(); got != 1 {
		t.Errorf("ObstacleCount() = %d, expected 1", got)
	}
}

func TestDebrisDroppedWhenFull(t *testing.T) {
	cfg := config.DefaultRoidsConfig()
	cfg.Debris.Capacity = 1
	rig := newTestRig(cfg, nil)
	g := rig.game

	for range 2 {
		rig.placeObstacle(fixed.V(100, 100), fixed.Vec{})
		rig.armAt(fixed.V(100, 100))
		g.detectCollisions()
	}

	if got := g.DebrisCount(); got != 1 {
		t.Errorf("DebrisCount() = %d, expected 1", got)
	}
	if got := g.Stats().DebrisDropped; got != 1 {
		t.Errorf("DebrisDropped = %d, expected 1", got)
	}
	if got := g.Stats().Destroyed; got != 2 {
		t.Errorf("Destroyed = %d, expected 2", got)
	}
	if got := rig.renderer.count(KindDebris); got != FragmentCount {
		t.Errorf("debris handles = %d, expected the dropped cluster released", got)
	}
}

func TestDebrisSpinDrawnOnlyWithFreeSlot(t *testing.T) {
	cfg := config.DefaultRoidsConfig()
	cfg.Debris.Capacity = 1

	full := newTestRig(cfg, nil)
	full.placeObstacle(fixed.V(100, 100), fixed.Vec{})
	full.armAt(fixed.V(100, 100))
	full.game.detectCollisions()
	before := full.game.rng.State()

	full.placeObstacle(fixed.V(100, 100), fixed.Vec{})
	full.armAt(fixed.V(100, 100))
	full.game.detectCollisions()

	// Four fragments draw three values each; no spin is drawn for a dropped cluster.
	ref := newTestRig(cfg, nil)
	ref.game.rng = rng.New(before)
	for range FragmentCount * 3 {
		ref.game.rng.Next()
	}
	if full.game.rng.State() != ref.game.rng.State() {
		t.Error("a dropped cluster should draw only fragment values")
	}
}

func TestDebrisAgesAndReclaims(t *testing.T) {
	rig := newTestRig(config.DefaultRoidsConfig(), nil)
	g := rig.game

	cluster := func(ttl int) DebrisCluster {
		c := DebrisCluster{TTL: ttl, Matrix: fixed.Identity}
		for i := range c.Fragments {
			c.Fragments[i] = Fragment{
				Pos:    fixed.V(10, 10),
				Vel:    fixed.Vec{X: fixed.FineOne},
				handle: g.renderer.Acquire(Sprite{Kind: KindDebris, Size: 8}),
			}
		}
		return c
	}

	dying, _ := g.debris.Allocate(cluster(1))
	aging, _ := g.debris.Allocate(cluster(2))
	fresh, _ := g.debris.Allocate(cluster(120))

	g.updateDebris()

	if g.debris.Get(dying) != nil {
		t.Error("cluster reaching TTL 0 should be reclaimed on the same tick")
	}
	for i := range g.debris.All() {
		if i == dying {
			t.Error("reclaimed cluster appeared in live iteration")
		}
	}

	c := g.debris.Get(aging)
	if c == nil || c.TTL != 1 {
		t.Fatalf("aging cluster = %+v, expected TTL 1", c)
	}
	// Scale is 120 / 2 = 60.
	if want := (fixed.Matrix{A: 15360, B: 360, C: -360, D: 15360}); c.Matrix != want {
		t.Errorf("Matrix = %+v, expected %+v", c.Matrix, want)
	}
	if want := fixed.V(11, 10); c.Fragments[0].Pos != want {
		t.Errorf("fragment Pos = %v, expected %v", c.Fragments[0].Pos, want)
	}

	f := g.debris.Get(fresh)
	if want := fixed.Rotation(0); f.Matrix != want {
		t.Errorf("full-life Matrix = %+v, expected unscaled %+v", f.Matrix, want)
	}

	if got := rig.renderer.count(KindDebris); got != 2*FragmentCount {
		t.Errorf("debris handles = %d, expected %d", got, 2*FragmentCount)
	}

	g.updateDebris()
	if g.debris.Get(aging) != nil {
		t.Error("second cluster should be reclaimed on its last tick")
	}
}
