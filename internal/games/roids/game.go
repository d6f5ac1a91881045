// Package roids implements the simulation core of an asteroids-style arcade
// game: a ship that turns, thrusts and fires a single projectile at drifting
// obstacles, which break into short-lived debris when hit.
//
// All state lives in one Game value owned by a single goroutine. Tick advances
// the simulation by exactly one frame and never blocks; rendering, sound and
// input are reached through the collaborator interfaces in collab.go.
package roids

import (
	"context"

	"github.com/vovakirdan/tui-roids/internal/config"
	"github.com/vovakirdan/tui-roids/internal/fixed"
	"github.com/vovakirdan/tui-roids/internal/pool"
	"github.com/vovakirdan/tui-roids/internal/rng"
)

// Options wires a Game to its collaborators. Nil fields get silent defaults.
type Options struct {
	Renderer Renderer
	Score    ScoreDisplay
	Audio    Audio
	Input    InputSource
}

// Stats counts session events.
type Stats struct {
	Shots         int
	Spawned       int
	SpawnDropped  int // Spawns lost to a full obstacle pool
	Destroyed     int
	DebrisDropped int // Clusters lost to a full debris pool
}

// Game is the complete simulation state of one session.
type Game struct {
	cfg    config.RoidsConfig
	bounds fixed.Vec
	centre fixed.Vec

	renderer Renderer
	display  ScoreDisplay
	audio    Audio
	input    InputSource

	difficulty *config.DifficultyManager
	rng        *rng.Xorshift

	ship       Ship
	projectile Projectile
	obstacles  *pool.Pool[Obstacle]
	debris     *pool.Pool[DebrisCluster]

	frame     int
	score     int
	nextSpawn int
	started   bool
	stats     Stats
}

// New creates a game and starts its first session.
func New(cfg config.RoidsConfig, opts Options) *Game {
	g := &Game{
		cfg:      cfg,
		bounds:   fixed.V(cfg.Playfield.Width, cfg.Playfield.Height),
		centre:   fixed.V(cfg.Playfield.Width/2, cfg.Playfield.Height/2),
		renderer: opts.Renderer,
		display:  opts.Score,
		audio:    opts.Audio,
		input:    opts.Input,
	}
	if g.renderer == nil {
		g.renderer = &nopRenderer{}
	}
	if g.display == nil {
		g.display = nopScore{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.input == nil {
		g.input = idleInput{}
	}

	g.obstacles = pool.New(cfg.Obstacles.Capacity, func(o *Obstacle) {
		g.renderer.Release(o.handle)
	})
	g.debris = pool.New(cfg.Debris.Capacity, func(c *DebrisCluster) {
		for i := range c.Fragments {
			g.renderer.Release(c.Fragments[i].handle)
		}
	})

	g.Reset()
	return g
}

// Reset returns every entity to the renderer and starts a new session from
// the configured seed.
func (g *Game) Reset() {
	g.obstacles.Clear()
	g.debris.Clear()
	if g.started {
		g.renderer.Release(g.ship.handle)
		g.renderer.Release(g.projectile.handle)
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rng.New(g.cfg.RNG.Seed)

	g.ship = Ship{
		Pos:    g.centre,
		Matrix: fixed.Identity,
		handle: g.renderer.Acquire(Sprite{Kind: KindShip, Size: g.cfg.Ship.Diameter}),
	}
	g.projectile = Projectile{
		handle: g.renderer.Acquire(Sprite{Kind: KindProjectile, Size: g.cfg.Projectile.Diameter}),
	}

	g.frame = 0
	g.score = 0
	g.nextSpawn = g.difficulty.SpawnInterval(g.cfg.Obstacles.SpawnInterval, 0)
	g.stats = Stats{}
	g.started = true

	g.audio.Play(EffectMusic)
}

// Tick advances the simulation by one frame.
func (g *Game) Tick() {
	g.frame++
	g.updateScore()

	in := g.input.Poll()
	g.updateShip(in)

	if in.Fire && !g.projectile.Armed {
		g.fire()
	}
	g.updateProjectile()

	if g.frame == g.nextSpawn {
		g.spawnObstacle()
		g.nextSpawn = g.frame + g.difficulty.SpawnInterval(g.cfg.Obstacles.SpawnInterval, g.frame)
	}
	g.updateObstacles()

	g.detectCollisions()
	g.updateDebris()
}

// Run ticks once per frame boundary until the pacer fails, typically
// because ctx was cancelled.
func (g *Game) Run(ctx context.Context, pacer FramePacer) error {
	for {
		g.Tick()
		if err := pacer.WaitForFrame(ctx); err != nil {
			return err
		}
	}
}

// Frame returns the number of ticks since the session started.
func (g *Game) Frame() int {
	return g.frame
}

// Score returns the displayed score.
func (g *Game) Score() int {
	return g.score
}

// Stats returns the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Ship returns a copy of the ship.
func (g *Game) Ship() Ship {
	return g.ship
}

// Projectile returns a copy of the projectile.
func (g *Game) Projectile() Projectile {
	return g.projectile
}

// ObstacleCount returns the number of live obstacles.
func (g *Game) ObstacleCount() int {
	return g.obstacles.Len()
}

// DebrisCount returns the number of live debris clusters.
func (g *Game) DebrisCount() int {
	return g.debris.Len()
}

// NextSpawn returns the frame on which the next obstacle spawns.
func (g *Game) NextSpawn() int {
	return g.nextSpawn
}

// Bounds returns the playfield size in pixels.
func (g *Game) Bounds() (w, h int) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// topLeft converts a centre position to the sprite's top-left pixel.
func topLeft(pos fixed.Vec, size int) (int, int) {
	x, y := pos.Floor()
	return x - size/2, y - size/2
}
