package roids

import (
	"context"

	"github.com/vovakirdan/tui-roids/internal/fixed"
)

// Kind identifies what an entity looks like on screen.
type Kind uint8

const (
	KindShip Kind = iota
	KindProjectile
	KindObstacle
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Sprite describes the graphic a renderer handle is acquired for.
type Sprite struct {
	Kind Kind
	Size int // Side length in playfield pixels
}

// Handle identifies one renderable object owned by a Renderer.
type Handle uint32

// Frame is the placement of a handle for the current tick.
type Frame struct {
	X, Y    int          // Top-left corner in playfield pixels
	Variant int          // Animation frame or visual variant
	Matrix  fixed.Matrix // Rotation and scale about the sprite centre
	Visible bool
}

// Renderer draws entities. Every acquired handle is released exactly once.
type Renderer interface {
	Acquire(s Sprite) Handle
	Release(h Handle)
	Draw(h Handle, f Frame)
}

// ScoreDisplay shows the score as glyph ids, most significant digit first.
// It is only called when the displayed value changes.
type ScoreDisplay interface {
	ShowScore(glyphs []uint8)
}

// Effect is a sound effect id.
type Effect uint8

const (
	EffectMusic Effect = iota // Looping background music, started once per session
	EffectShoot
	EffectExplode
)

func (e Effect) String() string {
	switch e {
	case EffectMusic:
		return "music"
	case EffectShoot:
		return "shoot"
	case EffectExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// Audio plays sound effects. Play must not block.
type Audio interface {
	Play(e Effect)
}

// Input is one sample of the controls.
type Input struct {
	Turn   int  // -1, 0 or 1
	Thrust bool // Held
	Fire   bool // Pressed since the previous sample
}

// InputSource samples the controls. Each call advances the source by one sample.
type InputSource interface {
	Poll() Input
}

// FramePacer blocks until the next frame boundary.
type FramePacer interface {
	WaitForFrame(ctx context.Context) error
}

type nopRenderer struct {
	next Handle
}

func (r *nopRenderer) Acquire(Sprite) Handle {
	r.next++
	return r.next
}

func (r *nopRenderer) Release(Handle) {}
func (r *nopRenderer) Draw(Handle, Frame) {}

type nopScore struct{}

func (nopScore) ShowScore([]uint8) {}

type nopAudio struct{}

func (nopAudio) Play(Effect) {}

type idleInput struct{}

func (idleInput) Poll() Input { return Input{} }
