package tui

import (
	"maps"
	"slices"

	"github.com/vovakirdan/tui-roids/internal/core"
	"github.com/vovakirdan/tui-roids/internal/fixed"
	"github.com/vovakirdan/tui-roids/internal/games/roids"
)

// Glyphs for each kind of entity.
var (
	// shipGlyphs by heading octant, clockwise from east with y pointing down.
	shipGlyphs     = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	obstacleGlyphs = [2]rune{'▓', '▒'}
	debrisGlyphs   = [4]rune{'*', '+', 'x', '·'}
)

const projectileGlyph = '•'

type entity struct {
	sprite roids.Sprite
	frame  roids.Frame
}

// ScreenRenderer keeps the latest frame of every entity and paints them onto
// a core.Screen on demand. It implements roids.Renderer.
type ScreenRenderer struct {
	entities map[roids.Handle]*entity
	next     roids.Handle
}

// NewScreenRenderer creates an empty renderer.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{entities: make(map[roids.Handle]*entity)}
}

// Acquire registers a new hidden entity.
func (r *ScreenRenderer) Acquire(s roids.Sprite) roids.Handle {
	r.next++
	r.entities[r.next] = &entity{sprite: s}
	return r.next
}

// Release forgets an entity.
func (r *ScreenRenderer) Release(h roids.Handle) {
	delete(r.entities, h)
}

// Draw records where an entity is this frame. Unknown handles are ignored.
func (r *ScreenRenderer) Draw(h roids.Handle, f roids.Frame) {
	if e, ok := r.entities[h]; ok {
		e.frame = f
	}
}

// Len returns the number of live entities.
func (r *ScreenRenderer) Len() int {
	return len(r.entities)
}

// Paint draws every visible entity through the viewport, in acquisition order.
func (r *ScreenRenderer) Paint(s *core.Screen, v core.Viewport) {
	for _, h := range slices.Sorted(maps.Keys(r.entities)) {
		e := r.entities[h]
		if !e.frame.Visible {
			continue
		}
		size := e.sprite.Size
		x, y, ok := v.Project(e.frame.X+size/2, e.frame.Y+size/2)
		if !ok {
			continue
		}

		switch e.sprite.Kind {
		case roids.KindShip:
			color := core.ColorShip
			if e.frame.Variant == roids.ShipThrust {
				color = core.ColorThrust
			}
			s.Set(x, y, shipGlyphs[headingOctant(e.frame.Matrix)], color)
		case roids.KindProjectile:
			s.Set(x, y, projectileGlyph, core.ColorProjectile)
		case roids.KindObstacle:
			paintBlock(s, v, x, y, size, obstacleGlyphs[e.frame.Variant&1], core.ColorObstacle)
		case roids.KindDebris:
			color := core.ColorDebris
			if e.frame.Matrix.A > 2*fixed.CoarseOne || e.frame.Matrix.A < -2*fixed.CoarseOne {
				color = core.ColorDebrisHot
			}
			s.Set(x, y, debrisGlyphs[e.frame.Variant&3], color)
		}
	}
}

// paintBlock fills the cells a sprite covers, centred on (cx, cy).
func paintBlock(s *core.Screen, v core.Viewport, cx, cy, size int, r rune, c core.Color) {
	w, h := v.CellsFor(size)
	area := core.NewRect(cx-w/2, cy-h/2, w, h)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if v.Area.Contains(x, y) {
				s.Set(x, y, r, c)
			}
		}
	}
}

// headingOctant picks the nearest of eight directions for the heading of a
// rotation matrix, whose first row is (cos, sin).
func headingOctant(m fixed.Matrix) int {
	cos, sin := int(m.A), int(m.B)
	ax, ay := abs(cos), abs(sin)

	// tan(22.5°) is about 0.414, approximated as 2/5.
	switch {
	case ay*5 < ax*2:
		if cos >= 0 {
			return 0
		}
		return 4
	case ax*5 < ay*2:
		if sin >= 0 {
			return 2
		}
		return 6
	case cos >= 0 && sin >= 0:
		return 1
	case cos < 0 && sin >= 0:
		return 3
	case cos < 0:
		return 5
	default:
		return 7
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
