package core

// Viewport maps a playfield measured in pixels onto a rectangle of cells.
// The whole playfield is always visible; each cell covers an equal share.
type Viewport struct {
	Area   Rect // Cells the playfield is drawn into
	FieldW int  // Playfield width in pixels
	FieldH int  // Playfield height in pixels
}

// NewViewport fits a fieldW x fieldH playfield into area.
func NewViewport(area Rect, fieldW, fieldH int) Viewport {
	return Viewport{Area: area, FieldW: fieldW, FieldH: fieldH}
}

// Project converts a playfield pixel to a cell. ok is false when the pixel
// lies outside the playfield, which happens for sprites straddling an edge.
func (v Viewport) Project(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 || px >= v.FieldW || py >= v.FieldH || v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0, false
	}
	return v.Area.X + px*v.Area.W/v.FieldW, v.Area.Y + py*v.Area.H/v.FieldH, true
}

// CellsFor returns how many cells a sprite of the given pixel size spans,
// at least one in each direction.
func (v Viewport) CellsFor(size int) (w, h int) {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return 1, 1
	}
	w = max(size*v.Area.W/v.FieldW, 1)
	h = max(size*v.Area.H/v.FieldH, 1)
	return w, h
}
