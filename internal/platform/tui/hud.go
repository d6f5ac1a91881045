package tui

import "strings"

// ScoreHUD receives score glyphs from the simulation and turns them back
// into text for the status line. It implements roids.ScoreDisplay.
type ScoreHUD struct {
	glyphs  []uint8
	updates int
}

// ShowScore stores the glyphs of a new score.
func (h *ScoreHUD) ShowScore(glyphs []uint8) {
	h.glyphs = append(h.glyphs[:0], glyphs...)
	h.updates++
}

// Reset shows zero again, for a new session.
func (h *ScoreHUD) Reset() {
	h.glyphs = h.glyphs[:0]
}

// Updates returns how many times the score was redrawn.
func (h *ScoreHUD) Updates() int {
	return h.updates
}

// Text returns the score digits. Before the first update it is "0".
// Glyph 0 is blank and renders as a space.
func (h *ScoreHUD) Text() string {
	if len(h.glyphs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for _, g := range h.glyphs {
		if g == 0 || g > 10 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte('0' + g - 1)
	}
	return sb.String()
}
