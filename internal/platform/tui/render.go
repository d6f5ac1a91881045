package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-roids/internal/core"
)

// palette maps each color slot to a terminal style.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorShip:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorThrust:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorProjectile: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorObstacle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDebris:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorDebrisHot:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAlert:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Blink(true),
	core.ColorBorder:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// styleFor returns the style of a slot, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := palette[c]; ok {
		return style
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
