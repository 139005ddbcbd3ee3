package tui

import (
	"math"
	"strings"

	"spinwheel/internal/wheel"

	"github.com/charmbracelet/lipgloss"
)

const (
	wheelCell       = "█"
	placeholderCell = "░"
	pointerGlyph    = "▼"
	placeholderText = "Add items to spin"
)

// renderWheel draws the wheel as a disk of 2r+1 rows by 4r+1 columns with the
// pointer above the top. Cells are two columns per row unit so the disk looks
// round in a terminal. Each cell takes the color of the sector drawn in its
// direction, using the same angle convention as wheel.SectorIndex.
func renderWheel(labels []string, angle float64, palette []string, radius int) string {
	var b strings.Builder
	cols := 4*radius + 1

	b.WriteString(strings.Repeat(" ", 2*radius))
	b.WriteString(pointerStyle.Render(pointerGlyph))
	b.WriteString("\n")

	n := len(labels)
	styles := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	limit := (float64(radius) + 0.5) * (float64(radius) + 0.5)
	for y := -radius; y <= radius; y++ {
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch {
			case runStyle >= 0:
				b.WriteString(styles[runStyle].Render(run.String()))
			case runStyle == -2:
				b.WriteString(placeholderStyle.Render(run.String()))
			default:
				b.WriteString(run.String())
			}
			run.Reset()
		}

		for x := -2 * radius; x <= 2*radius; x++ {
			dx := float64(x) / 2
			dy := float64(y)

			style, cell := -1, " "
			if dx*dx+dy*dy <= limit {
				if n == 0 || len(styles) == 0 {
					style, cell = -2, placeholderCell
				} else {
					idx := wheel.SectorInDirection(math.Atan2(dy, dx), angle, n)
					style, cell = idx%len(styles), wheelCell
				}
			}

			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteString(cell)
		}
		flush()
		if y < radius {
			b.WriteString("\n")
		}
	}

	if n == 0 {
		b.WriteString("\n")
		b.WriteString(placeholderStyle.Render(centerText(placeholderText, cols)))
	}

	return b.String()
}

func centerText(s string, width int) string {
	pad := max((width-lipgloss.Width(s))/2, 0)
	return strings.Repeat(" ", pad) + s
}
