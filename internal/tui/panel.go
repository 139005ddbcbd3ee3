package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a rounded box with its title set into the top border.
type Panel struct {
	Title       string
	Content     string
	Width       int
	Height      int
	BorderColor lipgloss.Color
	Focused     bool // unfocused content is dimmed
}

var DefaultBorderColor = lipgloss.Color("#808080")

// RenderPanel renders p at exactly p.Width columns and p.Height rows.
func RenderPanel(p Panel) string {
	width := max(p.Width, 10)
	height := max(p.Height, 3)
	innerWidth := width - 2
	innerHeight := height - 2

	content := fitContent(p.Content, innerWidth, innerHeight)
	if !p.Focused {
		content = lipgloss.NewStyle().Faint(true).Render(content)
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(p.BorderColor).
		Width(innerWidth).
		Height(innerHeight).
		Render(content)

	return topBorder(p.Title, width, p.BorderColor) + "\n" + body
}

func topBorder(title string, width int, color lipgloss.Color) string {
	border := lipgloss.NewStyle().Foreground(color)
	fill := width - 2

	if title == "" {
		return border.Render("╭" + strings.Repeat("─", fill) + "╮")
	}

	label := " " + title + " "
	if lipgloss.Width(label) > fill-1 {
		label = lipgloss.NewStyle().MaxWidth(max(fill-2, 0)).Render(label) + "…"
	}
	rest := max(fill-1-lipgloss.Width(label), 0)

	return border.Render("╭─") + label + border.Render(strings.Repeat("─", rest)+"╮")
}

// fitContent clips content to maxHeight lines of at most maxWidth cells.
func fitContent(content string, maxWidth, maxHeight int) string {
	if content == "" {
		return ""
	}

	clip := lipgloss.NewStyle().MaxWidth(maxWidth)
	lines := strings.Split(content, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > maxWidth {
			lines[i] = clip.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
