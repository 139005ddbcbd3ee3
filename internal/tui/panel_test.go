package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderPanel(t *testing.T) {
	tests := []struct {
		name     string
		panel    Panel
		validate func(t *testing.T, result string)
	}{
		{
			name: "panel with title and content",
			panel: Panel{
				Title:       "Items (3)",
				Content:     "Pizza",
				Width:       20,
				Height:      5,
				BorderColor: DefaultBorderColor,
				Focused:     true,
			},
			validate: func(t *testing.T, result string) {
				assert.Contains(t, result, "Items (3)")
				assert.Contains(t, result, "Pizza")
			},
		},
		{
			name: "panel without title",
			panel: Panel{
				Content:     "Content only",
				Width:       20,
				Height:      5,
				BorderColor: DefaultBorderColor,
				Focused:     true,
			},
			validate: func(t *testing.T, result string) {
				assert.Contains(t, result, "Content only")
				assert.True(t, strings.HasPrefix(result, "╭"))
			},
		},
		{
			name: "long content is clipped to the panel width",
			panel: Panel{
				Title:       "Wide",
				Content:     "This is a very long line that should be clipped when it exceeds the panel width",
				Width:       20,
				Height:      5,
				BorderColor: DefaultBorderColor,
				Focused:     true,
			},
			validate: func(t *testing.T, result string) {
				for line := range strings.SplitSeq(result, "\n") {
					assert.LessOrEqual(t, lipgloss.Width(line), 20, "line should not exceed panel width")
				}
			},
		},
		{
			name: "tall content is clipped to the panel height",
			panel: Panel{
				Title:       "Tall",
				Content:     strings.Repeat("row\n", 20),
				Width:       20,
				Height:      6,
				BorderColor: DefaultBorderColor,
				Focused:     true,
			},
			validate: func(t *testing.T, result string) {
				assert.Len(t, strings.Split(result, "\n"), 6)
			},
		},
		{
			name: "long title is shortened",
			panel: Panel{
				Title:       "A title much longer than the panel itself",
				Width:       16,
				Height:      4,
				BorderColor: DefaultBorderColor,
			},
			validate: func(t *testing.T, result string) {
				first := strings.Split(result, "\n")[0]
				assert.Contains(t, first, "…")
				assert.LessOrEqual(t, lipgloss.Width(first), 16)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, RenderPanel(tt.panel))
		})
	}
}

func TestRenderPanel_ExactHeight(t *testing.T) {
	result := RenderPanel(Panel{
		Title:       "History (0)",
		Content:     "No winners yet",
		Width:       30,
		Height:      8,
		BorderColor: DefaultBorderColor,
		Focused:     true,
	})

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestFitContent(t *testing.T) {
	assert.Equal(t, "", fitContent("", 10, 3))
	assert.Equal(t, "a\nb", fitContent("a\nb\nc", 10, 2))
	assert.Equal(t, 4, lipgloss.Width(fitContent("abcdefgh", 4, 1)))
}
