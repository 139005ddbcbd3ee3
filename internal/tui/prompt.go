package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// ItemCollector asks for the initial wheel items before the TUI starts.
type ItemCollector struct {
	input      io.Reader
	accessible bool
}

func NewItemCollector() *ItemCollector {
	return &ItemCollector{}
}

func (c *ItemCollector) WithInput(r io.Reader) *ItemCollector {
	c.input = r
	c.accessible = true
	return c
}

// Collect prompts for a comma separated list and returns the trimmed,
// non-empty labels in order.
func (c *ItemCollector) Collect() ([]string, error) {
	var raw string

	input := huh.NewInput().
		Title("What should the wheel pick from?").
		Description("Separate items with commas").
		Placeholder("Pizza, Sushi, Tacos").
		Value(&raw)

	form := huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(huh.ThemeCatppuccin())

	if c.input != nil {
		form = form.WithInput(c.input)
	}
	if c.accessible {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	return SplitItems(raw), nil
}

// SplitItems splits a comma separated list, dropping blank entries.
func SplitItems(raw string) []string {
	var items []string
	for part := range strings.SplitSeq(raw, ",") {
		if label := strings.TrimSpace(part); label != "" {
			items = append(items, label)
		}
	}
	return items
}
