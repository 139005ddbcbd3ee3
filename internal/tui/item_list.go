package tui

import (
	"fmt"
	"strings"

	"spinwheel/internal/util"
	"spinwheel/internal/wheel"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	SelectionIndicator   = "▶"
	NoSelectionIndicator = " "
	swatch               = "■"
)

// ItemListModel is the scrollable item list beside the wheel.
type ItemListModel struct {
	wheel    *wheel.Model
	viewport viewport.Model
	selected int
	pointer  int
	width    int
	height   int
}

func NewItemList(w *wheel.Model) *ItemListModel {
	return &ItemListModel{
		wheel:   w,
		pointer: -1,
	}
}

func (l *ItemListModel) Update(msg tea.Msg) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}

	switch key.String() {
	case "j", "down":
		l.Select(l.selected + 1)
	case "k", "up":
		l.Select(l.selected - 1)
	case "g", "home":
		l.Select(0)
	case "G", "end":
		l.Select(l.wheel.Len() - 1)
	}
}

// Select moves the cursor, clamped to the list.
func (l *ItemListModel) Select(i int) {
	l.selected = util.Clamp(i, 0, max(l.wheel.Len()-1, 0))
	l.ensureVisible()
	l.Refresh()
}

func (l *ItemListModel) Selected() int {
	return l.selected
}

// SetPointer marks the item currently under the wheel pointer.
func (l *ItemListModel) SetPointer(i int) {
	if i != l.pointer {
		l.pointer = i
		l.Refresh()
	}
}

func (l *ItemListModel) SetSize(width, height int) {
	l.width = width
	l.height = max(height, 1)
	l.viewport = viewport.New(width, l.height)
	l.ensureVisible()
	l.Refresh()
}

// Refresh rebuilds the list after the wheel changes. It is subscribed to
// wheel redraws, so it also keeps the cursor inside the list.
func (l *ItemListModel) Refresh() {
	if l.selected >= l.wheel.Len() {
		l.selected = max(l.wheel.Len()-1, 0)
		l.ensureVisible()
	}
	l.viewport.SetContent(l.render())
}

func (l *ItemListModel) ensureVisible() {
	if l.viewport.Height == 0 {
		return
	}

	top := l.viewport.YOffset
	bottom := top + l.viewport.Height
	if l.selected < top {
		l.viewport.SetYOffset(l.selected)
	}
	if l.selected >= bottom {
		l.viewport.SetYOffset(l.selected - l.viewport.Height + 1)
	}
}

func (l *ItemListModel) render() string {
	items := l.wheel.Items()
	if len(items) == 0 {
		return placeholderStyle.Render("No items yet. Press a to add one.")
	}

	palette := l.wheel.Palette()
	lines := make([]string, len(items))
	for i, item := range items {
		indicator := NoSelectionIndicator
		if i == l.selected {
			indicator = SelectionIndicator
		}

		color := lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i%len(palette)]))
		label := item.Label
		if i == l.pointer {
			label = underPointerStyle.Render(label)
		}

		line := fmt.Sprintf("%s %s %2d. %s", indicator, color.Render(swatch), i+1, label)
		if i == l.selected && l.width > 0 {
			pad := max(l.width-lipgloss.Width(line), 0)
			line = selectedRowStyle.Render(line + strings.Repeat(" ", pad))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (l *ItemListModel) View() string {
	if l.viewport.Height == 0 {
		return l.render()
	}
	return l.viewport.View()
}
