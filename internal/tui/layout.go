package tui

type LayoutMode int

const (
	LayoutSingleColumn LayoutMode = iota

	LayoutTwoColumn
)

type Layout struct {
	Mode       LayoutMode
	Width      int
	Height     int
	LeftWidth  int
	RightWidth int
}

const (
	minWidthTwoColumn = 70

	wideTerminalWidth = 110

	mediumLeftPercent = 55

	wideLeftPercent = 50

	minWheelRadius = 3
	maxWheelRadius = 10
)

func NewLayout(width, height int) Layout {
	if width < minWidthTwoColumn {
		return Layout{
			Mode:      LayoutSingleColumn,
			Width:     width,
			Height:    height,
			LeftWidth: max(width, 0),
		}
	}

	percent := mediumLeftPercent
	if width >= wideTerminalWidth {
		percent = wideLeftPercent
	}
	leftWidth := width * percent / 100

	return Layout{
		Mode:       LayoutTwoColumn,
		Width:      width,
		Height:     height,
		LeftWidth:  leftWidth,
		RightWidth: width - leftWidth,
	}
}

func (l Layout) IsTwoColumn() bool {
	return l.Mode == LayoutTwoColumn
}

// WheelRadius is the largest wheel (in rows) that fits the wheel panel.
// A wheel of radius r is 2r+1 rows by 4r+1 columns.
func (l Layout) WheelRadius() int {
	width := l.LeftWidth - 4
	height := l.Height - 12
	if !l.IsTwoColumn() {
		height = l.Height/2 - 4
	}

	r := min((width-1)/4, (height-1)/2)
	return max(minWheelRadius, min(r, maxWheelRadius))
}
