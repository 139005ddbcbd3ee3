// Package render draws a wheel snapshot as an image.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"spinwheel/internal/wheel"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorOutline     = color.RGBA{85, 85, 85, 255}
	colorLabel       = color.RGBA{85, 85, 85, 255}
	colorPlaceholder = color.RGBA{221, 221, 221, 255}
	colorPointer     = color.RGBA{237, 66, 69, 255}
)

const (
	margin      = 10.0
	pointerSize = 24.0
	minSize     = 64
)

// Snapshot describes one frame of the wheel.
type Snapshot struct {
	Labels  []string
	Angle   float64
	Palette []string
	Size    int
}

// PNG draws the snapshot and encodes it to w.
func PNG(w io.Writer, s Snapshot) error {
	dc, err := Draw(s)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Draw renders the wheel onto a new square context. Sectors use the same
// geometry as the terminal view: 0 rad points right, angles grow clockwise.
func Draw(s Snapshot) (*gg.Context, error) {
	if s.Size < minSize {
		return nil, fmt.Errorf("size %d is below the %dpx minimum", s.Size, minSize)
	}

	dc := gg.NewContext(s.Size, s.Size)
	dc.SetColor(color.White)
	dc.Clear()

	face, err := labelFace(float64(s.Size) / 28)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	cx, cy := float64(s.Size)/2, float64(s.Size)/2
	radius := cx - margin - pointerSize/2

	sectors := wheel.Geometry(s.Labels, s.Angle, s.Palette)
	if len(sectors) == 0 {
		drawPlaceholder(dc, cx, cy, radius)
		return dc, nil
	}

	for _, sec := range sectors {
		drawSector(dc, sec, cx, cy, radius)
	}
	drawPointer(dc, cx, cy-radius)
	return dc, nil
}

func drawSector(dc *gg.Context, sec wheel.Sector, cx, cy, radius float64) {
	dc.MoveTo(cx, cy)
	dc.DrawArc(cx, cy, radius, sec.Start, sec.End)
	dc.ClosePath()
	dc.SetHexColor(sec.Color)
	dc.FillPreserve()
	dc.SetColor(colorOutline)
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.Push()
	dc.Translate(cx, cy)
	dc.Rotate(sec.Mid())
	dc.SetColor(colorLabel)
	dc.DrawStringAnchored(sec.Label, radius-20, 0, 1, 0.5)
	dc.Pop()
}

func drawPlaceholder(dc *gg.Context, cx, cy, radius float64) {
	dc.SetColor(colorPlaceholder)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()
	dc.SetColor(colorLabel)
	dc.DrawStringAnchored("Add items to spin", cx, cy, 0.5, 0.5)
}

// drawPointer draws a downward triangle whose tip touches the rim at the top.
func drawPointer(dc *gg.Context, tipX, tipY float64) {
	dc.NewSubPath()
	dc.MoveTo(tipX, tipY+pointerSize/2)
	dc.LineTo(tipX-pointerSize/2, tipY-pointerSize/2)
	dc.LineTo(tipX+pointerSize/2, tipY-pointerSize/2)
	dc.ClosePath()
	dc.SetColor(colorPointer)
	dc.FillPreserve()
	dc.SetColor(colorOutline)
	dc.SetLineWidth(1)
	dc.Stroke()
}

func labelFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    math.Max(points, 8),
		Hinting: font.HintingFull,
	}), nil
}
