package wheel

import (
	"math"

	"spinwheel/internal/util"
)

const (
	FullTurn = 2 * math.Pi

	// PointerAngle is the fixed pointer direction: the top of the wheel, in a
	// convention where 0 points right and angles grow clockwise.
	PointerAngle = 3 * math.Pi / 2
)

// DefaultPalette is reused cyclically when there are more sectors than colors.
var DefaultPalette = []string{"#FFB7B2", "#FFDAC1", "#E2F0CB", "#B2E2F2", "#C7CEEA", "#F3D1F4"}

// SectorWidth is the angular width of one sector, or 0 for an empty wheel.
func SectorWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return FullTurn / float64(n)
}

// SectorIndex maps an unnormalized rotation angle to the sector under the
// pointer. It is a pure function of (angle, n) and returns -1 when n <= 0.
func SectorIndex(angle float64, n int) int {
	return SectorInDirection(PointerAngle, angle, n)
}

// SectorInDirection returns the sector drawn at direction theta when the
// wheel is rotated by angle. Sector i spans [angle+i*w, angle+(i+1)*w).
func SectorInDirection(theta, angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	normalized := util.Wrap(theta-angle, FullTurn)
	idx := int(math.Floor(normalized / SectorWidth(n)))
	return util.Clamp(idx, 0, n-1)
}

// Sector is the read-only drawing geometry of one item.
type Sector struct {
	Index int
	Label string
	Start float64
	End   float64
	Color string
}

// Mid returns the angle bisecting the sector.
func (s Sector) Mid() float64 {
	return (s.Start + s.End) / 2
}

// Sectors derives drawing geometry for the current angle.
func (m *Model) Sectors() []Sector {
	return Geometry(m.Labels(), m.angle, m.palette)
}

// Geometry lays labels out as equal sectors starting at angle.
func Geometry(labels []string, angle float64, palette []string) []Sector {
	if len(labels) == 0 {
		return nil
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	width := SectorWidth(len(labels))
	sectors := make([]Sector, len(labels))
	for i, label := range labels {
		start := angle + float64(i)*width
		sectors[i] = Sector{
			Index: i,
			Label: label,
			Start: start,
			End:   start + width,
			Color: palette[i%len(palette)],
		}
	}
	return sectors
}
