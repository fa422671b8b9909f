package mathil

import (
	"fmt"

	"github.com/mathil/mathil/internal/convert"
)

type thicknessKind uint8

const (
	thicknessRelative thicknessKind = iota
	thicknessAbsolute
)

// Thickness is a line thickness or point radius.
//
// A relative thickness is a length in plane units and scales with the
// screen's resolution; it is converted to pixels by averaging the horizontal
// and vertical pixels-per-unit. An absolute thickness is a fixed pixel count.
// The zero value is a relative thickness of 0.
type Thickness struct {
	kind  thicknessKind
	value float64
}

// Relative returns a thickness measured in plane units.
func Relative(length float64) Thickness {
	return Thickness{kind: thicknessRelative, value: length}
}

// Absolute returns a thickness of a fixed number of pixels.
func Absolute(pixels uint16) Thickness {
	return Thickness{kind: thicknessAbsolute, value: float64(pixels)}
}

// IsAbsolute reports whether t is a pixel count.
func (t Thickness) IsAbsolute() bool {
	return t.kind == thicknessAbsolute
}

// String implements fmt.Stringer.
func (t Thickness) String() string {
	if t.kind == thicknessAbsolute {
		return fmt.Sprintf("%gpx", t.value)
	}
	return fmt.Sprintf("%g units", t.value)
}

// Pixels resolves the thickness against s. It panics if a relative thickness
// resolves to a negative pixel count or one beyond 65535.
func (t Thickness) Pixels(s *Screen) int {
	if t.kind == thicknessAbsolute {
		return int(t.value)
	}
	horizontal := t.value / (s.topRight.X - s.bottomLeft.X) * float64(s.width)
	vertical := t.value / (s.topRight.Y - s.bottomLeft.Y) * float64(s.height)
	return int(convert.RoundUint16((horizontal + vertical) / 2))
}
