package mathil

import (
	"fmt"
	"math"
)

type strokeKind uint8

const (
	strokeSquare strokeKind = iota
	strokeRoundAliased
	strokeRoundAntiAliased
)

// StrokeStyle decides how a point of a given radius becomes pixels.
// The zero value is Square.
type StrokeStyle struct {
	kind   strokeKind
	factor float64
}

var (
	// Square paints every pixel of the bounding square.
	Square = StrokeStyle{kind: strokeSquare}

	// RoundAliased paints the pixels strictly inside the radius with a hard edge.
	RoundAliased = StrokeStyle{kind: strokeRoundAliased}
)

// RoundAntiAliased paints the pixels inside the radius, fading from the full
// colour at the centre to the existing pixel at the edge. A higher factor
// keeps the colour solid further out, giving a sharper edge.
func RoundAntiAliased(factor float64) StrokeStyle {
	return StrokeStyle{kind: strokeRoundAntiAliased, factor: factor}
}

// String implements fmt.Stringer.
func (s StrokeStyle) String() string {
	switch s.kind {
	case strokeRoundAliased:
		return "RoundAliased"
	case strokeRoundAntiAliased:
		return fmt.Sprintf("RoundAntiAliased(%g)", s.factor)
	default:
		return "Square"
	}
}

// antiAlias blends c over prior for a pixel squaredDistance from the centre of
// a point of squared radius radiusSquared.
func antiAlias(c, prior Color, squaredDistance, radiusSquared int, factor float64) Color {
	if squaredDistance == 0 {
		return c
	}
	p := math.Pow(float64(squaredDistance)/float64(radiusSquared), factor)
	return LerpColor(c, prior, p)
}
