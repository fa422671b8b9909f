package mathil

import "github.com/mathil/mathil/internal/convert"

// PixelCoordinate is an integer pixel position, x rightward and y upward from
// the bottom-left of a Screen. It may lie outside the screen.
type PixelCoordinate struct {
	X, Y int
}

// ToPixel maps a plane point to the nearest pixel. Points outside the screen
// map to coordinates outside it. ToPixel panics if a coordinate does not fit
// in an int32.
func (s *Screen) ToPixel(p Point) PixelCoordinate {
	h := (p.X - s.bottomLeft.X) / (s.topRight.X - s.bottomLeft.X)
	v := (p.Y - s.bottomLeft.Y) / (s.topRight.Y - s.bottomLeft.Y)
	return PixelCoordinate{
		X: convert.RoundInt32(lerp(0, float64(s.width), h)),
		Y: convert.RoundInt32(lerp(0, float64(s.height), v)),
	}
}

// ToPoint maps a pixel back into the plane. Because ToPixel rounds, the
// round trip is only accurate to one pixel's extent.
func (s *Screen) ToPoint(c PixelCoordinate) Point {
	h := float64(c.X) / float64(s.width)
	v := float64(c.Y) / float64(s.height)
	return Point{
		X: lerp(s.bottomLeft.X, s.topRight.X, h),
		Y: lerp(s.bottomLeft.Y, s.topRight.Y, v),
	}
}

// InBounds reports whether c addresses a pixel of the screen.
func (s *Screen) InBounds(c PixelCoordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < s.width && c.Y < s.height
}
