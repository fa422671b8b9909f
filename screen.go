package mathil

import "fmt"

// Screen is a pixel buffer paired with the rectangle of the plane it shows.
//
// Pixel (0, 0) is the bottom-left corner; x grows rightward and y upward.
// The resolution is fixed at creation. Rendering methods mutate the screen in
// place and return it so calls can be chained:
//
//	s := mathil.NewScreen(800, 600, mathil.Pt(-4, -3), mathil.Pt(4, 3), mathil.White).
//		Render(mathil.With(circle, settings)).
//		Fill(mathil.Origin(), mathil.BabyBlue)
//
// A Screen is not safe for concurrent mutation; use Clone to hand an
// independent copy to another goroutine.
type Screen struct {
	width      int
	height     int
	bottomLeft Point
	topRight   Point
	pixels     []Color // row-major from the bottom row
}

// NewScreen creates a screen of width×height pixels covering the plane
// rectangle (bottomLeft, topRight), filled with background.
// It panics if either dimension is not positive.
func NewScreen(width, height int, bottomLeft, topRight Point, background Color) *Screen {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("mathil: invalid screen resolution %dx%d", width, height))
	}
	s := &Screen{
		width:      width,
		height:     height,
		bottomLeft: bottomLeft,
		topRight:   topRight,
		pixels:     make([]Color, width*height),
	}
	s.Clear(background)
	return s
}

// Width returns the horizontal resolution.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the vertical resolution.
func (s *Screen) Height() int {
	return s.height
}

// BottomLeft returns the plane coordinate of the bottom-left corner.
func (s *Screen) BottomLeft() Point {
	return s.bottomLeft
}

// TopRight returns the plane coordinate of the top-right corner.
func (s *Screen) TopRight() Point {
	return s.topRight
}

// At returns the colour of pixel (x, y). Out-of-bounds reads return black.
func (s *Screen) At(x, y int) Color {
	if !s.InBounds(PixelCoordinate{X: x, Y: y}) {
		return Color{}
	}
	return s.pixels[y*s.width+x]
}

// Set sets pixel (x, y). Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, c Color) {
	if !s.InBounds(PixelCoordinate{X: x, Y: y}) {
		return
	}
	s.pixels[y*s.width+x] = c
}

// Clear fills every pixel with c.
func (s *Screen) Clear(c Color) *Screen {
	for i := range s.pixels {
		s.pixels[i] = c
	}
	return s
}

// Clone returns an independent copy of the screen.
func (s *Screen) Clone() *Screen {
	c := *s
	c.pixels = make([]Color, len(s.pixels))
	copy(c.pixels, s.pixels)
	return &c
}

// Equal reports whether both screens have the same geometry and pixels.
func (s *Screen) Equal(o *Screen) bool {
	if s.width != o.width || s.height != o.height ||
		s.bottomLeft != o.bottomLeft || s.topRight != o.topRight {
		return false
	}
	for i, c := range s.pixels {
		if o.pixels[i] != c {
			return false
		}
	}
	return true
}

// AspectRatios describes how much a screen squeezes the plane: the width to
// height ratio of the pixel grid and of the plane rectangle. Equal values mean
// circles render round.
type AspectRatios struct {
	Resolution float64
	Bounds     float64
}

// AspectRatios returns the screen's resolution and bounds aspect ratios.
func (s *Screen) AspectRatios() AspectRatios {
	return AspectRatios{
		Resolution: float64(s.width) / float64(s.height),
		Bounds:     (s.topRight.X - s.bottomLeft.X) / (s.topRight.Y - s.bottomLeft.Y),
	}
}
