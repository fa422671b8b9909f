package mathil

// Renderable is anything that can draw itself onto a Screen. Shapes become
// Renderable when paired with their settings by With.
type Renderable interface {
	Render(s *Screen)
}

// Shape is a geometric object drawn with settings of type S.
type Shape[S any] interface {
	Draw(s *Screen, settings S)
}

type item[T Shape[S], S any] struct {
	shape    T
	settings S
}

func (it item[T, S]) Render(s *Screen) {
	it.shape.Draw(s, it.settings)
}

// With pairs a shape with the settings it should be drawn with.
func With[T Shape[S], S any](shape T, settings S) Renderable {
	return item[T, S]{shape: shape, settings: settings}
}

// Render draws the items in order; later items are drawn over, and blend
// against, earlier ones.
func (s *Screen) Render(items ...Renderable) *Screen {
	for _, it := range items {
		it.Render(s)
	}
	return s
}

// RenderMany draws every shape with the same settings, in order.
func RenderMany[T Shape[S], S any](s *Screen, shapes []T, settings S) *Screen {
	for _, sh := range shapes {
		sh.Draw(s, settings)
	}
	return s
}

// PointSettings controls how a Point is drawn.
type PointSettings struct {
	Color  Color
	Radius Thickness
	Style  StrokeStyle
}

// Draw renders the point as a dot of the configured radius and style.
func (p Point) Draw(s *Screen, settings PointSettings) {
	s.stamp(s.ToPixel(p), settings.Radius.Pixels(s), settings.Color, settings.Style)
}

// stamp paints the 2r×2r square of pixels [c-r, c+r) according to style.
func (s *Screen) stamp(c PixelCoordinate, r int, col Color, style StrokeStyle) {
	r2 := r * r
	x0, x1 := max(c.X-r, 0), min(c.X+r, s.width)
	y0, y1 := max(c.Y-r, 0), min(c.Y+r, s.height)

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			i := y*s.width + x
			if style.kind == strokeSquare {
				s.pixels[i] = col
				continue
			}
			dx, dy := x-c.X, y-c.Y
			d2 := dx*dx + dy*dy
			if d2 >= r2 {
				continue
			}
			if style.kind == strokeRoundAntiAliased {
				s.pixels[i] = antiAlias(col, s.pixels[i], d2, r2, style.factor)
			} else {
				s.pixels[i] = col
			}
		}
	}
}

// CurveSettings controls how a Curve is drawn. Samples is the number of points
// the curve is evaluated at; smoothness depends on it alone.
type CurveSettings struct {
	Color     Color
	Thickness Thickness
	Samples   int
	Style     StrokeStyle
}

// Draw samples the curve and renders each sample as a point.
func (c Curve) Draw(s *Screen, settings CurveSettings) {
	r := settings.Thickness.Pixels(s)
	for _, p := range c.Sample(settings.Samples) {
		s.stamp(s.ToPixel(p), r, settings.Color, settings.Style)
	}
}

// SidesSettings controls how a polygon's edges are drawn.
type SidesSettings struct {
	Color          Color
	Thickness      Thickness
	SamplesPerSide int
	Style          StrokeStyle
}

// FillSettings controls how a polygon's interior is painted.
type FillSettings struct {
	Color Color
}

// PolygonSettings selects which passes draw a polygon. A nil pass is skipped.
// The fill is painted first so the sides stay on top.
type PolygonSettings struct {
	Sides *SidesSettings
	Fill  *FillSettings
}

// Draw renders the polygon's fill and then its sides.
func (p Polygon) Draw(s *Screen, settings PolygonSettings) {
	if settings.Fill != nil {
		p.drawFill(s, settings.Fill.Color)
	}
	if settings.Sides != nil {
		RenderMany(s, p.edges, CurveSettings{
			Color:     settings.Sides.Color,
			Thickness: settings.Sides.Thickness,
			Samples:   settings.Sides.SamplesPerSide,
			Style:     settings.Sides.Style,
		})
	}
}

// drawFill paints every on-screen pixel of the polygon's bounding box whose
// plane point lies inside the polygon. Unlike Screen.Fill it ignores what is
// already drawn.
func (p Polygon) drawFill(s *Screen, c Color) {
	bl, tr := p.Bounds()
	lo, hi := s.ToPixel(bl), s.ToPixel(tr)
	x0, x1 := max(lo.X, 0), min(hi.X, s.width-1)
	y0, y1 := max(lo.Y, 0), min(hi.Y, s.height-1)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			px := PixelCoordinate{X: x, Y: y}
			if p.Contains(s.ToPoint(px)) {
				s.pixels[y*s.width+x] = c
			}
		}
	}
}

// VectorSettings controls how a Vector is drawn. The arrowhead is always
// filled solid; the other fields apply to the shaft.
type VectorSettings struct {
	Color     Color
	Thickness Thickness
	Samples   int
	Style     StrokeStyle
}

// Draw renders the filled arrowhead and then the shaft, if any.
func (v Vector) Draw(s *Screen, settings VectorSettings) {
	v.arrowHead.Draw(s, PolygonSettings{Fill: &FillSettings{Color: settings.Color}})
	if v.shaft != nil {
		v.shaft.Draw(s, CurveSettings{
			Color:     settings.Color,
			Thickness: settings.Thickness,
			Samples:   settings.Samples,
			Style:     settings.Style,
		})
	}
}

// DashedLineSettings controls how a DashedLine is drawn.
type DashedLineSettings struct {
	Color          Color
	Thickness      Thickness
	SamplesPerDash int
	Style          StrokeStyle
}

// Draw renders each dash as a separate curve.
func (d DashedLine) Draw(s *Screen, settings DashedLineSettings) {
	RenderMany(s, d.dashes, CurveSettings{
		Color:     settings.Color,
		Thickness: settings.Thickness,
		Samples:   settings.SamplesPerDash,
		Style:     settings.Style,
	})
}

// CartesianPlaneSettings controls how axes are drawn. The zero Style draws
// square strokes.
type CartesianPlaneSettings struct {
	Color          Color
	Thickness      Thickness
	SamplesPerAxis int
	Style          StrokeStyle
}

// Draw renders the four axis arrows.
func (c CartesianPlane) Draw(s *Screen, settings CartesianPlaneSettings) {
	RenderMany(s, c.axes[:], VectorSettings{
		Color:     settings.Color,
		Thickness: settings.Thickness,
		Samples:   settings.SamplesPerAxis,
		Style:     settings.Style,
	})
}
