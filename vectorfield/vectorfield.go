// Package vectorfield draws plots of two-dimensional vector fields.
//
// A field is sampled at a set of points; each sample becomes a fixed-length
// arrow pointing along the field, coloured by the field's magnitude from
// violet (weakest) to red (strongest).
package vectorfield

import (
	"math"

	"github.com/mathil/mathil"
)

// Field is a vector field: it returns the vector at p.
type Field func(p mathil.Point) mathil.Point

// Config describes the look of a plot. Lengths are in plane units.
type Config struct {
	Background mathil.Color
	Axis       mathil.Color

	// Width is the horizontal resolution; the vertical resolution follows
	// from the aspect ratio of the plotted region.
	Width int

	// Margin is added around the bounding box of the sample points.
	Margin float64

	ArrowWidth   float64
	ArrowHeight  float64
	VectorLength float64

	VectorThickness float64
	AxisThickness   float64
	VectorSamples   int
	AxisSamples     int
}

// DefaultConfig returns a configuration that suits a field sampled on a grid
// of spacing about 1.
func DefaultConfig() Config {
	return Config{
		Background:      mathil.White,
		Axis:            mathil.Black,
		Width:           1920,
		Margin:          1,
		ArrowWidth:      0.2,
		ArrowHeight:     0.2,
		VectorLength:    0.7,
		VectorThickness: 0.02,
		AxisThickness:   0.02,
		VectorSamples:   200,
		AxisSamples:     2000,
	}
}

// Grid returns nx×ny points evenly spaced over the rectangle (bottomLeft,
// topRight), corners included, column by column. nx and ny must be at least 2.
func Grid(bottomLeft, topRight mathil.Point, nx, ny int) []mathil.Point {
	if nx < 2 || ny < 2 {
		panic("vectorfield: grid needs at least 2 points per axis")
	}
	dx := (topRight.X - bottomLeft.X) / float64(nx-1)
	dy := (topRight.Y - bottomLeft.Y) / float64(ny-1)

	points := make([]mathil.Point, 0, nx*ny)
	for i := range nx {
		for j := range ny {
			points = append(points, mathil.Pt(
				bottomLeft.X+dx*float64(i),
				bottomLeft.Y+dy*float64(j),
			))
		}
	}
	return points
}

// Bounds returns the bounding box of points. points must not be empty.
func Bounds(points []mathil.Point) (bottomLeft, topRight mathil.Point) {
	bottomLeft = mathil.Pt(math.Inf(1), math.Inf(1))
	topRight = mathil.Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		bottomLeft.X = min(bottomLeft.X, p.X)
		bottomLeft.Y = min(bottomLeft.Y, p.Y)
		topRight.X = max(topRight.X, p.X)
		topRight.Y = max(topRight.Y, p.Y)
	}
	return bottomLeft, topRight
}

type arrow struct {
	vector    mathil.Vector
	magnitude float64
}

// Draw plots field at points. The axes are drawn when the origin lies
// strictly inside the points' bounding box. Points where the field vanishes
// get no arrow. Draw panics if points is empty.
func Draw(cfg Config, points []mathil.Point, field Field) *mathil.Screen {
	if len(points) == 0 {
		panic("vectorfield: no sample points")
	}
	bl, tr := Bounds(points)
	margin := mathil.Pt(cfg.Margin, cfg.Margin)
	lo, hi := bl.Sub(margin), tr.Add(margin)

	height := max(int((hi.Y-lo.Y)*float64(cfg.Width)/(hi.X-lo.X)), 1)
	screen := mathil.NewScreen(cfg.Width, height, lo, hi, cfg.Background)

	if bl.X < 0 && tr.X > 0 && bl.Y < 0 && tr.Y > 0 {
		axes := mathil.NewCartesianPlane(bl, tr, mathil.Origin(), cfg.ArrowWidth, cfg.ArrowHeight)
		axes.Draw(screen, mathil.CartesianPlaneSettings{
			Color:          cfg.Axis,
			Thickness:      mathil.Relative(cfg.AxisThickness),
			SamplesPerAxis: cfg.AxisSamples,
		})
	}

	arrows := make([]arrow, 0, len(points))
	lowest, highest := math.Inf(1), math.Inf(-1)
	for _, tail := range points {
		v := field(tail)
		m := v.Length()
		if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			continue
		}
		head := tail.Add(v.Mul(cfg.VectorLength / m))
		arrows = append(arrows, arrow{
			vector:    mathil.NewVector(head, tail, cfg.ArrowWidth, cfg.ArrowHeight),
			magnitude: m,
		})
		lowest, highest = min(lowest, m), max(highest, m)
	}

	spread := highest - lowest
	for _, a := range arrows {
		t := 0.0
		if spread > 0 {
			t = (a.magnitude - lowest) / spread
		}
		a.vector.Draw(screen, mathil.VectorSettings{
			Color:     mathil.Rainbow((1 - t) * 0.8),
			Thickness: mathil.Relative(cfg.VectorThickness),
			Samples:   cfg.VectorSamples,
			Style:     mathil.RoundAntiAliased(2),
		})
	}

	mathil.Logger().Debug("vectorfield: drawn", "points", len(points), "arrows", len(arrows))
	return screen
}
