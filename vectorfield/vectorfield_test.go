package vectorfield

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mathil/mathil"
)

func TestGrid(t *testing.T) {
	got := Grid(mathil.Pt(0, 0), mathil.Pt(2, 1), 3, 2)
	want := mathil.Pts(
		[2]float64{0, 0}, [2]float64{0, 1},
		[2]float64{1, 0}, [2]float64{1, 1},
		[2]float64{2, 0}, [2]float64{2, 1},
	)
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("Grid() mismatch (-want +got):\n%s", d)
	}
}

func TestGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Grid(1 column) did not panic")
		}
	}()
	Grid(mathil.Pt(0, 0), mathil.Pt(1, 1), 1, 5)
}

func TestBounds(t *testing.T) {
	bl, tr := Bounds(mathil.Pts([2]float64{1, -2}, [2]float64{-3, 4}, [2]float64{0, 0}))
	if bl != mathil.Pt(-3, -2) || tr != mathil.Pt(1, 4) {
		t.Errorf("Bounds() = %v, %v", bl, tr)
	}
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 120
	cfg.VectorSamples = 50
	cfg.AxisSamples = 200
	cfg.VectorThickness = 0.1
	cfg.AxisThickness = 0.1
	return cfg
}

func TestDrawDimensions(t *testing.T) {
	points := Grid(mathil.Pt(-2, -1), mathil.Pt(2, 1), 5, 3)
	s := Draw(smallConfig(), points, func(p mathil.Point) mathil.Point { return p })

	// The plotted region is 6 by 4 units once the margin is added.
	if s.Width() != 120 || s.Height() != 80 {
		t.Errorf("screen = %dx%d, want 120x80", s.Width(), s.Height())
	}
	if s.BottomLeft() != mathil.Pt(-3, -2) || s.TopRight() != mathil.Pt(3, 2) {
		t.Errorf("bounds = %v %v", s.BottomLeft(), s.TopRight())
	}
}

func TestDrawAxes(t *testing.T) {
	cfg := smallConfig()
	zero := func(mathil.Point) mathil.Point { return mathil.Origin() }

	around := Draw(cfg, Grid(mathil.Pt(-2, -2), mathil.Pt(2, 2), 3, 3), zero)
	c := around.ToPixel(mathil.Pt(1, 0))
	if got := around.At(c.X, c.Y); got != cfg.Axis {
		t.Errorf("axis pixel = %v, want %v", got, cfg.Axis)
	}

	away := Draw(cfg, Grid(mathil.Pt(1, 1), mathil.Pt(3, 3), 3, 3), zero)
	blank := mathil.NewScreen(away.Width(), away.Height(), away.BottomLeft(), away.TopRight(), cfg.Background)
	if !away.Equal(blank) {
		t.Error("zero field away from the origin drew something")
	}
}

func TestDrawColoursByMagnitude(t *testing.T) {
	cfg := smallConfig()
	points := mathil.Pts([2]float64{1, 1}, [2]float64{3, 1})
	// The right arrow is nine times stronger.
	field := func(p mathil.Point) mathil.Point { return mathil.Pt(0, p.X*p.X) }
	s := Draw(cfg, points, field)

	strongest := mathil.Rainbow(0)
	weakest := mathil.Rainbow(0.8)
	tip := func(p mathil.Point) mathil.Color {
		c := s.ToPixel(p.Add(mathil.Pt(0, cfg.VectorLength-0.15)))
		return s.At(c.X, c.Y)
	}
	if got := tip(points[0]); got != weakest {
		t.Errorf("weak arrowhead = %v, want %v", got, weakest)
	}
	if got := tip(points[1]); got != strongest {
		t.Errorf("strong arrowhead = %v, want %v", got, strongest)
	}
}
