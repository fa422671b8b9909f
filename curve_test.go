package mathil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestCurveSample(t *testing.T) {
	c := LineSegment(Pt(0, 0), Pt(4, 8))
	tests := []struct {
		n    int
		want []Point
	}{
		{0, nil},
		{-1, nil},
		{1, []Point{{0, 0}}},
		{2, []Point{{0, 0}, {4, 8}}},
		{5, []Point{{0, 0}, {1, 2}, {2, 4}, {3, 6}, {4, 8}}},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, c.Sample(tt.n), approx); d != "" {
			t.Errorf("Sample(%d) mismatch (-want +got):\n%s", tt.n, d)
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	c := Circle(2, Pt(1, 1), 0, math.Pi)
	if d := cmp.Diff(Pt(3, 1), c.Start(), approx); d != "" {
		t.Errorf("Start() mismatch:\n%s", d)
	}
	if d := cmp.Diff(Pt(-1, 1), c.End(), approx); d != "" {
		t.Errorf("End() mismatch:\n%s", d)
	}
	samples := c.Sample(7)
	if d := cmp.Diff(c.End(), samples[len(samples)-1], approx); d != "" {
		t.Errorf("last sample is not End():\n%s", d)
	}
}

func TestEllipse(t *testing.T) {
	e := Ellipse(3, 1, Origin(), 0, 2*math.Pi)
	if d := cmp.Diff(Pt(0, 1), e.At(math.Pi/2), approx); d != "" {
		t.Errorf("At(π/2) mismatch:\n%s", d)
	}
}

func TestCurveFunc(t *testing.T) {
	parabola := NewCurveFunc(func(t float64) Point { return Pt(t, t*t) }, -1, 1)
	got := parabola.Sample(3)
	want := []Point{{-1, 1}, {0, 0}, {1, 1}}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("Sample(3) mismatch (-want +got):\n%s", d)
	}
}

func TestBezier(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		mid    Point
	}{
		{"single", []Point{{2, 3}}, Pt(2, 3)},
		{"linear", []Point{{0, 0}, {2, 2}}, Pt(1, 1)},
		{"quadratic", []Point{{0, 0}, {1, 2}, {2, 0}}, Pt(1, 1)},
		{"cubic", []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, Pt(0.5, 0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bezier(tt.points, 0, 1)
			if d := cmp.Diff(tt.points[0], b.Start(), approx); d != "" {
				t.Errorf("Start() mismatch:\n%s", d)
			}
			if d := cmp.Diff(tt.points[len(tt.points)-1], b.End(), approx); d != "" {
				t.Errorf("End() mismatch:\n%s", d)
			}
			if d := cmp.Diff(tt.mid, b.At(0.5), approx); d != "" {
				t.Errorf("At(0.5) mismatch:\n%s", d)
			}
		})
	}
}

func TestBezierCopiesPoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	b := Bezier(pts, 0, 1)
	pts[1] = Pt(5, 5)
	if got := b.End(); got != Pt(1, 1) {
		t.Errorf("End() = %v after mutating input, want (1, 1)", got)
	}
}

func TestBezierPanics(t *testing.T) {
	mustPanic(t, "Bezier(nil)", func() { Bezier(nil, 0, 1) })
	mustPanic(t, "Bezier(too many)", func() { Bezier(make([]Point, MaxBezierPoints+1), 0, 1) })
}

func TestRevealAndWithDomain(t *testing.T) {
	c := LineSegment(Pt(0, 0), Pt(10, 0))
	tests := []struct {
		fraction float64
		wantEnd  Point
	}{
		{0, Pt(0, 0)},
		{0.3, Pt(3, 0)},
		{1, Pt(10, 0)},
		{1.5, Pt(10, 0)},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.wantEnd, c.Reveal(tt.fraction).End(), approx); d != "" {
			t.Errorf("Reveal(%v).End() mismatch:\n%s", tt.fraction, d)
		}
	}

	w := c.WithDomain(0.5, 1)
	if d := cmp.Diff(Pt(5, 0), w.Start(), approx); d != "" {
		t.Errorf("WithDomain Start() mismatch:\n%s", d)
	}
	if c.T0 != 0 {
		t.Errorf("WithDomain modified the receiver: T0 = %v", c.T0)
	}
}
