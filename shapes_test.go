package mathil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPolygon(t *testing.T) {
	mustPanic(t, "NewPolygon(2 vertices)", func() { NewPolygon(Pt(0, 0), Pt(1, 1)) })

	p := NewPolygon(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	edges := p.Edges()
	if len(edges) != 4 {
		t.Fatalf("len(Edges()) = %d, want 4", len(edges))
	}
	vs := p.Vertices()
	for i, e := range edges {
		if e.Start() != vs[i] || e.End() != vs[(i+1)%len(vs)] {
			t.Errorf("edge %d = %v→%v, want %v→%v", i, e.Start(), e.End(), vs[i], vs[(i+1)%len(vs)])
		}
	}

	bl, tr := p.Bounds()
	if bl != Pt(0, 0) || tr != Pt(2, 2) {
		t.Errorf("Bounds() = %v, %v", bl, tr)
	}
}

func TestPolygonContains(t *testing.T) {
	// An L shape, so the notch is inside the bounds but outside the polygon.
	p := NewPolygon(Pt(0, 0), Pt(4, 0), Pt(4, 1), Pt(1, 1), Pt(1, 4), Pt(0, 4))
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0.5, 0.5), true},
		{Pt(3, 0.5), true},
		{Pt(0.5, 3), true},
		{Pt(3, 3), false},
		{Pt(-1, 0.5), false},
		{Pt(5, 5), false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDashedLine(t *testing.T) {
	mustPanic(t, "NewDashedLine(0)", func() { NewDashedLine(Pt(0, 0), Pt(1, 0), 0) })

	d := NewDashedLine(Pt(0, 0), Pt(5, 0), 3)
	dashes := d.Dashes()
	if len(dashes) != 3 {
		t.Fatalf("len(Dashes()) = %d, want 3", len(dashes))
	}
	want := [][2]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(2, 0), Pt(3, 0)},
		{Pt(4, 0), Pt(5, 0)},
	}
	for i, dash := range dashes {
		got := [2]Point{dash.Start(), dash.End()}
		if diff := cmp.Diff(want[i], got, approx); diff != "" {
			t.Errorf("dash %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestVector(t *testing.T) {
	v := NewVector(Pt(10, 0), Pt(0, 0), 2, 1)
	want := []Point{{10, 0}, {9, -1}, {9, 1}}
	if d := cmp.Diff(want, v.ArrowHead().Vertices(), approx); d != "" {
		t.Errorf("arrowhead mismatch (-want +got):\n%s", d)
	}
	shaft, ok := v.Shaft()
	if !ok {
		t.Fatal("Shaft() missing")
	}
	if d := cmp.Diff([2]Point{{9, 0}, {0, 0}}, [2]Point{shaft.Start(), shaft.End()}, approx); d != "" {
		t.Errorf("shaft mismatch (-want +got):\n%s", d)
	}
}

func TestVectorShorterThanArrowhead(t *testing.T) {
	v := NewVector(Pt(1, 0), Pt(0, 0), 1, 2)
	if _, ok := v.Shaft(); ok {
		t.Error("Shaft() present for a vector shorter than its arrowhead")
	}
	if n := len(v.ArrowHead().Vertices()); n != 3 {
		t.Errorf("arrowhead has %d vertices, want 3", n)
	}
}

func TestVectorZeroLength(t *testing.T) {
	mustPanic(t, "NewVector(zero)", func() { NewVector(Pt(1, 1), Pt(1, 1), 1, 1) })
}

func TestCartesianPlane(t *testing.T) {
	c := NewCartesianPlane(Pt(-2, -1), Pt(3, 4), Pt(0, 0), 0.2, 0.2)
	want := []Point{{0, 4}, {0, -1}, {-2, 0}, {3, 0}}
	for i, axis := range c.Axes() {
		if axis.Head != want[i] || axis.Tail != c.Origin {
			t.Errorf("axis %d = %v→%v, want %v→%v", i, axis.Tail, axis.Head, c.Origin, want[i])
		}
	}
}
