package mathil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPointAlgebra(t *testing.T) {
	p, q := Pt(3, -4), Pt(1, 2)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, -2)},
		{"Sub", p.Sub(q), Pt(2, -6)},
		{"Neg", p.Neg(), Pt(-3, 4)},
		{"NegateX", p.NegateX(), Pt(-3, -4)},
		{"NegateY", p.NegateY(), Pt(3, 4)},
		{"Mul", p.Mul(2), Pt(6, -8)},
		{"Scale", p.Scale(q), Pt(3, -8)},
		{"RotateCW", Pt(1, 0).RotateCW(), Pt(0, -1)},
		{"RotateCCW", Pt(1, 0).RotateCCW(), Pt(0, 1)},
		{"Origin", Origin(), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPointLength(t *testing.T) {
	if got := Pt(3, -4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(2, 1).Gradient(); got != 0.5 {
		t.Errorf("Gradient() = %v, want 0.5", got)
	}
	if got := Pt(2, 1).NormalGradient(); got != -2 {
		t.Errorf("NormalGradient() = %v, want -2", got)
	}
	if got := Pt(0, 1).Gradient(); !math.IsInf(got, 1) {
		t.Errorf("vertical Gradient() = %v, want +Inf", got)
	}
}

func TestPts(t *testing.T) {
	got := Pts([2]float64{0, 1}, [2]float64{2, 3})
	want := []Point{{0, 1}, {2, 3}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Pts() mismatch (-want +got):\n%s", d)
	}
}

func TestLerp(t *testing.T) {
	a, b := Pt(0, 10), Pt(10, 0)
	tests := []struct {
		t    float64
		want Point
	}{
		{0, a},
		{1, b},
		{0.25, Pt(2.5, 7.5)},
		{2, Pt(20, -10)},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, Lerp(a, b, tt.t), approx); d != "" {
			t.Errorf("Lerp(%v) mismatch (-want +got):\n%s", tt.t, d)
		}
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String() = %q, want %q", got, "(1.5, -2)")
	}
}
