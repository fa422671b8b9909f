package mathil

import (
	"fmt"
	"math"
)

// MaxBezierPoints bounds the number of control points accepted by Bezier.
// Evaluation is quadratic in the point count.
const MaxBezierPoints = 1024

// Rule maps a curve parameter to a point in the plane.
// A rule must be defined and finite for every parameter in its curve's domain.
type Rule interface {
	At(t float64) Point
}

// RuleFunc adapts an ordinary function to a Rule.
type RuleFunc func(t float64) Point

// At calls f(t).
func (f RuleFunc) At(t float64) Point {
	return f(t)
}

// lineRule interpolates linearly from A to B.
type lineRule struct {
	A, B Point
}

func (r lineRule) At(t float64) Point {
	return Lerp(r.A, r.B, t)
}

// ellipseRule traces an axis-aligned ellipse, t in radians.
type ellipseRule struct {
	RX, RY float64
	Centre Point
}

func (r ellipseRule) At(t float64) Point {
	return Point{
		X: r.RX*math.Cos(t) + r.Centre.X,
		Y: r.RY*math.Sin(t) + r.Centre.Y,
	}
}

// bezierRule evaluates a Bézier curve of arbitrary degree by de Casteljau's
// algorithm, reducing a scratch copy of the control points in place.
type bezierRule struct {
	Points []Point
}

func (r bezierRule) At(t float64) Point {
	work := make([]Point, len(r.Points))
	copy(work, r.Points)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Lerp(work[i], work[i+1], t)
		}
	}
	return work[0]
}

// Curve is a parametric curve: a rule evaluated over the closed domain [T0, T1].
type Curve struct {
	Rule   Rule
	T0, T1 float64
}

// NewCurve creates a curve from a rule and a domain.
func NewCurve(rule Rule, t0, t1 float64) Curve {
	return Curve{Rule: rule, T0: t0, T1: t1}
}

// NewCurveFunc creates a curve from a plain function and a domain.
func NewCurveFunc(fn func(t float64) Point, t0, t1 float64) Curve {
	return Curve{Rule: RuleFunc(fn), T0: t0, T1: t1}
}

// LineSegment creates the segment from a to b over the domain [0, 1].
func LineSegment(a, b Point) Curve {
	return Curve{Rule: lineRule{A: a, B: b}, T0: 0, T1: 1}
}

// Ellipse creates an axis-aligned ellipse with radii rx, ry about centre.
// The domain is an angle range in radians; [0, 2π] traces the full ellipse.
func Ellipse(rx, ry float64, centre Point, t0, t1 float64) Curve {
	return Curve{Rule: ellipseRule{RX: rx, RY: ry, Centre: centre}, T0: t0, T1: t1}
}

// Circle creates a circle of radius r about centre.
func Circle(r float64, centre Point, t0, t1 float64) Curve {
	return Ellipse(r, r, centre, t0, t1)
}

// Bezier creates a Bézier curve whose degree is len(points)-1.
// The control points are copied. Bezier panics if points is empty or longer
// than MaxBezierPoints.
func Bezier(points []Point, t0, t1 float64) Curve {
	if len(points) == 0 {
		panic("mathil: Bezier requires at least one control point")
	}
	if len(points) > MaxBezierPoints {
		panic(fmt.Sprintf("mathil: Bezier with %d control points exceeds limit of %d", len(points), MaxBezierPoints))
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return Curve{Rule: bezierRule{Points: cp}, T0: t0, T1: t1}
}

// At evaluates the curve's rule at t.
func (c Curve) At(t float64) Point {
	return c.Rule.At(t)
}

// Start returns the point at the lower end of the domain.
func (c Curve) Start() Point {
	return c.Rule.At(c.T0)
}

// End returns the point at the upper end of the domain.
func (c Curve) End() Point {
	return c.Rule.At(c.T1)
}

// WithDomain returns a copy of the curve over [t0, t1].
func (c Curve) WithDomain(t0, t1 float64) Curve {
	c.T0, c.T1 = t0, t1
	return c
}

// Reveal returns a copy of the curve truncated to the first fraction of its
// domain. Reveal(0) collapses the domain onto T0 and Reveal(1) is the whole
// curve; fraction is clamped to [0, 1].
func (c Curve) Reveal(fraction float64) Curve {
	fraction = math.Max(0, math.Min(1, fraction))
	c.T1 = lerp(c.T0, c.T1, fraction)
	return c
}

// Sample evaluates the curve at n evenly spaced parameters covering the whole
// domain, both ends included. Sample(1) returns the start point only and
// n <= 0 returns nil.
func (c Curve) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{c.Start()}
	}
	samples := make([]Point, n)
	last := float64(n - 1)
	for i := range n {
		samples[i] = c.Rule.At(lerp(c.T0, c.T1, float64(i)/last))
	}
	return samples
}
