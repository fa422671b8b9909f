package mathil

import "fmt"

// Polygon is a closed shape described by its vertices.
// Edges join consecutive vertices and the last vertex back to the first.
type Polygon struct {
	vertices []Point
	edges    []Curve
}

// NewPolygon creates a polygon. It panics if fewer than three vertices are
// given. The vertex slice is copied.
func NewPolygon(vertices ...Point) Polygon {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("mathil: polygon needs at least 3 vertices, got %d", len(vertices)))
	}
	vs := make([]Point, len(vertices))
	copy(vs, vertices)

	edges := make([]Curve, len(vs))
	for i := range vs {
		edges[i] = LineSegment(vs[i], vs[(i+1)%len(vs)])
	}
	return Polygon{vertices: vs, edges: edges}
}

// Vertices returns a copy of the polygon's vertices.
func (p Polygon) Vertices() []Point {
	vs := make([]Point, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Edges returns the polygon's sides as line segments.
func (p Polygon) Edges() []Curve {
	es := make([]Curve, len(p.edges))
	copy(es, p.edges)
	return es
}

// Bounds returns the least axis-aligned rectangle containing every vertex.
func (p Polygon) Bounds() (bottomLeft, topRight Point) {
	bottomLeft, topRight = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		bottomLeft.X = min(bottomLeft.X, v.X)
		bottomLeft.Y = min(bottomLeft.Y, v.Y)
		topRight.X = max(topRight.X, v.X)
		topRight.Y = max(topRight.Y, v.Y)
	}
	return bottomLeft, topRight
}

// Contains reports whether pt lies inside the polygon using the even-odd
// (crossing parity) rule.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	vs := p.vertices
	j := len(vs) - 1
	for i := range vs {
		a, b := vs[j], vs[i]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DashedLine is a straight line drawn as evenly spaced dashes.
type DashedLine struct {
	Start, End Point
	dashes     []Curve
}

// NewDashedLine splits the segment from start to end into 2n-1 equal
// divisions and keeps every other one, beginning and ending with a dash.
// It panics if n < 1.
func NewDashedLine(start, end Point, n int) DashedLine {
	if n < 1 {
		panic(fmt.Sprintf("mathil: dashed line needs at least 1 dash, got %d", n))
	}
	divisions := 2*n - 1
	width := 1 / float64(divisions)

	dashes := make([]Curve, 0, n)
	for i := 0; i < divisions; i += 2 {
		dashes = append(dashes, LineSegment(
			Lerp(start, end, float64(i)*width),
			Lerp(start, end, float64(i+1)*width),
		))
	}
	return DashedLine{Start: start, End: end, dashes: dashes}
}

// Dashes returns the drawn sub-segments in order from start to end.
func (d DashedLine) Dashes() []Curve {
	ds := make([]Curve, len(d.dashes))
	copy(ds, d.dashes)
	return ds
}

// Vector is an arrow: a shaft from the tail plus a triangular arrowhead whose
// tip is the head.
type Vector struct {
	Head, Tail Point
	shaft      *Curve
	arrowHead  Polygon
}

// NewVector creates an arrow from tail to head. The arrowhead is arrowHeight
// long along the direction of travel and arrowWidth wide across it, measured
// in plane units. When the arrowhead is longer than the whole vector the
// shaft is omitted. NewVector panics if head equals tail.
func NewVector(head, tail Point, arrowWidth, arrowHeight float64) Vector {
	dir := head.Sub(tail)
	length := dir.Length()
	if length == 0 {
		panic(fmt.Sprintf("mathil: zero-length vector at %v", head))
	}

	along := arrowHeight / length
	across := (arrowWidth / 2) / length
	base := Lerp(head, tail, along)

	v := Vector{
		Head: head,
		Tail: tail,
		arrowHead: NewPolygon(
			base.Add(dir.Mul(along)),
			base.Add(dir.RotateCW().Mul(across)),
			base.Add(dir.RotateCCW().Mul(across)),
		),
	}
	if along <= 1 {
		shaft := LineSegment(base, tail)
		v.shaft = &shaft
	}
	return v
}

// Shaft returns the vector's line and whether it is drawn at all.
func (v Vector) Shaft() (Curve, bool) {
	if v.shaft == nil {
		return Curve{}, false
	}
	return *v.shaft, true
}

// ArrowHead returns the triangle at the head of the vector.
func (v Vector) ArrowHead() Polygon {
	return v.arrowHead
}

// CartesianPlane is a set of axes through an origin, one arrow from the
// origin to each edge of a bounding rectangle.
type CartesianPlane struct {
	Origin Point
	axes   [4]Vector
}

// NewCartesianPlane creates axes through origin reaching the edges of the
// rectangle (bottomLeft, topRight). The origin must lie strictly inside the
// rectangle or NewVector panics on the degenerate axis.
func NewCartesianPlane(bottomLeft, topRight, origin Point, arrowWidth, arrowHeight float64) CartesianPlane {
	return CartesianPlane{
		Origin: origin,
		axes: [4]Vector{
			NewVector(Pt(origin.X, topRight.Y), origin, arrowWidth, arrowHeight),
			NewVector(Pt(origin.X, bottomLeft.Y), origin, arrowWidth, arrowHeight),
			NewVector(Pt(bottomLeft.X, origin.Y), origin, arrowWidth, arrowHeight),
			NewVector(Pt(topRight.X, origin.Y), origin, arrowWidth, arrowHeight),
		},
	}
}

// Axes returns the four axis arrows: up, down, left, right.
func (c CartesianPlane) Axes() [4]Vector {
	return c.axes
}
