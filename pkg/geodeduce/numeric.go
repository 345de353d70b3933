// Package geodeduce implements an automated Euclidean-geometry theorem
// prover's deduction engine: a hypergraph of geometric facts, union-find
// canonicalization of symbols, rule matching against numeric ground truth,
// breadth-first saturation to fixpoint, and backward proof extraction.
//
// The package does not parse problem text, materialize a diagram, or parse
// rule files; it consumes a populated symbol graph, goal statements, and a
// slice of already-parsed rules, and produces a proof and a run report.
package geodeduce

import "math"

// ATOM is the process-wide absolute tolerance used for point identity and
// other tight numeric comparisons. Predicate-level checks generally use a
// looser tolerance; see Config.PredicateTolerance.
const ATOM = 1e-12

// closeEnough reports whether a and b are equal within tol. Every numeric
// equality in this package goes through closeEnough or CloseEnough; direct
// == on floats is reserved for exact integer-derived coefficients.
func closeEnough(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// CloseEnough reports whether a and b are equal within ATOM. Exported for
// predicates that need the process tolerance outside this package.
func CloseEnough(a, b float64) bool {
	return closeEnough(a, b, ATOM)
}

// Coord is a numeric point in the plane: the ground truth a predicate's
// numeric check is weighed against.
type Coord struct {
	X, Y float64
}

// Add returns c+p.
func (c Coord) Add(p Coord) Coord { return Coord{c.X + p.X, c.Y + p.Y} }

// Sub returns c-p.
func (c Coord) Sub(p Coord) Coord { return Coord{c.X - p.X, c.Y - p.Y} }

// Scale returns c scaled by f.
func (c Coord) Scale(f float64) Coord { return Coord{c.X * f, c.Y * f} }

// Midpoint returns the midpoint of c and p.
func (c Coord) Midpoint(p Coord) Coord { return Coord{0.5 * (c.X + p.X), 0.5 * (c.Y + p.Y)} }

// Distance returns the Euclidean distance between c and p.
func (c Coord) Distance(p Coord) float64 {
	dx, dy := c.X-p.X, c.Y-p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Dot returns the dot product of c and p treated as vectors.
func (c Coord) Dot(p Coord) float64 { return c.X*p.X + c.Y*p.Y }

// Norm returns the Euclidean norm of c treated as a vector.
func (c Coord) Norm() float64 { return math.Sqrt(c.X*c.X + c.Y*c.Y) }

// Rotate rotates c about the origin by the angle whose sine and cosine are
// given.
func (c Coord) Rotate(sin, cos float64) Coord {
	return Coord{c.X*cos - c.Y*sin, c.X*sin + c.Y*cos}
}

// Close reports whether c and p are the same point within ATOM.
func (c Coord) Close(p Coord) bool {
	return CloseEnough(c.X, p.X) && CloseEnough(c.Y, p.Y)
}

// LineCoef is a canonicalized numeric line a*x + b*y + c = 0, with a > 0,
// or a == 0 and b < 0.
type LineCoef struct {
	A, B, C float64
}

// NewLineThrough builds the canonicalized line through p1 and p2. Fails
// (ok=false) if p1 and p2 coincide, since no direction is determined.
func NewLineThrough(p1, p2 Coord) (LineCoef, bool) {
	if p1.Close(p2) {
		return LineCoef{}, false
	}
	a := p1.Y - p2.Y
	b := p2.X - p1.X
	c := p1.X*p2.Y - p2.X*p1.Y
	return canonicalLine(a, b, c), true
}

// canonicalLine applies the sign convention: a > 0, or a == 0 and b < 0.
func canonicalLine(a, b, c float64) LineCoef {
	if a < 0.0 || (a == 0.0 && b > 0.0) {
		a, b, c = -a, -b, -c
	}
	return LineCoef{a, b, c}
}

// Eval returns a*x + b*y + c for the given point; its sign indicates which
// side of the line the point falls on.
func (l LineCoef) Eval(p Coord) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Distance returns the perpendicular distance from p to l.
func (l LineCoef) Distance(p Coord) float64 {
	return math.Abs(l.Eval(p)) / math.Sqrt(l.A*l.A+l.B*l.B)
}

// IsParallel reports whether l and o point in the same (or opposite)
// direction within ATOM.
func (l LineCoef) IsParallel(o LineCoef) bool {
	return math.Abs(l.A*o.B-l.B*o.A) < ATOM
}

// IsPerp reports whether l and o are perpendicular within ATOM.
func (l LineCoef) IsPerp(o LineCoef) bool {
	return math.Abs(l.A*o.A+l.B*o.B) < ATOM
}

// IsSame reports whether l and o represent the same line within ATOM.
func (l LineCoef) IsSame(o LineCoef) bool {
	return math.Abs(l.A*o.B-l.B*o.A) <= ATOM && math.Abs(l.B*o.C-l.C*o.B) <= ATOM &&
		math.Abs(l.A*o.C-l.C*o.A) <= ATOM
}

// ParallelThrough returns the line parallel to l passing through p.
func (l LineCoef) ParallelThrough(p Coord) LineCoef {
	return canonicalLine(l.A, l.B, -l.A*p.X-l.B*p.Y)
}

// PerpThrough returns the line perpendicular to l passing through p.
func (l LineCoef) PerpThrough(p Coord) LineCoef {
	return canonicalLine(l.A, l.B, 0).perpThroughDirect(p)
}

// perpThroughDirect builds the perpendicular line through p using l's
// direction vector (a, b) rotated a quarter turn, i.e. through p and
// p+(a,b).
func (l LineCoef) perpThroughDirect(p Coord) LineCoef {
	q := Coord{p.X + l.A, p.Y + l.B}
	coef, ok := NewLineThrough(p, q)
	if !ok {
		return l
	}
	return coef
}

// CircleCoef is a numeric circle given by its center and squared radius.
type CircleCoef struct {
	Center Coord
	R2     float64
}

// Radius returns sqrt(R2).
func (c CircleCoef) Radius() float64 { return math.Sqrt(c.R2) }

// NewCircleThrough builds the circle through three non-collinear points.
// Fails if the points are collinear (no unique circumcircle).
func NewCircleThrough(p1, p2, p3 Coord) (CircleCoef, bool) {
	l12, ok1 := perpendicularBisector(p1, p2)
	l23, ok2 := perpendicularBisector(p2, p3)
	if !ok1 || !ok2 {
		return CircleCoef{}, false
	}
	center, ok := LineLineIntersection(l12, l23)
	if !ok {
		return CircleCoef{}, false
	}
	r2 := center.Sub(p1).Dot(center.Sub(p1))
	return CircleCoef{Center: center, R2: r2}, true
}

func perpendicularBisector(p1, p2 Coord) (LineCoef, bool) {
	mid := p1.Midpoint(p2)
	dir := Coord{p2.Y - p1.Y, p1.X - p2.X}
	return NewLineThrough(mid, mid.Add(dir))
}

// LineLineIntersection returns the intersection point of two lines, or
// ok=false if the lines are parallel (determinant below ATOM).
func LineLineIntersection(l1, l2 LineCoef) (Coord, bool) {
	d := l1.A*l2.B - l2.A*l1.B
	if math.Abs(d) < ATOM {
		return Coord{}, false
	}
	return Coord{
		X: (l2.C*l1.B - l1.C*l2.B) / d,
		Y: (l1.C*l2.A - l2.C*l1.A) / d,
	}, true
}

// solveQuad solves a*x^2 + b*x + c = 0 for real roots, returning ok=false
// if the discriminant is negative.
func solveQuad(a, b, c float64) (float64, float64, bool) {
	a2 := 2 * a
	d := b*b - 2*a2*c
	if d < 0 {
		return 0, 0, false
	}
	y := math.Sqrt(d)
	return (-b - y) / a2, (-b + y) / a2, true
}

// LineCircleIntersection returns the (up to two) intersection points of a
// line and a circle, or ok=false if the line misses the circle.
func LineCircleIntersection(l LineCoef, c CircleCoef) (Coord, Coord, bool) {
	a, b, cc := l.A, l.B, l.C
	p, q := c.Center.X, c.Center.Y
	r2 := c.R2

	switch {
	case b == 0:
		x := -cc / a
		xp := x - p
		y1, y2, ok := solveQuad(1, -2*q, q*q+xp*xp-r2)
		if !ok {
			return Coord{}, Coord{}, false
		}
		return Coord{x, y1}, Coord{x, y2}, true
	case a == 0:
		y := -cc / b
		yq := y - q
		x1, x2, ok := solveQuad(1, -2*p, p*p+yq*yq-r2)
		if !ok {
			return Coord{}, Coord{}, false
		}
		return Coord{x1, y}, Coord{x2, y}, true
	default:
		cap_ := cc + a*p
		a2 := a * a
		y1, y2, ok := solveQuad(a2+b*b, 2*(b*cap_-a2*q), cap_*cap_+a2*(q*q-r2))
		if !ok {
			return Coord{}, Coord{}, false
		}
		return Coord{-(b*y1 + cc) / a, y1}, Coord{-(b*y2 + cc) / a, y2}, true
	}
}

// CircleCircleIntersection returns the (up to two) intersection points of
// two circles, or ok=false if they are concentric or do not meet.
func CircleCircleIntersection(c1, c2 CircleCoef) (Coord, Coord, bool) {
	x0, y0, r0 := c1.Center.X, c1.Center.Y, c1.Radius()
	x1, y1, r1 := c2.Center.X, c2.Center.Y, c2.Radius()

	d := math.Sqrt((x1-x0)*(x1-x0) + (y1-y0)*(y1-y0))
	if d == 0 {
		return Coord{}, Coord{}, false
	}

	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	if h2 < 0 {
		return Coord{}, Coord{}, false
	}
	h := math.Sqrt(h2)
	x2 := x0 + a*(x1-x0)/d
	y2 := y0 + a*(y1-y0)/d
	x3 := x2 + h*(y1-y0)/d
	y3 := y2 - h*(x1-x0)/d
	x4 := x2 - h*(y1-y0)/d
	y4 := y2 + h*(x1-x0)/d

	return Coord{x3, y3}, Coord{x4, y4}, true
}
