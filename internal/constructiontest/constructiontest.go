// Package constructiontest builds pre-populated symbol graphs for
// concrete geometric configurations, standing in for the out-of-scope
// construction front-end so the deduction engine's package tests can
// exercise realistic diagrams without a problem-text parser.
package constructiontest

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/geodeduce/pkg/geodeduce"
)

// Triangle creates three non-collinear points named a, b, c at fixed,
// scalene coordinates (so no accidental symmetry hides a bug).
func Triangle(g *geodeduce.SymbolGraph) (a, b, c *geodeduce.Point, err error) {
	a, err = g.CreatePoint("a", geodeduce.Coord{X: 0, Y: 0}, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err = g.CreatePoint("b", geodeduce.Coord{X: 4, Y: 0}, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err = g.CreatePoint("c", geodeduce.Coord{X: 1, Y: 3}, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// Orthocenter constructs the orthocenter of triangle abc as the
// intersection of the altitude from b (perpendicular to ac) and the
// altitude from c (perpendicular to ab), then records both
// perpendicularity facts as CONSTRUCTION dependencies.
func Orthocenter(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	lineAC, ok := geodeduce.NewLineThrough(a.Coord, c.Coord)
	if !ok {
		return nil, fmt.Errorf("constructiontest: degenerate ac")
	}
	lineAB, ok := geodeduce.NewLineThrough(a.Coord, b.Coord)
	if !ok {
		return nil, fmt.Errorf("constructiontest: degenerate ab")
	}
	altB := lineAC.PerpThrough(b.Coord)
	altC := lineAB.PerpThrough(c.Coord)
	coord, ok := geodeduce.LineLineIntersection(altB, altC)
	if !ok {
		return nil, fmt.Errorf("constructiontest: altitudes parallel, no orthocenter")
	}
	d, err := g.CreatePoint(name, coord, nil)
	if err != nil {
		return nil, err
	}
	recordPerp(g, dg, b, d, a, c)
	recordPerp(g, dg, c, d, a, b)
	return d, nil
}

// recordPerp parses and adds perp(p1,p2,p3,p4) as a CONSTRUCTION fact,
// standing in for what a real construction front-end's definition rules
// would emit for a perpendicular-through construction.
func recordPerp(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, p1, p2, p3, p4 *geodeduce.Point) {
	stmt, err := geodeduce.Perpendicular{}.Parse(
		[]string{p1.Name_, p2.Name_, p3.Name_, p4.Name_}, g)
	if err != nil {
		return
	}
	dep := geodeduce.NewDependency(stmt, geodeduce.ReasonConstruction, nil)
	geodeduce.Perpendicular{}.Add(dep, dg)
}

// recordColl is recordPerp's counterpart for a point-on-line
// construction's collinearity clause, used by auxiliary-point scenarios.
func recordColl(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, pts ...*geodeduce.Point) {
	tokens := make([]string, len(pts))
	for i, p := range pts {
		tokens[i] = p.Name_
	}
	stmt, err := geodeduce.Collinear{}.Parse(tokens, g)
	if err != nil {
		return
	}
	dep := geodeduce.NewDependency(stmt, geodeduce.ReasonConstruction, nil)
	geodeduce.Collinear{}.Add(dep, dg)
}

// OrthocenterAuxiliary extends Orthocenter with the auxiliary point e,
// the intersection of line ac and line bd, recording both collinearity
// clauses as CONSTRUCTION facts.
func OrthocenterAuxiliary(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, a, b, c, d *geodeduce.Point) (*geodeduce.Point, error) {
	lineAC, ok := geodeduce.NewLineThrough(a.Coord, c.Coord)
	if !ok {
		return nil, fmt.Errorf("constructiontest: degenerate ac")
	}
	lineBD, ok := geodeduce.NewLineThrough(b.Coord, d.Coord)
	if !ok {
		return nil, fmt.Errorf("constructiontest: degenerate bd")
	}
	coord, ok := geodeduce.LineLineIntersection(lineAC, lineBD)
	if !ok {
		return nil, fmt.Errorf("constructiontest: ac and bd do not meet")
	}
	e, err := g.CreatePoint("e", coord, nil)
	if err != nil {
		return nil, err
	}
	recordColl(g, dg, a, c, e)
	recordColl(g, dg, b, d, e)
	return e, nil
}

// recordCong records cong(p1,p2,p3,p4) as a CONSTRUCTION fact.
func recordCong(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, p1, p2, p3, p4 *geodeduce.Point) {
	stmt, err := geodeduce.Congruent{}.Parse(
		[]string{p1.Name_, p2.Name_, p3.Name_, p4.Name_}, g)
	if err != nil {
		return
	}
	dep := geodeduce.NewDependency(stmt, geodeduce.ReasonConstruction, nil)
	geodeduce.Congruent{}.Add(dep, dg)
}

// recordMidp records midp(m,a,b) as a CONSTRUCTION fact.
func recordMidp(g *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, m, a, b *geodeduce.Point) {
	stmt, err := geodeduce.Midpoint{}.Parse([]string{m.Name_, a.Name_, b.Name_}, g)
	if err != nil {
		return
	}
	dep := geodeduce.NewDependency(stmt, geodeduce.ReasonConstruction, nil)
	geodeduce.Midpoint{}.Add(dep, dg)
}

// CentroidWithMedian constructs the centroid g of triangle abc together
// with m, the midpoint of bc, recording midp(m,b,c) and coll(a,g,m) as
// CONSTRUCTION facts — the clauses a construction front-end's centroid
// definition rule emits.
func CentroidWithMedian(sg *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, a, b, c *geodeduce.Point, centroidName, midName string) (*geodeduce.Point, *geodeduce.Point, error) {
	mid, err := sg.CreatePoint(midName, b.Coord.Midpoint(c.Coord), nil)
	if err != nil {
		return nil, nil, err
	}
	x := (a.Coord.X + b.Coord.X + c.Coord.X) / 3
	y := (a.Coord.Y + b.Coord.Y + c.Coord.Y) / 3
	cen, err := sg.CreatePoint(centroidName, geodeduce.Coord{X: x, Y: y}, nil)
	if err != nil {
		return nil, nil, err
	}
	recordMidp(sg, dg, mid, b, c)
	recordColl(sg, dg, a, cen, mid)
	return cen, mid, nil
}

// CircumcenterWithCongs constructs the circumcenter o of triangle abc,
// recording cong(o,a,o,b) and cong(o,b,o,c) as CONSTRUCTION facts.
func CircumcenterWithCongs(sg *geodeduce.SymbolGraph, dg *geodeduce.DependencyGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	o, err := Circumcenter(sg, a, b, c, name)
	if err != nil {
		return nil, err
	}
	recordCong(sg, dg, o, a, o, b)
	recordCong(sg, dg, o, b, o, c)
	return o, nil
}

// Incenter constructs the incenter d of triangle abc numerically as the
// weighted average of vertices by opposite side length.
func Incenter(g *geodeduce.SymbolGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	sideA := b.Coord.Distance(c.Coord)
	sideB := a.Coord.Distance(c.Coord)
	sideC := a.Coord.Distance(b.Coord)
	perimeter := sideA + sideB + sideC
	x := (sideA*a.Coord.X + sideB*b.Coord.X + sideC*c.Coord.X) / perimeter
	y := (sideA*a.Coord.Y + sideB*b.Coord.Y + sideC*c.Coord.Y) / perimeter
	return g.CreatePoint(name, geodeduce.Coord{X: x, Y: y}, nil)
}

// Excenter constructs the excenter opposite a of triangle abc, the
// weighted average with vertex a's weight negated.
func Excenter(g *geodeduce.SymbolGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	sideA := b.Coord.Distance(c.Coord)
	sideB := a.Coord.Distance(c.Coord)
	sideC := a.Coord.Distance(b.Coord)
	denom := -sideA + sideB + sideC
	x := (-sideA*a.Coord.X + sideB*b.Coord.X + sideC*c.Coord.X) / denom
	y := (-sideA*a.Coord.Y + sideB*b.Coord.Y + sideC*c.Coord.Y) / denom
	return g.CreatePoint(name, geodeduce.Coord{X: x, Y: y}, nil)
}

// Centroid constructs the centroid of triangle abc.
func Centroid(g *geodeduce.SymbolGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	x := (a.Coord.X + b.Coord.X + c.Coord.X) / 3
	y := (a.Coord.Y + b.Coord.Y + c.Coord.Y) / 3
	return g.CreatePoint(name, geodeduce.Coord{X: x, Y: y}, nil)
}

// Circumcenter constructs the circumcenter of triangle abc.
func Circumcenter(g *geodeduce.SymbolGraph, a, b, c *geodeduce.Point, name string) (*geodeduce.Point, error) {
	circ, ok := geodeduce.NewCircleThrough(a.Coord, b.Coord, c.Coord)
	if !ok {
		return nil, fmt.Errorf("constructiontest: triangle is degenerate, no circumcircle")
	}
	return g.CreatePoint(name, circ.Center, nil)
}

// DegenerateRightTriangle attempts, up to retryBudget times, to place a
// random triangle abc satisfying perp(a,b,a,c) — a right angle at a —
// and fails with an error once the budget is exhausted. Each attempt
// samples a, b and c uniformly from three separate unit squares, which
// puts the angle at a near a right angle but hits one within tolerance
// only with vanishing probability, so in practice the construction
// always fails.
func DegenerateRightTriangle(g *geodeduce.SymbolGraph, retryBudget int, rng *rand.Rand) (a, b, c *geodeduce.Point, err error) {
	for attempt := 0; attempt < retryBudget; attempt++ {
		ax, ay := rng.Float64(), rng.Float64()
		bx, by := rng.Float64()+2, rng.Float64()
		cx, cy := rng.Float64(), rng.Float64()+2
		ba := geodeduce.Coord{X: ax - bx, Y: ay - by}
		ca := geodeduce.Coord{X: ax - cx, Y: ay - cy}
		if geodeduce.CloseEnough(ba.Dot(ca), 0) {
			a, err = g.CreatePoint("a", geodeduce.Coord{X: ax, Y: ay}, nil)
			if err != nil {
				return nil, nil, nil, err
			}
			b, err = g.CreatePoint("b", geodeduce.Coord{X: bx, Y: by}, nil)
			if err != nil {
				return nil, nil, nil, err
			}
			c, err = g.CreatePoint("c", geodeduce.Coord{X: cx, Y: cy}, nil)
			if err != nil {
				return nil, nil, nil, err
			}
			return a, b, c, nil
		}
	}
	return nil, nil, nil, fmt.Errorf("constructiontest: exhausted %d attempts without satisfying perp(a,b,a,c)", retryBudget)
}
