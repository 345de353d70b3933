package geodeduce

import (
	"fmt"
	"sort"
)

// SymbolGraph owns every Point, Line, and Circle node created during a
// run, indexed by name and by type.
type SymbolGraph struct {
	points  map[string]*Point
	lines   map[string]*Line
	circles map[string]*Circle

	lineSeq   int
	circleSeq int
}

// NewSymbolGraph returns an empty symbol graph.
func NewSymbolGraph() *SymbolGraph {
	return &SymbolGraph{
		points:  make(map[string]*Point),
		lines:   make(map[string]*Line),
		circles: make(map[string]*Circle),
	}
}

// CreatePoint creates and registers a new point. It is an error to create
// a point whose name already exists (points are created once, during
// construction, and never merged.
func (g *SymbolGraph) CreatePoint(name string, coord Coord, dep *Dependency) (*Point, error) {
	if _, exists := g.points[name]; exists {
		return nil, fmt.Errorf("geodeduce: point %q already present", name)
	}
	p := &Point{Name_: name, Coord: coord, Dep: dep}
	g.points[name] = p
	return p, nil
}

// Point looks up a point by name.
func (g *SymbolGraph) Point(name string) (*Point, bool) {
	p, ok := g.points[name]
	return p, ok
}

// Points returns every point, sorted by name so iteration is
// deterministic wherever the order is observable.
func (g *SymbolGraph) Points() []*Point {
	out := make([]*Point, 0, len(g.points))
	for _, p := range g.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name_ < out[j].Name_ })
	return out
}

// Lines returns every line symbol (not yet deduplicated by union-find
// representative), sorted by name.
func (g *SymbolGraph) Lines() []*Line {
	out := make([]*Line, 0, len(g.lines))
	for _, l := range g.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name_ < out[j].Name_ })
	return out
}

// Circles returns every circle symbol, sorted by name.
func (g *SymbolGraph) Circles() []*Circle {
	out := make([]*Circle, 0, len(g.circles))
	for _, c := range g.circles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name_ < out[j].Name_ })
	return out
}

func pointSet(points []*Point) map[string]*Point {
	s := make(map[string]*Point, len(points))
	for _, p := range points {
		s[p.Name_] = p
	}
	return s
}

func isSubset(small, big map[string]*Point) bool {
	for k := range small {
		if _, ok := big[k]; !ok {
			return false
		}
	}
	return true
}

func unionInto(dst, src map[string]*Point) {
	for k, v := range src {
		dst[k] = v
	}
}

// LineThrough returns the (representative of the) line whose point set
// already contains p1 and p2, creating a fresh one if none exists.
func (g *SymbolGraph) LineThrough(p1, p2 *Point) *Line {
	want := pointSet([]*Point{p1, p2})
	for _, l := range g.Lines() {
		r := l.Rep()
		if isSubset(want, r.Points) {
			return r
		}
	}
	coef, ok := NewLineThrough(p1.Coord, p2.Coord)
	if !ok {
		coef = LineCoef{}
	}
	g.lineSeq++
	name := fmt.Sprintf("line/%s%s/%d", p1.Name_, p2.Name_, g.lineSeq)
	l := &Line{Name_: name, Points: want, Coef: coef}
	g.lines[name] = l
	return l
}

// CircleThrough returns the (representative of the) circle whose point
// set already contains p1, p2, p3, creating a fresh one if none exists.
func (g *SymbolGraph) CircleThrough(p1, p2, p3 *Point) *Circle {
	want := pointSet([]*Point{p1, p2, p3})
	for _, c := range g.Circles() {
		r := c.Rep()
		if isSubset(want, r.Points) {
			return r
		}
	}
	coef, _ := NewCircleThrough(p1.Coord, p2.Coord, p3.Coord)
	g.circleSeq++
	name := fmt.Sprintf("circle(%s%s%s)/%d", p1.Name_, p2.Name_, p3.Name_, g.circleSeq)
	c := &Circle{Name_: name, Points: want, Coef: coef}
	g.circles[name] = c
	return c
}

// CheckCollinear reports whether some existing line's point set already
// covers all of points.
func (g *SymbolGraph) CheckCollinear(points []*Point) bool {
	want := pointSet(points)
	for _, l := range g.Lines() {
		if isSubset(want, l.Rep().Points) {
			return true
		}
	}
	return false
}

// CheckCyclic reports whether some existing circle's point set already
// covers all of points.
func (g *SymbolGraph) CheckCyclic(points []*Point) bool {
	want := pointSet(points)
	for _, c := range g.Circles() {
		if isSubset(want, c.Rep().Points) {
			return true
		}
	}
	return false
}

// AddCollinear folds points into a line symbol, merging any existing
// lines that already share 2 or more of the points. Returns the
// resulting line and the lines merged into it.
func (g *SymbolGraph) AddCollinear(points []*Point, dep *Dependency) (*Line, []*Line) {
	s := pointSet(points)
	for _, l := range g.Lines() {
		r := l.Rep()
		if isSubset(s, r.Points) {
			return r, nil
		}
	}
	var merged []*Line
	for _, l := range g.Lines() {
		r := l.Rep()
		overlap := 0
		for k := range s {
			if _, ok := r.Points[k]; ok {
				overlap++
			}
		}
		if overlap >= 2 {
			merged = append(merged, r)
			unionInto(s, r.Points)
		}
	}
	g.lineSeq++
	names := make([]string, 0, len(points))
	for _, p := range points {
		names = append(names, p.Name_)
	}
	name := fmt.Sprintf("line/%s/%d", joinNames(names), g.lineSeq)
	l := &Line{Name_: name, Points: s, Dep: dep}
	if len(points) >= 2 {
		if coef, ok := NewLineThrough(points[0].Coord, points[1].Coord); ok {
			l.Coef = coef
		}
	}
	g.lines[name] = l
	for _, m := range merged {
		l.absorb(m)
	}
	return l, merged
}

// AddCyclic folds points into a circle symbol, merging any existing
// circles sharing 3 or more of the points.
func (g *SymbolGraph) AddCyclic(points []*Point, dep *Dependency) (*Circle, []*Circle) {
	s := pointSet(points)
	for _, c := range g.Circles() {
		r := c.Rep()
		if isSubset(s, r.Points) {
			return r, nil
		}
	}
	var merged []*Circle
	for _, c := range g.Circles() {
		r := c.Rep()
		overlap := 0
		for k := range s {
			if _, ok := r.Points[k]; ok {
				overlap++
			}
		}
		if overlap >= 3 {
			merged = append(merged, r)
			unionInto(s, r.Points)
		}
	}
	g.circleSeq++
	names := make([]string, 0, len(points))
	for _, p := range points {
		names = append(names, p.Name_)
	}
	name := fmt.Sprintf("circle(%s)/%d", joinNames(names), g.circleSeq)
	c := &Circle{Name_: name, Points: s, Dep: dep}
	if len(points) >= 3 {
		if coef, ok := NewCircleThrough(points[0].Coord, points[1].Coord, points[2].Coord); ok {
			c.Coef = coef
		}
	}
	g.circles[name] = c
	for _, m := range merged {
		c.absorb(m)
	}
	return c, merged
}

// WitnessLine reconstructs the minimal dependency justifying the
// collinearity of points: the smallest-point-set line (found by scanning
// fellows for the tightest covering set) whose own dependency justifies
// it, adapted to the requesting statement. Falls back to a CONSTRUCTION
// dependency with no premises if the witness line itself has no recorded
// origin.
func (g *SymbolGraph) WitnessLine(points []*Point, forStatement *Statement) (*Dependency, bool) {
	s := pointSet(points)
	for _, l := range g.Lines() {
		r := l.Rep()
		if !isSubset(s, r.Points) {
			continue
		}
		target := r
		for _, f := range r.Fellows() {
			if isSubset(s, f.Points) && len(f.Points) < len(target.Points) {
				target = f
			}
		}
		if target.Dep != nil {
			return target.Dep.WithNew(forStatement), true
		}
		return NewDependency(forStatement, ReasonConstruction, nil), true
	}
	return nil, false
}

// WitnessCircle is WitnessLine's counterpart for cyclicity.
func (g *SymbolGraph) WitnessCircle(points []*Point, forStatement *Statement) (*Dependency, bool) {
	s := pointSet(points)
	for _, c := range g.Circles() {
		r := c.Rep()
		if !isSubset(s, r.Points) {
			continue
		}
		target := r
		for _, f := range r.Fellows() {
			if isSubset(s, f.Points) && len(f.Points) < len(target.Points) {
				target = f
			}
		}
		if target.Dep != nil {
			return target.Dep.WithNew(forStatement), true
		}
		return NewDependency(forStatement, ReasonConstruction, nil), true
	}
	return nil, false
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "-"
		}
		out += n
	}
	return out
}
