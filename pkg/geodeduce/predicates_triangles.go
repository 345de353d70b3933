package geodeduce

import "math"

// SimilarTriangles is "simtri A B C P Q R" — triangle ABC is similar to
// triangle PQR under the vertex correspondence A↔P, B↔Q, C↔R: the
// directed angle (mod pi) at each vertex agrees with its counterpart and
// the three side ratios |AB|/|PQ|, |BC|/|QR|, |CA|/|RP| coincide.
// Canonicalization quotients out the symmetries of that definition:
// simultaneous rotation of both triples, simultaneous reversal, and the
// swap of the two triangles.
type SimilarTriangles struct{}

func (SimilarTriangles) Name() string { return "simtri" }

func (SimilarTriangles) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 6 {
		return nil, &IllegalPredicateError{Predicate: "simtri", Reason: "need 6 points"}
	}
	if duplicatesAmong(tokens[:3]) || duplicatesAmong(tokens[3:]) {
		return nil, &IllegalPredicateError{Predicate: "simtri", Reason: "degenerate triangle"}
	}
	if tokens[0] == tokens[3] && tokens[1] == tokens[4] && tokens[2] == tokens[5] {
		return nil, &IllegalPredicateError{Predicate: "simtri", Reason: "a triangle is trivially similar to itself"}
	}
	pts, err := resolvePoints(tokens, g, "simtri")
	if err != nil {
		return nil, err
	}
	if zeroArea(pts[0], pts[1], pts[2]) || zeroArea(pts[3], pts[4], pts[5]) {
		return nil, &IllegalPredicateError{Predicate: "simtri", Reason: "collinear triple is not a triangle"}
	}
	canon := canonicalTriangles([6]*Point{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
	return NewStatement(SimilarTriangles{}, asSymbols(canon[:]), nil), nil
}

// zeroArea reports whether a, b, c span no triangle.
func zeroArea(a, b, c *Point) bool {
	l, ok := NewLineThrough(a.Coord, b.Coord)
	if !ok {
		return true
	}
	return l.Distance(c.Coord) <= ATOM
}

// canonicalTriangles picks, among the 12 symmetric presentations of a
// triangle correspondence (3 rotations x reversal x swap), the one with
// the lexicographically smallest name tuple.
func canonicalTriangles(pts [6]*Point) [6]*Point {
	best := pts
	bestRepr := triangleRepr(best)
	for _, swap := range []bool{false, true} {
		for _, rev := range []bool{false, true} {
			for rot := 0; rot < 3; rot++ {
				v := presentTriangles(pts, rot, rev, swap)
				if r := triangleRepr(v); r < bestRepr {
					best, bestRepr = v, r
				}
			}
		}
	}
	return best
}

func presentTriangles(pts [6]*Point, rot int, rev, swap bool) [6]*Point {
	t1 := [3]*Point{pts[0], pts[1], pts[2]}
	t2 := [3]*Point{pts[3], pts[4], pts[5]}
	if swap {
		t1, t2 = t2, t1
	}
	if rev {
		t1 = [3]*Point{t1[0], t1[2], t1[1]}
		t2 = [3]*Point{t2[0], t2[2], t2[1]}
	}
	var out [6]*Point
	for i := 0; i < 3; i++ {
		out[i] = t1[(i+rot)%3]
		out[3+i] = t2[(i+rot)%3]
	}
	return out
}

func triangleRepr(pts [6]*Point) string {
	out := ""
	for _, p := range pts {
		out += p.Name_ + ","
	}
	return out
}

func (SimilarTriangles) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	a, b, c, p, q, r := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
	for _, v := range [][4]*Point{
		{a, b, a, c}, {b, a, b, c}, {c, a, c, b},
	} {
		w := correspondingVertex(v, pts)
		d1 := angleFraction(v[0], v[1]) - angleFraction(v[2], v[3])
		d2 := angleFraction(w[0], w[1]) - angleFraction(w[2], w[3])
		diff := d1 - d2
		diff -= math.Round(diff)
		if math.Abs(diff) > tol {
			return false
		}
	}
	ab, pq := a.Coord.Distance(b.Coord), p.Coord.Distance(q.Coord)
	bc, qr := b.Coord.Distance(c.Coord), q.Coord.Distance(r.Coord)
	ca, rp := c.Coord.Distance(a.Coord), r.Coord.Distance(p.Coord)
	if pq == 0 || qr == 0 || rp == 0 {
		return false
	}
	return closeEnough(ab/pq, bc/qr, tol) && closeEnough(bc/qr, ca/rp, tol)
}

// correspondingVertex maps a vertex-angle side tuple over triangle ABC to
// its counterpart over PQR under the statement's correspondence.
func correspondingVertex(v [4]*Point, pts []*Point) [4]*Point {
	image := map[*Point]*Point{pts[0]: pts[3], pts[1]: pts[4], pts[2]: pts[5]}
	return [4]*Point{image[v[0]], image[v[1]], image[v[2]], image[v[3]]}
}

// angleEquations returns the three directed-angle-at-a-vertex equations
// (mod pi) the correspondence asserts.
func (SimilarTriangles) angleEquations(s *Statement) []VarSum {
	pts := points(s.Args)
	a, b, c, p, q, r := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
	mk := func(s1a, s1b, s2a, s2b, t1a, t1b, t2a, t2b *Point) VarSum {
		return NewVarSum(
			algTerm{Var: lineDirectionVar(s1a, s1b), Coeff: ratOne()},
			algTerm{Var: lineDirectionVar(s2a, s2b), Coeff: ratNegOne()},
			algTerm{Var: lineDirectionVar(t1a, t1b), Coeff: ratNegOne()},
			algTerm{Var: lineDirectionVar(t2a, t2b), Coeff: ratOne()},
		)
	}
	return []VarSum{
		mk(a, b, a, c, p, q, p, r),
		mk(b, a, b, c, q, p, q, r),
		mk(c, a, c, b, r, p, r, q),
	}
}

// ratioEquations returns the two independent log-length equations tying
// the three side ratios together.
func (SimilarTriangles) ratioEquations(s *Statement) []VarSum {
	pts := points(s.Args)
	a, b, c, p, q, r := pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]
	mk := func(s1a, s1b, t1a, t1b, s2a, s2b, t2a, t2b *Point) VarSum {
		return NewVarSum(
			algTerm{Var: ratioVarName(s1a, s1b), Coeff: ratOne()},
			algTerm{Var: ratioVarName(t1a, t1b), Coeff: ratNegOne()},
			algTerm{Var: ratioVarName(s2a, s2b), Coeff: ratNegOne()},
			algTerm{Var: ratioVarName(t2a, t2b), Coeff: ratOne()},
		)
	}
	return []VarSum{
		mk(a, b, p, q, b, c, q, r),
		mk(b, c, q, r, c, a, r, p),
	}
}

func (p SimilarTriangles) Check(s *Statement, dg *DependencyGraph) bool {
	for _, vs := range p.angleEquations(s) {
		if !dg.Algebra.QueryEqMod(vs, ratZero(), piMod) {
			return false
		}
	}
	for _, vs := range p.ratioEquations(s) {
		if !dg.Algebra.QueryEq(vs, ratZero()) {
			return false
		}
	}
	return true
}

func (p SimilarTriangles) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	for _, vs := range p.angleEquations(dep.Statement) {
		dg.Algebra.AddEqMod(vs, ratZero(), piMod, dep)
	}
	for _, vs := range p.ratioEquations(dep.Statement) {
		dg.Algebra.AddEq(vs, ratZero(), dep)
	}
}

func (p SimilarTriangles) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	seen := map[string]bool{}
	var prem []*Statement
	collect := func(deps []*Dependency) {
		for _, d := range deps {
			if !seen[d.Statement.Repr()] {
				seen[d.Statement.Repr()] = true
				prem = append(prem, d.Statement)
			}
		}
	}
	for _, vs := range p.angleEquations(s) {
		deps, ok := dg.Algebra.WhyEqMod(vs, ratZero(), piMod)
		if !ok {
			return nil, false
		}
		collect(deps)
	}
	for _, vs := range p.ratioEquations(s) {
		deps, ok := dg.Algebra.WhyEq(vs, ratZero())
		if !ok {
			return nil, false
		}
		collect(deps)
	}
	return NewDependency(s, ReasonConstruction, prem), true
}
