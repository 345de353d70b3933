package geodeduce

import "sort"

// Enumerators walk the current symbolic state and yield every statement
// of one predicate family it supports. Every returned statement checks
// true symbolically by construction; on a sound engine state it must
// also check true numerically, which is what the enumeration tests
// assert.

// segment is an unordered point pair, endpoints sorted by name.
type segment struct {
	A, B *Point
}

func (dg *DependencyGraph) segments() []segment {
	pts := dg.Symbols.Points()
	var out []segment
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			out = append(out, segment{A: pts[i], B: pts[j]})
		}
	}
	return out
}

func dedupSorted(stmts []*Statement) []*Statement {
	sort.Slice(stmts, func(i, j int) bool { return stmts[i].Repr() < stmts[j].Repr() })
	var out []*Statement
	for _, s := range stmts {
		if len(out) > 0 && out[len(out)-1].Repr() == s.Repr() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AllColls enumerates one collinearity statement per merged line symbol
// holding three or more points.
func (dg *DependencyGraph) AllColls() []*Statement {
	var out []*Statement
	for _, l := range dg.Symbols.Lines() {
		r := l.Rep()
		if r != l || len(r.Points) < 3 {
			continue
		}
		names := make([]string, 0, len(r.Points))
		for n := range r.Points {
			names = append(names, n)
		}
		sort.Strings(names)
		stmt, err := Collinear{}.Parse(names, dg.Symbols)
		if err != nil {
			continue
		}
		out = append(out, stmt)
	}
	return dedupSorted(out)
}

// AllCyclics enumerates one cyclicity statement per merged circle symbol
// holding four or more points.
func (dg *DependencyGraph) AllCyclics() []*Statement {
	var out []*Statement
	for _, c := range dg.Symbols.Circles() {
		r := c.Rep()
		if r != c || len(r.Points) < 4 {
			continue
		}
		names := make([]string, 0, len(r.Points))
		for n := range r.Points {
			names = append(names, n)
		}
		sort.Strings(names)
		stmt, err := Cyclic{}.Parse(names, dg.Symbols)
		if err != nil {
			continue
		}
		out = append(out, stmt)
	}
	return dedupSorted(out)
}

// AllCircles enumerates the representative circle symbols themselves,
// sorted by name; each carries its full point set and numeric
// representation.
func (dg *DependencyGraph) AllCircles() []*Circle {
	var out []*Circle
	seen := map[string]bool{}
	for _, c := range dg.Symbols.Circles() {
		r := c.Rep()
		if seen[r.Name_] {
			continue
		}
		seen[r.Name_] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name_ < out[j].Name_ })
	return out
}

// segPairStatements enumerates pred over every unordered pair of
// distinct segments, keeping the statements whose symbolic check holds.
func (dg *DependencyGraph) segPairStatements(pred Predicate) []*Statement {
	segs := dg.segments()
	var out []*Statement
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			tokens := []string{segs[i].A.Name_, segs[i].B.Name_, segs[j].A.Name_, segs[j].B.Name_}
			stmt, err := pred.Parse(tokens, dg.Symbols)
			if err != nil {
				continue
			}
			if !pred.Check(stmt, dg) {
				continue
			}
			out = append(out, stmt)
		}
	}
	return dedupSorted(out)
}

// AllParas enumerates every parallelism between two distinct segments
// the symbolic state can justify.
func (dg *DependencyGraph) AllParas() []*Statement {
	return dg.segPairStatements(Parallel{})
}

// AllPerps enumerates every perpendicularity the symbolic state can
// justify.
func (dg *DependencyGraph) AllPerps() []*Statement {
	return dg.segPairStatements(Perpendicular{})
}

// AllCongs enumerates every segment congruence the symbolic state can
// justify.
func (dg *DependencyGraph) AllCongs() []*Statement {
	return dg.segPairStatements(Congruent{})
}

// AllMidps enumerates every midpoint fact the symbolic state can
// justify.
func (dg *DependencyGraph) AllMidps() []*Statement {
	pts := dg.Symbols.Points()
	var out []*Statement
	for _, m := range pts {
		for _, a := range pts {
			for _, b := range pts {
				if m == a || m == b || a.Name_ >= b.Name_ {
					continue
				}
				stmt, err := Midpoint{}.Parse([]string{m.Name_, a.Name_, b.Name_}, dg.Symbols)
				if err != nil {
					continue
				}
				if !(Midpoint{}).Check(stmt, dg) {
					continue
				}
				out = append(out, stmt)
			}
		}
	}
	return dedupSorted(out)
}

// segQuadStatements enumerates pred over quadruples of segments (two
// per side), skipping the trivially-true identical-sides form.
func (dg *DependencyGraph) segQuadStatements(pred Predicate) []*Statement {
	segs := dg.segments()
	var out []*Statement
	tok := func(s segment) [2]string { return [2]string{s.A.Name_, s.B.Name_} }
	for i := range segs {
		for j := range segs {
			if j == i {
				continue
			}
			for k := range segs {
				for l := range segs {
					if l == k {
						continue
					}
					if k < i || (k == i && l <= j) {
						continue // each unordered pair of sides once, identity skipped
					}
					t1, t2 := tok(segs[i]), tok(segs[j])
					t3, t4 := tok(segs[k]), tok(segs[l])
					stmt, err := pred.Parse([]string{t1[0], t1[1], t2[0], t2[1], t3[0], t3[1], t4[0], t4[1]}, dg.Symbols)
					if err != nil {
						continue
					}
					if !pred.Check(stmt, dg) {
						continue
					}
					out = append(out, stmt)
				}
			}
		}
	}
	return dedupSorted(out)
}

// AllEqangles enumerates every equal-angle fact between two distinct
// angle sides the symbolic state can justify.
func (dg *DependencyGraph) AllEqangles() []*Statement {
	return dg.segQuadStatements(EqualAngles{})
}

// AllEqratios enumerates every equal-ratio fact between two distinct
// ratio sides the symbolic state can justify.
func (dg *DependencyGraph) AllEqratios() []*Statement {
	return dg.segQuadStatements(EqualRatios{})
}
