package geodeduce

import "math/big"

// Collinear is "coll A B C ..." — three or more points on a common line.
// It folds into a Line symbol: Check/Add delegate to the symbol graph's
// line-merging machinery, and Why reconstructs the minimal witness line.
type Collinear struct{}

func (Collinear) Name() string { return "coll" }

func (Collinear) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) <= 2 || duplicatesAmong(tokens) {
		return nil, &IllegalPredicateError{Predicate: "coll", Reason: "need >=3 distinct points"}
	}
	pts, err := resolvePoints(tokens, g, "coll")
	if err != nil {
		return nil, err
	}
	pts = sortPointArgs(pts)
	args := make([]Symbol, len(pts))
	for i, p := range pts {
		args[i] = p
	}
	return NewStatement(Collinear{}, args, nil), nil
}

func (Collinear) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	l, ok := NewLineThrough(pts[0].Coord, pts[1].Coord)
	if !ok {
		return false
	}
	for _, p := range pts[2:] {
		if l.Distance(p.Coord) > tol {
			return false
		}
	}
	return true
}

func (Collinear) Check(s *Statement, dg *DependencyGraph) bool {
	return dg.Symbols.CheckCollinear(points(s.Args))
}

func (Collinear) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	pts := points(dep.Statement.Args)
	dg.Symbols.AddCollinear(pts, dep)
	// Every pair of the collinear points spans the same direction; the
	// algebraic sub-engine names angle unknowns per point pair, so the
	// merge has to be told to it explicitly, witnessed by this dep.
	base := lineDirectionVar(pts[0], pts[1])
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			v := lineDirectionVar(pts[i], pts[j])
			if v == base {
				continue
			}
			vs := NewVarSum(
				algTerm{Var: base, Coeff: ratOne()},
				algTerm{Var: v, Coeff: ratNegOne()},
			)
			dg.Algebra.AddEqMod(vs, ratZero(), piMod, dep)
		}
	}
}

func (Collinear) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	return dg.Symbols.WitnessLine(points(s.Args), s)
}

// Parallel is "para A B C D" — line AB is parallel to line CD.
type Parallel struct{}

func (Parallel) Name() string { return "para" }

func (Parallel) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 4 {
		return nil, &IllegalPredicateError{Predicate: "para", Reason: "need 4 points"}
	}
	pts, err := resolvePoints(tokens, g, "para")
	if err != nil {
		return nil, err
	}
	if pts[0] == pts[1] || pts[2] == pts[3] {
		return nil, &IllegalPredicateError{Predicate: "para", Reason: "degenerate segment"}
	}
	p1, p2 := canonicalPairOfPairs(pts[0], pts[1], pts[2], pts[3])
	return NewStatement(Parallel{}, append(p1.asArgs(), p2.asArgs()...), nil), nil
}

func (Parallel) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	l1, ok1 := NewLineThrough(pts[0].Coord, pts[1].Coord)
	l2, ok2 := NewLineThrough(pts[2].Coord, pts[3].Coord)
	if !ok1 || !ok2 {
		return false
	}
	return l1.IsParallel(l2)
}

// eqnFor builds the direction-congruence equation dir(AB) - dir(CD) = 0
// (mod pi): two lines are parallel exactly when their directions agree
// mod a full turn.
func (Parallel) eqnFor(s *Statement) (VarSum, *big.Rat) {
	pts := points(s.Args)
	ab, cd := lineDirectionVar(pts[0], pts[1]), lineDirectionVar(pts[2], pts[3])
	vs := NewVarSum(
		algTerm{Var: ab, Coeff: ratOne()},
		algTerm{Var: cd, Coeff: ratNegOne()},
	)
	return vs, ratZero()
}

func (p Parallel) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	l1 := dg.Symbols.LineThrough(pts[0], pts[1]).Rep()
	l2 := dg.Symbols.LineThrough(pts[2], pts[3]).Rep()
	if l1 == l2 {
		return true
	}
	vs, c := p.eqnFor(s)
	return dg.Algebra.QueryEqMod(vs, c, piMod)
}

func (p Parallel) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	vs, c := p.eqnFor(dep.Statement)
	dg.Algebra.AddEqMod(vs, c, piMod, dep)
}

func (p Parallel) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	vs, c := p.eqnFor(s)
	deps, ok := dg.Algebra.WhyEqMod(vs, c, piMod)
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}

// Perpendicular is "perp A B C D" — line AB is perpendicular to line CD.
// Canonicalization is shared with Parallel.
type Perpendicular struct{}

func (Perpendicular) Name() string { return "perp" }

func (Perpendicular) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 4 {
		return nil, &IllegalPredicateError{Predicate: "perp", Reason: "need 4 points"}
	}
	pts, err := resolvePoints(tokens, g, "perp")
	if err != nil {
		return nil, err
	}
	if pts[0] == pts[1] || pts[2] == pts[3] {
		return nil, &IllegalPredicateError{Predicate: "perp", Reason: "degenerate segment"}
	}
	if l1, ok1 := NewLineThrough(pts[0].Coord, pts[1].Coord); ok1 {
		if l2, ok2 := NewLineThrough(pts[2].Coord, pts[3].Coord); ok2 {
			if l1.IsSame(l2) {
				return nil, &IllegalPredicateError{Predicate: "perp", Reason: "collinear quadruple cannot be perpendicular"}
			}
		}
	}
	p1, p2 := canonicalPairOfPairs(pts[0], pts[1], pts[2], pts[3])
	return NewStatement(Perpendicular{}, append(p1.asArgs(), p2.asArgs()...), nil), nil
}

func (Perpendicular) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	l1, ok1 := NewLineThrough(pts[0].Coord, pts[1].Coord)
	l2, ok2 := NewLineThrough(pts[2].Coord, pts[3].Coord)
	if !ok1 || !ok2 {
		return false
	}
	return l1.IsPerp(l2)
}

// eqnFor builds the direction-congruence equation dir(AB) - dir(CD) = 1/2
// (mod pi): a right angle is a half-turn shift in this direction-mod-pi
// convention (see angleFraction).
func (Perpendicular) eqnFor(s *Statement) (VarSum, *big.Rat) {
	pts := points(s.Args)
	ab, cd := lineDirectionVar(pts[0], pts[1]), lineDirectionVar(pts[2], pts[3])
	vs := NewVarSum(
		algTerm{Var: ab, Coeff: ratOne()},
		algTerm{Var: cd, Coeff: ratNegOne()},
	)
	return vs, ratHalf()
}

func (p Perpendicular) Check(s *Statement, dg *DependencyGraph) bool {
	vs, c := p.eqnFor(s)
	return dg.Algebra.QueryEqMod(vs, c, piMod)
}

func (p Perpendicular) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	vs, c := p.eqnFor(dep.Statement)
	dg.Algebra.AddEqMod(vs, c, piMod, dep)
}

func (p Perpendicular) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	vs, c := p.eqnFor(s)
	deps, ok := dg.Algebra.WhyEqMod(vs, c, piMod)
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}

// Cyclic is "cyclic A B C D ..." — four or more concyclic points. Folds
// into a Circle symbol exactly as Collinear folds into a Line.
type Cyclic struct{}

func (Cyclic) Name() string { return "cyclic" }

func (Cyclic) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) <= 3 || duplicatesAmong(tokens) {
		return nil, &IllegalPredicateError{Predicate: "cyclic", Reason: "need >=4 distinct points"}
	}
	pts, err := resolvePoints(tokens, g, "cyclic")
	if err != nil {
		return nil, err
	}
	pts = sortPointArgs(pts)
	args := make([]Symbol, len(pts))
	for i, p := range pts {
		args[i] = p
	}
	return NewStatement(Cyclic{}, args, nil), nil
}

func (Cyclic) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	c, ok := NewCircleThrough(pts[0].Coord, pts[1].Coord, pts[2].Coord)
	if !ok {
		return false
	}
	for _, p := range pts[3:] {
		if !closeEnough(c.Radius(), c.Center.Distance(p.Coord), tol) {
			return false
		}
	}
	return true
}

func (Cyclic) Check(s *Statement, dg *DependencyGraph) bool {
	return dg.Symbols.CheckCyclic(points(s.Args))
}

func (Cyclic) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	dg.Symbols.AddCyclic(points(dep.Statement.Args), dep)
}

func (Cyclic) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	return dg.Symbols.WitnessCircle(points(s.Args), s)
}

// Midpoint is "midp M A B" — M is the midpoint of segment AB.
type Midpoint struct{}

func (Midpoint) Name() string { return "midp" }

func (Midpoint) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 3 || duplicatesAmong(tokens) {
		return nil, &IllegalPredicateError{Predicate: "midp", Reason: "need 3 distinct points"}
	}
	pts, err := resolvePoints(tokens, g, "midp")
	if err != nil {
		return nil, err
	}
	a, b := pts[1], pts[2]
	if a.Name_ > b.Name_ {
		a, b = b, a
	}
	return NewStatement(Midpoint{}, []Symbol{pts[0], a, b}, nil), nil
}

func (Midpoint) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	m, a, b := pts[0], pts[1], pts[2]
	return m.Coord.Close(a.Coord.Midpoint(b.Coord)) ||
		closeEnough(m.Coord.Distance(a.Coord.Midpoint(b.Coord)), 0, tol)
}

func (Midpoint) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	m, a, b := pts[0], pts[1], pts[2]
	if !dg.Symbols.CheckCollinear([]*Point{m, a, b}) {
		return false
	}
	congStmt := NewStatement(Congruent{}, congruentArgs(m, a, m, b), nil)
	return dg.Check(congStmt)
}

func (Midpoint) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	pts := points(dep.Statement.Args)
	m, a, b := pts[0], pts[1], pts[2]
	collStmt := NewStatement(Collinear{}, asSymbols(sortPointArgs([]*Point{m, a, b})), nil)
	if !dg.Known(collStmt) {
		Collinear{}.Add(NewDependency(collStmt, ReasonConstruction, []*Statement{dep.Statement}), dg)
	}
	congStmt := NewStatement(Congruent{}, congruentArgs(m, a, m, b), nil)
	if !dg.Known(congStmt) {
		Congruent{}.Add(NewDependency(congStmt, ReasonConstruction, []*Statement{dep.Statement}), dg)
	}
}

func (Midpoint) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	return NewDependency(s, ReasonConstruction, nil), true
}

// congruentArgs builds the canonical argument symbols for cong(a,b,c,d).
func congruentArgs(a, b, c, d *Point) []Symbol {
	p1, p2 := canonicalPairOfPairs(a, b, c, d)
	return append(p1.asArgs(), p2.asArgs()...)
}

// Congruent is "cong A B C D" — segment AB has the same length as CD.
type Congruent struct{}

func (Congruent) Name() string { return "cong" }

func (Congruent) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 4 {
		return nil, &IllegalPredicateError{Predicate: "cong", Reason: "need 4 points"}
	}
	pts, err := resolvePoints(tokens, g, "cong")
	if err != nil {
		return nil, err
	}
	if pts[0] == pts[1] || pts[2] == pts[3] {
		return nil, &IllegalPredicateError{Predicate: "cong", Reason: "degenerate segment"}
	}
	return NewStatement(Congruent{}, congruentArgs(pts[0], pts[1], pts[2], pts[3]), nil), nil
}

func (Congruent) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	d1 := pts[0].Coord.Distance(pts[1].Coord)
	d2 := pts[2].Coord.Distance(pts[3].Coord)
	return closeEnough(d1, d2, tol)
}

func (Congruent) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	name1 := ratioVarName(pts[0], pts[1])
	name2 := ratioVarName(pts[2], pts[3])
	if name1 == name2 {
		return true
	}
	vs := NewVarSum(algTerm{Var: name1, Coeff: ratOne()}, algTerm{Var: name2, Coeff: ratNegOne()})
	return dg.Algebra.QueryEq(vs, ratZero())
}

func (Congruent) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	pts := points(dep.Statement.Args)
	name1 := ratioVarName(pts[0], pts[1])
	name2 := ratioVarName(pts[2], pts[3])
	if name1 == name2 {
		return
	}
	vs := NewVarSum(algTerm{Var: name1, Coeff: ratOne()}, algTerm{Var: name2, Coeff: ratNegOne()})
	dg.Algebra.AddEq(vs, ratZero(), dep)
}

func (Congruent) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	pts := points(s.Args)
	name1 := ratioVarName(pts[0], pts[1])
	name2 := ratioVarName(pts[2], pts[3])
	vs := NewVarSum(algTerm{Var: name1, Coeff: ratOne()}, algTerm{Var: name2, Coeff: ratNegOne()})
	deps, ok := dg.Algebra.WhyEq(vs, ratZero())
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}

// ratioVarName names the log-length unknown for segment AB (sorted
// endpoints), the unknown the algebraic sub-engine reasons about for
// congruence/equal-ratio facts.
func ratioVarName(a, b *Point) string {
	if a.Name_ > b.Name_ {
		a, b = b, a
	}
	return "len:" + a.Name_ + b.Name_
}

func ratOne() *big.Rat    { return big.NewRat(1, 1) }
func ratNegOne() *big.Rat { return big.NewRat(-1, 1) }
func ratZero() *big.Rat   { return big.NewRat(0, 1) }
func ratHalf() *big.Rat   { return big.NewRat(1, 2) }
