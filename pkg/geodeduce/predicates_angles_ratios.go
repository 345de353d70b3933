package geodeduce

import (
	"math"
	"math/big"
)

// piMod is the modulus used for directed-angle equations: angles between
// lines are only meaningful modulo a full turn of pi.
var piMod = big.NewRat(1, 1) // angle unknowns are stored as fractions of pi, so the modulus is 1 full turn.

// lineDirectionVar names the angle unknown for the line through a and b,
// stored as an (unreduced) fraction of pi via angleFraction.
func lineDirectionVar(a, b *Point) string {
	if a.Name_ > b.Name_ {
		a, b = b, a
	}
	return "ang:" + a.Name_ + b.Name_
}

// angleFraction returns the direction of the line a->b as a fraction of
// pi in [0, 1), used only to build the numeric CheckNumerical side of
// equal-angle facts; the symbolic side never inspects the fraction's
// value, only equalities between combinations of angle unknowns.
func angleFraction(a, b *Point) float64 {
	dx, dy := b.Coord.X-a.Coord.X, b.Coord.Y-a.Coord.Y
	theta := math.Atan2(dy, dx)
	frac := theta / math.Pi
	frac -= math.Floor(frac)
	return frac
}

// EqualAngles is "eqangle A B C D E F G H" — the directed angle from
// line AB to line CD equals the directed angle from line EF to line GH
// (both mod pi). Canonicalization rotates pair and line order to a
// canonical representative: each of the two angle-sides is itself a pair
// of point-pairs, and we put the lexicographically smaller side first.
type EqualAngles struct{}

func (EqualAngles) Name() string { return "eqangle" }

func (EqualAngles) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 8 {
		return nil, &IllegalPredicateError{Predicate: "eqangle", Reason: "need 8 points"}
	}
	pts, err := resolvePoints(tokens, g, "eqangle")
	if err != nil {
		return nil, err
	}
	for i := 0; i < 8; i += 2 {
		if pts[i] == pts[i+1] {
			return nil, &IllegalPredicateError{Predicate: "eqangle", Reason: "degenerate line in angle"}
		}
	}
	side1 := [4]*Point{pts[0], pts[1], pts[2], pts[3]}
	side2 := [4]*Point{pts[4], pts[5], pts[6], pts[7]}
	if angleSideRepr(side2) < angleSideRepr(side1) {
		side1, side2 = side2, side1
	}
	args := make([]Symbol, 0, 8)
	for _, p := range side1 {
		args = append(args, p)
	}
	for _, p := range side2 {
		args = append(args, p)
	}
	return NewStatement(EqualAngles{}, args, nil), nil
}

func angleSideRepr(side [4]*Point) string {
	out := ""
	for _, p := range side {
		out += p.Name_ + ","
	}
	return out
}

func (EqualAngles) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	d1 := angleFraction(pts[0], pts[1]) - angleFraction(pts[2], pts[3])
	d2 := angleFraction(pts[4], pts[5]) - angleFraction(pts[6], pts[7])
	diff := d1 - d2
	diff -= math.Round(diff)
	return math.Abs(diff) < tol
}

func (EqualAngles) eqnFor(s *Statement) (VarSum, *big.Rat) {
	pts := points(s.Args)
	ab, cd := lineDirectionVar(pts[0], pts[1]), lineDirectionVar(pts[2], pts[3])
	ef, gh := lineDirectionVar(pts[4], pts[5]), lineDirectionVar(pts[6], pts[7])
	vs := NewVarSum(
		algTerm{Var: ab, Coeff: ratOne()},
		algTerm{Var: cd, Coeff: ratNegOne()},
		algTerm{Var: ef, Coeff: ratNegOne()},
		algTerm{Var: gh, Coeff: ratOne()},
	)
	return vs, ratZero()
}

func (p EqualAngles) Check(s *Statement, dg *DependencyGraph) bool {
	vs, c := p.eqnFor(s)
	return dg.Algebra.QueryEqMod(vs, c, piMod)
}

func (p EqualAngles) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	vs, c := p.eqnFor(dep.Statement)
	dg.Algebra.AddEqMod(vs, c, piMod, dep)
}

func (p EqualAngles) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
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

// EqualRatios is "eqratio A B C D E F G H" — |AB|/|CD| = |EF|/|GH|. It
// reduces to a log-length equation, the same algebraic unknowns
// Congruent uses.
type EqualRatios struct{}

func (EqualRatios) Name() string { return "eqratio" }

func (EqualRatios) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 8 {
		return nil, &IllegalPredicateError{Predicate: "eqratio", Reason: "need 8 points"}
	}
	pts, err := resolvePoints(tokens, g, "eqratio")
	if err != nil {
		return nil, err
	}
	for i := 0; i < 8; i += 2 {
		if pts[i] == pts[i+1] {
			return nil, &IllegalPredicateError{Predicate: "eqratio", Reason: "degenerate segment"}
		}
	}
	side1 := [4]*Point{pts[0], pts[1], pts[2], pts[3]}
	side2 := [4]*Point{pts[4], pts[5], pts[6], pts[7]}
	if angleSideRepr(side2) < angleSideRepr(side1) {
		side1, side2 = side2, side1
	}
	args := make([]Symbol, 0, 8)
	for _, p := range side1 {
		args = append(args, p)
	}
	for _, p := range side2 {
		args = append(args, p)
	}
	return NewStatement(EqualRatios{}, args, nil), nil
}

func (EqualRatios) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	ab := pts[0].Coord.Distance(pts[1].Coord)
	cd := pts[2].Coord.Distance(pts[3].Coord)
	ef := pts[4].Coord.Distance(pts[5].Coord)
	gh := pts[6].Coord.Distance(pts[7].Coord)
	if cd == 0 || gh == 0 {
		return false
	}
	return closeEnough(ab/cd, ef/gh, tol)
}

func (EqualRatios) eqnFor(s *Statement) (VarSum, *big.Rat) {
	pts := points(s.Args)
	ab, cd := ratioVarName(pts[0], pts[1]), ratioVarName(pts[2], pts[3])
	ef, gh := ratioVarName(pts[4], pts[5]), ratioVarName(pts[6], pts[7])
	vs := NewVarSum(
		algTerm{Var: ab, Coeff: ratOne()},
		algTerm{Var: cd, Coeff: ratNegOne()},
		algTerm{Var: ef, Coeff: ratNegOne()},
		algTerm{Var: gh, Coeff: ratOne()},
	)
	return vs, ratZero()
}

func (p EqualRatios) Check(s *Statement, dg *DependencyGraph) bool {
	vs, c := p.eqnFor(s)
	return dg.Algebra.QueryEq(vs, c)
}

func (p EqualRatios) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	vs, c := p.eqnFor(dep.Statement)
	dg.Algebra.AddEq(vs, c, dep)
}

func (p EqualRatios) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	vs, c := p.eqnFor(s)
	deps, ok := dg.Algebra.WhyEq(vs, c)
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}
