package geodeduce

import (
	"math"
	"math/big"
)

// ConstantLength is "lconst A B r" — segment AB has a fixed length r,
// given as a rational. It anchors the "len:" unknown for AB to an
// absolute value rather than only to other lengths, letting
// Congruent/EqualRatios facts chain through it.
type ConstantLength struct{}

func (ConstantLength) Name() string { return "lconst" }

func (ConstantLength) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 3 {
		return nil, &IllegalPredicateError{Predicate: "lconst", Reason: "need 2 points and a value"}
	}
	pts, err := resolvePoints(tokens[:2], g, "lconst")
	if err != nil {
		return nil, err
	}
	if pts[0] == pts[1] {
		return nil, &IllegalPredicateError{Predicate: "lconst", Reason: "degenerate segment"}
	}
	val, err := parseRatToken(tokens[2])
	if err != nil {
		return nil, &IllegalPredicateError{Predicate: "lconst", Reason: "value must be a rational number"}
	}
	if val.Sign() <= 0 {
		return nil, &IllegalPredicateError{Predicate: "lconst", Reason: "length must be positive"}
	}
	a, b := pts[0], pts[1]
	if a.Name_ > b.Name_ {
		a, b = b, a
	}
	return NewStatement(ConstantLength{}, []Symbol{a, b}, val), nil
}

func (ConstantLength) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	want, _ := s.Value.Float64()
	return closeEnough(pts[0].Coord.Distance(pts[1].Coord), want, tol)
}

// logLenValue converts the absolute constant length r to its log-length
// unknown's target value via Quotient, following how ratio/congruence
// facts are stored as differences of log-lengths: here the "constant"
// row is log(r) itself, anchoring the segment's unknown.
func logLenValue(val *big.Rat) (*big.Rat, error) {
	f, _ := val.Float64()
	return Quotient(math.Log(f))
}

func (ConstantLength) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	name := ratioVarName(pts[0], pts[1])
	target, err := logLenValue(s.Value)
	if err != nil {
		return false
	}
	vs := NewVarSum(algTerm{Var: name, Coeff: ratOne()})
	return dg.Algebra.QueryEq(vs, target)
}

func (ConstantLength) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	pts := points(dep.Statement.Args)
	name := ratioVarName(pts[0], pts[1])
	target, err := logLenValue(dep.Statement.Value)
	if err != nil {
		dg.logger().Warnf("inconvertible irrational length %s in %s, skipping symbolic add: %v",
			dep.Statement.Value.RatString(), dep.Statement.Repr(), err)
		return
	}
	vs := NewVarSum(algTerm{Var: name, Coeff: ratOne()})
	dg.Algebra.AddEq(vs, target, dep)
}

func (ConstantLength) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	pts := points(s.Args)
	name := ratioVarName(pts[0], pts[1])
	target, err := logLenValue(s.Value)
	if err != nil {
		return nil, false
	}
	vs := NewVarSum(algTerm{Var: name, Coeff: ratOne()})
	deps, ok := dg.Algebra.WhyEq(vs, target)
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}

// ConstantAngle is "aconst A B C D r" — the directed angle from line AB
// to line CD equals r, given as a rational fraction of pi. It anchors a
// line-pair's "ang:" difference to an absolute value the same way
// ConstantLength anchors a segment's "len:" unknown.
type ConstantAngle struct{}

func (ConstantAngle) Name() string { return "aconst" }

func (ConstantAngle) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 5 {
		return nil, &IllegalPredicateError{Predicate: "aconst", Reason: "need 4 points and a value"}
	}
	pts, err := resolvePoints(tokens[:4], g, "aconst")
	if err != nil {
		return nil, err
	}
	if pts[0] == pts[1] || pts[2] == pts[3] {
		return nil, &IllegalPredicateError{Predicate: "aconst", Reason: "degenerate line in angle"}
	}
	val, err := parseRatToken(tokens[4])
	if err != nil {
		return nil, &IllegalPredicateError{Predicate: "aconst", Reason: "value must be a rational fraction of pi"}
	}
	return NewStatement(ConstantAngle{}, asSymbols(pts), val), nil
}

func (ConstantAngle) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	want, _ := s.Value.Float64()
	want -= math.Floor(want)
	d := angleFraction(pts[0], pts[1]) - angleFraction(pts[2], pts[3]) - want
	d -= math.Round(d)
	return math.Abs(d) < tol
}

func (p ConstantAngle) eqnFor(s *Statement) VarSum {
	pts := points(s.Args)
	ab, cd := lineDirectionVar(pts[0], pts[1]), lineDirectionVar(pts[2], pts[3])
	return NewVarSum(algTerm{Var: ab, Coeff: ratOne()}, algTerm{Var: cd, Coeff: ratNegOne()})
}

func (p ConstantAngle) Check(s *Statement, dg *DependencyGraph) bool {
	return dg.Algebra.QueryEqMod(p.eqnFor(s), s.Value, piMod)
}

func (p ConstantAngle) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
	dg.Algebra.AddEqMod(p.eqnFor(dep.Statement), dep.Statement.Value, piMod, dep)
}

func (p ConstantAngle) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	deps, ok := dg.Algebra.WhyEqMod(p.eqnFor(s), s.Value, piMod)
	if !ok {
		return nil, false
	}
	prem := make([]*Statement, len(deps))
	for i, d := range deps {
		prem[i] = d.Statement
	}
	return NewDependency(s, ReasonConstruction, prem), true
}

// parseRatToken parses a decimal or fractional literal ("3", "3/4",
// "1.25") into a *big.Rat.
func parseRatToken(tok string) (*big.Rat, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(tok); !ok {
		return nil, &IllegalPredicateError{Predicate: "", Reason: "cannot parse rational literal " + tok}
	}
	return r, nil
}

// PythagoreanPremises is "pythagoras A B C" — the right-angle premise
// used by the Pythagoras verification shortcut: it is true exactly when
// angle ABC is a right angle, i.e. perp(A,B,B,C).
type PythagoreanPremises struct{}

func (PythagoreanPremises) Name() string { return "pythagoras" }

func (PythagoreanPremises) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 3 || duplicatesAmong(tokens) {
		return nil, &IllegalPredicateError{Predicate: "pythagoras", Reason: "need 3 distinct points"}
	}
	pts, err := resolvePoints(tokens, g, "pythagoras")
	if err != nil {
		return nil, err
	}
	return NewStatement(PythagoreanPremises{}, pythagorasArgs(pts[0], pts[1], pts[2]), nil), nil
}

// pythagorasArgs canonicalizes a right-angle-at-b triple: the two leg
// endpoints a and c are interchangeable, so they are stored sorted.
func pythagorasArgs(a, b, c *Point) []Symbol {
	if a.Name_ > c.Name_ {
		a, c = c, a
	}
	return []Symbol{a, b, c}
}

func (PythagoreanPremises) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	a, b, c := pts[0], pts[1], pts[2]
	ba := a.Coord.Sub(b.Coord)
	bc := c.Coord.Sub(b.Coord)
	denom := ba.Norm() * bc.Norm()
	if denom < tol {
		return false
	}
	return math.Abs(ba.Dot(bc))/denom < tol
}

func (PythagoreanPremises) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	a, b, c := pts[0], pts[1], pts[2]
	perpStmt := NewStatement(Perpendicular{}, congruentArgs(b, a, b, c), nil)
	return dg.Check(perpStmt)
}

func (PythagoreanPremises) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
}

func (PythagoreanPremises) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	return NewDependency(s, ReasonPythagoras, nil), true
}

// PythagoreanConclusions is "pythagoras_conclusion A B C" — given the
// right-angle premise above holds for triangle ABC (right angle at B),
// asserts |AB|^2 + |BC|^2 = |AC|^2 as a constant-length-style fact
// derived purely numerically: the reserved Pythagoras Verification
// reason bypasses the algebraic sub-engine entirely, since the relation
// is quadratic rather than linear in log-length and so cannot be
// represented as a VarSum.
type PythagoreanConclusions struct{}

func (PythagoreanConclusions) Name() string { return "pythagoras_conclusion" }

func (PythagoreanConclusions) Parse(tokens []string, g *SymbolGraph) (*Statement, error) {
	if len(tokens) != 3 || duplicatesAmong(tokens) {
		return nil, &IllegalPredicateError{Predicate: "pythagoras_conclusion", Reason: "need 3 distinct points"}
	}
	pts, err := resolvePoints(tokens, g, "pythagoras_conclusion")
	if err != nil {
		return nil, err
	}
	return NewStatement(PythagoreanConclusions{}, pythagorasArgs(pts[0], pts[1], pts[2]), nil), nil
}

func (PythagoreanConclusions) CheckNumerical(s *Statement, tol float64) bool {
	pts := points(s.Args)
	a, b, c := pts[0], pts[1], pts[2]
	ab := a.Coord.Distance(b.Coord)
	bc := b.Coord.Distance(c.Coord)
	ac := a.Coord.Distance(c.Coord)
	return closeEnough(ab*ab+bc*bc, ac*ac, tol*math.Max(1, ac*ac))
}

func (p PythagoreanConclusions) Check(s *Statement, dg *DependencyGraph) bool {
	pts := points(s.Args)
	a, b, c := pts[0], pts[1], pts[2]
	premise := NewStatement(PythagoreanPremises{}, []Symbol{a, b, c}, nil)
	if !dg.Check(premise) {
		return false
	}
	return p.CheckNumerical(s, dg.tolerance())
}

func (PythagoreanConclusions) Add(dep *Dependency, dg *DependencyGraph) {
	dg.AddEdge(dep)
}

func (PythagoreanConclusions) Why(s *Statement, dg *DependencyGraph) (*Dependency, bool) {
	pts := points(s.Args)
	a, b, c := pts[0], pts[1], pts[2]
	premise := NewStatement(PythagoreanPremises{}, []Symbol{a, b, c}, nil)
	return NewDependency(s, ReasonPythagoras, []*Statement{premise}), true
}
