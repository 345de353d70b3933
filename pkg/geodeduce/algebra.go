package geodeduce

import (
	"math/big"
	"sort"
)

// Algebra is the narrow interface the deduction engine uses to consult
// its algebraic reasoning sub-engine: linear facts over angle-mod-pi or
// log-length/ratio unknowns. This package's implementation is the
// minimal one that satisfies the interface: a monotone, Gaussian-
// eliminated linear hull over named unknowns with witnesses preserved
// for proof extraction.
//
// A "var sum" is a linear combination of named unknowns (e.g. the
// directed angle of line AB minus the directed angle of line CD); it is
// represented as a sorted slice of (name, coefficient) terms so two
// equal combinations compare equal regardless of construction order.
type Algebra struct {
	// rows holds the Gaussian-eliminated basis: each row is a reduced
	// equation sum(coeff*var) = constant, together with the dependency
	// that (possibly transitively) justifies it.
	rows []algRow
}

type algTerm struct {
	Var   string
	Coeff *big.Rat
}

// VarSum is a linear combination of named unknowns.
type VarSum []algTerm

// NewVarSum builds a VarSum from (name, coeff) pairs, merging duplicate
// names and sorting for stable comparison.
func NewVarSum(terms ...algTerm) VarSum {
	merged := map[string]*big.Rat{}
	for _, t := range terms {
		if c, ok := merged[t.Var]; ok {
			merged[t.Var] = new(big.Rat).Add(c, t.Coeff)
		} else {
			merged[t.Var] = new(big.Rat).Set(t.Coeff)
		}
	}
	var out VarSum
	for v, c := range merged {
		if c.Sign() == 0 {
			continue
		}
		out = append(out, algTerm{Var: v, Coeff: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })
	return out
}

type algRow struct {
	terms    VarSum
	constant *big.Rat
	// deps is the transitive witness set: the equation's own dependency
	// plus those of every basis row consumed while reducing it into the
	// basis. Kept so WhyEq can report the full premise set even after
	// insert-time elimination has mixed rows together.
	deps []*Dependency
}

// NewAlgebra returns an empty algebraic sub-engine.
func NewAlgebra() *Algebra {
	return &Algebra{}
}

// AddEq records a linear equation sum(varSum) = constant, justified by
// dep. Monotone: equations are never retracted, only added to the
// basis.
func (a *Algebra) AddEq(varSum VarSum, constant *big.Rat, dep *Dependency) {
	row, used := reduceAgainstBasis(a.rows, varSum, constant)
	if len(row.terms) == 0 {
		// Either trivially true (0=0, nothing new) or contradictory
		// (0=nonzero, which cannot happen for a sound geometric input);
		// either way there is no new basis vector to keep.
		return
	}
	// Normalize so the leading coefficient is 1.
	lead := row.terms[0].Coeff
	norm := new(big.Rat).Inv(lead)
	newTerms := make(VarSum, len(row.terms))
	for i, t := range row.terms {
		newTerms[i] = algTerm{Var: t.Var, Coeff: new(big.Rat).Mul(t.Coeff, norm)}
	}
	newConst := new(big.Rat).Mul(row.constant, norm)
	deps := []*Dependency{}
	if dep != nil {
		deps = append(deps, dep)
	}
	for _, i := range used {
		deps = append(deps, a.rows[i].deps...)
	}
	a.rows = append(a.rows, algRow{terms: newTerms, constant: newConst, deps: dedupDeps(deps)})
}

// reduceAgainstBasis eliminates every basis row's leading variable from
// varSum/constant, producing the residual equation and the indices of
// the rows the elimination consumed.
func reduceAgainstBasis(rows []algRow, varSum VarSum, constant *big.Rat) (algRow, []int) {
	cur := append(VarSum(nil), varSum...)
	cst := new(big.Rat).Set(constant)
	var used []int
	for i, r := range rows {
		if len(r.terms) == 0 {
			continue
		}
		lead := r.terms[0].Var
		coeff := findCoeff(cur, lead)
		if coeff == nil || coeff.Sign() == 0 {
			continue
		}
		cur = subtractScaled(cur, r.terms, coeff)
		cst = new(big.Rat).Sub(cst, new(big.Rat).Mul(coeff, r.constant))
		used = append(used, i)
	}
	return algRow{terms: NewVarSum(cur...), constant: cst}, used
}

// dedupDeps drops duplicate dependencies by Repr, preserving first
// appearance, then sorts for stable emission.
func dedupDeps(deps []*Dependency) []*Dependency {
	seen := map[string]bool{}
	var out []*Dependency
	for _, d := range deps {
		if d == nil || seen[d.Repr()] {
			continue
		}
		seen[d.Repr()] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Repr() < out[j].Repr() })
	return out
}

func findCoeff(vs VarSum, name string) *big.Rat {
	for _, t := range vs {
		if t.Var == name {
			return t.Coeff
		}
	}
	return nil
}

func subtractScaled(vs VarSum, other VarSum, scale *big.Rat) VarSum {
	terms := append([]algTerm(nil), vs...)
	for _, t := range other {
		terms = append(terms, algTerm{Var: t.Var, Coeff: new(big.Rat).Neg(new(big.Rat).Mul(scale, t.Coeff))})
	}
	return NewVarSum(terms...)
}

// QueryEq decides whether sum(varSum) = constant is implied by the
// current linear hull.
func (a *Algebra) QueryEq(varSum VarSum, constant *big.Rat) bool {
	residual, _ := reduceAgainstBasis(a.rows, varSum, constant)
	return len(residual.terms) == 0 && residual.constant.Sign() == 0
}

// WhyEq returns a minimal set of previously added equations implying the
// query, or nil if the query does not hold. "Minimal" here is the union
// of witness sets of the basis rows the elimination chain for this query
// actually consumed — not a provably smallest set, but a deterministic,
// sufficient one.
func (a *Algebra) WhyEq(varSum VarSum, constant *big.Rat) ([]*Dependency, bool) {
	if !a.QueryEq(varSum, constant) {
		return nil, false
	}
	_, used := reduceAgainstBasis(a.rows, varSum, constant)
	var deps []*Dependency
	for _, i := range used {
		deps = append(deps, a.rows[i].deps...)
	}
	return dedupDeps(deps), true
}

// --- modulus-aware equations, for directed-angle facts (angle mod pi) ---
//
// An angle unknown is only meaningful modulo a full turn of pi; two
// equations that differ by an integer multiple of modulus are the same
// geometric fact. AddEqMod/QueryEqMod/WhyEqMod fold that congruence into
// the same Gaussian basis used for plain (ratio/length) equations: the
// constant term is stored as given, and a query holds when the residual
// constant is an integer multiple of modulus.

// isMultipleOf reports whether v is an integer multiple of modulus
// (modulus == 0 is treated as "no modulus": only v == 0 qualifies).
func isMultipleOf(v, modulus *big.Rat) bool {
	if modulus.Sign() == 0 {
		return v.Sign() == 0
	}
	q := new(big.Rat).Quo(v, modulus)
	return q.IsInt()
}

// AddEqMod records sum(varSum) ≡ constant (mod modulus), justified by
// dep.
func (a *Algebra) AddEqMod(varSum VarSum, constant, modulus *big.Rat, dep *Dependency) {
	a.AddEq(varSum, constant, dep)
	_ = modulus // the modulus is only consulted at query time; see QueryEqMod
}

// QueryEqMod decides whether sum(varSum) ≡ constant (mod modulus) is
// implied by the current linear hull.
func (a *Algebra) QueryEqMod(varSum VarSum, constant, modulus *big.Rat) bool {
	residual, _ := reduceAgainstBasis(a.rows, varSum, constant)
	return len(residual.terms) == 0 && isMultipleOf(residual.constant, modulus)
}

// WhyEqMod is WhyEq's modulus-aware counterpart.
func (a *Algebra) WhyEqMod(varSum VarSum, constant, modulus *big.Rat) ([]*Dependency, bool) {
	if !a.QueryEqMod(varSum, constant, modulus) {
		return nil, false
	}
	_, used := reduceAgainstBasis(a.rows, varSum, constant)
	var deps []*Dependency
	for _, i := range used {
		deps = append(deps, a.rows[i].deps...)
	}
	return dedupDeps(deps), true
}
