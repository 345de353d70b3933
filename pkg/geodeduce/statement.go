package geodeduce

import (
	"fmt"
	"math/big"
	"sort"
)

// Statement is a predicate applied to canonicalized arguments. Two
// statements are equal iff their Repr() are equal; Parse is responsible
// for producing canonical argument order, so Statement itself never
// re-sorts.
type Statement struct {
	Pred  Predicate
	Args  []Symbol
	Value *big.Rat // set only for constant-valued predicates (length/angle/ratio)

	repr string
}

// NewStatement builds a statement from already-canonicalized args and
// precomputes its Repr.
func NewStatement(pred Predicate, args []Symbol, value *big.Rat) *Statement {
	s := &Statement{Pred: pred, Args: args, Value: value}
	s.repr = s.computeRepr()
	return s
}

func (s *Statement) computeRepr() string {
	out := s.Pred.Name() + "("
	for i, a := range s.Args {
		if i > 0 {
			out += ","
		}
		out += a.SymbolName()
	}
	if s.Value != nil {
		out += ";" + s.Value.RatString()
	}
	out += ")"
	return out
}

// Repr returns the canonical, stable representation used for equality,
// sorting, and as a hypergraph key.
func (s *Statement) Repr() string {
	if s.repr == "" {
		s.repr = s.computeRepr()
	}
	return s.repr
}

// Pretty renders a statement for proof text, e.g. "coll(a,b,c)".
func (s *Statement) Pretty() string {
	return s.Repr()
}

// WithNew rebuilds a statement with a (possibly) different predicate and
// args; a nil pred or args keeps this statement's own, and value is used
// as given.
func (s *Statement) WithNew(pred Predicate, args []Symbol, value *big.Rat) *Statement {
	if pred == nil {
		pred = s.Pred
	}
	if args == nil {
		args = s.Args
	}
	return NewStatement(pred, args, value)
}

// points narrows Args to Points, panicking is avoided: callers only use
// this from within a predicate's own Parse/Check where arity was already
// validated.
func points(args []Symbol) []*Point {
	out := make([]*Point, len(args))
	for i, a := range args {
		out[i] = a.(*Point)
	}
	return out
}

func lines(args []Symbol) []*Line {
	out := make([]*Line, len(args))
	for i, a := range args {
		out[i] = a.(*Line)
	}
	return out
}

// --- canonicalization helpers shared by predicate Parse implementations ---

// asSymbols widens a point slice to the Symbol slice a Statement holds.
func asSymbols(pts []*Point) []Symbol {
	out := make([]Symbol, len(pts))
	for i, p := range pts {
		out[i] = p
	}
	return out
}

// sortPointArgs returns points sorted lexicographically by name, the
// canonicalization collinear and cyclic use.
func sortPointArgs(pts []*Point) []*Point {
	out := append([]*Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name_ < out[j].Name_ })
	return out
}

// pointPair is an internally-sorted unordered pair of points, used to
// canonicalize segment/line arguments shared by parallel, perpendicular,
// and congruent.
type pointPair struct{ A, B *Point }

func newPointPair(a, b *Point) pointPair {
	if a.Name_ > b.Name_ {
		a, b = b, a
	}
	return pointPair{a, b}
}

func (p pointPair) less(o pointPair) bool {
	if p.A.Name_ != o.A.Name_ {
		return p.A.Name_ < o.A.Name_
	}
	return p.B.Name_ < o.B.Name_
}

// canonicalPairOfPairs sorts {p1,p2} internally and {p3,p4} internally,
// then orders the two resulting pairs — the shared canonicalization of
// parallel(A,B,C,D), perpendicular(A,B,C,D), and congruent(A,B,C,D).
func canonicalPairOfPairs(a1, a2, b1, b2 *Point) (pointPair, pointPair) {
	p1 := newPointPair(a1, a2)
	p2 := newPointPair(b1, b2)
	if p2.less(p1) {
		p1, p2 = p2, p1
	}
	return p1, p2
}

func (p pointPair) asArgs() []Symbol { return []Symbol{p.A, p.B} }

func duplicatesAmong(tokens []string) bool {
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			return true
		}
		seen[t] = true
	}
	return false
}

func resolvePoints(tokens []string, g *SymbolGraph, predName string) ([]*Point, error) {
	out := make([]*Point, len(tokens))
	for i, t := range tokens {
		p, ok := g.Point(t)
		if !ok {
			return nil, &IllegalPredicateError{Predicate: predName, Reason: fmt.Sprintf("unknown point %q", t)}
		}
		out[i] = p
	}
	return out, nil
}
