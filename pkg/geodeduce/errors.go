package geodeduce

import "fmt"

// Degenerate intersections (parallel lines, concentric circles, a miss)
// are not errors at all in this package: the numeric solvers return a
// result kind (an ok=false tag on the intersection result) and callers
// match on it, so there is no intersection error type to catch.

// IllegalPredicateError reports a structurally invalid predicate
// application (duplicate points, too few arguments, a degenerate
// quadruple). parse returns this; the matcher treats it as "no
// statement" and skips the binding without surfacing an error upward.
type IllegalPredicateError struct {
	Predicate string
	Reason    string
}

func (e *IllegalPredicateError) Error() string {
	return fmt.Sprintf("geodeduce: illegal %s: %s", e.Predicate, e.Reason)
}

// ProofExtractionError is fatal: it indicates an inconsistent hypergraph
// (a cycle with no acyclic alternative, or a premise that resolves to
// nothing) that should never occur if saturation reported success. It is
// the one error kind in this package that halts the run rather than being
// absorbed locally.
type ProofExtractionError struct {
	Statement string
	Reason    string
}

func (e *ProofExtractionError) Error() string {
	return fmt.Sprintf("geodeduce: proof extraction failed for %s: %s", e.Statement, e.Reason)
}
