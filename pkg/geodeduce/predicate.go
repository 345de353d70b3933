package geodeduce

// Predicate is one member of the closed set of geometric relations.
// There is no runtime registration hook: new predicates are added by
// extending the Registry map below, not by satisfying some open
// interface discovered via reflection.
type Predicate interface {
	// Name is the predicate's stable string key (e.g. "coll", "para").
	Name() string

	// Parse resolves name tokens into symbol references and returns the
	// predicate's canonical argument tuple as a Statement. It returns an
	// *IllegalPredicateError for structurally invalid uses; the matcher
	// treats that as "no statement produced" and skips the binding.
	Parse(tokens []string, g *SymbolGraph) (*Statement, error)

	// CheckNumerical is the ground-truth test against coordinates.
	// Idempotent and side-effect-free.
	CheckNumerical(s *Statement, tol float64) bool

	// Check is the purely symbolic test against the symbol graph /
	// algebraic sub-engine.
	Check(s *Statement, dg *DependencyGraph) bool

	// Add records the fact symbolically: folds it into the symbol graph
	// or algebraic sub-engine as appropriate for this predicate's
	// structural form.
	Add(dep *Dependency, dg *DependencyGraph)

	// Why reconstructs the minimal dependency justifying s from current
	// symbolic state.
	Why(s *Statement, dg *DependencyGraph) (*Dependency, bool)
}

// Registry is the closed set of predicates, keyed by stable name. It is
// populated once, in registry.go's init, and never mutated at runtime.
var Registry = map[string]Predicate{}

func register(p Predicate) {
	Registry[p.Name()] = p
}
