package geodeduce

import (
	"sort"

	"github.com/charmbracelet/log"
)

// factEntry is the hypergraph's per-statement bucket: the statement
// itself (for Pretty/Repr access) and the set of dependencies that have
// been offered as justifications for it, keyed by Dependency.Repr() so
// re-adding an identical edge is a no-op.
type factEntry struct {
	stmt *Statement
	deps map[string]*Dependency
}

// DependencyGraph is the engine's dependency hypergraph: it exclusively
// owns all statements and dependency edges created during a run. It also
// holds the SymbolGraph and Algebra sub-engine, since a predicate's
// Check/Add/Why need both.
type DependencyGraph struct {
	Symbols *SymbolGraph
	Algebra *Algebra

	facts        map[string]*factEntry
	cfgTolerance float64 // set by Engine from Config; zero means "use default"
	log          *log.Logger
}

// NewDependencyGraph returns an empty hypergraph wired to g and alg.
func NewDependencyGraph(g *SymbolGraph, alg *Algebra) *DependencyGraph {
	return &DependencyGraph{Symbols: g, Algebra: alg, facts: make(map[string]*factEntry)}
}

// Known reports whether stmt is a key of the hypergraph.
func (dg *DependencyGraph) Known(stmt *Statement) bool {
	_, ok := dg.facts[stmt.Repr()]
	return ok
}

// HasEdge reports dep.Statement ∈ graph ∧ dep ∈ graph[dep.Statement].
func (dg *DependencyGraph) HasEdge(dep *Dependency) bool {
	e, ok := dg.facts[dep.Statement.Repr()]
	if !ok {
		return false
	}
	_, ok = e.deps[dep.Repr()]
	return ok
}

// AddEdge inserts dep as a hyperedge, initializing the conclusion's entry
// if it is new. An edge is always inserted even if the conclusion is
// already known with a shorter justification elsewhere — the proof
// extractor picks the shortest at extraction time.
func (dg *DependencyGraph) AddEdge(dep *Dependency) {
	key := dep.Statement.Repr()
	e, ok := dg.facts[key]
	if !ok {
		e = &factEntry{stmt: dep.Statement, deps: make(map[string]*Dependency)}
		dg.facts[key] = e
	}
	e.deps[dep.Repr()] = dep
}

// edgesFor returns the dependencies recorded for stmt, sorted by Repr for
// deterministic traversal.
func (dg *DependencyGraph) edgesFor(stmt *Statement) []*Dependency {
	e, ok := dg.facts[stmt.Repr()]
	if !ok {
		return nil
	}
	out := make([]*Dependency, 0, len(e.deps))
	for _, d := range e.deps {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Repr() < out[j].Repr() })
	return out
}

// Check reports whether stmt is true: either already known, or
// numerically true and symbolically checkable, in which case it is
// memoized into the hypergraph with no premises.
func (dg *DependencyGraph) Check(stmt *Statement) bool {
	if dg.Known(stmt) {
		return true
	}
	if !stmt.Pred.CheckNumerical(stmt, dg.tolerance()) {
		return false
	}
	if stmt.Pred.Check(stmt, dg) {
		if _, ok := dg.facts[stmt.Repr()]; !ok {
			dg.facts[stmt.Repr()] = &factEntry{stmt: stmt, deps: make(map[string]*Dependency)}
		}
		return true
	}
	return false
}

// tolerance is the predicate-level epsilon; kept as a method so future
// runs can make it configurable without touching every call site.
func (dg *DependencyGraph) tolerance() float64 {
	if dg.cfgTolerance != 0 {
		return dg.cfgTolerance
	}
	return DefaultConfig().PredicateTolerance
}

// Premises returns the dependencies whose reason is IN_PREMISES (axioms
// from the problem), sorted for determinism.
func (dg *DependencyGraph) Premises() []*Dependency {
	var out []*Dependency
	for _, e := range dg.facts {
		for _, d := range e.deps {
			if d.Reason == ReasonInPremises {
				out = append(out, d)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Repr() < out[j].Repr() })
	return out
}

// SetTolerance overrides the predicate-level epsilon used by Check.
func (dg *DependencyGraph) SetTolerance(tol float64) {
	dg.cfgTolerance = tol
}

// SetLogger directs the graph's diagnostic warnings (e.g. a predicate
// skipping its symbolic add on an inconvertible irrational length) to l.
// Engine.Run wires the context-carried logger here; callers driving
// Step themselves may set their own sink.
func (dg *DependencyGraph) SetLogger(l *log.Logger) {
	dg.log = l
}

func (dg *DependencyGraph) logger() *log.Logger {
	if dg.log != nil {
		return dg.log
	}
	return log.Default()
}

// Statements returns every known statement, sorted by Repr.
func (dg *DependencyGraph) Statements() []*Statement {
	out := make([]*Statement, 0, len(dg.facts))
	for _, e := range dg.facts {
		out = append(out, e.stmt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Repr() < out[j].Repr() })
	return out
}

// DumpEdge is one hyperedge of the machine-readable hypergraph dump.
type DumpEdge struct {
	Conclusion string   `json:"conclusion"`
	Reason     string   `json:"reason"`
	Premises   []string `json:"premises,omitempty"`
}

// Dump flattens the hypergraph into a sorted, JSON-marshalable edge
// list, one entry per recorded justification.
func (dg *DependencyGraph) Dump() []DumpEdge {
	var out []DumpEdge
	for _, stmt := range dg.Statements() {
		for _, d := range dg.edgesFor(stmt) {
			e := DumpEdge{Conclusion: d.Statement.Repr(), Reason: d.Reason}
			for _, p := range d.Premises {
				e.Premises = append(e.Premises, p.Repr())
			}
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of distinct known statements, usable by a
// saturation loop's exhaustion check as a before/after sweep comparison
// instead of a single dirty bit.
func (dg *DependencyGraph) Size() int {
	return len(dg.facts)
}
