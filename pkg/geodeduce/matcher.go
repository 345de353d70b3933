package geodeduce

import (
	"sort"

	"github.com/gitrdm/geodeduce/internal/matchercache"
)

// Matcher enumerates candidate dependencies for one rule against the
// current symbol graph. Matches are memoized per matcher instance
// (one per rule) since the cartesian-product enumeration is the
// dominant cost of a sweep and later sweeps revisit the same rule
// against a symbol graph that has only grown. An optional on-disk cache
// (internal/matchercache) persists discovered bindings across runs.
type Matcher struct {
	rule    Rule
	matched bool
	cached  []candidateMatch

	cache    *matchercache.Cache
	cacheKey string
}

// UseCache attaches an on-disk binding cache to the matcher, keyed by
// the rule's description.
func (m *Matcher) UseCache(c *matchercache.Cache) {
	m.cache = c
	m.cacheKey = m.rule.Description
}

// candidateMatch is one binding that survived every premise's parse and
// check_numerical: the variable binding itself (needed to instantiate
// conclusions) and the premise statements it produced.
type candidateMatch struct {
	binding  map[string]string
	premises []*Statement
}

// NewMatcher returns a matcher for rule. Matching does not happen until
// Match is called.
func NewMatcher(rule Rule) *Matcher {
	return &Matcher{rule: rule}
}

// Match enumerates the cartesian product of points^k (k = len(variables))
// and returns one Dependency per (binding, conclusion) pair that
// survived every premise's parse and numeric check. Results are
// sorted by Repr for deterministic emission. Once computed, the match
// set is cached on the Matcher and returned again on subsequent calls
// without re-enumerating against a possibly-grown symbol graph — callers
// that need fresh points picked up mid-run construct a new Matcher.
func (m *Matcher) Match(tol float64, g *SymbolGraph) []*Dependency {
	if !m.matched {
		m.cached = m.enumerate(tol, g)
		m.matched = true
	}
	var out []*Dependency
	for _, cm := range m.cached {
		for _, concl := range m.rule.Conclusions {
			stmt, err := concl.parseWith(cm.binding, g)
			if err != nil {
				continue
			}
			out = append(out, NewDependency(stmt, m.rule.Description, cm.premises))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Repr() < out[j].Repr() })
	return out
}

// enumerate walks the cartesian product points^k via recursive binding
// extension, keeping only bindings whose full premise tuple survives
// tryBinding. If a binding cache is attached, a previous run's recorded
// binding list is replayed instead of re-enumerating the product, and a
// first-time enumeration's successful bindings are recorded back into
// it (write-if-new-only, per matchercache's protocol).
func (m *Matcher) enumerate(tol float64, g *SymbolGraph) []candidateMatch {
	if m.cache != nil {
		if cached, ok := m.cache.Bindings(m.cacheKey); ok {
			var out []candidateMatch
			for _, b := range cached {
				premises, ok := m.tryBinding(b, tol, g)
				if ok {
					out = append(out, candidateMatch{binding: b, premises: premises})
				}
			}
			return out
		}
	}
	points := g.Points()
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name_
	}
	vars := m.rule.Variables
	var out []candidateMatch
	var recordedBindings []map[string]string
	binding := make(map[string]string, len(vars))
	var rec func(i int)
	rec = func(i int) {
		if i == len(vars) {
			premises, ok := m.tryBinding(binding, tol, g)
			if ok {
				frozen := make(map[string]string, len(binding))
				for k, v := range binding {
					frozen[k] = v
				}
				out = append(out, candidateMatch{binding: frozen, premises: premises})
				recordedBindings = append(recordedBindings, frozen)
			}
			return
		}
		for _, n := range names {
			binding[vars[i]] = n
			rec(i + 1)
		}
		delete(binding, vars[i])
	}
	rec(0)
	if m.cache != nil {
		m.cache.Store(m.cacheKey, recordedBindings)
	}
	return out
}

// tryBinding parses and numerically checks every premise sentence under
// binding; returns the accumulated premise statements, or ok=false on
// the first premise that fails to parse or fails its numeric check.
func (m *Matcher) tryBinding(binding map[string]string, tol float64, g *SymbolGraph) ([]*Statement, bool) {
	premises := make([]*Statement, 0, len(m.rule.Premises))
	for _, sentence := range m.rule.Premises {
		stmt, err := sentence.parseWith(binding, g)
		if err != nil {
			return nil, false
		}
		if !stmt.Pred.CheckNumerical(stmt, tol) {
			return nil, false
		}
		premises = append(premises, stmt)
	}
	return premises, true
}
