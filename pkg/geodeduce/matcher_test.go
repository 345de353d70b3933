package geodeduce

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/geodeduce/internal/matchercache"
)

func midpointImpliesCongruentRule() Rule {
	return Rule{
		Description: "midpoint implies congruent",
		Variables:   []string{"m", "a", "b"},
		Premises:    []Sentence{{Predicate: "midp", Vars: []string{"m", "a", "b"}}},
		Conclusions: []Sentence{{Predicate: "cong", Vars: []string{"m", "a", "m", "b"}}},
	}
}

func TestMatcherFindsMidpointBinding(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 0)
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)
	mustPoint(t, g, "x", 5, 5) // a decoy point unrelated to any midpoint relation

	m := NewMatcher(midpointImpliesCongruentRule())
	deps := m.Match(1e-9, g)
	require.NotEmpty(t, deps, "expected at least one match for the true midpoint m of a,b")
	for _, d := range deps {
		require.Equalf(t, "cong", d.Statement.Pred.Name(), "expected only cong conclusions")
	}
}

func TestMatcherRejectsNonMidpoints(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 1) // not the midpoint of a,b
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)

	m := NewMatcher(midpointImpliesCongruentRule())
	deps := m.Match(1e-9, g)
	require.Empty(t, deps, "expected no matches")
}

func TestMatcherCachesResultAcrossCalls(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 0)
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)

	m := NewMatcher(midpointImpliesCongruentRule())
	first := m.Match(1e-9, g)
	second := m.Match(1e-9, g)
	require.Len(t, second, len(first), "expected repeated Match calls to return the same cached result")
}

func TestMatcherDeterministicOrder(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 0)
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)

	deps1 := NewMatcher(midpointImpliesCongruentRule()).Match(1e-9, g)
	deps2 := NewMatcher(midpointImpliesCongruentRule()).Match(1e-9, g)
	require.Len(t, deps2, len(deps1), "expected two independent matchers to find the same number of matches")
	for i := range deps1 {
		require.Equalf(t, deps2[i].Repr(), deps1[i].Repr(), "expected deterministic emission order at index %d", i)
	}
}

func TestMatcherOnDiskCacheReplaysBindings(t *testing.T) {
	dir := t.TempDir()
	cachePath := dir + "/matcher-cache.json"
	cache, err := matchercache.Open(cachePath)
	require.NoError(t, err, "opening cache")

	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 0)
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)

	m1 := NewMatcher(midpointImpliesCongruentRule())
	m1.UseCache(cache)
	first := m1.Match(1e-9, g)
	require.NotEmpty(t, first, "expected a match on the first (uncached) enumeration")
	require.NoError(t, cache.Flush())

	reopened, err := matchercache.Open(cachePath)
	require.NoError(t, err, "reopening cache")
	m2 := NewMatcher(midpointImpliesCongruentRule())
	m2.UseCache(reopened)
	second := m2.Match(1e-9, g)
	require.Len(t, second, len(first), "expected the replayed cache to reproduce the same match count")
}
