package geodeduce_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/geodeduce/internal/constructiontest"
	"github.com/gitrdm/geodeduce/internal/ruleparser"
	"github.com/gitrdm/geodeduce/pkg/geodeduce"
)

func TestEngineOrthocenterBaselineIsExhaustedWithoutRules(t *testing.T) {
	g := geodeduce.NewSymbolGraph()
	dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())

	a, b, c, err := constructiontest.Triangle(g)
	require.NoError(t, err, "triangle")
	d, err := constructiontest.Orthocenter(g, dg, a, b, c, "d")
	require.NoError(t, err, "orthocenter")

	goalStmt, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
	require.NoError(t, err, "parsing goal")
	_ = d

	cfg := geodeduce.DefaultConfig()
	cfg.MaxSaturationSweeps = 5
	eng, err := geodeduce.NewEngine(dg, nil, []*geodeduce.Statement{goalStmt}, cfg)
	require.NoError(t, err, "new engine")
	info, err := eng.Run(context.Background())
	require.NoError(t, err, "run")
	require.False(t, info.Success, "expected no proof without any deduction rules")
	require.True(t, info.Exhausted, "expected the run to report exhaustion")
	require.Equalf(t, 0, info.GoalsProven, "unexpected goal counts: %+v", info)
	require.Equalf(t, 1, info.GoalsTotal, "unexpected goal counts: %+v", info)
}

func TestEngineIncenterExcenterProvenFromPremisesAlone(t *testing.T) {
	g := geodeduce.NewSymbolGraph()
	dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())

	a, b, c, err := constructiontest.Triangle(g)
	require.NoError(t, err, "triangle")
	in, err := constructiontest.Incenter(g, a, b, c, "d")
	require.NoError(t, err, "incenter")
	ex, err := constructiontest.Excenter(g, a, b, c, "e")
	require.NoError(t, err, "excenter")

	goalStmt, err := geodeduce.Perpendicular{}.Parse([]string{"d", "c", "c", "e"}, g)
	require.NoError(t, err, "parsing goal")
	dep := geodeduce.NewDependency(goalStmt, geodeduce.ReasonNumericalCheck, nil)
	geodeduce.Perpendicular{}.Add(dep, dg)
	_, _ = in, ex

	cfg := geodeduce.DefaultConfig()
	eng, err := geodeduce.NewEngine(dg, nil, []*geodeduce.Statement{goalStmt}, cfg)
	require.NoError(t, err, "new engine")
	info, err := eng.Run(context.Background())
	require.NoError(t, err, "run")
	require.True(t, info.Success, "expected the already-recorded fact to satisfy the goal")
	require.Equalf(t, 1, info.GoalsProven, "unexpected goal counts: %+v", info)
	require.Equalf(t, 1, info.GoalsTotal, "unexpected goal counts: %+v", info)
}

// similarityRules is the minimal rule set for the orthocenter proof with
// an auxiliary point: AA similarity establishes simtri(abe, dce) from
// the two construction perpendiculars, and ratio-plus-included-angle
// similarity then yields simtri(aed, bec), whose corresponding angles
// close the goal perpendicularity.
const similarityRules = `Similar triangles by two pairs of equal angles
eqangle a b a e d c d e, eqangle b a b e c d c e
simtri a b e d c e

Similar triangles by ratio and included angle
eqratio e a e b e d e c, eqangle e a e b e d e c
simtri a e d b e c
`

func buildOrthocenterAuxiliary(t *testing.T) (*geodeduce.DependencyGraph, *geodeduce.SymbolGraph) {
	t.Helper()
	g := geodeduce.NewSymbolGraph()
	dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())
	a, b, c, err := constructiontest.Triangle(g)
	require.NoError(t, err, "triangle")
	d, err := constructiontest.Orthocenter(g, dg, a, b, c, "d")
	require.NoError(t, err, "orthocenter")
	_, err = constructiontest.OrthocenterAuxiliary(g, dg, a, b, c, d)
	require.NoError(t, err, "auxiliary point")
	return dg, g
}

func TestEngineOrthocenterWithAuxiliaryPointSucceeds(t *testing.T) {
	dg, g := buildOrthocenterAuxiliary(t)

	rules, err := ruleparser.Parse(context.Background(), strings.NewReader(similarityRules))
	require.NoError(t, err, "parsing rules")

	simtriGoal, err := geodeduce.SimilarTriangles{}.Parse([]string{"a", "b", "e", "d", "c", "e"}, g)
	require.NoError(t, err, "parsing simtri goal")
	perpGoal, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
	require.NoError(t, err, "parsing perp goal")

	eng, err := geodeduce.NewEngine(dg, rules, []*geodeduce.Statement{simtriGoal, perpGoal}, geodeduce.DefaultConfig())
	require.NoError(t, err, "new engine")
	info, err := eng.Run(context.Background())
	require.NoError(t, err, "run")
	require.Truef(t, info.Success, "expected the similarity rules to prove both goals: %+v", info)
	require.Equal(t, 2, info.GoalsProven)

	// The angle facts the auxiliary point unlocks must all hold.
	for _, tokens := range [][]string{
		{"e", "a", "a", "b", "e", "b", "d", "c"},
		{"e", "a", "a", "b", "e", "d", "d", "c"},
		{"b", "e", "e", "a", "c", "e", "e", "d"},
	} {
		stmt, err := geodeduce.EqualAngles{}.Parse(tokens, g)
		require.NoError(t, err, "parsing eqangle %v", tokens)
		require.Truef(t, dg.Check(stmt), "expected %s to check", stmt.Repr())
	}

	// Success implies an extractable proof referencing only true facts.
	text := geodeduce.ExtractProof(dg, []*geodeduce.Statement{simtriGoal, perpGoal})
	require.Contains(t, text, "g0:")
	require.Contains(t, text, "g1:")
}

func TestEngineOrthocenterProofBacktracePartition(t *testing.T) {
	dg, g := buildOrthocenterAuxiliary(t)

	rules, err := ruleparser.Parse(context.Background(), strings.NewReader(similarityRules))
	require.NoError(t, err, "parsing rules")
	goal, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
	require.NoError(t, err, "parsing goal")

	eng, err := geodeduce.NewEngine(dg, rules, []*geodeduce.Statement{goal}, geodeduce.DefaultConfig())
	require.NoError(t, err, "new engine")
	info, err := eng.Run(context.Background())
	require.NoError(t, err, "run")
	require.Truef(t, info.Success, "expected a proof: %+v", info)

	deps := geodeduce.ProofDeps(dg, []*geodeduce.Statement{goal})
	setup := map[string]bool{}
	auxiliary := map[string]bool{}
	for _, d := range deps {
		if len(d.Premises) > 0 {
			continue // leaf facts only
		}
		switch d.Statement.Pred.Name() {
		case "perp":
			setup[d.Statement.Repr()] = true
		case "coll":
			auxiliary[d.Statement.Repr()] = true
		default:
			t.Fatalf("unexpected leaf dependency %s", d.Repr())
		}
	}
	require.Equal(t, map[string]bool{"perp(a,c,b,d)": true, "perp(a,b,c,d)": true}, setup,
		"setup slice must be exactly the two construction perpendiculars")
	require.Equal(t, map[string]bool{"coll(a,c,e)": true, "coll(b,d,e)": true}, auxiliary,
		"auxiliary slice must be exactly the two collinearities about e")
}

func TestDegenerateConstructionExhaustsRetryBudget(t *testing.T) {
	g := geodeduce.NewSymbolGraph()
	rng := rand.New(rand.NewSource(7))
	_, _, _, err := constructiontest.DegenerateRightTriangle(g, geodeduce.DefaultConfig().ConstructionRetryBudget, rng)
	require.Error(t, err, "a uniformly random triangle never satisfies an exact right angle")
	require.Empty(t, g.Points(), "no points may leak out of a failed construction")
}

func TestEngineKnownStatementsStayNumericallyTrue(t *testing.T) {
	dg, g := buildOrthocenterAuxiliary(t)
	rules, err := ruleparser.Parse(context.Background(), strings.NewReader(similarityRules))
	require.NoError(t, err, "parsing rules")
	goal, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
	require.NoError(t, err, "parsing goal")
	eng, err := geodeduce.NewEngine(dg, rules, []*geodeduce.Statement{goal}, geodeduce.DefaultConfig())
	require.NoError(t, err, "new engine")

	before := dg.Size()
	_, err = eng.Run(context.Background())
	require.NoError(t, err, "run")
	require.GreaterOrEqual(t, dg.Size(), before, "the set of known statements only grows")

	tol := geodeduce.DefaultConfig().PredicateTolerance
	for _, stmt := range dg.Statements() {
		require.Truef(t, stmt.Pred.CheckNumerical(stmt, tol),
			"known statement %s must be numerically true on the diagram", stmt.Repr())
	}
}
