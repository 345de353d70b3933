package geodeduce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSmallGraph(t *testing.T) (*DependencyGraph, *SymbolGraph) {
	t.Helper()
	g := NewSymbolGraph()
	mustPoint(t, g, "m", 1, 0)
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)
	return NewDependencyGraph(g, NewAlgebra()), g
}

func TestHypergraphHasEdgeAndKnown(t *testing.T) {
	dg, g := buildSmallGraph(t)
	stmt, err := Midpoint{}.Parse([]string{"m", "a", "b"}, g)
	require.NoError(t, err)
	dep := NewDependency(stmt, ReasonInPremises, nil)

	require.False(t, dg.Known(stmt))
	require.False(t, dg.HasEdge(dep))

	Midpoint{}.Add(dep, dg)
	require.True(t, dg.Known(stmt))
	require.True(t, dg.HasEdge(dep))

	prems := dg.Premises()
	require.Len(t, prems, 1, "only the IN_PREMISES edge qualifies as an axiom")
	require.Equal(t, stmt.Repr(), prems[0].Statement.Repr())
}

func TestHypergraphKeepsMultipleJustifications(t *testing.T) {
	dg, g := buildSmallGraph(t)
	stmt, err := Collinear{}.Parse([]string{"a", "b", "m"}, g)
	require.NoError(t, err)

	Collinear{}.Add(NewDependency(stmt, ReasonConstruction, nil), dg)
	other, err := Midpoint{}.Parse([]string{"m", "a", "b"}, g)
	require.NoError(t, err)
	Midpoint{}.Add(NewDependency(other, ReasonConstruction, nil), dg)
	Collinear{}.Add(NewDependency(stmt, "some rule", []*Statement{other}), dg)

	require.Len(t, dg.edgesFor(stmt), 2, "both justifications must be retained for the extractor to choose from")
}

func TestHypergraphDumpIsSortedAndMarshalable(t *testing.T) {
	dg, g := buildSmallGraph(t)
	midp, err := Midpoint{}.Parse([]string{"m", "a", "b"}, g)
	require.NoError(t, err)
	Midpoint{}.Add(NewDependency(midp, ReasonInPremises, nil), dg)

	dump := dg.Dump()
	require.NotEmpty(t, dump)
	for i := 1; i < len(dump); i++ {
		require.LessOrEqual(t, dump[i-1].Conclusion, dump[i].Conclusion, "dump must be sorted by conclusion")
	}
	data, err := json.Marshal(dump)
	require.NoError(t, err, "the dump is the machine-readable export, it must marshal")
	require.Contains(t, string(data), `"midp(m,a,b)"`)

	stmts := dg.Statements()
	require.Len(t, stmts, dg.Size())
	for i := 1; i < len(stmts); i++ {
		require.Less(t, stmts[i-1].Repr(), stmts[i].Repr())
	}
}
