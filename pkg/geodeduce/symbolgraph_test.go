package geodeduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCollinearMergesOverlappingLines(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 2, 0)
	d := mustPoint(t, g, "d", 3, 0)

	l1, _ := g.AddCollinear([]*Point{a, b, c}, nil)
	l2, _ := g.AddCollinear([]*Point{b, c, d}, nil)

	require.Equal(t, l2.Rep(), l1.Rep(), "expected overlapping collinearity facts to merge into one representative line")
	require.True(t, g.CheckCollinear([]*Point{a, b, c, d}), "expected the merged line to cover all four points")
}

func TestAddCollinearIsIdempotentWhenAlreadyCovered(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 2, 0)

	g.AddCollinear([]*Point{a, b, c}, nil)
	before := len(g.Lines())
	g.AddCollinear([]*Point{a, b}, nil)
	require.Len(t, g.Lines(), before, "expected no new line when the points are already covered")
}

func TestWitnessLinePrefersSmallestCoveringFellow(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 2, 0)
	d := mustPoint(t, g, "d", 3, 0)

	dep1 := NewDependency(nil, "abc construction", nil)
	g.AddCollinear([]*Point{a, b, c}, dep1)
	dep2 := NewDependency(nil, "bcd construction", nil)
	g.AddCollinear([]*Point{b, c, d}, dep2)

	stmt, err := Collinear{}.Parse([]string{"a", "b", "c"}, g)
	require.NoError(t, err)
	witness, ok := g.WitnessLine([]*Point{a, b, c}, stmt)
	require.True(t, ok, "expected a witness for a,b,c")
	require.NotNil(t, witness, "expected a non-nil witness dependency")
	require.Equal(t, "abc construction", witness.Reason, "expected the three-point line's dependency, not the merged four-point line's")
}

func TestWitnessLineFailsWithoutACoveringLine(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 2, 3)

	stmt, err := Collinear{}.Parse([]string{"a", "b", "c"}, g)
	require.NoError(t, err)
	_, ok := g.WitnessLine([]*Point{a, b, c}, stmt)
	require.False(t, ok, "expected no witness when no line covers these points")
}

func TestCreatePointRejectsDuplicateNames(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	_, err := g.CreatePoint("a", Coord{X: 1, Y: 1}, nil)
	require.Error(t, err, "expected an error creating a point with an already-used name")
}

func TestDependencyGraphAddEdgeAndCheck(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 2, 0)
	_ = a
	_ = b
	_ = c

	dg := NewDependencyGraph(g, NewAlgebra())
	stmt, err := Collinear{}.Parse([]string{"a", "b", "c"}, g)
	require.NoError(t, err)
	require.False(t, dg.Check(stmt), "did not expect the statement to check before it is added")
	dep := NewDependency(stmt, ReasonConstruction, nil)
	Collinear{}.Add(dep, dg)
	require.True(t, dg.Check(stmt), "expected the statement to check after it is added")
	require.True(t, dg.HasEdge(dep), "expected the exact dependency edge to be recorded")
}
