package geodeduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualAnglesCheckNumericalTwoRightAngles(t *testing.T) {
	g := NewSymbolGraph()
	a := mustPoint(t, g, "a", 0, 0)
	b := mustPoint(t, g, "b", 1, 0)
	c := mustPoint(t, g, "c", 0, 0)
	d := mustPoint(t, g, "d", 0, 1)
	e := mustPoint(t, g, "e", 0, 0)
	f := mustPoint(t, g, "f", 1, 1)
	gg := mustPoint(t, g, "gg", 0, 0)
	h := mustPoint(t, g, "h", -1, 1)
	_ = a
	_ = b
	_ = c
	_ = d
	_ = e
	_ = f
	_ = gg
	_ = h

	stmt, err := EqualAngles{}.Parse([]string{"a", "b", "c", "d", "e", "f", "gg", "h"}, g)
	require.NoError(t, err)
	require.True(t, EqualAngles{}.CheckNumerical(stmt, 1e-9),
		"expected both angle differences to be a right angle mod a full turn")
}

func TestEqualAnglesAlgebraicRoundTrip(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 1, 0)
	mustPoint(t, g, "c", 0, 0)
	mustPoint(t, g, "d", 0, 1)
	mustPoint(t, g, "e", 0, 0)
	mustPoint(t, g, "f", 1, 1)
	mustPoint(t, g, "gg", 0, 0)
	mustPoint(t, g, "h", -1, 1)

	dg := NewDependencyGraph(g, NewAlgebra())
	stmt, err := EqualAngles{}.Parse([]string{"a", "b", "c", "d", "e", "f", "gg", "h"}, g)
	require.NoError(t, err)
	dep := NewDependency(stmt, ReasonConstruction, nil)
	EqualAngles{}.Add(dep, dg)
	require.True(t, EqualAngles{}.Check(stmt, dg), "expected the just-added equal-angle fact to check")
}

func TestEqualRatiosCheckNumericalAndAlgebra(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0) // |ab| = 2
	mustPoint(t, g, "c", 0, 0)
	mustPoint(t, g, "d", 1, 0) // |cd| = 1, ratio 2
	mustPoint(t, g, "e", 0, 0)
	mustPoint(t, g, "f", 4, 0) // |ef| = 4
	mustPoint(t, g, "gg", 0, 0)
	mustPoint(t, g, "h", 2, 0) // |gh| = 2, ratio 2

	stmt, err := EqualRatios{}.Parse([]string{"a", "b", "c", "d", "e", "f", "gg", "h"}, g)
	require.NoError(t, err)
	require.True(t, EqualRatios{}.CheckNumerical(stmt, 1e-9), "expected |ab|/|cd| == |ef|/|gh|")

	dg := NewDependencyGraph(g, NewAlgebra())
	dep := NewDependency(stmt, ReasonConstruction, nil)
	EqualRatios{}.Add(dep, dg)
	require.True(t, EqualRatios{}.Check(stmt, dg), "expected the just-added equal-ratio fact to check")
}

func TestEqualRatiosParseRejectsDegenerateSegment(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)
	mustPoint(t, g, "e", 0, 0)
	mustPoint(t, g, "f", 4, 0)
	mustPoint(t, g, "gg", 0, 0)
	mustPoint(t, g, "h", 2, 0)

	_, err := EqualRatios{}.Parse([]string{"a", "b", "a", "a", "e", "f", "gg", "h"}, g)
	require.Error(t, err, "expected a degenerate cd segment to be rejected at parse time")
}

func TestEqualRatiosCheckFailsBeforeItIsAdded(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 2, 0)
	mustPoint(t, g, "c", 0, 0)
	mustPoint(t, g, "d", 1, 0)
	mustPoint(t, g, "e", 0, 0)
	mustPoint(t, g, "f", 4, 0)
	mustPoint(t, g, "gg", 0, 0)
	mustPoint(t, g, "h", 2, 0)

	stmt, err := EqualRatios{}.Parse([]string{"a", "b", "c", "d", "e", "f", "gg", "h"}, g)
	require.NoError(t, err)
	dg := NewDependencyGraph(g, NewAlgebra())
	require.False(t, EqualRatios{}.Check(stmt, dg), "did not expect the fact to check before it has been added to the algebra engine")
}
