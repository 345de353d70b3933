package geodeduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantLengthCheckNumericalAndAlgebra(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 3, 4) // |ab| = 5

	stmt, err := ConstantLength{}.Parse([]string{"a", "b", "5"}, g)
	require.NoError(t, err)
	require.True(t, ConstantLength{}.CheckNumerical(stmt, 1e-9), "expected |ab| == 5")

	dg := NewDependencyGraph(g, NewAlgebra())
	require.False(t, ConstantLength{}.Check(stmt, dg), "did not expect the fact to check before it has been added")
	dep := NewDependency(stmt, ReasonConstruction, nil)
	ConstantLength{}.Add(dep, dg)
	require.True(t, ConstantLength{}.Check(stmt, dg), "expected the fact to check once added")
}

func TestConstantLengthParseRejectsNonPositiveValue(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 1, 0)
	_, err := ConstantLength{}.Parse([]string{"a", "b", "-1"}, g)
	require.Error(t, err, "expected a non-positive length literal to be rejected")
	_, err = ConstantLength{}.Parse([]string{"a", "b", "0"}, g)
	require.Error(t, err, "expected a zero length literal to be rejected")
}

func TestConstantAngleCheckNumericalRightAngle(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 1, 0)
	mustPoint(t, g, "c", 0, 0)
	mustPoint(t, g, "d", 0, 1)

	stmt, err := ConstantAngle{}.Parse([]string{"a", "b", "c", "d", "1/2"}, g)
	require.NoError(t, err)
	require.True(t, ConstantAngle{}.CheckNumerical(stmt, 1e-9),
		"expected angle(ab,cd) == 1/2 turn (a right angle in this direction-mod-pi convention)")
}

func TestConstantAngleAlgebraicRoundTrip(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 1, 0)
	mustPoint(t, g, "c", 0, 0)
	mustPoint(t, g, "d", 0, 1)

	stmt, err := ConstantAngle{}.Parse([]string{"a", "b", "c", "d", "1/2"}, g)
	require.NoError(t, err)
	dg := NewDependencyGraph(g, NewAlgebra())
	dep := NewDependency(stmt, ReasonConstruction, nil)
	ConstantAngle{}.Add(dep, dg)
	require.True(t, ConstantAngle{}.Check(stmt, dg), "expected the just-added constant-angle fact to check")
}

func TestParseRatTokenAcceptsDecimalAndFraction(t *testing.T) {
	_, err := parseRatToken("3/4")
	require.NoError(t, err, "expected 3/4 to parse")
	_, err = parseRatToken("1.25")
	require.NoError(t, err, "expected 1.25 to parse")
	_, err = parseRatToken("not-a-number")
	require.Error(t, err, "expected a non-numeric token to fail")
}

func TestPythagoreanPremisesAndConclusions(t *testing.T) {
	g := NewSymbolGraph()
	mustPoint(t, g, "a", 0, 0)
	mustPoint(t, g, "b", 3, 0)
	mustPoint(t, g, "c", 3, 4) // right angle at b, 3-4-5 triangle

	premise, err := PythagoreanPremises{}.Parse([]string{"a", "b", "c"}, g)
	require.NoError(t, err, "parse premise")
	require.True(t, PythagoreanPremises{}.CheckNumerical(premise, 1e-9), "expected a right angle at b")

	conclusion, err := PythagoreanConclusions{}.Parse([]string{"a", "b", "c"}, g)
	require.NoError(t, err, "parse conclusion")
	require.True(t, PythagoreanConclusions{}.CheckNumerical(conclusion, 1e-9), "expected |ab|^2+|bc|^2 == |ac|^2")

	dg := NewDependencyGraph(g, NewAlgebra())
	require.False(t, PythagoreanConclusions{}.Check(conclusion, dg),
		"did not expect the conclusion to check before the premise is recorded")
	premiseDep := NewDependency(premise, ReasonPythagoras, nil)
	PythagoreanPremises{}.Add(premiseDep, dg)
	require.True(t, PythagoreanConclusions{}.Check(conclusion, dg),
		"expected the conclusion to check once the premise is recorded")
}
