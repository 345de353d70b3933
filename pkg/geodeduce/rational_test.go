package geodeduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotientExactFractions(t *testing.T) {
	cases := []struct {
		v          float64
		wantNum    int64
		wantDenom  int64
		wantIntLit bool
	}{
		{0.5, 1, 2, false},
		{0.75, 3, 4, false},
		{2.0, 2, 1, true},
		{1.0 / 3.0, 1, 3, false},
	}
	for _, tc := range cases {
		got, err := Quotient(tc.v)
		require.NoErrorf(t, err, "Quotient(%v)", tc.v)
		require.Equalf(t, tc.wantNum, got.Num().Int64(), "Quotient(%v) numerator", tc.v)
		require.Equalf(t, tc.wantDenom, got.Denom().Int64(), "Quotient(%v) denominator", tc.v)
	}
}

func TestQuotientRejectsNonFiniteInput(t *testing.T) {
	_, err := Quotient(math.NaN())
	require.Error(t, err, "expected an error for NaN")
	_, err = Quotient(math.Inf(1))
	require.Error(t, err, "expected an error for +Inf")
}

func TestQuotientRejectsValueWithNoSmallDenominator(t *testing.T) {
	// pi's best convergent below the search bound (1<<20),
	// 1146408/364913, is off by about 1.6e-12, still outside ATOM.
	_, err := Quotient(math.Pi)
	require.Error(t, err, "expected pi to have no small rational representative within ATOM")
}

func TestSimplifyReducesAndNormalizesSign(t *testing.T) {
	n, d := simplify(4, -8)
	require.Equal(t, int64(-1), n)
	require.Equal(t, int64(2), d)
}
