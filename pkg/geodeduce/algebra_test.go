package geodeduce

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgebraAddAndQueryEq(t *testing.T) {
	a := NewAlgebra()
	dep := NewDependency(nil, ReasonConstruction, nil)

	// x - y = 2
	a.AddEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"y", big.NewRat(-1, 1)}), big.NewRat(2, 1), dep)

	require.True(t, a.QueryEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"y", big.NewRat(-1, 1)}), big.NewRat(2, 1)),
		"expected x - y = 2 to be implied")
	require.False(t, a.QueryEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"y", big.NewRat(-1, 1)}), big.NewRat(3, 1)),
		"did not expect x - y = 3 to be implied")
}

func TestAlgebraTransitiveChain(t *testing.T) {
	a := NewAlgebra()
	d1 := NewDependency(nil, "step1", nil)
	d2 := NewDependency(nil, "step2", nil)

	// x = y, y = z  =>  x = z
	a.AddEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"y", big.NewRat(-1, 1)}), big.NewRat(0, 1), d1)
	a.AddEq(NewVarSum(algTerm{"y", big.NewRat(1, 1)}, algTerm{"z", big.NewRat(-1, 1)}), big.NewRat(0, 1), d2)

	require.True(t, a.QueryEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"z", big.NewRat(-1, 1)}), big.NewRat(0, 1)),
		"expected x = z to be derivable transitively")

	deps, ok := a.WhyEq(NewVarSum(algTerm{"x", big.NewRat(1, 1)}, algTerm{"z", big.NewRat(-1, 1)}), big.NewRat(0, 1))
	require.True(t, ok, "expected WhyEq to succeed")
	require.NotEmpty(t, deps, "expected at least one justifying dependency")
}

func TestAlgebraMonotoneNeverRetracts(t *testing.T) {
	a := NewAlgebra()
	dep := NewDependency(nil, ReasonConstruction, nil)
	vs := NewVarSum(algTerm{"x", big.NewRat(1, 1)})
	a.AddEq(vs, big.NewRat(5, 1), dep)
	before := len(a.rows)
	// Re-adding the same fact must not shrink the basis.
	a.AddEq(vs, big.NewRat(5, 1), dep)
	require.GreaterOrEqual(t, len(a.rows), before, "basis shrank after re-adding an already-known equation")
	require.True(t, a.QueryEq(vs, big.NewRat(5, 1)), "expected original equation to still hold")
}

func TestAlgebraQueryEqMod(t *testing.T) {
	a := NewAlgebra()
	dep := NewDependency(nil, ReasonConstruction, nil)
	// ang:ab - ang:cd = 1/4 (a quarter of pi; angle unknowns are fractions
	// of pi, so a right angle would be 1/2)
	vs := NewVarSum(algTerm{"ang:ab", big.NewRat(1, 1)}, algTerm{"ang:cd", big.NewRat(-1, 1)})
	a.AddEqMod(vs, big.NewRat(1, 4), piMod, dep)

	require.True(t, a.QueryEqMod(vs, big.NewRat(1, 4), piMod), "expected the stored angle equation to hold")
	// Adding a full turn should still be considered equal modulo piMod.
	require.True(t, a.QueryEqMod(vs, big.NewRat(5, 4), piMod), "expected congruence modulo a full turn to hold")
	require.False(t, a.QueryEqMod(vs, big.NewRat(1, 2), piMod), "did not expect an unrelated angle value to hold")
}

func TestNewVarSumMergesAndDropsZero(t *testing.T) {
	vs := NewVarSum(
		algTerm{"x", big.NewRat(1, 1)},
		algTerm{"x", big.NewRat(1, 1)},
		algTerm{"y", big.NewRat(1, 1)},
		algTerm{"y", big.NewRat(-1, 1)},
	)
	require.Lenf(t, vs, 1, "expected merged sum to be just {x: 2}, got %+v", vs)
	require.Equal(t, "x", vs[0].Var)
}
