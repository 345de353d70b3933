package geodeduce

import (
	"fmt"
	"math"
	"math/big"
)

// InfQuotientError reports that a measured real number (a length or a
// ratio) has no reasonable rational representative: continued-fraction
// approximation did not converge to a small-denominator fraction within
// the engine's tolerance. Predicates that hit this skip the symbolic add
// and log a warning ("inconvertible irrational length"); it never halts
// the run.
type InfQuotientError struct {
	Value float64
}

func (e *InfQuotientError) Error() string {
	return fmt.Sprintf("geodeduce: %g has no small rational representative", e.Value)
}

// maxQuotientDenominator bounds the denominator search in Quotient; beyond
// this, a value is treated as irrational for symbolic purposes.
const maxQuotientDenominator = 1 << 20

// Quotient returns a small-denominator rational approximating v within
// ATOM, via continued-fraction expansion, or an InfQuotientError if none
// is found below maxQuotientDenominator.
func Quotient(v float64) (*big.Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &InfQuotientError{Value: v}
	}
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := v
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(x))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 == 0 || k2 > maxQuotientDenominator {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		approx := float64(h1) / float64(k1)
		if closeEnough(approx, v, ATOM) {
			return big.NewRat(h1, k1), nil
		}
		frac := x - math.Floor(x)
		if frac < 1e-15 {
			break
		}
		x = 1.0 / frac
	}
	return nil, &InfQuotientError{Value: v}
}

// simplify reduces n/d to lowest terms with a positive denominator.
func simplify(n, d int64) (int64, int64) {
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), abs64(d))
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
