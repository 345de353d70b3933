package geodeduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLineThroughCanonicalSign(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 Coord
	}{
		{"horizontal", Coord{0, 0}, Coord{1, 0}},
		{"vertical", Coord{0, 0}, Coord{0, 1}},
		{"diagonal", Coord{0, 0}, Coord{1, 1}},
		{"reversed diagonal", Coord{1, 1}, Coord{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := NewLineThrough(tc.p1, tc.p2)
			require.True(t, ok, "expected a line through distinct points")
			require.Falsef(t, l.A < 0 || (l.A == 0 && l.B > 0), "canonical sign convention violated: %+v", l)
			require.Truef(t, CloseEnough(l.Distance(tc.p1), 0) && CloseEnough(l.Distance(tc.p2), 0),
				"line does not pass through its defining points: %+v", l)
		})
	}
}

func TestNewLineThroughDegenerate(t *testing.T) {
	_, ok := NewLineThrough(Coord{1, 2}, Coord{1, 2})
	require.False(t, ok, "expected degenerate line to fail")
}

func TestLineLineIntersection(t *testing.T) {
	l1, _ := NewLineThrough(Coord{0, 0}, Coord{1, 0})
	l2, _ := NewLineThrough(Coord{0, 0}, Coord{0, 1})
	p, ok := LineLineIntersection(l1, l2)
	require.True(t, ok, "expected intersection")
	require.Truef(t, p.Close(Coord{0, 0}), "expected origin, got %+v", p)
}

func TestLineLineIntersectionParallel(t *testing.T) {
	l1, _ := NewLineThrough(Coord{0, 0}, Coord{1, 0})
	l2, _ := NewLineThrough(Coord{0, 1}, Coord{1, 1})
	_, ok := LineLineIntersection(l1, l2)
	require.False(t, ok, "expected parallel lines to have no intersection")
}

func TestNewCircleThroughPassesThroughPoints(t *testing.T) {
	c, ok := NewCircleThrough(Coord{1, 0}, Coord{0, 1}, Coord{-1, 0})
	require.True(t, ok, "expected a circumcircle")
	require.Truef(t, CloseEnough(c.Center.X, 0), "expected center near origin, got %+v", c.Center)
	for _, p := range []Coord{{1, 0}, {0, 1}, {-1, 0}} {
		require.Truef(t, CloseEnough(c.Center.Distance(p), c.Radius()), "point %+v not on circle %+v", p, c)
	}
}

func TestIsParallelAndIsPerp(t *testing.T) {
	l1, _ := NewLineThrough(Coord{0, 0}, Coord{1, 0})
	l2, _ := NewLineThrough(Coord{0, 5}, Coord{1, 5})
	l3, _ := NewLineThrough(Coord{0, 0}, Coord{0, 1})
	require.True(t, l1.IsParallel(l2), "expected l1 parallel to l2")
	require.True(t, l1.IsPerp(l3), "expected l1 perpendicular to l3")
	require.False(t, l1.IsParallel(l3), "did not expect l1 parallel to l3")
}
