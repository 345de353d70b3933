package geodeduce

// init populates Registry once, at package load, with the closed set of
// predicates this engine understands. Adding a predicate means adding a
// case here, not registering one at runtime.
func init() {
	register(Collinear{})
	register(Parallel{})
	register(Perpendicular{})
	register(Cyclic{})
	register(Midpoint{})
	register(Congruent{})
	register(EqualAngles{})
	register(EqualRatios{})
	register(SimilarTriangles{})
	register(ConstantLength{})
	register(ConstantAngle{})
	register(PythagoreanPremises{})
	register(PythagoreanConclusions{})
}
