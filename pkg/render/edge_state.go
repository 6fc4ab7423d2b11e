package render

// edgeState carries the three edge-equation values evaluated at a
// specific (x, y), and knows how to step itself to a neighboring pixel
// or block corner without re-evaluating from scratch.
type edgeState struct {
	x, y         float32
	ev0, ev1, ev2 float32
}

// newEdgeState evaluates all three edges of tri at (x, y).
func newEdgeState(tri *triangleEquations, x, y float32) edgeState {
	return edgeState{
		x: x, y: y,
		ev0: tri.e0.evaluate(x, y),
		ev1: tri.e1.evaluate(x, y),
		ev2: tri.e2.evaluate(x, y),
	}
}

// test reports whether the current position lies inside all three
// edges (and therefore inside the triangle, modulo the top-left tie
// break baked into each edge).
func (s edgeState) test(tri *triangleEquations) bool {
	return tri.e0.test(s.ev0) && tri.e1.test(s.ev1) && tri.e2.test(s.ev2)
}

func (s *edgeState) stepX(tri *triangleEquations, stepSize float32) {
	s.ev0 = tri.e0.stepX(s.ev0, stepSize)
	s.ev1 = tri.e1.stepX(s.ev1, stepSize)
	s.ev2 = tri.e2.stepX(s.ev2, stepSize)
}

func (s *edgeState) stepXByOne(tri *triangleEquations) {
	s.ev0 = tri.e0.stepXByOne(s.ev0)
	s.ev1 = tri.e1.stepXByOne(s.ev1)
	s.ev2 = tri.e2.stepXByOne(s.ev2)
}

func (s *edgeState) stepY(tri *triangleEquations, stepSize float32) {
	s.ev0 = tri.e0.stepY(s.ev0, stepSize)
	s.ev1 = tri.e1.stepY(s.ev1, stepSize)
	s.ev2 = tri.e2.stepY(s.ev2, stepSize)
}

func (s *edgeState) stepYByOne(tri *triangleEquations) {
	s.ev0 = tri.e0.stepYByOne(s.ev0)
	s.ev1 = tri.e1.stepYByOne(s.ev1)
	s.ev2 = tri.e2.stepYByOne(s.ev2)
}

// triangleEdgeTest records the three individual edge test outcomes for
// one corner of a block, used by the block classifier to tell trivial
// accept/reject apart from a block that genuinely needs per-pixel
// testing.
type triangleEdgeTest struct {
	t0, t1, t2 bool
}

func newTriangleEdgeTest(tri *triangleEquations, e edgeState) triangleEdgeTest {
	return triangleEdgeTest{
		t0: tri.e0.test(e.ev0),
		t1: tri.e1.test(e.ev1),
		t2: tri.e2.test(e.ev2),
	}
}

func (t triangleEdgeTest) allTrue() bool {
	return t.t0 && t.t1 && t.t2
}

// allSame reports whether all three edge tests agree. A corner can
// fail this while still not being a clean reject: the corner itself is
// outside the triangle along some edges but the block it anchors may
// still contain covered pixels, which is exactly why the block
// classifier checks both allTrue and allSame before trusting a corner.
func (t triangleEdgeTest) allSame() bool {
	return t.t0 == t.t1 && t.t0 == t.t2
}
