package render

// triangleEquations is the per-triangle setup result: the three edge
// equations and, for every attribute lane, a parameter equation that
// linearly interpolates that lane, in screen space, across the triangle's
// interior. It is built once per triangle and stepped per pixel/block
// by edgeState and pixelState.
type triangleEquations struct {
	area2   float32
	e0, e1, e2 edgeEquation
	aVar    [MaxLanes]parameterEquation
	lanes   int
	valid   bool
}

// newTriangleEquations builds triangle setup from three post-transform
// vertices in winding order. v0, v1, v2 are Vectors whose first two
// lanes are the screen-space (x, y) coordinates and whose lanes
// [0, n) are the full attribute set to interpolate (n == v0.N).
//
// A triangle is degenerate or backfacing iff area2 <= 0; such triangles
// yield a triangleEquations with valid == false and no parameter
// equations constructed — the source language builds that array before
// checking area2, relying on the caller never to read it; here
// construction is deferred entirely so there is no uninitialized state
// to accidentally expose.
func newTriangleEquations(v0, v1, v2 Vector) triangleEquations {
	e0 := newEdgeEquation(v0.Data[0], v0.Data[1], v1.Data[0], v1.Data[1])
	e1 := newEdgeEquation(v1.Data[0], v1.Data[1], v2.Data[0], v2.Data[1])
	e2 := newEdgeEquation(v2.Data[0], v2.Data[1], v0.Data[0], v0.Data[1])

	area2 := e0.c + e1.c + e2.c

	te := triangleEquations{area2: area2, e0: e0, e1: e1, e2: e2, lanes: v0.N}
	if area2 <= 0 {
		return te
	}
	te.valid = true

	factor := 1 / area2
	for i := range v0.N {
		te.aVar[i] = newParameterEquation(v0.Data[i], v1.Data[i], v2.Data[i], e0, e1, e2, factor)
	}
	return te
}
