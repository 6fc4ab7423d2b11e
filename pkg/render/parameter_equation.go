package render

// parameterEquation is a*x + b*y + c, the screen-space linear (not
// perspective-correct) interpolant for a single attribute lane across a
// triangle. Unlike an
// edge equation it isn't built from two vertices but from all three
// triangle vertices and all three edge equations, cyclically: the
// coefficient contributed by edge i is weighted by the vertex opposite
// it, scaled by 1/area2 so the plane reproduces v0/v1/v2 exactly at the
// triangle's corners.
type parameterEquation struct {
	a, b, c float32
}

// newParameterEquation builds the interpolant for one attribute lane,
// where v0, v1, v2 are that lane's value at each vertex (in winding
// order), e0/e1/e2 are the triangle's three edge equations in the same
// cyclic order (e0: v0->v1, e1: v1->v2, e2: v2->v0), and factor is
// 1/area2.
func newParameterEquation(v0, v1, v2 float32, e0, e1, e2 edgeEquation, factor float32) parameterEquation {
	a := factor * (v2*e0.a + v0*e1.a + v1*e2.a)
	b := factor * (v2*e0.b + v0*e1.b + v1*e2.b)
	c := factor * (v2*e0.c + v0*e1.c + v1*e2.c)
	return parameterEquation{a: a, b: b, c: c}
}

func (p parameterEquation) evaluate(x, y float32) float32 {
	return p.a*x + p.b*y + p.c
}

func (p parameterEquation) stepX(v, stepSize float32) float32 {
	return v + p.a*stepSize
}

func (p parameterEquation) stepY(v, stepSize float32) float32 {
	return v + p.b*stepSize
}
