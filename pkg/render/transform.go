package render

// clipRejects applies the six-plane homogeneous clip test to three
// post-vertex-shader vertices. A triangle is rejected only if all three
// vertices lie strictly outside the same half-space — any triangle that
// straddles a plane is fully accepted, since there is no geometry
// clipping in this renderer; the viewport transform may then place
// vertices outside the screen bounding box, which the rasterizer
// handles by clamping.
func clipRejects(v0, v1, v2 Vector) bool {
	x0, y0, z0, w0 := v0.Data[0], v0.Data[1], v0.Data[2], v0.Data[3]
	x1, y1, z1, w1 := v1.Data[0], v1.Data[1], v1.Data[2], v1.Data[3]
	x2, y2, z2, w2 := v2.Data[0], v2.Data[1], v2.Data[2], v2.Data[3]

	if w0 < x0 && w1 < x1 && w2 < x2 {
		return true
	}
	if -w0 > x0 && -w1 > x1 && -w2 > x2 {
		return true
	}
	if w0 < y0 && w1 < y1 && w2 < y2 {
		return true
	}
	if -w0 > y0 && -w1 > y1 && -w2 > y2 {
		return true
	}
	if w0 < z0 && w1 < z1 && w2 < z2 {
		return true
	}
	if -w0 > z0 && -w1 > z1 && -w2 > z2 {
		return true
	}
	return false
}

// transformVertex performs the perspective divide and viewport mapping
// of a single post-vertex-shader vertex, returning the result, given the
// screen dimensions. Lane 3 (w) is preserved so a pixel shader can
// recover 1/w; lanes 4..N pass through unchanged. No perspective
// correction is applied here or later: the parameter equations built
// from the resulting screen-space positions are linear in screen space.
func transformVertex(v Vector, width, height int) Vector {
	const near, far = float32(0), float32(1)

	invW := 1 / v.Data[3]
	px := float32(width) / 2
	py := float32(height) / 2

	out := v
	out.Data[0] = px*(v.Data[0]*invW) + px
	out.Data[1] = py*(v.Data[1]*invW) + py
	out.Data[2] = 0.5*(far-near)*(v.Data[2]*invW) + 0.5*(near+far)
	out.Data[3] = v.Data[3]
	return out
}
