package render

// pixelState holds the current interpolated attribute vector at a pixel
// position and knows how to step it to a neighboring pixel. Lane 3
// (the homogeneous w) is always present; the pixel shader receives w
// there, from which it can form 1/w, along with whatever user
// attributes follow.
type pixelState struct {
	data  Vector
	lanes int
}

// newPixelState evaluates every attribute lane of tri at (x, y). This
// mirrors the source's PixelData::new, except the lane array starts
// zeroed (via the Vector zero value) rather than uninitialized memory —
// there is no unsafe escape hatch to reach for in Go, so there is
// nothing to guard against here.
func newPixelState(tri *triangleEquations, x, y float32) pixelState {
	var ps pixelState
	ps.lanes = tri.lanes
	ps.data.N = tri.lanes
	for i := range tri.lanes {
		ps.data.Data[i] = tri.aVar[i].evaluate(x, y)
	}
	return ps
}

func (ps *pixelState) stepX(tri *triangleEquations) {
	for i := range ps.lanes {
		ps.data.Data[i] = tri.aVar[i].stepX(ps.data.Data[i], 1)
	}
}

func (ps *pixelState) stepY(tri *triangleEquations) {
	for i := range ps.lanes {
		ps.data.Data[i] = tri.aVar[i].stepY(ps.data.Data[i], 1)
	}
}
