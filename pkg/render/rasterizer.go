package render

// BlockSize is the side length, in pixels, of the square tiles the
// rasterizer classifies before falling into per-pixel edge testing.
// Larger tiles amortize the edge-equation evaluation better but waste
// more work on triangles with a lot of silhouette; 8 is the value the
// reference settles on and this implementation does not expose it as a
// knob.
const BlockSize = 8

// stepSize is the offset, in pixels, from a block's near corner to its
// far corner: BlockSize-1. Edge values are sampled from (x+1, y+1), so a
// block at (x, y) is classified by its corners (x+1,y+1), (x+8,y+1),
// (x+1,y+8), (x+8,y+8).
const stepSize = float32(BlockSize - 1)

// Renderer is the core rasterizer: it owns a depth buffer borrowed for
// its lifetime and writes into a ScreenSink. It performs no allocation
// once constructed.
type Renderer struct {
	sink      ScreenSink
	depth     depthBuffer
	width     int
	height    int
	depthTest bool
}

// NewRenderer constructs a renderer over the given sink, borrowing
// depthBuf (which must have length width*height) for the renderer's
// entire lifetime. The depth test starts disabled, matching the
// reference's default.
func NewRenderer(sink ScreenSink, depthBuf []float32) *Renderer {
	w, h := sink.Width(), sink.Height()
	return &Renderer{
		sink:   sink,
		depth:  newDepthBuffer(depthBuf, w, h),
		width:  w,
		height: h,
	}
}

// SetDepthTest enables or disables the depth test.
func (r *Renderer) SetDepthTest(enabled bool) {
	r.depthTest = enabled
}

// ClearColor fills the entire color surface with an opaque RGB.
func (r *Renderer) ClearColor(rr, gg, bb uint8) {
	r.sink.Clear(rr, gg, bb)
}

// ClearDepth fills the entire depth buffer with value. A frame
// typically clears with 0.0, which is "furthest away" under the 1/w
// convention since the test is d > dst.
func (r *Renderer) ClearDepth(value float32) {
	r.depth.clear(value)
}

// Present commits the color surface to the display.
func (r *Renderer) Present() error {
	return r.sink.Present()
}

// Mesh is an indexed triangle list: IN-lane vertices plus index
// triples referencing them. There is no strip/fan representation and
// no adjacency.
type Mesh struct {
	Vertices []Vector
	Indices  [][3]int
}

// DrawMesh runs every triangle of mesh through vs and ps: vertex shader
// transform, clip rejection, perspective divide and viewport mapping,
// triangle setup, and block-wise rasterization.
func (r *Renderer) DrawMesh(mesh Mesh, vs VertexShader, ps PixelShader) {
	for _, tri := range mesh.Indices {
		v0 := vs.Process(mesh.Vertices[tri[0]])
		v1 := vs.Process(mesh.Vertices[tri[1]])
		v2 := vs.Process(mesh.Vertices[tri[2]])
		r.DrawTriangle(v0, v1, v2, ps)
	}
}

// DrawTriangle rasterizes a single triangle given three
// post-vertex-shader vertices (homogeneous clip coordinates in lanes
// 0..3, user attributes in lanes 4..N).
func (r *Renderer) DrawTriangle(v0, v1, v2 Vector, ps PixelShader) {
	if clipRejects(v0, v1, v2) {
		return
	}

	t0 := transformVertex(v0, r.width, r.height)
	t1 := transformVertex(v1, r.width, r.height)
	t2 := transformVertex(v2, r.width, r.height)

	// Reversed order imposes a consistent winding with the frontface
	// convention area2 > 0.
	tri := newTriangleEquations(t2, t1, t0)
	if !tri.valid {
		return
	}

	minX, minY, maxX, maxY := boundingBox(t0, t1, t2, r.width, r.height)
	if minX >= maxX || minY >= maxY {
		return
	}

	for x := minX; x < maxX; x += BlockSize {
		for y := minY; y < maxY; y += BlockSize {
			r.rasterBlock(&tri, ps, x, y, maxX, maxY)
		}
	}
}

func boundingBox(v0, v1, v2 Vector, width, height int) (minX, minY, maxX, maxY int) {
	minXf := min3(v0.Data[0], v1.Data[0], v2.Data[0])
	minYf := min3(v0.Data[1], v1.Data[1], v2.Data[1])
	maxXf := max3(v0.Data[0], v1.Data[0], v2.Data[0])
	maxYf := max3(v0.Data[1], v1.Data[1], v2.Data[1])

	minX = clampInt(int(minXf), 0, width)
	minY = clampInt(int(minYf), 0, height)
	maxX = clampInt(int(maxXf), 0, width)
	maxY = clampInt(int(maxYf), 0, height)
	return
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rasterBlock classifies the BlockSize x BlockSize tile anchored at
// (x, y) against tri's three edges using its four corners, then either
// skips it (trivial reject), draws it with edge testing disabled
// (trivial accept), or draws it with edge testing enabled (partial
// coverage).
func (r *Renderer) rasterBlock(tri *triangleEquations, ps PixelShader, x, y, maxX, maxY int) {
	fx, fy := float32(x), float32(y)

	edge00 := newEdgeState(tri, fx+1, fy+1)
	edge01 := edge00
	edge01.stepY(tri, stepSize)
	edge10 := edge00
	edge10.stepX(tri, stepSize)
	edge11 := edge01
	edge11.stepX(tri, stepSize)

	test00 := newTriangleEdgeTest(tri, edge00)
	test01 := newTriangleEdgeTest(tri, edge01)
	test10 := newTriangleEdgeTest(tri, edge10)
	test11 := newTriangleEdgeTest(tri, edge11)

	allTestFalse := !test00.allTrue() && !test01.allTrue() && !test10.allTrue() && !test11.allTrue()

	var trivialReject bool
	if allTestFalse {
		trivialReject = test00.allSame() && test01.allSame() && test10.allSame() && test11.allSame()
	}
	if trivialReject {
		return
	}

	trivialAccept := test00.allTrue() && test01.allTrue() && test10.allTrue() && test11.allTrue()

	blockMaxX := clampInt(x+BlockSize, 0, maxX)
	blockMaxY := clampInt(y+BlockSize, 0, maxY)

	if trivialAccept {
		r.drawBlock(tri, ps, edge00, x, y, blockMaxX, blockMaxY, false)
	} else {
		r.drawBlock(tri, ps, edge00, x, y, blockMaxX, blockMaxY, true)
	}
}

// drawBlock walks the (possibly clamped) tile row by row, column by
// column, evaluating pixel state and — when testEdges is set — edge
// state at every pixel.
func (r *Renderer) drawBlock(tri *triangleEquations, ps PixelShader, edge edgeState, x, y, maxX, maxY int, testEdges bool) {
	pixelRow := newPixelState(tri, edge.x, edge.y)
	edgeRow := edge

	for py := y; py < maxY; py++ {
		pixel := pixelRow
		e := edgeRow

		for px := x; px < maxX; px++ {
			d := 1 / pixel.data.Data[3]

			if !testEdges || e.test(tri) {
				if r.depth.test(r.depthTest, px, py, d) {
					c := ps.Process(pixel.data)
					rr, gg, bb := c.Quantize()
					r.sink.SetPixel(px, py, rr, gg, bb)
				}
			}

			pixel.stepX(tri)
			if testEdges {
				e.stepXByOne(tri)
			}
		}

		pixelRow.stepY(tri)
		if testEdges {
			edgeRow.stepYByOne(tri)
		}
	}
}
