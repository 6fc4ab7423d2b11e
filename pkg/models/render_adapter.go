package models

import "github.com/kitferret/ferret3d/pkg/render"

// VertexLanes is the IN-lane layout ToRenderMesh emits: position (3),
// normal (3), UV (2).
const VertexLanes = 8

// ToRenderMesh converts m into the IN-lane vertex/index representation
// the core rasterizer consumes. Every attribute is narrowed to
// float32, matching the core's single-precision numerics; the
// world-space Mesh type above stays float64 since it's ambient/demo
// loading code, not core geometry math.
func (m *Mesh) ToRenderMesh() render.Mesh {
	verts := make([]render.Vector, len(m.Vertices))
	for i, v := range m.Vertices {
		verts[i] = render.NewVector(
			float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z),
			float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z),
			float32(v.UV.X), float32(v.UV.Y),
		)
	}

	indices := make([][3]int, len(m.Faces))
	for i, f := range m.Faces {
		indices[i] = f.V
	}

	return render.Mesh{Vertices: verts, Indices: indices}
}
