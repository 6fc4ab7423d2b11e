package render

import "github.com/kitferret/ferret3d/pkg/math3d"

// MVPVertexShader transforms an 8-lane input vertex (position, normal,
// UV) by a model-view-projection matrix, producing clip coordinates in
// lanes 0-3 and passing the normal and UV through in lanes 4-8. It
// mirrors the reference's SimpleVertexShader: a pure function closing
// over the matrices it needs, invoked three times per triangle by
// Renderer.DrawMesh.
type MVPVertexShader struct {
	MVP    math3d.Mat4
	Normal math3d.Mat4 // model matrix (no projection) for normal transform
}

func (s MVPVertexShader) Process(in Vector) Vector {
	pos := math3d.V3(float64(in.Data[0]), float64(in.Data[1]), float64(in.Data[2]))
	nrm := math3d.V3(float64(in.Data[3]), float64(in.Data[4]), float64(in.Data[5]))

	clip := s.MVP.MulVec4(math3d.V4FromV3(pos, 1))
	worldNormal := s.Normal.MulVec3Dir(nrm).Normalize()

	return NewVector(
		float32(clip.X), float32(clip.Y), float32(clip.Z), float32(clip.W),
		float32(worldNormal.X), float32(worldNormal.Y), float32(worldNormal.Z),
		in.Data[6], in.Data[7],
	)
}

// LitTexturedPixelShader samples a texture and modulates it by a
// Lambertian diffuse term against LightDir, falling back to a flat
// BaseColor when Texture is nil.
type LitTexturedPixelShader struct {
	Texture   *Texture
	BaseColor ShaderColor
	LightDir  math3d.Vec3 // must be normalized, pointing from surface toward the light
	Ambient   float32
}

func (s LitTexturedPixelShader) Process(attrs Vector) ShaderColor {
	nrm := math3d.V3(float64(attrs.Data[4]), float64(attrs.Data[5]), float64(attrs.Data[6])).Normalize()
	diffuse := float32(nrm.Dot(s.LightDir))
	if diffuse < 0 {
		diffuse = 0
	}
	intensity := s.Ambient + (1-s.Ambient)*diffuse

	base := s.BaseColor
	if s.Texture != nil {
		u := float64(attrs.Data[7])
		v := float64(attrs.Data[8])
		c := s.Texture.Sample(u, v)
		base = ShaderColor{
			R: float32(c.R) / 255,
			G: float32(c.G) / 255,
			B: float32(c.B) / 255,
		}
	}

	return ShaderColor{
		R: base.R * intensity,
		G: base.G * intensity,
		B: base.B * intensity,
	}
}
