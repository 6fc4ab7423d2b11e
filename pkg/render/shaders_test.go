package render

import (
	"testing"

	"github.com/kitferret/ferret3d/pkg/math3d"
)

func TestMVPVertexShaderIdentityPassesThroughAttributes(t *testing.T) {
	s := MVPVertexShader{MVP: math3d.Identity(), Normal: math3d.Identity()}

	in := NewVector(1, 2, 3, 0, 1, 0, 0.25, 0.75)
	out := s.Process(in)

	if out.N != 9 {
		t.Fatalf("expected 9 output lanes, got %d", out.N)
	}
	// Identity MVP: clip xyz passes through, w=1.
	want := []float32{1, 2, 3, 1, 0, 1, 0, 0.25, 0.75}
	for i, w := range want {
		if !approxEqual(out.Data[i], w) {
			t.Errorf("lane %d: got %v want %v", i, out.Data[i], w)
		}
	}
}

func TestMVPVertexShaderTranslationAffectsPositionNotNormal(t *testing.T) {
	mvp := math3d.Translate(math3d.V3(5, 0, 0))
	s := MVPVertexShader{MVP: mvp, Normal: mvp}

	in := NewVector(0, 0, 0, 0, 1, 0, 0, 0)
	out := s.Process(in)

	if !approxEqual(out.Data[0], 5) {
		t.Errorf("expected translated X=5, got %v", out.Data[0])
	}
	// A pure translation has no effect on a direction vector.
	if !approxEqual(out.Data[4], 0) || !approxEqual(out.Data[5], 1) || !approxEqual(out.Data[6], 0) {
		t.Errorf("expected normal to survive translation unchanged, got (%v,%v,%v)", out.Data[4], out.Data[5], out.Data[6])
	}
}

func TestLitTexturedPixelShaderFlatColorNoLight(t *testing.T) {
	s := LitTexturedPixelShader{
		BaseColor: ShaderColor{R: 1, G: 1, B: 1},
		LightDir:  math3d.V3(0, 0, 1),
		Ambient:   0.2,
	}
	// Normal facing away from the light: diffuse term clamps to 0, leaving only ambient.
	attrs := NewVector(0, 0, 0, 0, 0, 0, -1, 0, 0)
	c := s.Process(attrs)

	if !approxEqual(c.R, 0.2) || !approxEqual(c.G, 0.2) || !approxEqual(c.B, 0.2) {
		t.Errorf("expected ambient-only color (0.2,0.2,0.2), got %+v", c)
	}
}

func TestLitTexturedPixelShaderFullyLit(t *testing.T) {
	s := LitTexturedPixelShader{
		BaseColor: ShaderColor{R: 1, G: 0.5, B: 0},
		LightDir:  math3d.V3(0, 0, 1),
		Ambient:   0.0,
	}
	// Normal pointing straight at the light: diffuse term is 1, full base color.
	attrs := NewVector(0, 0, 0, 0, 0, 0, 1, 0, 0)
	c := s.Process(attrs)

	if !approxEqual(c.R, 1) || !approxEqual(c.G, 0.5) || !approxEqual(c.B, 0) {
		t.Errorf("expected fully-lit base color (1,0.5,0), got %+v", c)
	}
}

func TestLitTexturedPixelShaderSamplesTexture(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.SetPixel(0, 0, RGB(10, 20, 30))
	tex.SetPixel(1, 0, RGB(10, 20, 30))
	tex.SetPixel(0, 1, RGB(10, 20, 30))
	tex.SetPixel(1, 1, RGB(10, 20, 30))

	s := LitTexturedPixelShader{
		Texture:  tex,
		LightDir: math3d.V3(0, 0, 1),
		Ambient:  1.0, // fully ambient so intensity is exactly 1, isolating the texture sample
	}
	attrs := NewVector(0, 0, 0, 0, 0, 0, 1, 0.5, 0.5)
	c := s.Process(attrs)

	want := ShaderColor{R: 10.0 / 255, G: 20.0 / 255, B: 30.0 / 255}
	if !approxEqual(c.R, want.R) || !approxEqual(c.G, want.G) || !approxEqual(c.B, want.B) {
		t.Errorf("expected texture-sampled color %+v, got %+v", want, c)
	}
}
