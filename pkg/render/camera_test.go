package render

import (
	"math"
	"testing"

	"github.com/kitferret/ferret3d/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.FOV != math.Pi/3 {
		t.Errorf("expected default FOV of 60 degrees, got %v", c.FOV)
	}
	if c.Near != 0.1 || c.Far != 1000 {
		t.Errorf("unexpected default clip planes: near=%v far=%v", c.Near, c.Far)
	}
}

func TestCameraViewMatrixCachesUntilDirtied(t *testing.T) {
	c := NewCamera()
	first := c.ViewMatrix()

	// A second call without any mutation must return the same cached matrix.
	second := c.ViewMatrix()
	if first != second {
		t.Fatalf("expected cached view matrix to be stable across calls")
	}

	c.SetPosition(math3d.V3(1, 2, 3))
	third := c.ViewMatrix()
	if third == first {
		t.Fatalf("expected view matrix to change after SetPosition invalidated the cache")
	}
}

func TestCameraProjectionMatrixCachesUntilDirtied(t *testing.T) {
	c := NewCamera()
	first := c.ProjectionMatrix()
	second := c.ProjectionMatrix()
	if first != second {
		t.Fatalf("expected cached projection matrix to be stable across calls")
	}

	c.SetFOV(math.Pi / 2)
	third := c.ProjectionMatrix()
	if third == first {
		t.Fatalf("expected projection matrix to change after SetFOV invalidated the cache")
	}
}

func TestCameraLookAtFacesTarget(t *testing.T) {
	c := NewCamera()
	c.Position = math3d.V3(0, 0, 5)
	c.LookAt(math3d.V3(0, 0, 0))

	fwd := c.Forward()
	// Looking from +Z toward the origin points down -Z.
	if !approxEqual(float32(fwd.X), 0) || !approxEqual(float32(fwd.Y), 0) || fwd.Z >= 0 {
		t.Errorf("expected forward to point toward -Z, got %+v", fwd)
	}
}

func TestCameraWorldToScreenCentersOrigin(t *testing.T) {
	c := NewCamera()
	c.Position = math3d.V3(0, 0, 5)
	c.LookAt(math3d.V3(0, 0, 0))
	c.SetAspectRatio(1.0)

	x, y, _, visible := c.WorldToScreen(math3d.V3(0, 0, 0), 100, 100)
	if !visible {
		t.Fatalf("expected origin to be visible in front of the camera")
	}
	if !approxEqual(float32(x), 50) || !approxEqual(float32(y), 50) {
		t.Errorf("expected the point straight ahead to project to screen center, got (%v,%v)", x, y)
	}
}

func TestCameraWorldToScreenBehindCameraNotVisible(t *testing.T) {
	c := NewCamera()
	c.Position = math3d.V3(0, 0, 5)
	c.LookAt(math3d.V3(0, 0, 0))

	_, _, _, visible := c.WorldToScreen(math3d.V3(0, 0, 10), 100, 100)
	if visible {
		t.Fatalf("expected a point behind the camera to be reported not visible")
	}
}
