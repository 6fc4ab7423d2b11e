// ferretview - desktop/terminal harness for the ferret3d rasterizer.
//
// It loads a GLB/GLTF mesh (or falls back to a built-in spinning cube,
// matching the original firmware demo's hardcoded geometry) and drives
// it through the core renderer, presenting either to a terminal (via
// ultraviolet) or to a raw RGBA desktop buffer snapshotted as PNG.
//
// Controls (terminal sink only):
//
//	W/S/A/D   - Pitch/yaw the model
//	Space     - Apply a random spin impulse
//	R         - Reset rotation
//	T         - Toggle texture
//	G         - Toggle wireframe (X-ray) mode
//	Esc       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/kitferret/ferret3d/internal/font"
	"github.com/kitferret/ferret3d/internal/input"
	"github.com/kitferret/ferret3d/internal/numfmt"
	"github.com/kitferret/ferret3d/internal/sink/desktop"
	"github.com/kitferret/ferret3d/internal/sink/terminal"
	"github.com/kitferret/ferret3d/pkg/math3d"
	"github.com/kitferret/ferret3d/pkg/models"
	"github.com/kitferret/ferret3d/pkg/render"
)

var (
	texturePath = flag.String("texture", "", "Path to texture image (PNG/JPG/BMP)")
	targetFPS   = flag.Int("fps", 60, "Target FPS")
	bgColor     = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	sinkFlag    = flag.String("sink", "terminal", "Presentation backend: terminal or desktop")
	snapshot    = flag.String("snapshot", "", "Desktop sink: PNG path to write each presented frame to")
	frames      = flag.Int("frames", 0, "Desktop sink: number of frames to render then exit (0 or less renders one frame)")
	depthTest   = flag.Bool("depth-test", true, "Enable the depth test")
	interlace   = flag.Bool("interlace", false, "Terminal sink: interlace scanline presentation")
	wireframe   = flag.Bool("wireframe", false, "Start in wireframe (X-ray) render mode")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ferretview - ferret3d rasterizer harness\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ferretview [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	modelPath := ""
	if flag.NArg() > 0 {
		modelPath = flag.Arg(0)
	}

	if err := run(modelPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rotationAxis tracks position and velocity for one rotation axis with
// spring decay, the same technique the original RotationAxis used for
// mouse-drag inertia, driving this demo's idle auto-rotate instead.
type rotationAxis struct {
	position  float64
	velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *rotationAxis) update() {
	a.position += a.velocity
	a.velocity, a.velAccel = a.velSpring.Update(a.velocity, a.velAccel, 0)
}

type rotationState struct {
	pitch, yaw, roll rotationAxis
	fps              int
}

func newRotationState(fps int) *rotationState {
	return &rotationState{
		pitch: newRotationAxis(fps),
		yaw:   newRotationAxis(fps),
		roll:  newRotationAxis(fps),
		fps:   fps,
	}
}

func (r *rotationState) update() {
	r.pitch.update()
	r.yaw.update()
	r.roll.update()
}

func (r *rotationState) impulse(pitch, yaw, roll float64) {
	r.pitch.velocity += pitch
	r.yaw.velocity += yaw
	r.roll.velocity += roll
}

func (r *rotationState) reset() {
	*r = *newRotationState(r.fps)
}

// newSceneCamera builds the fixed orbit-camera the demo views the mesh
// through; it drives both the solid MVP transform (renderFrame) and the
// wireframe projection (renderWireframeFrame) so the two render modes
// agree on framing.
func newSceneCamera(width, height int) *render.Camera {
	cam := render.NewCamera()
	cam.Position = math3d.V3(0, 0, 4)
	cam.LookAt(math3d.V3(0, 0, 0))
	cam.SetFOV(math.Pi / 3)
	cam.SetAspectRatio(float64(width) / float64(height))
	cam.SetClipPlanes(0.1, 100)
	return cam
}

// meshVisible frustum-culls mesh against cam by transforming its
// object-space bounding box into world space and testing it against
// the camera's view frustum.
func meshVisible(mesh *models.Mesh, model math3d.Mat4, cam *render.Camera) bool {
	box := render.NewAABB(mesh.BoundsMin, mesh.BoundsMax).Transform(model)
	return cam.GetFrustum().IntersectAABB(box)
}

// meshWireframeGeometry extracts the raw position/face data Wireframe.DrawMesh
// needs, sidestepping an import cycle (models already imports render).
func meshWireframeGeometry(mesh *models.Mesh) ([]math3d.Vec3, [][3]int) {
	positions := make([]math3d.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
	}
	faces := make([][3]int, len(mesh.Faces))
	for i, f := range mesh.Faces {
		faces[i] = f.V
	}
	return positions, faces
}

func loadMesh(path string) (*models.Mesh, *render.Texture, error) {
	if path == "" {
		return builtinCube(), nil, nil
	}

	var tex *render.Texture
	mesh, embedded, err := models.LoadGLBWithTexture(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load model: %w", err)
	}
	if embedded != nil {
		tex = render.TextureFromImage(embedded)
	}
	return mesh, tex, nil
}

// builtinCube reproduces the original firmware demo's hardcoded test
// geometry (a single textured cube) for when no model path is given.
func builtinCube() *models.Mesh {
	mesh := models.NewMesh("cube")
	type corner struct {
		pos math3d.Vec3
		uv  math3d.Vec2
	}
	// 24 vertices (4 per face) so each face gets its own UV unwrap and
	// flat per-face normal.
	faces := []struct {
		normal  math3d.Vec3
		corners [4]math3d.Vec3
	}{
		{math3d.V3(0, 0, 1), [4]math3d.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
		{math3d.V3(0, 0, -1), [4]math3d.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
		{math3d.V3(1, 0, 0), [4]math3d.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
		{math3d.V3(-1, 0, 0), [4]math3d.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
		{math3d.V3(0, 1, 0), [4]math3d.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
		{math3d.V3(0, -1, 0), [4]math3d.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
	}
	uvs := [4]math3d.Vec2{math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(1, 1), math3d.V2(0, 1)}

	for _, f := range faces {
		base := len(mesh.Vertices)
		for i, c := range f.corners {
			mesh.Vertices = append(mesh.Vertices, models.MeshVertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		mesh.Faces = append(mesh.Faces,
			models.Face{V: [3]int{base, base + 1, base + 2}},
			models.Face{V: [3]int{base, base + 2, base + 3}},
		)
	}
	mesh.CalculateBounds()
	return mesh
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	mesh, tex, err := loadMesh(modelPath)
	if err != nil {
		return err
	}
	if *texturePath != "" {
		loaded, err := render.LoadTexture(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load texture: %v\n", err)
		} else {
			tex = loaded
		}
	}
	if tex == nil {
		tex = render.NewCheckerTexture(64, 64, 8, render.RGB(200, 200, 200), render.RGB(100, 100, 100))
	}

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		mesh.Transform(math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Scale(-1))))
	}

	switch *sinkFlag {
	case "desktop":
		return runDesktop(mesh, tex, bgR, bgG, bgB)
	default:
		return runTerminal(mesh, tex, bgR, bgG, bgB)
	}
}

func runDesktop(mesh *models.Mesh, tex *render.Texture, bgR, bgG, bgB uint8) error {
	const width, height = 160, 128

	s := desktop.New(width, height, *snapshot)
	depthBuf := make([]float32, width*height)
	r := render.NewRenderer(s, depthBuf)
	r.SetDepthTest(*depthTest)
	cam := newSceneCamera(width, height)

	rot := newRotationState(*targetFPS)
	nFrames := *frames
	if nFrames <= 0 {
		nFrames = 1
	}

	for i := 0; i < nFrames; i++ {
		rot.impulse(0, 0.01, 0)
		rot.update()
		if *wireframe {
			renderWireframeFrame(s, mesh, rot, cam, width, height, bgR, bgG, bgB)
		} else {
			renderFrame(r, mesh, tex, rot, cam, bgR, bgG, bgB, 0)
		}
		if err := s.Present(); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "rendered %d frame(s)\n", nFrames)
	return nil
}

func runTerminal(mesh *models.Mesh, tex *render.Texture, bgR, bgG, bgB uint8) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	width, height := cols, rows*2
	area := uv.Rectangle{Min: uv.Point{X: 0, Y: 0}, Max: uv.Point{X: cols, Y: rows}}
	s := terminal.New(term, area, width, height)
	s.SetInterlaced(*interlace)
	depthBuf := make([]float32, width*height)
	r := render.NewRenderer(s, depthBuf)
	r.SetDepthTest(*depthTest)
	cam := newSceneCamera(width, height)

	rot := newRotationState(*targetFPS)
	var textureEnabled = true
	var wireframeEnabled = *wireframe
	var ctl input.Controller
	var down [12]bool // indexed by input.Button

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w"):
					down[input.Up] = true
				case ev.MatchString("s"):
					down[input.Down] = true
				case ev.MatchString("a"):
					down[input.Left] = true
				case ev.MatchString("d"):
					down[input.Right] = true
				case ev.MatchString("space"):
					down[input.A] = true
				case ev.MatchString("r"):
					down[input.Start] = true
				case ev.MatchString("t"):
					down[input.Select] = true
				case ev.MatchString("g"):
					down[input.B] = true
				}
			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"):
					down[input.Up] = false
				case ev.MatchString("s"):
					down[input.Down] = false
				case ev.MatchString("a"):
					down[input.Left] = false
				case ev.MatchString("d"):
					down[input.Right] = false
				case ev.MatchString("space"):
					down[input.A] = false
				case ev.MatchString("r"):
					down[input.Start] = false
				case ev.MatchString("t"):
					down[input.Select] = false
				case ev.MatchString("g"):
					down[input.B] = false
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	frameCount := 0
	fpsWindowStart := time.Now()
	fps := 0.0

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		ctl.Update(down)
		if ctl.Status(input.Up).IsDown() {
			rot.impulse(-0.05, 0, 0)
		}
		if ctl.Status(input.Down).IsDown() {
			rot.impulse(0.05, 0, 0)
		}
		if ctl.Status(input.Left).IsDown() {
			rot.impulse(0, -0.05, 0)
		}
		if ctl.Status(input.Right).IsDown() {
			rot.impulse(0, 0.05, 0)
		}
		if ctl.Status(input.A) == input.Pressed {
			rot.impulse((rand.Float64()-0.5)*1.5, (rand.Float64()-0.5)*1.5, (rand.Float64()-0.5)*1.5)
		}
		if ctl.Status(input.Start) == input.Pressed {
			rot.reset()
		}
		if ctl.Status(input.Select) == input.Pressed {
			textureEnabled = !textureEnabled
		}
		if ctl.Status(input.B) == input.Pressed {
			wireframeEnabled = !wireframeEnabled
		}
		rot.update()

		if wireframeEnabled {
			renderWireframeFrame(s, mesh, rot, cam, width, height, bgR, bgG, bgB)
		} else {
			activeTex := tex
			if !textureEnabled {
				activeTex = nil
			}
			renderFrame(r, mesh, activeTex, rot, cam, bgR, bgG, bgB, fps)
		}

		if err := s.Present(); err != nil {
			cleanup()
			return fmt.Errorf("present: %w", err)
		}

		frameCount++
		if elapsed := time.Since(fpsWindowStart); elapsed >= time.Second {
			fps = float64(frameCount) / elapsed.Seconds()
			frameCount = 0
			fpsWindowStart = time.Now()
		}

		if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// renderFrame clears, draws the mesh under the current rotation, and
// overlays an FPS readout built with the allocation-free text path.
func renderFrame(r *render.Renderer, mesh *models.Mesh, tex *render.Texture, rot *rotationState, cam *render.Camera, bgR, bgG, bgB uint8, fps float64) {
	r.ClearColor(bgR, bgG, bgB)
	r.ClearDepth(0)

	model := math3d.RotateX(rot.pitch.position).Mul(math3d.RotateY(rot.yaw.position)).Mul(math3d.RotateZ(rot.roll.position))

	if meshVisible(mesh, model, cam) {
		mvp := cam.ViewProjectionMatrix().Mul(model)
		vs := render.MVPVertexShader{MVP: mvp, Normal: model}
		ps := render.LitTexturedPixelShader{
			Texture:   tex,
			BaseColor: render.ShaderColor{R: 0.8, G: 0.8, B: 0.8},
			LightDir:  math3d.V3(0.4, 0.7, 0.5).Normalize(),
			Ambient:   0.25,
		}
		r.DrawMesh(mesh.ToRenderMesh(), vs, ps)
	}

	var buf [24]rune
	n := numfmt.Float(float32(fps), 1, buf[:])
	hudFont := render.Font{Data: font.GLCD}
	r.DrawRunes(hudFont, buf[:n], 0, 1, 1, render.ColorGreen, nil)
	r.DrawString(hudFont, " FPS", 1+n*6, 1, render.ColorGreen, nil)
}

// renderWireframeFrame draws the X-ray render mode directly onto sink
// via Wireframe/Camera, bypassing the triangle rasterizer entirely,
// the same role the original demo's RenderModeWireframe switch case
// played.
func renderWireframeFrame(sink render.ScreenSink, mesh *models.Mesh, rot *rotationState, cam *render.Camera, width, height int, bgR, bgG, bgB uint8) {
	fb := render.NewFramebuffer(width, height)
	fb.Clear(bgR, bgG, bgB)

	model := math3d.RotateX(rot.pitch.position).Mul(math3d.RotateY(rot.yaw.position)).Mul(math3d.RotateZ(rot.roll.position))

	if meshVisible(mesh, model, cam) {
		positions, faces := meshWireframeGeometry(mesh)
		wf := render.NewWireframe(cam, fb)
		wf.DrawMesh(positions, faces, model, render.RGB(0, 255, 128))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := fb.GetPixel(x, y)
			sink.SetPixel(x, y, c.R, c.G, c.B)
		}
	}
}
