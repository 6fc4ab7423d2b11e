package render

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"os"
)

// Framebuffer is an in-memory color surface. It is the debug-overlay
// canvas the Wireframe gizmo draws gridlines and axes onto, and doubles
// as a headless/CI rendering target via SavePNG. It is not a ScreenSink;
// internal/sink/desktop keeps its own RGBA buffer for that.
type Framebuffer struct {
	Width, Height int
	Pixels        []Color
}

// NewFramebuffer creates a zeroed framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the entire surface with an opaque RGB.
func (fb *Framebuffer) Clear(r, g, b uint8) {
	c := RGB(r, g, b)
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes an 8-bit RGB pixel; out-of-bounds writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = RGB(r, g, b)
}

// SetColor is the same as SetPixel but takes a Color directly, for the
// debug-overlay callers (Wireframe) that already have one.
func (fb *Framebuffer) SetColor(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or the zero Color out of
// bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Present is a no-op: an in-memory framebuffer has nothing to flush to.
func (fb *Framebuffer) Present() error { return nil }

// DrawLine draws a line with Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetColor(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect fills an axis-aligned rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetColor(px, py, c)
		}
	}
}

// DrawRectOutline draws only the border of a rectangle.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c Color) {
	fb.DrawLine(x, y, x+w-1, y, c)
	fb.DrawLine(x, y+h-1, x+w-1, y+h-1, c)
	fb.DrawLine(x, y, x, y+h-1, c)
	fb.DrawLine(x+w-1, y, x+w-1, y+h-1, c)
}

// ToImage converts the framebuffer to a standard image.Image.
func (fb *Framebuffer) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			c := fb.GetPixel(x, y)
			img.Set(x, y, imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
