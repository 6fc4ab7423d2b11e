// Package desktop implements render.ScreenSink over a raw interleaved
// RGBA byte buffer, the shape the original firmware's SDL2 desktop
// harness used (set_pixel/clear/update_screen against a color_buffer
// []u8). SDL2 itself has no idiomatic Go home in this pack, so Present
// here snapshots to a PNG instead of driving a window — the same
// "flush to wherever the platform puts pixels" contract, aimed at a
// file instead of a canvas, which keeps the sink usable headlessly and
// in CI.
package desktop

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Sink is a desktop-harness ScreenSink backed by a raw RGBA buffer.
type Sink struct {
	width, height int
	buf           []uint8 // interleaved R,G,B,A, row-major
	snapshotPath  string
	frame         int
}

// New creates a Sink of the given size. If snapshotPath is non-empty,
// Present writes a PNG there every call, overwriting the previous one.
func New(width, height int, snapshotPath string) *Sink {
	return &Sink{
		width:        width,
		height:       height,
		buf:          make([]uint8, width*height*4),
		snapshotPath: snapshotPath,
	}
}

func (s *Sink) Width() int  { return s.width }
func (s *Sink) Height() int { return s.height }

func (s *Sink) SetPixel(x, y int, r, g, b uint8) {
	i := (y*s.width + x) * 4
	s.buf[i+0] = r
	s.buf[i+1] = g
	s.buf[i+2] = b
	s.buf[i+3] = 255
}

func (s *Sink) Clear(r, g, b uint8) {
	for i := 0; i < len(s.buf); i += 4 {
		s.buf[i+0] = r
		s.buf[i+1] = g
		s.buf[i+2] = b
		s.buf[i+3] = 255
	}
}

// Present writes the current buffer to snapshotPath as a PNG, if one
// was configured. A real windowing backend would instead blit this
// buffer to its own texture/canvas here.
func (s *Sink) Present() error {
	s.frame++
	if s.snapshotPath == "" {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.buf)

	f, err := os.Create(s.snapshotPath)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Frame returns the number of Present calls so far, for diagnostics.
func (s *Sink) Frame() int { return s.frame }
