// Package terminal implements render.ScreenSink over an ultraviolet
// cell buffer, the same half-block technique the original terminal
// renderer used (two framebuffer rows packed into one cell via ▀, fg =
// top pixel, bg = bottom pixel). It adds interlaced presentation: the
// sink commits only even or only odd terminal rows (each holding two
// pixel rows) per Present call, alternating parity, the trick a slow SPI link to a physical display
// needs, and a terminal's redraw cost benefits from the same
// amortization.
package terminal

import (
	imgcolor "image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Sink is a terminal ScreenSink. Width/Height are in framebuffer
// pixels; the terminal area is half Height rows tall since each cell
// packs two pixel rows.
type Sink struct {
	scr    uv.Screen
	area   uv.Rectangle
	width  int
	height int
	pixels []imgcolor.RGBA

	interlaced bool
	parity     int // 0 = even scanlines next, 1 = odd
}

// New creates a Sink covering area of scr. width is area's pixel
// width; height is 2x the area's row count (two framebuffer rows per
// terminal cell).
func New(scr uv.Screen, area uv.Rectangle, width, height int) *Sink {
	return &Sink{
		scr:    scr,
		area:   area,
		width:  width,
		height: height,
		pixels: make([]imgcolor.RGBA, width*height),
	}
}

// SetInterlaced enables or disables interlaced presentation.
func (s *Sink) SetInterlaced(enabled bool) {
	s.interlaced = enabled
}

func (s *Sink) Width() int  { return s.width }
func (s *Sink) Height() int { return s.height }

func (s *Sink) SetPixel(x, y int, r, g, b uint8) {
	s.pixels[y*s.width+x] = imgcolor.RGBA{R: r, G: g, B: b, A: 255}
}

func (s *Sink) Clear(r, g, b uint8) {
	c := imgcolor.RGBA{R: r, G: g, B: b, A: 255}
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

func (s *Sink) get(x, y int) imgcolor.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return imgcolor.RGBA{}
	}
	return s.pixels[y*s.width+x]
}

// Present commits the color surface to the terminal screen. When
// interlacing is enabled, only the terminal rows (pixel rows 2r and
// 2r+1 for row r) matching the current parity are committed, and parity toggles for next call; this halves
// the cells touched per frame at the cost of each row lagging by one
// frame, which is invisible to the pipeline by design.
func (s *Sink) Present() error {
	for row := s.area.Min.Y; row < s.area.Max.Y; row++ {
		if rowSkipped(s.interlaced, row, s.parity) {
			continue
		}
		topY := row * 2
		botY := topY + 1

		for col := s.area.Min.X; col < s.area.Max.X && col < s.width; col++ {
			topColor := s.get(col, topY)
			botColor := s.get(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			s.scr.SetCell(col, row, cell)
		}
	}

	if s.interlaced {
		s.parity = 1 - s.parity
	}
	return nil
}

// rowSkipped reports whether row must not be committed this Present
// call. Non-interlaced sinks commit every row; interlaced sinks commit
// only rows whose parity matches the current half-frame.
func rowSkipped(interlaced bool, row, parity int) bool {
	return interlaced && row%2 != parity
}

func rgbaToColor(c imgcolor.RGBA) imgcolor.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
