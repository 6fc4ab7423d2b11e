package render

// Font is a 5x8 bitmap glyph table: Data is a flat byte array indexed
// by charCode*5 + column, where bit i of a byte is the glyph's pixel at
// row i (LSB = top row). internal/font provides the GLCD table this
// renderer ships with; a caller may supply any table with the same
// layout.
type Font struct {
	Data []byte
}

const (
	glyphWidth  = 5
	glyphHeight = 8
	charAdvance = glyphWidth + 1 // 6
	lineAdvance = glyphHeight + 1 // 9
)

// DrawChar blits a single glyph at (x, y). With bg == nil only set
// bits are written (using fg); with bg != nil the whole 5x8 cell is
// written, fg where the bit is set and *bg otherwise. Pixels outside
// the sink's bounds are silently dropped.
func (r *Renderer) DrawChar(f Font, ch byte, x, y int, fg Color, bg *Color) {
	base := int(ch) * glyphWidth
	if base+glyphWidth > len(f.Data) {
		return
	}
	for col := range glyphWidth {
		bits := f.Data[base+col]
		for row := range glyphHeight {
			set := bits&(1<<uint(row)) != 0
			px, py := x+col, y+row
			switch {
			case set:
				r.setPixelClipped(px, py, fg)
			case bg != nil:
				r.setPixelClipped(px, py, *bg)
			}
		}
	}
}

func (r *Renderer) setPixelClipped(x, y int, c Color) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.sink.SetPixel(x, y, c.R, c.G, c.B)
}

// DrawString draws a multi-line string starting at (x, y), advancing
// the cursor by charAdvance pixels per character and lineAdvance
// pixels per '\n', resetting the column to x on newline. Drawing stops
// once the cursor's x reaches the sink's width; no glyph wraps
// automatically mid-line.
func (r *Renderer) DrawString(f Font, s string, x, y int, fg Color, bg *Color) {
	cx, cy := x, y
	for i := range len(s) {
		ch := s[i]
		if ch == '\n' {
			cx = x
			cy += lineAdvance
			continue
		}
		if cx >= r.width {
			break
		}
		r.DrawChar(f, ch, cx, cy, fg, bg)
		cx += charAdvance
	}
}

// DrawRunes draws glyphs from runes[start:] the same way DrawString
// draws a string, without any string allocation — it exists so a
// caller formatting a number into a scratch []rune buffer (see
// internal/numfmt) can render it without touching the heap.
func (r *Renderer) DrawRunes(f Font, runes []rune, start, x, y int, fg Color, bg *Color) {
	cx, cy := x, y
	for i := start; i < len(runes); i++ {
		ch := runes[i]
		if ch == '\n' {
			cx = x
			cy += lineAdvance
			continue
		}
		if cx >= r.width {
			break
		}
		r.DrawChar(f, byte(ch), cx, cy, fg, bg)
		cx += charAdvance
	}
}
