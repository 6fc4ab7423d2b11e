package render

// ScreenSink is the presentation target the renderer writes into: a
// byte-oriented transport to a physical display (SPI to an ST7735-class
// TFT on the embedded target) or a raw RGBA surface (desktop/terminal
// harness). The renderer never assumes anything about the sink's
// internal representation beyond this contract.
//
// set_pixel is silently clipped by the caller: the rasterizer and text
// overlay never pass coordinates outside [0, Width())x[0, Height()), so
// a ScreenSink implementation may assume validity and skip its own
// bounds check. clear fills the entire color surface with an opaque
// RGB. present commits the color surface to the display and may fail;
// a sink MAY interlace, committing only even or only odd scanlines per
// call and toggling parity between calls — that choice is invisible to
// the renderer.
type ScreenSink interface {
	Width() int
	Height() int
	SetPixel(x, y int, r, g, b uint8)
	Clear(r, g, b uint8)
	Present() error
}
