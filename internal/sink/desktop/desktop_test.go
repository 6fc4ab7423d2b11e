package desktop

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSinkSetPixelAndClear(t *testing.T) {
	s := New(4, 4, "")

	s.Clear(10, 20, 30)
	s.SetPixel(1, 1, 200, 201, 202)

	i := (1*4 + 1) * 4
	if s.buf[i] != 200 || s.buf[i+1] != 201 || s.buf[i+2] != 202 || s.buf[i+3] != 255 {
		t.Fatalf("SetPixel did not write the expected bytes at (1,1)")
	}

	j := (0*4 + 0) * 4
	if s.buf[j] != 10 || s.buf[j+1] != 20 || s.buf[j+2] != 30 || s.buf[j+3] != 255 {
		t.Fatalf("Clear did not fill (0,0) with the background color")
	}
}

func TestSinkPresentWithoutSnapshotPathIsNoop(t *testing.T) {
	s := New(2, 2, "")
	if err := s.Present(); err != nil {
		t.Fatalf("Present with no snapshot path should not error, got %v", err)
	}
	if s.Frame() != 1 {
		t.Fatalf("expected frame counter to advance to 1, got %d", s.Frame())
	}
}

func TestSinkPresentWritesPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	s := New(3, 3, path)
	s.Clear(1, 2, 3)

	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected snapshot file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected a non-empty PNG file")
	}
}

func TestSinkDimensions(t *testing.T) {
	s := New(8, 5, "")
	if s.Width() != 8 || s.Height() != 5 {
		t.Fatalf("got %dx%d want 8x5", s.Width(), s.Height())
	}
}
