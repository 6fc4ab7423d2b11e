package terminal

import "testing"

func TestRowSkippedDisabledCommitsEveryRow(t *testing.T) {
	for row := 0; row < 8; row++ {
		if rowSkipped(false, row, 0) {
			t.Fatalf("row %d: non-interlaced sink must never skip a row", row)
		}
	}
}

func TestRowSkippedAlternatesByRowParityNotByParityAlone(t *testing.T) {
	// Regression test: the parity check must depend on the row being
	// tested, not only on the sink's current parity flag.
	for row := 0; row < 8; row++ {
		wantSkippedAtParity0 := row%2 != 0
		if got := rowSkipped(true, row, 0); got != wantSkippedAtParity0 {
			t.Errorf("row %d, parity 0: rowSkipped=%v want %v", row, got, wantSkippedAtParity0)
		}
		wantSkippedAtParity1 := row%2 != 1
		if got := rowSkipped(true, row, 1); got != wantSkippedAtParity1 {
			t.Errorf("row %d, parity 1: rowSkipped=%v want %v", row, got, wantSkippedAtParity1)
		}
	}
}

func TestInterlacedPresentCoversDisjointUnionOfRows(t *testing.T) {
	const rows = 8

	committedAt := func(parity int) map[int]bool {
		committed := make(map[int]bool)
		for row := 0; row < rows; row++ {
			if !rowSkipped(true, row, parity) {
				committed[row] = true
			}
		}
		return committed
	}

	evenFrame := committedAt(0)
	oddFrame := committedAt(1)

	if len(evenFrame) == 0 || len(oddFrame) == 0 {
		t.Fatalf("expected both parities to commit at least one row, got even=%d odd=%d", len(evenFrame), len(oddFrame))
	}

	for row := range evenFrame {
		if oddFrame[row] {
			t.Fatalf("row %d committed in both parities, expected disjoint scanline sets", row)
		}
	}

	union := make(map[int]bool)
	for row := range evenFrame {
		union[row] = true
	}
	for row := range oddFrame {
		union[row] = true
	}
	if len(union) != rows {
		t.Fatalf("expected the union of both parities to cover all %d rows, got %d", rows, len(union))
	}
}

func TestSinkPresentTogglesParityAcrossCalls(t *testing.T) {
	s := &Sink{}
	s.SetInterlaced(true)

	if s.parity != 0 {
		t.Fatalf("expected initial parity 0, got %d", s.parity)
	}

	// Present walks s.area, which is the zero Rectangle here (Min==Max),
	// so the row loop body never runs; only the end-of-call parity
	// toggle is under test.
	if err := s.Present(); err != nil {
		t.Fatalf("Present returned error: %v", err)
	}
	if s.parity != 1 {
		t.Fatalf("expected parity to toggle to 1 after first Present, got %d", s.parity)
	}

	if err := s.Present(); err != nil {
		t.Fatalf("Present returned error: %v", err)
	}
	if s.parity != 0 {
		t.Fatalf("expected parity to toggle back to 0 after second Present, got %d", s.parity)
	}
}
