package render

import "testing"

func TestEdgeStateMatchesTriangleEvaluate(t *testing.T) {
	v0 := NewVector(0, 0, 0, 1)
	v1 := NewVector(10, 0, 0, 1)
	v2 := NewVector(0, 10, 0, 1)
	tri := newTriangleEquations(v0, v1, v2)

	s := newEdgeState(&tri, 2, 3)
	if s.ev0 != tri.e0.evaluate(2, 3) {
		t.Errorf("ev0 mismatch")
	}
	if s.ev1 != tri.e1.evaluate(2, 3) {
		t.Errorf("ev1 mismatch")
	}
	if s.ev2 != tri.e2.evaluate(2, 3) {
		t.Errorf("ev2 mismatch")
	}
}

func TestEdgeStateStepXMatchesReevaluate(t *testing.T) {
	v0 := NewVector(0, 0, 0, 1)
	v1 := NewVector(10, 0, 0, 1)
	v2 := NewVector(0, 10, 0, 1)
	tri := newTriangleEquations(v0, v1, v2)

	s := newEdgeState(&tri, 1, 1)
	s.stepX(&tri, 3)

	want := newEdgeState(&tri, 4, 1)
	if s.ev0 != want.ev0 || s.ev1 != want.ev1 || s.ev2 != want.ev2 {
		t.Fatalf("stepX did not match a fresh evaluate at the stepped position")
	}
}

func TestEdgeStateStepYByOneMatchesReevaluate(t *testing.T) {
	v0 := NewVector(0, 0, 0, 1)
	v1 := NewVector(10, 0, 0, 1)
	v2 := NewVector(0, 10, 0, 1)
	tri := newTriangleEquations(v0, v1, v2)

	s := newEdgeState(&tri, 1, 1)
	s.stepYByOne(&tri)

	want := newEdgeState(&tri, 1, 2)
	if s.ev0 != want.ev0 || s.ev1 != want.ev1 || s.ev2 != want.ev2 {
		t.Fatalf("stepYByOne did not match a fresh evaluate at the stepped position")
	}
}

func TestTriangleEdgeTestAllTrueAndAllSame(t *testing.T) {
	tt := triangleEdgeTest{true, true, true}
	if !tt.allTrue() || !tt.allSame() {
		t.Fatalf("all-true test should report both allTrue and allSame")
	}

	mixed := triangleEdgeTest{true, false, true}
	if mixed.allTrue() {
		t.Fatalf("mixed test must not report allTrue")
	}
	if mixed.allSame() {
		t.Fatalf("mixed test must not report allSame")
	}

	allFalse := triangleEdgeTest{false, false, false}
	if allFalse.allTrue() {
		t.Fatalf("all-false test must not report allTrue")
	}
	if !allFalse.allSame() {
		t.Fatalf("all-false test should still report allSame")
	}
}
