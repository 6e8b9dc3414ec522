package math3d

import (
	"math"
	"testing"
)

func vecClose(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestMatrixIdentityMultiplyPoint(t *testing.T) {
	id := Identity()
	points := []Vec3{V3(0, 0, 0), V3(1, 2, 3), V3(-5, 10, -0.5)}
	for _, p := range points {
		if got := id.MultiplyPoint(p); got != p {
			t.Errorf("Identity.MultiplyPoint(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestMatrixTranslateRoundTrip(t *testing.T) {
	p := V3(3, -4, 7)

	for _, tx := range []float64{0, 1, -2.5, 100} {
		for _, ty := range []float64{0, 5, -3} {
			for _, tz := range []float64{0, -9, 12} {
				m := Identity()
				m.Translate(tx, ty, tz)

				moved := m.MultiplyPoint(p)

				inv := m
				inv.Invert()
				back := inv.MultiplyPoint(moved)

				if !vecClose(back, p, 1e-9) {
					t.Errorf("translate(%v,%v,%v) round trip: got %v, want %v", tx, ty, tz, back, p)
				}
			}
		}
	}
}

func TestMatrixCompositionOrder(t *testing.T) {
	a := Identity()
	a.Translate(1, 0, 0)
	b := Identity()
	b.RotateZ(90)

	p := V3(1, 1, 1)

	composed := a
	composed.Multiply(b)

	got := composed.MultiplyPoint(p)
	want := b.MultiplyPoint(a.MultiplyPoint(p))

	if !vecClose(got, want, 1e-9) {
		t.Errorf("A.Multiply(B).MultiplyPoint(p) = %v, want B.MultiplyPoint(A.MultiplyPoint(p)) = %v", got, want)
	}
}

func TestMatrixRotateOriginZ(t *testing.T) {
	m := Identity()
	m.RotateOriginZ(V3(1, 1, 0), 90)

	// (2,1,0) sits one unit along +X from the pivot; a quarter turn carries
	// it one unit along -Y instead.
	got := m.MultiplyPoint(V3(2, 1, 0))
	if !vecClose(got, V3(1, 0, 0), 1e-9) {
		t.Errorf("rotate (2,1,0) a quarter turn about (1,1,0) = %v, want (1,0,0)", got)
	}
}

func TestMatrixProjectionViewportCenter(t *testing.T) {
	proj := NewProjection(128, 64, 90, 1, 1000)

	got := proj.ProjectPoint(V3(0, 0, -1))

	if math.Abs(got.X-64) > 1e-6 || math.Abs(got.Y-32) > 1e-6 {
		t.Errorf("project(0,0,-1) = (%v,%v), want (64,32)", got.X, got.Y)
	}
}

func TestMatrixInvertIdentity(t *testing.T) {
	m := Identity()
	m.Invert()
	if m != Identity() {
		t.Errorf("inverse of identity should be identity, got %+v", m)
	}
}
