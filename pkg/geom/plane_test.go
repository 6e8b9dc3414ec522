package geom

import (
	"math"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func vecClose(a, b math3d.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func xyPlane() Plane {
	return NewPlane(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
}

func TestPlaneIsAbove(t *testing.T) {
	pl := xyPlane()

	if !pl.IsAbove(math3d.V3(1, 2, 3)) {
		t.Errorf("(1,2,3) should be above the XY plane")
	}
	if pl.IsAbove(math3d.V3(1, 2, -3)) {
		t.Errorf("(1,2,-3) should not be above the XY plane")
	}
}

func TestPlaneIntersect(t *testing.T) {
	pl := xyPlane()

	got := pl.Intersect(math3d.V3(1, 2, 3), math3d.V3(1, 2, -3))
	want := math3d.V3(1, 2, 0)
	if !vecClose(got, want, 1e-9) {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	got = pl.Intersect(math3d.V3(0, 3, 3), math3d.V3(1, 2, -3))
	want = math3d.V3(0.5, 2.5, 0)
	if !vecClose(got, want, 1e-9) {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
}

func TestPlaneNormalIsUnit(t *testing.T) {
	pl := NewPlane(math3d.V3(0, 0, 0), math3d.V3(2, 0, 0), math3d.V3(0, 3, 0))
	if math.Abs(pl.Normal.Len()-1.0) > 1e-9 {
		t.Errorf("plane normal should be unit length, got %v", pl.Normal.Len())
	}
}
