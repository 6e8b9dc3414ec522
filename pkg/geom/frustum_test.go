package geom

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestNewFrustumContainsCenterNearPoint(t *testing.T) {
	f := NewFrustum(128, 64, 90, 1, 1000)

	// A point straight down the view axis, just past the near plane,
	// should be above (inside) every one of the six planes.
	p := math3d.V3(0, 0, 1.5)
	for i, pl := range f.Planes {
		if !pl.IsAbove(p) {
			t.Errorf("plane %d should contain the on-axis near point %v", i, p)
		}
	}
}

func TestNewFrustumExcludesBehindNear(t *testing.T) {
	f := NewFrustum(128, 64, 90, 1, 1000)

	// A point at the original near distance (before the 0.001 nudge) sits
	// behind the nudged near plane.
	p := math3d.V3(0, 0, 1.0)
	if f.Planes[0].IsAbove(p) {
		t.Errorf("near plane should reject a point at the un-nudged near distance")
	}
}

func TestNewFrustumPlaneOrder(t *testing.T) {
	f := NewFrustum(128, 64, 90, 1, 1000)
	if len(f.Planes) != 6 {
		t.Fatalf("expected exactly 6 planes, got %d", len(f.Planes))
	}

	// Each plane's inward normal identifies it: near faces +Z, far -Z, top
	// -Y, bottom +Y, left +X, right -X.
	near, far, top, bottom, left, right := f.Planes[0].Normal, f.Planes[1].Normal, f.Planes[2].Normal, f.Planes[3].Normal, f.Planes[4].Normal, f.Planes[5].Normal
	if near.Z <= 0 || far.Z >= 0 || top.Y >= 0 || bottom.Y <= 0 || left.X <= 0 || right.X >= 0 {
		t.Errorf("planes out of near/far/top/bottom/left/right order: %v", f.Planes)
	}
}
