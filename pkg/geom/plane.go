// Package geom provides the affine-space primitives the renderer clips
// against: planes and the six-plane view frustum built from them.
package geom

import (
	"github.com/taigrr/trophy/pkg/math3d"
)

// Plane is an oriented plane: three reference points (kept only for
// Intersect's line-plane math) plus a unit normal. Once constructed a Plane
// is immutable.
type Plane struct {
	P1, P2, P3 math3d.Vec3
	Normal     math3d.Vec3
}

// NewPlane builds a Plane through first, second, third, with a unit normal
// computed from the cross product of the two edges leading away from
// first: (second-first) x (third-first).
func NewPlane(first, second, third math3d.Vec3) Plane {
	a := second.Sub(first)
	b := third.Sub(first)
	n := a.Cross(b)
	length := n.Len()
	return Plane{
		P1:     first,
		P2:     second,
		P3:     third,
		Normal: math3d.V3(n.X/length, n.Y/length, n.Z/length),
	}
}

// DistanceToPoint returns the signed distance from p to the plane along its
// normal.
func (pl Plane) DistanceToPoint(p math3d.Vec3) float64 {
	return p.Sub(pl.P1).Dot(pl.Normal)
}

// IsAbove reports whether p lies on or above the plane (signed distance >= 0).
func (pl Plane) IsAbove(p math3d.Vec3) bool {
	return pl.DistanceToPoint(p) >= 0.0
}

// Intersect returns the point where the segment start->end crosses the
// plane. Only meaningful when start and end lie on opposite sides of the
// plane (the denominator is nonzero in that case).
func (pl Plane) Intersect(start, end math3d.Vec3) math3d.Vec3 {
	line := end.Sub(start)
	lineNormalDot := line.Dot(pl.Normal)

	vecFromPlane := start.Sub(pl.P1)
	factor := -vecFromPlane.Dot(pl.Normal) / lineNormalDot

	return math3d.V3(
		start.X+line.X*factor,
		start.Y+line.Y*factor,
		start.Z+line.Z*factor,
	)
}
