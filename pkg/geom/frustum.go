package geom

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Frustum is the six planes bounding a view volume, in a fixed order:
// near, far, top, bottom, left, right. Clipping against a Frustum iterates
// all six regardless of order, so the order is fixed only for
// predictability, not correctness.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum builds the view frustum for a width x height viewport, a field
// of view in degrees, and near/far clip distances, from the eight corners
// of the view volume at the near and far planes.
//
// zNear is nudged outward by 0.001 before the corners are computed, so that
// geometry clipped exactly to the near plane never produces a w of 0 after
// projection.
func NewFrustum(width, height int, fovDegrees, zNear, zFar float64) Frustum {
	zNear += 0.001

	fovRads := (fovDegrees / 180.0) * math.Pi
	aspect := float64(width) / float64(height)

	topNear := math.Tan(fovRads/2.0) * zNear
	rightNear := topNear * aspect
	topFar := math.Tan(fovRads/2.0) * zFar
	rightFar := topFar * aspect

	nearTopLeft := math3d.V3(-rightNear, topNear, zNear)
	nearTopRight := math3d.V3(rightNear, topNear, zNear)
	nearBottomLeft := math3d.V3(-rightNear, -topNear, zNear)
	nearBottomRight := math3d.V3(rightNear, -topNear, zNear)

	farTopLeft := math3d.V3(-rightFar, topFar, zFar)
	farTopRight := math3d.V3(rightFar, topFar, zFar)
	farBottomLeft := math3d.V3(-rightFar, -topFar, zFar)
	farBottomRight := math3d.V3(rightFar, -topFar, zFar)

	return Frustum{Planes: [6]Plane{
		NewPlane(nearTopLeft, nearBottomLeft, nearTopRight),      // near
		NewPlane(farTopLeft, farTopRight, farBottomLeft),         // far
		NewPlane(nearTopLeft, nearTopRight, farTopRight),         // top
		NewPlane(nearBottomLeft, farBottomLeft, farBottomRight),  // bottom
		NewPlane(nearBottomLeft, nearTopLeft, farTopLeft),        // left
		NewPlane(nearBottomRight, farBottomRight, farTopRight),   // right
	}}
}
