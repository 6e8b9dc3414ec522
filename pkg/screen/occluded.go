package screen

import "github.com/taigrr/trophy/pkg/math3d"

// getMaskScreen lazily allocates the scratch screen used to remember which
// pixels belong to a shape's interior, so floating-point error at the
// rasterized edge of drawOccludedTriInternal's own membership test can't
// leave gaps in the silhouette it's cutting out.
func (s *Screen) getMaskScreen() *Screen {
	if s.maskScreen == nil {
		s.maskScreen = New(s.Width, s.Height)
	}
	return s.maskScreen
}

// getTexScreen lazily allocates the scratch screen that holds the outline
// color actually painted into the occluded shape's interior.
func (s *Screen) getTexScreen() *Screen {
	if s.texScreen == nil {
		s.texScreen = New(s.Width, s.Height)
	}
	return s.texScreen
}

// drawOccludedTriInternal rasterizes the interior of a triangle into s,
// depth-testing every covered pixel but sourcing its color from tex rather
// than a uniform on/off fill. Any pixel mask already marks lit is always
// considered interior (the rounding-error escape hatch used by every public
// DrawOccluded* entry point), so a shape's own rasterized outline never
// develops a gap against its filled interior.
func (s *Screen) drawOccludedTriInternal(first, second, third math3d.Vec3, mask, tex *Screen) {
	minX, minY, maxX, maxY := bbox3(first, second, third)
	if minX >= s.Width || maxX < 0 {
		return
	}
	if minY >= s.Height || maxY < 0 {
		return
	}

	xy := xyMatrix(first, second, third)

	xyw := math3d.Identity()
	xyw.M[0][0] = second.X - first.X
	xyw.M[0][1] = second.Y - first.Y
	xyw.M[0][2] = second.Z - first.Z
	xyw.M[1][0] = third.X - first.X
	xyw.M[1][1] = third.Y - first.Y
	xyw.M[1][2] = third.Z - first.Z
	xyw.M[3][0] = first.X
	xyw.M[3][1] = first.Y
	xyw.M[3][2] = first.Z

	for y := maxInt(minY, 0); y <= minInt(maxY, s.Height-1); y++ {
		for x := maxInt(minX, 0); x <= minInt(maxX, s.Width-1); x++ {
			cur := xy.MultiplyPoint(math3d.V3(float64(x)+0.5, float64(y)+0.5, 0.0))

			if !mask.getPixel(x, y) {
				if cur.X < 0.0 || cur.X > 1.0 {
					continue
				}
				if cur.Y < 0.0 || cur.Y > 1.0-cur.X {
					continue
				}
			}

			cur = xyw.MultiplyPoint(cur)
			s.DrawPixel(x, y, cur.Z, tex.getPixel(x, y))
		}
	}
}

// DrawOccludedTri draws a filled, depth-tested triangle outlined along all
// three edges, skipping back-facing triangles entirely.
func (s *Screen) DrawOccludedTri(first, second, third math3d.Vec3) {
	if s.IsBackFacing(first, second, third) {
		return
	}

	mask := s.getMaskScreen()
	mask.Clear()
	mask.DrawTri(first, second, third, true)

	s.drawOccludedTriInternal(first, second, third, mask, mask)
}

// DrawOccludedQuad draws a filled, depth-tested quad outlined along its four
// edges, skipping back-facing quads entirely.
func (s *Screen) DrawOccludedQuad(first, second, third, fourth math3d.Vec3) {
	if s.IsBackFacing(first, second, fourth) {
		return
	}

	mask := s.getMaskScreen()
	tex := s.getTexScreen()

	mask.Clear()
	mask.DrawTri(first, second, fourth, true)
	mask.DrawTri(second, third, fourth, true)

	tex.Clear()
	tex.DrawQuad(first, second, third, fourth, true)

	s.drawOccludedTriInternal(first, second, fourth, mask, tex)
	s.drawOccludedTriInternal(second, third, fourth, mask, tex)
}

// DrawOccludedPolygon draws a filled, depth-tested convex polygon outlined
// along every edge, fan-triangulated around its last vertex.
func (s *Screen) DrawOccludedPolygon(points []math3d.Vec3) {
	switch {
	case len(points) < 3:
		return
	case len(points) == 3:
		s.DrawOccludedTri(points[0], points[1], points[2])
		return
	case len(points) == 4:
		s.DrawOccludedQuad(points[0], points[1], points[2], points[3])
		return
	}

	last := len(points) - 1
	if s.IsBackFacing(points[0], points[1], points[last]) {
		return
	}

	mask := s.getMaskScreen()
	mask.Clear()
	for i := 0; i < last-1; i++ {
		mask.DrawTri(points[i], points[i+1], points[last], true)
	}

	tex := s.getTexScreen()
	tex.Clear()
	for i := range points {
		j := (i + 1) % len(points)
		tex.DrawLinePoints(points[i], points[j], true)
	}

	for i := 0; i < last-1; i++ {
		s.drawOccludedTriInternal(points[i], points[i+1], points[last], mask, tex)
	}
}

// DrawOccludedTriFlags is DrawOccludedTri with each edge's outline
// individually toggled, for hiding the shared interior edges of a
// coalesced, originally-triangulated mesh face.
func (s *Screen) DrawOccludedTriFlags(first, second, third math3d.Vec3, drawFirst, drawSecond, drawThird bool) {
	if s.IsBackFacing(first, second, third) {
		return
	}

	tex := s.getTexScreen()
	tex.Clear()
	if drawFirst {
		tex.DrawLinePoints(first, second, true)
	}
	if drawSecond {
		tex.DrawLinePoints(second, third, true)
	}
	if drawThird {
		tex.DrawLinePoints(third, first, true)
	}

	mask := s.getMaskScreen()
	mask.Clear()
	mask.DrawTri(first, second, third, true)

	s.drawOccludedTriInternal(first, second, third, mask, tex)
}

// DrawOccludedQuadFlags is DrawOccludedQuad with each edge's outline
// individually toggled.
func (s *Screen) DrawOccludedQuadFlags(first, second, third, fourth math3d.Vec3, drawFirst, drawSecond, drawThird, drawFourth bool) {
	if s.IsBackFacing(first, second, fourth) {
		return
	}

	tex := s.getTexScreen()
	tex.Clear()
	if drawFirst {
		tex.DrawLinePoints(first, second, true)
	}
	if drawSecond {
		tex.DrawLinePoints(second, third, true)
	}
	if drawThird {
		tex.DrawLinePoints(third, fourth, true)
	}
	if drawFourth {
		tex.DrawLinePoints(fourth, first, true)
	}

	mask := s.getMaskScreen()
	mask.Clear()
	mask.DrawTri(first, second, fourth, true)
	mask.DrawTri(second, third, fourth, true)

	s.drawOccludedTriInternal(first, second, fourth, mask, tex)
	s.drawOccludedTriInternal(second, third, fourth, mask, tex)
}

// DrawOccludedPolygonFlags is DrawOccludedPolygon with each edge's outline
// individually toggled via draws[i], the mechanism a coalesced polygon uses
// to hide the interior edges of its constituent triangles while keeping
// their silhouette.
func (s *Screen) DrawOccludedPolygonFlags(points []math3d.Vec3, draws []bool) {
	switch {
	case len(points) < 3:
		return
	case len(points) == 3:
		s.DrawOccludedTriFlags(points[0], points[1], points[2], draws[0], draws[1], draws[2])
		return
	case len(points) == 4:
		s.DrawOccludedQuadFlags(points[0], points[1], points[2], points[3], draws[0], draws[1], draws[2], draws[3])
		return
	}

	last := len(points) - 1
	if s.IsBackFacing(points[0], points[1], points[last]) {
		return
	}

	tex := s.getTexScreen()
	tex.Clear()
	for i := range points {
		j := (i + 1) % len(points)
		if draws[i] {
			tex.DrawLinePoints(points[i], points[j], true)
		}
	}

	mask := s.getMaskScreen()
	mask.Clear()
	for i := 0; i < last-1; i++ {
		mask.DrawTri(points[i], points[i+1], points[last], true)
	}

	for i := 0; i < last-1; i++ {
		s.drawOccludedTriInternal(points[i], points[i+1], points[last], mask, tex)
	}
}
