package screen

import (
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/texture"
)

// UV is a pair of texture coordinates attached to a triangle vertex.
type UV struct {
	U, V float64
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func bbox3(first, second, third math3d.Vec3) (minX, minY, maxX, maxY int) {
	minX = int(minF(first.X, minF(second.X, third.X)))
	minY = int(minF(first.Y, minF(second.Y, third.Y)))
	maxX = int(maxF(first.X, maxF(second.X, third.X)))
	maxY = int(maxF(first.Y, maxF(second.Y, third.Y)))
	return
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// xyMatrix builds and inverts the affine map that carries a screen-space
// (x, y) coordinate back to the (s, t) barycentric-style coordinate of the
// triangle first/second/third, so a per-pixel loop can test triangle
// membership and interpolate attributes without a separate edge-function per
// edge.
func xyMatrix(first, second, third math3d.Vec3) math3d.Matrix {
	m := math3d.Identity()
	m.M[0][0] = second.X - first.X
	m.M[0][1] = second.Y - first.Y
	m.M[1][0] = third.X - first.X
	m.M[1][1] = third.Y - first.Y
	m.M[3][0] = first.X
	m.M[3][1] = first.Y
	m.Invert()
	return m
}

// DrawTexturedTri rasterizes a triangle, sampling tex at each covered pixel
// via perspective-correct interpolation of the UV/w coordinates carried on
// each vertex (or a plain affine interpolation when every vertex's Z is
// zero, the flag this renderer uses for untransformed/affine draws).
func (s *Screen) DrawTexturedTri(first, second, third math3d.Vec3, firstUV, secondUV, thirdUV UV, tex *texture.Texture) {
	minX, minY, maxX, maxY := bbox3(first, second, third)
	if minX >= s.Width || maxX < 0 {
		return
	}
	if minY >= s.Height || maxY < 0 {
		return
	}

	xy := xyMatrix(first, second, third)

	firstW, secondW, thirdW := first.Z, second.Z, third.Z
	isAffine := false
	if firstW == 0.0 && secondW == 0.0 && thirdW == 0.0 {
		firstW, secondW, thirdW = 1.0, 1.0, 1.0
		isAffine = true
	}

	uvw := math3d.Identity()
	uvw.M[0][0] = (secondUV.U * secondW) - (firstUV.U * firstW)
	uvw.M[0][1] = (secondUV.V * secondW) - (firstUV.V * firstW)
	uvw.M[0][2] = secondW - firstW
	uvw.M[1][0] = (thirdUV.U * thirdW) - (firstUV.U * firstW)
	uvw.M[1][1] = (thirdUV.V * thirdW) - (firstUV.V * firstW)
	uvw.M[1][2] = thirdW - firstW
	uvw.M[3][0] = firstUV.U * firstW
	uvw.M[3][1] = firstUV.V * firstW
	uvw.M[3][2] = firstW

	for y := maxInt(minY, 0); y <= minInt(maxY, s.Height-1); y++ {
		for x := maxInt(minX, 0); x <= minInt(maxX, s.Width-1); x++ {
			cur := xy.MultiplyPoint(math3d.V3(float64(x)+0.5, float64(y)+0.5, 0.0))
			if cur.X < 0.0 || cur.X > 1.0 {
				continue
			}
			if cur.Y < 0.0 || cur.Y > 1.0-cur.X {
				continue
			}

			cur = uvw.MultiplyPoint(cur)
			u, v := cur.X/cur.Z, cur.Y/cur.Z

			w := cur.Z
			if isAffine {
				w = 0.0
			}
			s.DrawPixel(x, y, w, tex.Sample(u, v))
		}
	}
}

// DrawTexturedQuad rasterizes a quadrilateral as two textured triangles.
func (s *Screen) DrawTexturedQuad(first, second, third, fourth math3d.Vec3, firstUV, secondUV, thirdUV, fourthUV UV, tex *texture.Texture) {
	s.DrawTexturedTri(first, second, fourth, firstUV, secondUV, fourthUV, tex)
	s.DrawTexturedTri(second, third, fourth, secondUV, thirdUV, fourthUV, tex)
}

// DrawTexturedPolygon fan-triangulates points[0..length-1] around the last
// vertex and draws each triangle textured.
func (s *Screen) DrawTexturedPolygon(points []math3d.Vec3, uvs []UV, tex *texture.Texture) {
	switch {
	case len(points) < 3:
		return
	case len(points) == 3:
		s.DrawTexturedTri(points[0], points[1], points[2], uvs[0], uvs[1], uvs[2], tex)
		return
	case len(points) == 4:
		s.DrawTexturedQuad(points[0], points[1], points[2], points[3], uvs[0], uvs[1], uvs[2], uvs[3], tex)
		return
	}

	last := len(points) - 1
	for i := 0; i < last-1; i++ {
		s.DrawTexturedTri(points[i], points[i+1], points[last], uvs[i], uvs[i+1], uvs[last], tex)
	}
}

// DrawTexturedCulledTri skips the draw entirely when the triangle is
// back-facing, otherwise renders it exactly as DrawTexturedTri.
func (s *Screen) DrawTexturedCulledTri(first, second, third math3d.Vec3, firstUV, secondUV, thirdUV UV, tex *texture.Texture) {
	if s.IsBackFacing(first, second, third) {
		return
	}
	s.DrawTexturedTri(first, second, third, firstUV, secondUV, thirdUV, tex)
}

// DrawTexturedCulledQuad skips the draw when the quad (tested via its
// first/second/fourth corner) is back-facing.
func (s *Screen) DrawTexturedCulledQuad(first, second, third, fourth math3d.Vec3, firstUV, secondUV, thirdUV, fourthUV UV, tex *texture.Texture) {
	if s.IsBackFacing(first, second, fourth) {
		return
	}
	s.DrawTexturedQuad(first, second, third, fourth, firstUV, secondUV, thirdUV, fourthUV, tex)
}

// DrawTexturedCulledPolygon skips the draw when the polygon (tested via its
// first/second/last corner) is back-facing.
func (s *Screen) DrawTexturedCulledPolygon(points []math3d.Vec3, uvs []UV, tex *texture.Texture) {
	switch {
	case len(points) < 3:
		return
	case len(points) == 3:
		s.DrawTexturedCulledTri(points[0], points[1], points[2], uvs[0], uvs[1], uvs[2], tex)
		return
	case len(points) == 4:
		s.DrawTexturedCulledQuad(points[0], points[1], points[2], points[3], uvs[0], uvs[1], uvs[2], uvs[3], tex)
		return
	}

	if s.IsBackFacing(points[0], points[1], points[len(points)-1]) {
		return
	}
	s.DrawTexturedPolygon(points, uvs, tex)
}
