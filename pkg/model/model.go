// Package model implements a renderable mesh: a flat list of polygons plus
// a normal-keyed index used to find and hide the shared interior edges of
// adjacent coplanar faces.
package model

import (
	"github.com/hschendel/stl"

	"github.com/taigrr/trophy/pkg/geom"
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/polygon"
	"github.com/taigrr/trophy/pkg/screen"
)

// Triangle is a bare triangle corner set plus its face normal, the shape any
// mesh source (STL, glTF, or otherwise) reduces down to before becoming a
// Model.
type Triangle struct {
	Corners [3]math3d.Vec3
	Normal  math3d.Vec3
}

// Model is a flat collection of polygons (one per loaded triangle; Coalesce
// hides the shared edges of adjacent coplanar faces but never merges or
// removes a polygon) plus an index from face normal to the polygon indices
// sharing it.
type Model struct {
	Polygons  []*polygon.Polygon
	NormalMap map[math3d.Vec3][]int
}

// LoadSTL reads a binary or ASCII STL mesh from path and builds a Model from
// its triangles, one polygon per triangle in the given draw mode.
func LoadSTL(path string, mode polygon.Mode) (*Model, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tris := make([]Triangle, len(solid.Triangles))
	for i, tri := range solid.Triangles {
		tris[i] = Triangle{
			Corners: [3]math3d.Vec3{
				math3d.V3(float64(tri.Vertices[0][0]), float64(tri.Vertices[0][1]), float64(tri.Vertices[0][2])),
				math3d.V3(float64(tri.Vertices[1][0]), float64(tri.Vertices[1][1]), float64(tri.Vertices[1][2])),
				math3d.V3(float64(tri.Vertices[2][0]), float64(tri.Vertices[2][1]), float64(tri.Vertices[2][2])),
			},
			Normal: math3d.V3(float64(tri.Normal[0]), float64(tri.Normal[1]), float64(tri.Normal[2])),
		}
	}

	return FromTriangles(tris, mode), nil
}

// FromTriangles builds a Model directly from a slice of triangles, the
// shared path behind both LoadSTL and any demo content loaded from a
// different mesh format.
func FromTriangles(tris []Triangle, mode polygon.Mode) *Model {
	m := &Model{
		Polygons:  make([]*polygon.Polygon, len(tris)),
		NormalMap: make(map[math3d.Vec3][]int),
	}

	for i, tri := range tris {
		m.Polygons[i] = polygon.New(tri.Corners[:], mode)
		m.NormalMap[tri.Normal] = append(m.NormalMap[tri.Normal], i)
	}

	return m
}

// Clone copies every polygon through its own Clone, so a second instance of
// the model can be transformed and drawn independently within the same
// frame. The normal map is not carried over: a clone is taken after
// Coalesce, whose results already live in each polygon's highlight array,
// and keeping the map in sync with cloned polygons isn't worth the trouble.
func (m *Model) Clone() *Model {
	clone := &Model{
		Polygons:  make([]*polygon.Polygon, len(m.Polygons)),
		NormalMap: make(map[math3d.Vec3][]int),
	}
	for i, p := range m.Polygons {
		clone.Polygons[i] = p.Clone()
	}
	return clone
}

// Coalesce walks each normal's group of coplanar polygons and, for every
// pair of polygons sharing an edge (in either winding direction), turns off
// the highlight on both sides of that edge. Each unordered pair is compared
// once: each candidate is popped off the back of its group's list and
// compared only against what remains, half the work of comparing every
// ordered pair, without changing the result.
func (m *Model) Coalesce() {
	for _, group := range m.NormalMap {
		candidates := append([]int(nil), group...)

		for len(candidates) > 0 {
			current := candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]

			srcPoly := m.Polygons[current]
			for _, other := range candidates {
				dstPoly := m.Polygons[other]

				for srcStart := range srcPoly.Poly {
					srcEnd := (srcStart + 1) % len(srcPoly.Poly)

					for dstStart := range dstPoly.Poly {
						dstEnd := (dstStart + 1) % len(dstPoly.Poly)

						if !srcPoly.PolyHighlights[srcStart] && !dstPoly.PolyHighlights[dstStart] {
							continue
						}

						same := srcPoly.Poly[srcStart] == dstPoly.Poly[dstStart] && srcPoly.Poly[srcEnd] == dstPoly.Poly[dstEnd]
						reversed := srcPoly.Poly[srcStart] == dstPoly.Poly[dstEnd] && srcPoly.Poly[srcEnd] == dstPoly.Poly[dstStart]

						if same || reversed {
							srcPoly.PolyHighlights[srcStart] = false
							dstPoly.PolyHighlights[dstStart] = false
						}
					}
				}
			}
		}
	}
}

// Reset undoes every polygon's transform/project/cull back to its original
// geometry.
func (m *Model) Reset() {
	for _, p := range m.Polygons {
		p.Reset()
	}
}

// Transform applies the affine part of matrix to every polygon.
func (m *Model) Transform(matrix math3d.Matrix) {
	for _, p := range m.Polygons {
		p.Transform(matrix)
	}
}

// Project applies the full projective transform to every polygon.
func (m *Model) Project(matrix math3d.Matrix) {
	for _, p := range m.Polygons {
		p.Project(matrix)
	}
}

// Cull clips every polygon against frustum.
func (m *Model) Cull(frustum geom.Frustum) {
	for _, p := range m.Polygons {
		p.Cull(frustum)
	}
}

// Draw paints every polygon to s.
func (m *Model) Draw(s *screen.Screen) {
	for _, p := range m.Polygons {
		p.Draw(s)
	}
}

func (m *Model) bounds() (min, max math3d.Vec3) {
	if len(m.Polygons) == 0 {
		return math3d.Vec3{}, math3d.Vec3{}
	}

	min = m.Polygons[0].Trans[0]
	max = min

	for _, p := range m.Polygons {
		for _, v := range p.Trans {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return min, max
}

// GetOrigin returns the midpoint of the model's current axis-aligned
// bounding box, taken over every vertex of every polygon's working copy
// (not capped at each polygon's original vertex count, so a polygon that
// Cull has clipped into extra vertices is still fully accounted for).
func (m *Model) GetOrigin() math3d.Vec3 {
	min, max := m.bounds()
	return min.Add(max).Scale(0.5)
}

// GetDimensions returns the extent of the model's current axis-aligned
// bounding box along each axis.
func (m *Model) GetDimensions() math3d.Vec3 {
	min, max := m.bounds()
	return max.Sub(min).Abs()
}
