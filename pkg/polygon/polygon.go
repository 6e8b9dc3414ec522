// Package polygon implements the renderer's per-face primitive: an original
// vertex+highlight array paired with a working copy that transform, project,
// and frustum-cull mutate in place, plus the two ways a face can ultimately
// reach the screen (plain wireframe edges, or a filled occluded outline).
package polygon

import (
	"github.com/taigrr/trophy/pkg/geom"
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/screen"
)

// Mode selects how Draw paints a polygon's transformed vertices.
type Mode int

const (
	// Wireframe draws only the polygon's highlighted edges as lines.
	Wireframe Mode = iota
	// Occluded draws the polygon filled and depth-tested, outlined only
	// along its highlighted edges.
	Occluded
)

// Polygon holds a face's original geometry (Poly/PolyHighlights) and a
// working copy (Trans/TransHighlights) that Transform, Project, and Cull
// mutate; Reset restores the working copy from the original. Cull can grow
// or shrink Trans/TransHighlights as it clips against each frustum plane, so
// the two arrays are never assumed to share Poly's length after a cull.
type Polygon struct {
	Poly           []math3d.Vec3
	PolyHighlights []bool

	Trans           []math3d.Vec3
	TransHighlights []bool

	Culled bool
	Mode   Mode
}

// New builds a polygon from its original vertices, all edges highlighted,
// with the working copy starting identical to the original.
func New(points []math3d.Vec3, mode Mode) *Polygon {
	poly := append([]math3d.Vec3(nil), points...)
	highlights := make([]bool, len(points))
	for i := range highlights {
		highlights[i] = true
	}

	return &Polygon{
		Poly:            poly,
		PolyHighlights:  highlights,
		Trans:           append([]math3d.Vec3(nil), poly...),
		TransHighlights: append([]bool(nil), highlights...),
		Mode:            mode,
	}
}

// Clone copies a polygon's current working state as a new polygon's
// baseline: both the original and transformed vertex arrays are seeded from
// Trans, and both highlight arrays from TransHighlights. This avoids the
// length mismatch that would arise from cloning Poly and Trans separately
// after a cull has clipped the polygon to a different vertex count than it
// started with — the clipped shape is the only sensible baseline for a
// clone taken mid-pipeline.
func (p *Polygon) Clone() *Polygon {
	clone := New(p.Trans, p.Mode)
	copy(clone.PolyHighlights, p.TransHighlights)
	copy(clone.TransHighlights, p.TransHighlights)
	clone.Culled = p.Culled
	return clone
}

// Reset restores Trans/TransHighlights from Poly/PolyHighlights, undoing
// any transform/project/cull applied so far, and clears Culled.
func (p *Polygon) Reset() {
	p.Trans = append([]math3d.Vec3(nil), p.Poly...)
	p.TransHighlights = append([]bool(nil), p.PolyHighlights...)
	p.Culled = false
}

// Transform applies the affine part of matrix to every working vertex.
func (p *Polygon) Transform(matrix math3d.Matrix) {
	for i, v := range p.Trans {
		p.Trans[i] = matrix.MultiplyPoint(v)
	}
}

// Project applies the full projective transform to every working vertex.
func (p *Polygon) Project(matrix math3d.Matrix) {
	for i, v := range p.Trans {
		p.Trans[i] = matrix.ProjectPoint(v)
	}
}

func insertVec3At(s []math3d.Vec3, idx int, v math3d.Vec3) []math3d.Vec3 {
	s = append(s, math3d.Vec3{})
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func insertBoolAt(s []bool, idx int, v bool) []bool {
	s = append(s, false)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func removeVec3At(s []math3d.Vec3, idx int) []math3d.Vec3 {
	return append(s[:idx], s[idx+1:]...)
}

func removeBoolAt(s []bool, idx int) []bool {
	return append(s[:idx], s[idx+1:]...)
}

// Cull clips the working polygon against every plane of frustum in turn,
// using a Sutherland-Hodgman walk: edges that stay on one side keep their
// highlight state ANDed with "inside", edges that cross a plane get a new
// vertex inserted at the intersection (splitting the edge's highlight
// across both halves), and after each plane a pass collapses any run of two
// consecutive hidden edges down to one by dropping the vertex between them.
// A polygon found entirely outside any single plane is marked Culled and
// left untouched; a polygon entirely inside every plane needs no clipping
// at all.
func (p *Polygon) Cull(frustum geom.Frustum) {
	insidePlaneCount := 0

	for _, pl := range frustum.Planes {
		insidePointCount := 0
		for _, v := range p.Trans {
			if pl.IsAbove(v) {
				insidePointCount++
			}
		}

		if insidePointCount == 0 {
			p.Culled = true
			return
		}
		if insidePointCount == len(p.Trans) {
			insidePlaneCount++
		}
	}

	if insidePlaneCount == len(frustum.Planes) {
		p.Culled = false
		return
	}

	p.Culled = false

	for _, pl := range frustum.Planes {
		// A polygon whose edges were all hidden can collapse away entirely
		// while clipping; nothing is left to walk or draw.
		if len(p.Trans) == 0 {
			p.Culled = true
			return
		}

		inside := pl.IsAbove(p.Trans[0])
		start := 0

		for start < len(p.Trans) {
			end := (start + 1) % len(p.Trans)
			newInside := pl.IsAbove(p.Trans[end])

			if newInside == inside {
				if p.TransHighlights[start] {
					p.TransHighlights[start] = newInside
				}
				start++
				continue
			}

			intersection := pl.Intersect(p.Trans[start], p.Trans[end])

			// Each half of the split edge keeps the original edge's
			// highlight only on the side of the plane it survived on.
			idx := start + 1
			wasHighlighted := p.TransHighlights[start]
			p.Trans = insertVec3At(p.Trans, idx, intersection)
			p.TransHighlights = insertBoolAt(p.TransHighlights, idx, wasHighlighted && newInside)
			p.TransHighlights[start] = wasHighlighted && inside

			inside = newInside
			start += 2
		}

		edge := 0
		for edge < len(p.Trans) {
			next := (edge + 1) % len(p.Trans)
			if !p.TransHighlights[edge] && !p.TransHighlights[next] {
				p.Trans = removeVec3At(p.Trans, next)
				p.TransHighlights = removeBoolAt(p.TransHighlights, next)
			} else {
				edge++
			}
		}
	}
}

// Draw paints the working polygon to s, skipping entirely if Culled. A
// Wireframe polygon draws each highlighted edge as a plain line; an
// Occluded polygon is filled and depth-tested with its outline drawn only
// along highlighted edges.
func (p *Polygon) Draw(s *screen.Screen) {
	if p.Culled {
		return
	}

	if p.Mode == Occluded {
		s.DrawOccludedPolygonFlags(p.Trans, p.TransHighlights)
		return
	}

	for i := range p.Trans {
		j := (i + 1) % len(p.Trans)
		if p.TransHighlights[i] {
			s.DrawLinePoints(p.Trans[i], p.Trans[j], true)
		}
	}
}
