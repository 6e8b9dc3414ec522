// Package models provides 3D model loading and representation for demo
// content: a shared indexed-vertex Mesh that glTF content loads into, and a
// bridge that reduces it to the flat per-triangle form pkg/model builds a
// renderable Model from.
package models

import (
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/model"
)

// Mesh represents a 3D mesh with vertices and faces.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Materials referenced by Face.Material, loaded from the source format's
	// own material list (glTF's PBR metallic-roughness model).
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vec2 is a pair of texture coordinates, kept local to this package since
// the renderer's own math3d package has no 2D vector (its pipeline never
// carries UVs on a vertex the way this demo mesh format does).
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       Vec2
}

// Face represents a triangle face with vertex indices and an optional
// material reference (-1 meaning unset, matching glTF's own convention for
// "default material").
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int
}

// Material is a glTF-style PBR metallic-roughness material: a base color
// plus scalar metallic/roughness factors and a flag for whether a base
// color texture was present (the texture image itself, if any, is handed
// back separately by LoadGLTFWithTextures).
type Material struct {
	Name       string
	BaseColor  [4]float64
	Metallic   float64
	Roughness  float64
	HasTexture bool
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]MeshVertex, 0),
		Faces:     make([]Face, 0),
		BoundsMin: math3d.V3(0, 0, 0),
		BoundsMax: math3d.V3(0, 0, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// GetFaceMaterial returns face i's material index, or -1 if the face or
// index is out of range.
func (m *Mesh) GetFaceMaterial(i int) int {
	if i < 0 || i >= len(m.Faces) {
		return -1
	}
	return m.Faces[i].Material
}

// GetMaterial returns the material at idx, or nil if idx is unset (-1) or
// out of bounds.
func (m *Mesh) GetMaterial(idx int) *Material {
	if idx < 0 || idx >= len(m.Materials) {
		return nil
	}
	return &m.Materials[idx]
}

// CalculateNormals computes face normals and assigns them to vertices.
// This is a simple flat-shading approach; for smooth shading, normals
// should be averaged per-vertex.
func (m *Mesh) CalculateNormals() {
	for i := range m.Faces {
		f := &m.Faces[i]
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2).Normalize()

		// Assign to vertices (flat shading - each face has its own normal)
		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// CalculateSmoothNormals computes averaged normals for smooth shading.
func (m *Mesh) CalculateSmoothNormals() {
	// Reset all normals
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	// Accumulate face normals per vertex
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		edge1 := v1.Sub(v0)
		edge2 := v2.Sub(v0)
		normal := edge1.Cross(edge2) // Don't normalize yet

		m.Vertices[f.V[0]].Normal = m.Vertices[f.V[0]].Normal.Add(normal)
		m.Vertices[f.V[1]].Normal = m.Vertices[f.V[1]].Normal.Add(normal)
		m.Vertices[f.V[2]].Normal = m.Vertices[f.V[2]].Normal.Add(normal)
	}

	// Normalize all accumulated normals
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies a transformation matrix to all vertices. Positions go
// through the matrix's full affine apply; normals go through the same
// apply with translation canceled out (MultiplyPoint of the origin), since
// a direction should rotate and scale but never translate.
func (m *Mesh) Transform(mat math3d.Matrix) {
	origin := mat.MultiplyPoint(math3d.Zero3())
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MultiplyPoint(m.Vertices[i].Position)
		dir := mat.MultiplyPoint(m.Vertices[i].Normal).Sub(origin)
		m.Vertices[i].Normal = dir.Normalize()
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetVertex returns the position, normal, and UV for vertex i.
func (m *Mesh) GetVertex(i int) (pos, normal math3d.Vec3, uv Vec2) {
	v := m.Vertices[i]
	return v.Position, v.Normal, v.UV
}

// GetFace returns the vertex indices for face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// Triangles reduces the mesh to the flat per-triangle form pkg/model
// builds a renderable Model from. Each triangle's normal is computed fresh
// from its own corners (rather than read off the source format's possibly
// per-vertex, possibly smoothed normals), so that two mesh faces which are
// truly coplanar produce the bit-identical Vec3 key pkg/model.Coalesce
// needs to group them.
func (m *Mesh) Triangles() []model.Triangle {
	tris := make([]model.Triangle, m.TriangleCount())
	for i := range tris {
		f := m.GetFace(i)
		a, _, _ := m.GetVertex(f[0])
		b, _, _ := m.GetVertex(f[1])
		c, _, _ := m.GetVertex(f[2])
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		tris[i] = model.Triangle{
			Corners: [3]math3d.Vec3{a, b, c},
			Normal:  normal,
		}
	}
	return tris
}
