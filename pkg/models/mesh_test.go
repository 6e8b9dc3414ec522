package models

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestMeshTransformTranslatesPositionNotNormal(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 0, 1)},
	}

	m := math3d.Identity()
	m.Translate(5, 0, 0)
	mesh.Transform(m)

	got := mesh.Vertices[0].Position
	if got != math3d.V3(5, 0, 0) {
		t.Errorf("position should translate, got %v", got)
	}
	if mesh.Vertices[0].Normal != math3d.V3(0, 0, 1) {
		t.Errorf("normal should not translate, got %v", mesh.Vertices[0].Normal)
	}
}

func TestMeshTrianglesComputesFlatNormal(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)},
		{Position: math3d.V3(1, 0, 0)},
		{Position: math3d.V3(0, 1, 0)},
	}
	mesh.Faces = []Face{{V: [3]int{0, 1, 2}, Material: -1}}

	tris := mesh.Triangles()
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
	if tris[0].Normal != math3d.V3(0, 0, 1) {
		t.Errorf("expected +Z normal, got %v", tris[0].Normal)
	}
}

func TestMeshTrianglesSharedNormalKeyMatchesForCoplanarFaces(t *testing.T) {
	mesh := NewMesh("test")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)},
		{Position: math3d.V3(1, 0, 0)},
		{Position: math3d.V3(1, 1, 0)},
		{Position: math3d.V3(0, 1, 0)},
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}, Material: -1},
		{V: [3]int{0, 2, 3}, Material: -1},
	}

	tris := mesh.Triangles()
	if tris[0].Normal != tris[1].Normal {
		t.Errorf("coplanar triangulated faces should share an exact normal key, got %v vs %v", tris[0].Normal, tris[1].Normal)
	}
}
