package screen

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/texture"
)

func TestDrawPixelDepthTestRejectsFartherPixel(t *testing.T) {
	s := New(4, 4)

	s.DrawPixel(1, 1, -2, true)
	if !s.getPixel(1, 1) {
		t.Fatalf("first draw should be visible")
	}

	// w = -1 converts to z = 1.0, farther from the eye than w = -2's
	// z = 0.5, so it must not overwrite the nearer pixel.
	s.DrawPixel(1, 1, -1, false)
	if !s.getPixel(1, 1) {
		t.Errorf("farther pixel must not overwrite a nearer one")
	}
}

func TestDrawPixelDepthTestAcceptsNearerPixel(t *testing.T) {
	s := New(4, 4)

	s.DrawPixel(1, 1, -0.5, true) // z = 2.0
	s.DrawPixel(1, 1, -2, true)   // z = 0.5, nearer

	idx := 1 + 1*s.Width
	if s.Depth[idx] != 0.5 {
		t.Errorf("depth = %v, want 0.5", s.Depth[idx])
	}
}

func TestDrawPixelRejectsBehindEye(t *testing.T) {
	s := New(4, 4)
	s.DrawPixel(1, 1, 0.5, true)
	if s.getPixel(1, 1) {
		t.Errorf("a positive w (behind the eye) must never draw")
	}
}

func TestDrawPixelRejectsOutOfBounds(t *testing.T) {
	s := New(4, 4)
	s.DrawPixel(-1, 0, -1, true)
	s.DrawPixel(0, 4, -1, true)
	// Should not panic, and should leave the buffer untouched.
	for _, d := range s.Depth {
		if d != s.Depth[0] {
			t.Fatalf("out-of-bounds draw mutated the buffer")
		}
	}
}

func TestClearResetsBuffers(t *testing.T) {
	s := New(4, 4)
	s.DrawPixel(0, 0, -1, true)
	s.Clear()

	if s.getPixel(0, 0) {
		t.Errorf("Clear should zero the color plane")
	}
	if s.Depth[0] != s.Depth[1] {
		t.Errorf("Clear should reset every depth sample")
	}
}

func TestDrawLineEndpointsLit(t *testing.T) {
	s := New(8, 8)
	s.DrawLine(0, 0, -1, 5, 3, -1, true)
	if !s.getPixel(0, 0) || !s.getPixel(5, 3) {
		t.Errorf("both line endpoints should be lit")
	}
}

func TestSetFrontFaceIgnoresUnknown(t *testing.T) {
	s := New(4, 4)
	s.SetFrontFace(CW)
	s.SetFrontFace(Order(42))
	if s.FrontFace != CW {
		t.Errorf("unknown front-face order should be ignored, got %v", s.FrontFace)
	}
}

func TestIsBackFacingConsistency(t *testing.T) {
	s := New(8, 8)
	a := math3d.V3(0, 0, -1)
	b := math3d.V3(4, 0, -1)
	c := math3d.V3(0, 4, -1)

	front := s.IsBackFacing(a, b, c)
	flipped := s.IsBackFacing(a, c, b)

	if front == flipped {
		t.Errorf("flipping vertex order must flip the back-facing result")
	}
}

func TestDrawTriDrawsThreeEdges(t *testing.T) {
	s := New(8, 8)
	a := math3d.V3(0, 0, -1)
	b := math3d.V3(7, 0, -1)
	c := math3d.V3(0, 7, -1)
	s.DrawTri(a, b, c, true)

	for _, p := range []math3d.Vec3{a, b, c} {
		if !s.getPixel(int(p.X), int(p.Y)) {
			t.Errorf("vertex %v should be lit by the wireframe", p)
		}
	}
}

func TestDrawTexturedTriFillsInterior(t *testing.T) {
	s := New(16, 16)
	tex := texture.NewManaged(1, 1, []byte{1})

	a := math3d.V3(2, 2, -1)
	b := math3d.V3(12, 2, -1)
	c := math3d.V3(2, 12, -1)
	s.DrawTexturedTri(a, b, c, UV{0, 0}, UV{1, 0}, UV{0, 1}, tex)

	if !s.getPixel(5, 5) {
		t.Errorf("a point well inside the triangle should be filled")
	}
	if s.getPixel(14, 14) {
		t.Errorf("a point well outside the triangle should stay clear")
	}
}

func TestDrawTexturedTriAffineMode(t *testing.T) {
	s := New(16, 16)
	tex := texture.NewManaged(1, 1, []byte{1})

	// All-zero Z means no projective information: the rasterizer substitutes
	// w = 1 for interpolation and draws with an inert depth of 0.
	a := math3d.V3(2, 2, 0)
	b := math3d.V3(12, 2, 0)
	c := math3d.V3(2, 12, 0)
	s.DrawTexturedTri(a, b, c, UV{0, 0}, UV{1, 0}, UV{0, 1}, tex)

	if !s.getPixel(5, 5) {
		t.Errorf("affine textured triangle should still fill its interior")
	}
	if s.Depth[5+5*s.Width] != 0 {
		t.Errorf("affine pixels should land at depth 0, got %v", s.Depth[5+5*s.Width])
	}
}

func TestAsTextureBorrowsPixelPlane(t *testing.T) {
	s := New(4, 4)
	s.DrawPixel(0, 0, -1, true)

	tex := s.AsTexture()
	if !tex.Sample(0.1, 0.1) {
		t.Fatalf("texture should see the lit pixel")
	}

	// The texture borrows the screen's plane, so later draws show through.
	s.DrawPixel(3, 3, -1, true)
	if !tex.Sample(0.9, 0.9) {
		t.Errorf("texture should see pixels drawn after it was wrapped")
	}
}

func TestDrawOccludedTriOutlinesAndFills(t *testing.T) {
	s := New(16, 16)
	a := math3d.V3(2, 2, -1)
	b := math3d.V3(12, 2, -1)
	c := math3d.V3(2, 12, -1)

	// Wind CCW (front-facing under the default FrontFace) so the draw isn't
	// skipped by the back-face test.
	if s.IsBackFacing(a, b, c) {
		a, b = b, a
	}

	s.DrawOccludedTri(a, b, c)

	if !s.getPixel(int(a.X), int(a.Y)) {
		t.Errorf("triangle vertex should be part of the outline")
	}

	// The interior stays dark but still claims its depth, so geometry behind
	// the triangle can no longer draw there.
	if s.getPixel(5, 5) {
		t.Errorf("triangle interior must not be painted, only outlined")
	}
	if s.Depth[5+5*s.Width] == s.Depth[15+15*s.Width] {
		t.Errorf("triangle interior should have committed a depth value")
	}
	s.DrawPixel(5, 5, -0.5, true) // z = 2, behind the tri's z = 1
	if s.getPixel(5, 5) {
		t.Errorf("interior depth should occlude farther geometry")
	}
}

func TestDrawOccludedTriSkipsBackFacing(t *testing.T) {
	s := New(16, 16)
	a := math3d.V3(2, 2, -1)
	b := math3d.V3(12, 2, -1)
	c := math3d.V3(2, 12, -1)

	if !s.IsBackFacing(a, b, c) {
		a, b = b, a
	}

	s.DrawOccludedTri(a, b, c)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.getPixel(x, y) {
				t.Fatalf("back-facing triangle must not draw anything at (%d,%d)", x, y)
			}
		}
	}
}

func TestOccludedQuadHidesFartherQuad(t *testing.T) {
	s := New(32, 32)

	// Nearer quad first (w = -2, z = 0.5), then a farther overlapping one
	// (w = -1, z = 1). Where they overlap, only the nearer outline survives.
	s.DrawOccludedQuad(
		math3d.V3(4, 4, -2), math3d.V3(20, 4, -2),
		math3d.V3(20, 20, -2), math3d.V3(4, 20, -2),
	)
	s.DrawOccludedQuad(
		math3d.V3(8, 8, -1), math3d.V3(28, 8, -1),
		math3d.V3(28, 28, -1), math3d.V3(8, 28, -1),
	)

	if !s.getPixel(4, 10) {
		t.Errorf("nearer quad's outline should be drawn")
	}
	if s.getPixel(8, 12) {
		t.Errorf("farther quad's outline must vanish where the nearer quad covers it")
	}
	if !s.getPixel(28, 15) {
		t.Errorf("farther quad's outline should survive outside the nearer quad")
	}
}

func TestDrawOccludedPolygonFlagsHidesInteriorEdges(t *testing.T) {
	s := New(16, 16)
	a := math3d.V3(2, 2, -1)
	b := math3d.V3(14, 2, -1)
	c := math3d.V3(14, 14, -1)
	d := math3d.V3(2, 14, -1)

	if s.IsBackFacing(a, b, d) {
		a, d = d, a
	}

	// All four outline edges are flagged on; the quad is filled as the two
	// triangles a-b-d and b-c-d, whose shared diagonal b-d has no flag.
	s.DrawOccludedPolygonFlags([]math3d.Vec3{a, b, c, d}, []bool{true, true, true, true})

	if !s.getPixel(int(a.X), int(a.Y)) {
		t.Errorf("quad corner should be part of the outline")
	}

	// The diagonal shared by the quad's two fill triangles is not an outline
	// edge and must never show up in the painted result.
	if s.getPixel(8, 8) {
		t.Errorf("the quad's internal triangulation diagonal must stay hidden")
	}
}
