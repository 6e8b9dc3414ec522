package polygon

import (
	"testing"

	"github.com/taigrr/trophy/pkg/geom"
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/screen"
)

func triangle() []math3d.Vec3 {
	return []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}
}

func TestNewAllEdgesHighlighted(t *testing.T) {
	p := New(triangle(), Wireframe)
	for i, on := range p.TransHighlights {
		if !on {
			t.Errorf("edge %d should start highlighted", i)
		}
	}
	if len(p.Trans) != 3 || len(p.Poly) != 3 {
		t.Fatalf("expected 3 vertices in both arrays")
	}
}

func TestResetRestoresHighlightsFromPoly(t *testing.T) {
	p := New(triangle(), Wireframe)
	p.PolyHighlights[1] = false // e.g. hidden by a prior Coalesce
	p.TransHighlights[1] = true
	p.TransHighlights[0] = false

	p.Reset()

	if p.TransHighlights[1] {
		t.Errorf("Reset should carry a permanently-hidden edge's highlight over, not force true")
	}
	if !p.TransHighlights[0] {
		t.Errorf("Reset should restore a visible edge back to true")
	}
	if p.Culled {
		t.Errorf("Reset should clear Culled")
	}
}

func TestTransformAppliesToTransOnly(t *testing.T) {
	p := New(triangle(), Wireframe)
	m := math3d.Identity()
	m.Translate(5, 0, 0)
	p.Transform(m)

	if p.Trans[0].X != 5 {
		t.Errorf("Trans should move under Transform, got %v", p.Trans[0])
	}
	if p.Poly[0].X != 0 {
		t.Errorf("Poly must stay untouched by Transform")
	}
}

func TestCullEntirelyOutsideMarksCulled(t *testing.T) {
	// Entirely behind the near plane.
	p := New([]math3d.Vec3{
		math3d.V3(0, 0, -10),
		math3d.V3(1, 0, -10),
		math3d.V3(0, 1, -10),
	}, Wireframe)

	f := geom.NewFrustum(128, 64, 90, 1, 1000)
	p.Cull(f)

	if !p.Culled {
		t.Errorf("a triangle entirely outside the frustum should be culled")
	}
}

func TestCullEntirelyInsideLeavesTriangleUnchanged(t *testing.T) {
	p := New([]math3d.Vec3{
		math3d.V3(-0.1, -0.1, 5),
		math3d.V3(0.1, -0.1, 5),
		math3d.V3(-0.1, 0.1, 5),
	}, Wireframe)

	f := geom.NewFrustum(128, 64, 90, 1, 1000)
	p.Cull(f)

	if p.Culled {
		t.Fatalf("a triangle well inside the frustum should not be culled")
	}
	if len(p.Trans) != 3 {
		t.Errorf("an entirely-inside triangle should keep its original vertex count, got %d", len(p.Trans))
	}
	for i, on := range p.TransHighlights {
		if !on {
			t.Errorf("edge %d should keep its highlight when no clipping happens", i)
		}
	}
}

func TestCullClippingInsertsVertices(t *testing.T) {
	// Straddles the near plane: one vertex behind it, two in front.
	p := New([]math3d.Vec3{
		math3d.V3(0, 0, 0.5),
		math3d.V3(0.2, 0, 5),
		math3d.V3(0, 0.2, 5),
	}, Wireframe)

	f := geom.NewFrustum(128, 64, 90, 1, 1000)
	p.Cull(f)

	if p.Culled {
		t.Fatalf("a triangle straddling the near plane should not be fully culled")
	}
	if len(p.Trans) != len(p.TransHighlights) {
		t.Fatalf("Trans and TransHighlights must stay the same length: %d vs %d", len(p.Trans), len(p.TransHighlights))
	}

	// One corner clipped off: two intersection vertices come in, the corner
	// itself collapses away, and only the synthetic edge joining the two
	// intersections is hidden.
	if len(p.Trans) != 4 {
		t.Errorf("clipping one corner off a triangle should leave 4 vertices, got %d", len(p.Trans))
	}
	hidden := 0
	for _, on := range p.TransHighlights {
		if !on {
			hidden++
		}
	}
	if hidden != 1 {
		t.Errorf("exactly the clip-generated edge should be hidden, got %d hidden edges", hidden)
	}
	for _, v := range p.Trans {
		for _, pl := range f.Planes {
			if pl.DistanceToPoint(v) < -1e-9 {
				t.Errorf("clipped vertex %v ended up outside a frustum plane", v)
			}
		}
	}
}

func TestDrawSkipsWhenCulled(t *testing.T) {
	p := New(triangle(), Wireframe)
	p.Culled = true
	s := screen.New(8, 8)
	p.Draw(s) // must not panic, must not draw

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.Pix[x+y*s.Width] != 0 {
				t.Errorf("culled polygon drew pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestCloneSeedsFromTrans(t *testing.T) {
	p := New(triangle(), Occluded)
	m := math3d.Identity()
	m.Translate(2, 0, 0)
	p.Transform(m)
	p.TransHighlights[0] = false

	clone := p.Clone()

	if clone.Poly[0].X != p.Trans[0].X {
		t.Errorf("clone's Poly should seed from the original's Trans")
	}
	if clone.TransHighlights[0] {
		t.Errorf("clone should preserve the source's current highlight state")
	}
	if clone.Mode != Occluded {
		t.Errorf("clone should preserve Mode")
	}
}
