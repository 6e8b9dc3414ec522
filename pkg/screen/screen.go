// Package screen implements the renderer's 1-bit raster target: a boolean
// color plane paired with a float64 depth plane, plus the primitive draw
// operations (pixel, line, wireframe tri/quad/polygon, textured and
// occluded-outline rasterization) that every higher-level shape renders
// through.
package screen

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/texture"
)

// Order selects which screen-space winding is treated as front-facing.
type Order int

const (
	CCW Order = iota
	CW
)

// Screen is a width x height raster target. Every draw operation takes
// points whose Z carries 1/w, the convention produced by
// math3d.Matrix.ProjectPoint: w <= 0 means in front of the eye, and a more
// negative w (closer to the eye) always wins the depth test.
type Screen struct {
	Width, Height int
	Pix           []byte
	Depth         []float64
	FrontFace     Order

	maskScreen *Screen
	texScreen  *Screen
}

// New allocates a cleared screen of the given dimensions.
func New(width, height int) *Screen {
	s := &Screen{
		Width:     width,
		Height:    height,
		FrontFace: CCW,
		Pix:       make([]byte, width*height),
		Depth:     make([]float64, width*height),
	}
	s.Clear()
	return s
}

// Clear zeroes the color plane and resets every depth sample to +infinity,
// so the next frame's first draw at any pixel always passes the depth test.
func (s *Screen) Clear() {
	for i := range s.Pix {
		s.Pix[i] = 0
	}
	for i := range s.Depth {
		s.Depth[i] = math.Inf(1)
	}
}

// SetFrontFace sets the winding treated as front-facing. An unrecognized
// order is silently ignored and the previous value retained.
func (s *Screen) SetFrontFace(order Order) {
	if order != CCW && order != CW {
		return
	}
	s.FrontFace = order
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

func (s *Screen) getPixel(x, y int) bool {
	if !s.inBounds(x, y) {
		return false
	}
	return s.Pix[x+y*s.Width] != 0
}

// AsTexture wraps the current color plane as a texture, borrowing the same
// backing slice (mutating the screen afterward mutates the texture too).
func (s *Screen) AsTexture() *texture.Texture {
	return texture.New(s.Width, s.Height, s.Pix)
}

// DrawPixel draws a single pixel carrying projected depth w. It rejects
// points behind the eye (w > 0), out-of-bounds coordinates, and points that
// fail the depth test: z is recovered from w as -1/w (w == 0 maps to z == 0,
// the on-eye-plane convention), and any z greater than the pixel's current
// depth is rejected outright.
func (s *Screen) DrawPixel(x, y int, w float64, on bool) {
	if !s.inBounds(x, y) {
		return
	}
	if w > 0.0 {
		return
	}

	z := w
	if z != 0.0 {
		z = -1 / z
	}

	idx := x + y*s.Width
	if z > s.Depth[idx] {
		return
	}

	if on {
		s.Pix[idx] = 1
	} else {
		s.Pix[idx] = 0
	}
	s.Depth[idx] = z
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine rasterizes a Bresenham line from (x0, y0, w0) to (x1, y1, w1),
// linearly interpolating w across the walked pixels. The step count is
// computed with a dry run first so the per-step dw can be derived from the
// exact number of pixels the second pass will visit.
func (s *Screen) DrawLine(x0, y0 int, w0 float64, x1, y1 int, w1 float64, on bool) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	steps := -1
	cx, cy, cerr := x0, y0, err
	for {
		steps++
		if cx == x1 && cy == y1 {
			break
		}
		e2 := 2 * cerr
		if e2 >= dy {
			cerr += dy
			cx += sx
		}
		if e2 <= dx {
			cerr += dx
			cy += sy
		}
	}

	dw := 0.0
	if steps > 0 {
		dw = (w1 - w0) / float64(steps)
	}

	cx, cy, cerr, w := x0, y0, err, w0
	for {
		s.DrawPixel(cx, cy, w, on)
		if cx == x1 && cy == y1 {
			break
		}
		e2 := 2 * cerr
		if e2 >= dy {
			cerr += dy
			cx += sx
		}
		if e2 <= dx {
			cerr += dx
			cy += sy
		}
		w += dw
	}
}

// DrawLinePoints draws a line between two points whose Z carries projected
// depth, as produced by the model/polygon transform pipeline.
func (s *Screen) DrawLinePoints(first, second math3d.Vec3, on bool) {
	s.DrawLine(int(first.X), int(first.Y), first.Z, int(second.X), int(second.Y), second.Z, on)
}

// DrawTri draws the three edges of a triangle.
func (s *Screen) DrawTri(first, second, third math3d.Vec3, on bool) {
	s.DrawLinePoints(first, second, on)
	s.DrawLinePoints(second, third, on)
	s.DrawLinePoints(third, first, on)
}

// DrawQuad draws the four edges of a quadrilateral.
func (s *Screen) DrawQuad(first, second, third, fourth math3d.Vec3, on bool) {
	s.DrawLinePoints(first, second, on)
	s.DrawLinePoints(second, third, on)
	s.DrawLinePoints(third, fourth, on)
	s.DrawLinePoints(fourth, first, on)
}

// DrawPolygon draws the edges of an arbitrary-length convex polygon,
// dispatching to DrawTri/DrawQuad for the common cases.
func (s *Screen) DrawPolygon(points []math3d.Vec3, on bool) {
	switch {
	case len(points) < 3:
		return
	case len(points) == 3:
		s.DrawTri(points[0], points[1], points[2], on)
		return
	case len(points) == 4:
		s.DrawQuad(points[0], points[1], points[2], points[3], on)
		return
	}

	for i := range points {
		j := (i + 1) % len(points)
		s.DrawLinePoints(points[i], points[j], on)
	}
}

// IsBackFacing reports whether the triangle is back-facing in screen space
// under the screen's configured front-face winding, using only the X/Y
// screen-space cross product.
func (s *Screen) IsBackFacing(first, second, third math3d.Vec3) bool {
	var ax, ay, bx, by float64
	if s.FrontFace == CCW {
		ax, ay = third.X-first.X, third.Y-first.Y
		bx, by = second.X-first.X, second.Y-first.Y
	} else {
		ax, ay = second.X-first.X, second.Y-first.Y
		bx, by = third.X-first.X, third.Y-first.Y
	}
	return (ax*by)-(ay*bx) > 0.0
}
