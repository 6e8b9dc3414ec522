// Package texture implements the renderer's boolean-mask texture: a 2D grid
// of on/off samples with clamp/mirror/tile wrapping, used to paint the
// interior of textured triangles and to source the color plane of occluded
// polygons.
package texture

import "math"

// ClampMode selects how out-of-range (u, v) coordinates are folded back
// into [0, 1] before sampling.
type ClampMode int

const (
	// Normal clamps u and v to [0, 1].
	Normal ClampMode = iota
	// Mirror folds by absolute value, then flips every other integer unit.
	Mirror
	// Tile takes the fractional part, wrapping negative values positive.
	Tile
)

// Texture is a width x height grid of bytes, each 0 (off) or nonzero (on).
// A Texture either owns its pixel data (Managed) or borrows it; Clone always
// produces an owning copy.
type Texture struct {
	Width, Height int
	Data          []byte
	Managed       bool
	Mode          ClampMode
}

// New wraps an existing pixel grid without copying it (a borrowing texture).
// width*height must equal len(data).
func New(width, height int, data []byte) *Texture {
	return &Texture{Width: width, Height: height, Data: data, Managed: false}
}

// NewManaged makes an owning copy of data.
func NewManaged(width, height int, data []byte) *Texture {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Texture{Width: width, Height: height, Data: owned, Managed: true}
}

// Empty returns a zero-dimension texture whose Sample always returns false,
// the documented fallback for a failed load.
func Empty() *Texture {
	return &Texture{}
}

// SetClampMode sets the sampling wrap mode. An unrecognized mode is
// silently ignored, per the documented "unknown clamp mode" fallback.
func (t *Texture) SetClampMode(mode ClampMode) {
	if mode != Normal && mode != Mirror && mode != Tile {
		return
	}
	t.Mode = mode
}

// Clone returns an independent, owning copy of t.
func (t *Texture) Clone() *Texture {
	return NewManaged(t.Width, t.Height, t.Data)
}

// Sample resolves the clamp mode, then samples the nearest pixel to (u, v).
// It returns false unconditionally if the texture has no backing data (a
// failed load).
func (t *Texture) Sample(u, v float64) bool {
	if len(t.Data) == 0 {
		return false
	}

	switch t.Mode {
	case Mirror:
		u = mirrorFold(u)
		v = mirrorFold(v)
	case Tile:
		u = tileFold(u)
		v = tileFold(v)
	default:
		u = clamp01(u)
		v = clamp01(v)
	}

	x := int(u * float64(t.Width))
	if x > t.Width-1 {
		x = t.Width - 1
	}
	y := int(v * float64(t.Height))
	if y > t.Height-1 {
		y = t.Height - 1
	}

	return t.Data[x+y*t.Width] != 0
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func mirrorFold(v float64) float64 {
	v = math.Abs(v)
	intPart, frac := math.Modf(v)
	if int(intPart)&1 != 0 {
		return 1.0 - frac
	}
	return frac
}

func tileFold(v float64) float64 {
	_, frac := math.Modf(v)
	if frac < 0 {
		frac += 1.0
	}
	return frac
}
