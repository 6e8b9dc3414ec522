package texture

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func checkerTexture() *Texture {
	// 2x2: on, off / off, on
	return NewManaged(2, 2, []byte{1, 0, 0, 1})
}

func TestSampleEmptyTextureAlwaysFalse(t *testing.T) {
	tex := Empty()
	if tex.Sample(0.5, 0.5) {
		t.Errorf("an empty texture should always sample false")
	}
}

func TestSampleNormalClamp(t *testing.T) {
	tex := checkerTexture()
	tex.SetClampMode(Normal)

	if got := tex.Sample(0.1, 0.1); !got {
		t.Errorf("Sample(0.1,0.1) = %v, want true", got)
	}
	if got := tex.Sample(2.0, 2.0); !got {
		t.Errorf("Sample(2.0,2.0) clamped to (1,1) should hit the bottom-right on pixel")
	}
	if got := tex.Sample(-5.0, 0.1); !got {
		t.Errorf("Sample(-5,0.1) clamps to (0,0.1), hitting the on top-left pixel")
	}
}

func TestSampleTileWraps(t *testing.T) {
	tex := checkerTexture()
	tex.SetClampMode(Tile)

	// 1.1 tiles to 0.1 -> same quadrant as 0.1
	a := tex.Sample(0.1, 0.1)
	b := tex.Sample(1.1, 1.1)
	if a != b {
		t.Errorf("tiled sample at +1.0 offset should match the base sample: %v != %v", a, b)
	}

	// -0.1 tiles to 0.9
	c := tex.Sample(-0.1, -0.1)
	d := tex.Sample(0.9, 0.9)
	if c != d {
		t.Errorf("negative tiled sample should match its positive equivalent: %v != %v", c, d)
	}
}

func TestSampleMirrorFlipsOnOddUnit(t *testing.T) {
	tex := checkerTexture()
	tex.SetClampMode(Mirror)

	// in [1,2] the integer part is odd, so the fraction flips: 1.1 -> 1-0.1=0.9
	flipped := tex.Sample(1.1, 1.1)
	direct := tex.Sample(0.9, 0.9)
	if flipped != direct {
		t.Errorf("mirrored sample at 1.1 should equal direct sample at 0.9: %v != %v", flipped, direct)
	}
}

func TestSetClampModeIgnoresUnknown(t *testing.T) {
	tex := checkerTexture()
	tex.SetClampMode(Tile)
	tex.SetClampMode(ClampMode(99))
	if tex.Mode != Tile {
		t.Errorf("unknown clamp mode should be ignored, mode changed to %v", tex.Mode)
	}
}

func TestDecodeHeaderAndPixels(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int16(2))
	binary.Write(&buf, binary.LittleEndian, int16(1))
	buf.Write([]byte{1, 0})

	tex := decode(&buf)
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("unexpected dimensions %dx%d", tex.Width, tex.Height)
	}
	if !tex.Sample(0.1, 0.5) {
		t.Errorf("expected left pixel on")
	}
	if tex.Sample(0.9, 0.5) {
		t.Errorf("expected right pixel off")
	}
}

func TestDecodeNonPositiveDimensionIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int16(0))
	binary.Write(&buf, binary.LittleEndian, int16(0))

	tex := decode(&buf)
	if tex.Sample(0, 0) {
		t.Errorf("zero-dimension decode should behave as empty")
	}
}
