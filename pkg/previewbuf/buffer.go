// Package previewbuf renders a screen.Screen's 1-bit pixel plane somewhere
// a physical LED sign isn't attached: a tinted RGBA image (for a PNG
// snapshot) or a terminal (via charmbracelet/ultraviolet), so the demo
// binaries have something to show without real hardware wired up.
package previewbuf

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/trophy/pkg/screen"
)

// Buffer is a width x height RGBA tint of a screen.Screen's pixel plane.
type Buffer struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// FromScreen builds a Buffer the same dimensions as s, painting on pixels
// with on and off pixels with off.
func FromScreen(s *screen.Screen, on, off color.RGBA) *Buffer {
	buf := &Buffer{
		Width:  s.Width,
		Height: s.Height,
		Pixels: make([]color.RGBA, s.Width*s.Height),
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			idx := x + y*s.Width
			c := off
			if s.Pix[idx] != 0 {
				c = on
			}
			buf.Pixels[idx] = c
		}
	}
	return buf
}

// GetPixel returns the color at (x, y), or transparent black out of bounds.
func (b *Buffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return color.RGBA{}
	}
	return b.Pixels[y*b.Width+x]
}

// ToImage converts the buffer to a standard Go image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.Pixels[y*b.Width+x])
		}
	}
	return img
}

// SavePNG saves the buffer as a PNG file, for a headless demo smoke check.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, b.ToImage())
}

// On and Off are the default preview tint colors: an amber LED look-alike
// on black, matching the physical sign's usual color without claiming this
// is a faithful reproduction of it (it's monochrome everywhere else).
var (
	On  = color.RGBA{255, 176, 0, 255}
	Off = color.RGBA{10, 8, 0, 255}
)
