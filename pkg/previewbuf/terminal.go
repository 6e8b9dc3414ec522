package previewbuf

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw mirrors b to the terminal screen inside the rectangle from (0,0) to
// (cols, rows), packing two sign rows into each terminal row via the
// upper-half-block character (▀, fg = top pixel, bg = bottom pixel) the
// same way a color terminal framebuffer would, just with only two possible
// colors per pixel.
func (b *Buffer) Draw(scr uv.Screen, cols, rows int) {
	var area uv.Rectangle
	area.Min.X, area.Min.Y = 0, 0
	area.Max.X, area.Max.Y = cols, rows

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < b.Width; col++ {
			topColor := b.GetPixel(col, topY)
			botColor := b.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
