// Command texcube drives the 128x64 sign with a tumbling cube whose faces
// mix textured fills and plain occluded outlines, plus a flat textured
// square spinning in screen space. Between them they hit every sampling
// mode: one face clamps, one tiles past its UV range, one mirrors.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/taigrr/trophy/pkg/frameio"
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/previewbuf"
	"github.com/taigrr/trophy/pkg/screen"
	"github.com/taigrr/trophy/pkg/texture"
)

const (
	signWidth  = 128
	signHeight = 64
	fov        = 90.0
	zNear      = 1.0
	zFar       = 1000.0
)

var cube = [8]math3d.Vec3{
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
}

// faceUV covers a face corner-to-corner; wideUV runs out to 2 so the tiled
// and mirrored faces have something past [0,1] to fold back in.
var (
	faceUV = [4]screen.UV{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}}
	wideUV = [4]screen.UV{{U: 0, V: 0}, {U: 2, V: 0}, {U: 2, V: 2}, {U: 0, V: 2}}
)

func main() {
	framePath := flag.String("frame", "", "path to publish raw frame bytes to (frameio.PublishFrame)")
	vsyncPath := flag.String("vsync", "", "path to a vsync counter file to pace against (polled if set, 30fps fixed otherwise)")
	pngPath := flag.String("png", "", "save a single frame as a PNG preview and exit")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs forever)")
	texPath := flag.String("tex", "", "texture file fed to the external loader (checkerboard if empty or failed)")
	flag.Parse()

	base := loadOrChecker(*texPath)

	tiled := base.Clone()
	tiled.SetClampMode(texture.Tile)

	mirrored := base.Clone()
	mirrored.SetClampMode(texture.Mirror)

	view := math3d.NewProjection(signWidth, signHeight, fov, zNear, zFar)

	var waiter *frameio.VBlankWaiter
	if *vsyncPath != "" {
		waiter = frameio.NewVBlankWaiter()
	}

	count := 0
	for *frames == 0 || count < *frames {
		s := screen.New(signWidth, signHeight)

		drawTexturedCube(s, &view, float64(count), base, tiled, mirrored)
		drawSpinner(s, float64(count), base)

		if *pngPath != "" {
			if err := previewbuf.FromScreen(s, previewbuf.On, previewbuf.Off).SavePNG(*pngPath); err != nil {
				log.Fatalf("texcube: save png: %v", err)
			}
			return
		}

		if *framePath != "" {
			if err := frameio.PublishFrame(*framePath, s.Pix); err != nil {
				log.Fatalf("texcube: publish frame: %v", err)
			}
		}

		count++

		if waiter != nil {
			if err := waiter.Wait(context.Background(), *vsyncPath); err != nil {
				fmt.Fprintf(os.Stderr, "texcube: vsync wait: %v\n", err)
				return
			}
		} else {
			time.Sleep(time.Second / 30)
		}
	}
}

// loadOrChecker runs the external texture loader, falling back to a built-in
// 8x8 checkerboard when no path was given or the loader produced nothing, so
// the demo still has visible faces on a machine without the loader script.
func loadOrChecker(path string) *texture.Texture {
	if path != "" {
		if tex := texture.LoadFromSubprocess(path); tex.Width > 0 {
			return tex
		}
		fmt.Fprintf(os.Stderr, "texcube: %s failed to load, using checkerboard\n", path)
	}

	const size = 8
	data := make([]byte, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				data[x+y*size] = 1
			}
		}
	}
	return texture.NewManaged(size, size, data)
}

// drawTexturedCube throbs and tumbles the cube in front of the eye, with
// four faces textured (clamped, tiled, and mirrored sampling between them)
// and the remaining two drawn as plain occluded outlines.
func drawTexturedCube(s *screen.Screen, view *math3d.Matrix, count float64, base, tiled, mirrored *texture.Texture) {
	val := 0.55 + math.Sin(count/30*math.Pi)/15

	effects := math3d.Identity()
	effects.Scale(val, val, val)
	effects.RotateX(45)
	effects.RotateY(count * 2.5)
	effects.RotateX(count * 0.2)

	move := math3d.Identity()
	move.Translate(0, 0, 2.5)
	effects.Multiply(move)

	var pts [8]math3d.Vec3
	for i, c := range cube {
		pts[i] = view.ProjectPoint(effects.MultiplyPoint(c))
	}

	s.DrawTexturedCulledQuad(pts[0], pts[1], pts[2], pts[3], faceUV[0], faceUV[1], faceUV[2], faceUV[3], base)
	s.DrawTexturedCulledQuad(pts[5], pts[4], pts[7], pts[6], wideUV[0], wideUV[1], wideUV[2], wideUV[3], tiled)
	s.DrawTexturedCulledQuad(pts[0], pts[4], pts[5], pts[1], faceUV[0], faceUV[1], faceUV[2], faceUV[3], base)
	s.DrawOccludedQuad(pts[1], pts[5], pts[6], pts[2])
	s.DrawTexturedCulledQuad(pts[2], pts[6], pts[7], pts[3], wideUV[0], wideUV[1], wideUV[2], wideUV[3], mirrored)
	s.DrawOccludedQuad(pts[0], pts[3], pts[7], pts[4])
}

// drawSpinner rotates a flat textured square about a point left of the sign
// center, entirely in screen space: its vertices carry no projection, so the
// textured rasterizer runs in its affine mode and the depth test stays inert.
func drawSpinner(s *screen.Screen, count float64, tex *texture.Texture) {
	quad := [4]math3d.Vec3{
		math3d.V3(48, 16, 0),
		math3d.V3(80, 16, 0),
		math3d.V3(80, 48, 0),
		math3d.V3(48, 48, 0),
	}

	rot := math3d.Identity()
	rot.RotateOriginZ(math3d.V3(64, 32, 0), count*-2.0)

	move := math3d.Identity()
	move.Translate(-32, 0, 0)
	rot.Multiply(move)

	for i, p := range quad {
		quad[i] = rot.MultiplyPoint(p)
	}

	s.DrawTexturedQuad(quad[0], quad[1], quad[2], quad[3], faceUV[0], faceUV[1], faceUV[2], faceUV[3], tex)
}
