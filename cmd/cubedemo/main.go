// Command cubedemo drives the 128x64 sign with two throbbing, tumbling
// cubes, one drawn as plain wireframe quads and edges, the other as
// occluded solid faces. It has no model file to load: every vertex is
// hand-built, so it exercises the raster pipeline without the mesh loader.
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
)

const (
	signWidth  = 128
	signHeight = 64
	fov        = 90.0
	zNear      = 1.0
	zFar       = 1000.0
)

// cube is the eight corners of a unit cube centered on the origin, in the
// same vertex order the quad faces below index into.
var cube = [8]math3d.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
}

func main() {
	framePath := flag.String("frame", "", "path to publish raw frame bytes to (frameio.PublishFrame)")
	vsyncPath := flag.String("vsync", "", "path to a vsync counter file to pace against (polled if set, 30fps fixed otherwise)")
	pngPath := flag.String("png", "", "save a single frame as a PNG preview and exit")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs forever)")
	flag.Parse()

	view := math3d.NewProjection(signWidth, signHeight, fov, zNear, zFar)

	var waiter *frameio.VBlankWaiter
	if *vsyncPath != "" {
		waiter = frameio.NewVBlankWaiter()
	}

	count := 0
	for *frames == 0 || count < *frames {
		s := screen.New(signWidth, signHeight)

		val := 0.5 + math.Sin(float64(count)/30*math.Pi)/16

		drawWireframeCube(s, &view, float64(count), val, 2.5, 0.0)
		drawOccludedCube(s, &view, float64(count), val, -2.5, 0.0)

		if *pngPath != "" {
			if err := previewbuf.FromScreen(s, previewbuf.On, previewbuf.Off).SavePNG(*pngPath); err != nil {
				log.Fatalf("cubedemo: save png: %v", err)
			}
			return
		}

		if *framePath != "" {
			if err := frameio.PublishFrame(*framePath, s.Pix); err != nil {
				log.Fatalf("cubedemo: publish frame: %v", err)
			}
		}

		count++

		if waiter != nil {
			if err := waiter.Wait(context.Background(), *vsyncPath); err != nil {
				fmt.Fprintf(os.Stderr, "cubedemo: vsync wait: %v\n", err)
				return
			}
		} else {
			time.Sleep(time.Second / 30)
		}
	}
}

// drawWireframeCube draws a cube as two quads (front/back faces) plus four
// connecting edges, growing and shrinking by val and offset xOffset/zOffset
// back from the eye. Every edge draws through everything behind it.
func drawWireframeCube(s *screen.Screen, view *math3d.Matrix, count, val, xOffset, zOffset float64) {
	effects := cubeEffects(count, val, xOffset, zOffset)
	pts := projectCube(effects, view)

	s.DrawQuad(pts[0], pts[1], pts[2], pts[3], true)
	s.DrawQuad(pts[4], pts[5], pts[6], pts[7], true)
	for i := 0; i < 4; i++ {
		s.DrawLinePoints(pts[i], pts[i+4], true)
	}
}

// drawOccludedCube draws the same cube shape but as six DrawOccludedQuad
// faces, so its silhouette hides edges behind nearer faces the way a solid
// object would, instead of drawing every edge through the whole shape.
func drawOccludedCube(s *screen.Screen, view *math3d.Matrix, count, val, xOffset, zOffset float64) {
	effects := cubeEffects(count, val, xOffset, zOffset)
	pts := projectCube(effects, view)

	s.DrawOccludedQuad(pts[0], pts[3], pts[2], pts[1])
	s.DrawOccludedQuad(pts[4], pts[5], pts[6], pts[7])
	s.DrawOccludedQuad(pts[0], pts[1], pts[5], pts[4])
	s.DrawOccludedQuad(pts[3], pts[7], pts[6], pts[2])
	s.DrawOccludedQuad(pts[1], pts[2], pts[6], pts[5])
	s.DrawOccludedQuad(pts[0], pts[4], pts[7], pts[3])
}

// cubeEffects scales the unit cube by val, tumbles it about its own center,
// and then moves it out to its spot in front of the eye.
func cubeEffects(count, val, xOffset, zOffset float64) math3d.Matrix {
	effects := math3d.Identity()
	effects.ScaleX(val)
	effects.ScaleY(val)
	effects.ScaleZ(val)
	effects.RotateX(60 + count*1.0)
	effects.RotateY(30 + count*1.1)

	move := math3d.Identity()
	move.Translate(xOffset, 0, 3.0+zOffset)
	effects.Multiply(move)

	return effects
}

func projectCube(effects math3d.Matrix, view *math3d.Matrix) [8]math3d.Vec3 {
	var pts [8]math3d.Vec3
	for i, c := range cube {
		p := effects.MultiplyPoint(c)
		pts[i] = view.ProjectPoint(p)
	}
	return pts
}
