// Command stlviewer loads an STL (or glTF/GLB) model, spins it on a
// turntable camera, and rasterizes it to the 128x64 sign plane every
// frame. By default it just publishes frames and paces itself against a
// vsync counter file; pass -term to also mirror the sign plane into this
// terminal, since no physical sign is attached in a dev environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/trophy/pkg/frameio"
	"github.com/taigrr/trophy/pkg/geom"
	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/model"
	"github.com/taigrr/trophy/pkg/models"
	"github.com/taigrr/trophy/pkg/polygon"
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

func main() {
	framePath := flag.String("frame", "", "path to publish raw frame bytes to (frameio.PublishFrame)")
	vsyncPath := flag.String("vsync", "", "path to a vsync counter file to pace against (polled if set, 30fps fixed otherwise)")
	occluded := flag.Bool("occluded", true, "draw as occluded solid faces instead of plain wireframe")
	termPreview := flag.Bool("term", false, "also mirror the sign plane into this terminal")
	spinRate := flag.Float64("spin", 2.5, "degrees of yaw added per frame")
	pair := flag.Bool("pair", false, "draw a second copy of the model spinning the other way")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <model.stl|model.glb|model.gltf>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	mode := polygon.Wireframe
	if *occluded {
		mode = polygon.Occluded
	}

	m, err := loadModel(flag.Arg(0), mode)
	if err != nil {
		log.Fatalf("stlviewer: %v", err)
	}
	m.Coalesce()

	view := math3d.NewProjection(signWidth, signHeight, fov, zNear, zFar)
	frustum := geom.NewFrustum(signWidth, signHeight, fov, zNear, zFar)

	if *termPreview {
		if err := runInteractive(m, &view, frustum, *framePath, *vsyncPath); err != nil {
			log.Fatalf("stlviewer: %v", err)
		}
		return
	}

	if err := runHeadless(m, &view, frustum, *framePath, *vsyncPath, *spinRate, *pair); err != nil {
		log.Fatalf("stlviewer: %v", err)
	}
}

// loadModel dispatches on file extension: STL goes straight through
// pkg/model.LoadSTL, glTF/GLB goes through the mesh loader and its
// Triangles bridge into pkg/model.FromTriangles.
func loadModel(path string, mode polygon.Mode) (*model.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return model.LoadSTL(path, mode)
	case ".glb", ".gltf":
		loader := models.NewGLTFLoader()
		mesh, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load gltf: %w", err)
		}
		size, center := mesh.Size(), mesh.Center()
		fmt.Fprintf(os.Stderr, "stlviewer: %s: %d vertices, %d triangles, %.2fx%.2fx%.2f about (%.2f, %.2f, %.2f)\n",
			filepath.Base(path), mesh.VertexCount(), mesh.TriangleCount(),
			size.X, size.Y, size.Z, center.X, center.Y, center.Z)
		return model.FromTriangles(mesh.Triangles(), mode), nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s (use .stl, .glb, or .gltf)", path)
	}
}

// runHeadless is the plain producer loop: reset, spin a little further
// each frame, transform, cull, project, draw, publish, wait for vsync (or
// sleep at a fixed rate with no vsync file). With pair set, a cloned second
// instance spins the opposite way beside the first.
func runHeadless(m *model.Model, view *math3d.Matrix, frustum geom.Frustum, framePath, vsyncPath string, spinRate float64, pair bool) error {
	var waiter *frameio.VBlankWaiter
	if vsyncPath != "" {
		waiter = frameio.NewVBlankWaiter()
	}

	m.Reset()
	center := m.GetOrigin()

	var second *model.Model
	xOffset := 0.0
	if pair {
		second = m.Clone()
		xOffset = 1.2
	}

	count := 0.0
	for {
		s := screen.New(signWidth, signHeight)

		drawInstance(s, m, view, frustum, center, count*0.2, count*spinRate, -xOffset)
		if second != nil {
			drawInstance(s, second, view, frustum, center, count*0.2, -count*spinRate, xOffset)
		}

		if framePath != "" {
			if err := frameio.PublishFrame(framePath, s.Pix); err != nil {
				return fmt.Errorf("publish frame: %w", err)
			}
		}

		count++

		if waiter != nil {
			if err := waiter.Wait(context.Background(), vsyncPath); err != nil {
				return nil
			}
		} else {
			time.Sleep(time.Second / 30)
		}
	}
}

// drawInstance runs one model copy through a full frame of the pipeline:
// center it, pitch and yaw it, move it out in front of the eye at xOffset,
// then transform, cull, project, and draw.
func drawInstance(s *screen.Screen, m *model.Model, view *math3d.Matrix, frustum geom.Frustum, center math3d.Vec3, pitch, yaw, xOffset float64) {
	m.Reset()

	effects := math3d.Identity()
	effects.Translate(-center.X, -center.Y, -center.Z)
	effects.RotateX(pitch)
	effects.RotateY(yaw)

	move := math3d.Identity()
	move.Translate(xOffset, 0, 2.5)
	effects.Multiply(move)

	m.Transform(effects)
	m.Cull(frustum)
	m.Project(*view)
	m.Draw(s)
}

// runInteractive mirrors the sign plane into the terminal via
// charmbracelet/ultraviolet, on top of a spring-damped turntable camera
// the mouse can drag and the scroll wheel can push back and forth.
func runInteractive(m *model.Model, view *math3d.Matrix, frustum geom.Frustum, framePath, vsyncPath string) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	const fps = 30
	cam := newOrbitCamera(fps, 2.5)

	var mouseDown bool
	var lastMouseX, lastMouseY int

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("r"):
					cam.reset()
				case ev.MatchString("w", "up"):
					cam.applyImpulse(-0.5, 0, 0)
				case ev.MatchString("s", "down"):
					cam.applyImpulse(0.5, 0, 0)
				case ev.MatchString("a", "left"):
					cam.applyImpulse(0, -0.5, 0)
				case ev.MatchString("d", "right"):
					cam.applyImpulse(0, 0.5, 0)
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					cam.applyImpulse(float64(dy)*0.2, float64(dx)*0.2, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cam.Distance -= 0.25
				case uv.MouseWheelDown:
					cam.Distance += 0.25
				}
			}
		}
	}()

	var waiter *frameio.VBlankWaiter
	if vsyncPath != "" {
		waiter = frameio.NewVBlankWaiter()
	}

	m.Reset()
	center := m.GetOrigin()

	targetDuration := time.Second / fps
	for {
		select {
		case <-ctx.Done():
			term.ExitAltScreen()
			term.ShowCursor()
			return term.Shutdown(context.Background())
		default:
		}

		frameStart := time.Now()

		s := screen.New(signWidth, signHeight)
		m.Reset()

		cam.update()
		effects := math3d.Identity()
		effects.Translate(-center.X, -center.Y, -center.Z)
		effects.Multiply(cam.Matrix())

		m.Transform(effects)
		m.Cull(frustum)
		m.Project(*view)
		m.Draw(s)

		if framePath != "" {
			if err := frameio.PublishFrame(framePath, s.Pix); err != nil {
				return fmt.Errorf("publish frame: %w", err)
			}
		}

		buf := previewbuf.FromScreen(s, previewbuf.On, previewbuf.Off)
		buf.Draw(term, width, height)
		term.Display()

		if waiter != nil {
			if err := waiter.Wait(ctx, vsyncPath); err != nil && ctx.Err() == nil {
				term.ExitAltScreen()
				term.ShowCursor()
				term.Shutdown(context.Background())
				return err
			}
		} else if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
