// Example demonstrates the batched render context with the OpenGL
// backend: filled and outlined shapes, arcs, the transform stack, and a
// standalone mesh.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "render example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	window, err := opengl.NewWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	fbWidth, fbHeight := window.FramebufferSize()
	ctx, err := render.NewContext(
		opengl.NewDevice(fbWidth, fbHeight),
		render.WithBaseTransform(ortho(fbWidth, fbHeight)),
	)
	if err != nil {
		return err
	}
	defer ctx.Close()
	ctx.ResetTransform()

	window.SetResizeCallback(func(width, height int) {
		ctx.Resize(width, height)
		ctx.SetBaseTransform(ortho(width, height))
		ctx.ResetTransform()
	})

	// A standalone mesh: one indexed quad, drawn under the current
	// transform rather than pre-transformed like batched primitives.
	quad, err := ctx.CreateMesh(render.MeshConfig{
		Vertices: []render.Vertex{
			{Pos: [3]float32{-40, -40, 0}, Color: [4]float32{1, 0.5, 0, 1}},
			{Pos: [3]float32{40, -40, 0}, Color: [4]float32{1, 0.5, 0, 1}},
			{Pos: [3]float32{40, 40, 0}, Color: [4]float32{1, 1, 0, 1}},
			{Pos: [3]float32{-40, 40, 0}, Color: [4]float32{1, 1, 0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	})
	if err != nil {
		return err
	}
	defer quad.Close()

	ctx.BackgroundColor = render.RGBA(24, 24, 32, 255)

	for !window.ShouldClose() {
		ctx.Clear()
		angle := float32(glfw.GetTime())

		// Static shapes.
		ctx.Color = render.RGBA(200, 60, 60, 255)
		ctx.DrawRectangle(40, 40, 160, 100)

		ctx.Color = render.White
		ctx.LineWidth = 3
		ctx.DrawRectangleLines(40, 40, 160, 100)

		ctx.Color = render.RGBA(90, 160, 255, 255)
		ctx.DrawTriangle(300, 140, 380, 40, 460, 140)

		// A pie slice and an arc stroke with auto segment counts.
		ctx.Color = render.RGBA(120, 220, 120, 200)
		ctx.DrawCircleSector(mgl32.Vec2{160, 320}, 80, 0, angle, 0)
		ctx.Color = render.White
		ctx.DrawRing(160, 320, 90, 0)

		// Shapes under a rotating local transform.
		ctx.WithTransform(func() {
			ctx.Translate(420, 320, 0)
			ctx.Rotate(angle)
			ctx.Color = render.RGBA(255, 200, 80, 255)
			ctx.DrawRectangle(-50, -50, 100, 100)
			ctx.Color = render.Black
			ctx.LineWidth = 2
			ctx.DrawLine(-50, 0, 50, 0)
		})

		// The mesh flushes the batch first, preserving draw order.
		ctx.WithTransform(func() {
			ctx.Translate(650, 320, 0)
			ctx.Rotate(-angle * 0.5)
			scale := 1 + 0.3*float32(math.Sin(float64(angle)))
			ctx.Scale(scale, scale, 1)
			ctx.Draw(quad)
		})

		ctx.DrawBatch()
		window.EndFrame()
	}

	return nil
}

// ortho builds the pixel-space view used as the base transform:
// origin at the top left, y down.
func ortho(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}
