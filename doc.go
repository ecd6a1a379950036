/*
Package render provides a batched, immediate-mode 2D render context
with a composable transform stack, designed as idiomatic Go over an
OpenGL-style graphics pipeline.

# Overview

A Context accepts a continuous stream of 2D draw calls (triangles,
rectangles, lines, circle/ring arcs, and standalone meshes) from any
number of callers per frame and coalesces them into as few GPU draw
submissions as possible. Callers never touch buffer or shader state:
every primitive is tessellated into triangles, transformed by the
current matrix at push time, and appended to a single shared vertex
batch that is flushed automatically when it fills up.

Because vertices are pre-transformed when they are queued, a single
flush can contain geometry pushed under many different transform-stack
states. Transform changes never retroactively affect already-queued
vertices.

# Quick Start

	// Setup (the opengl backend needs a current GL context)
	window, _ := opengl.NewWindow(800, 600, "demo")
	ctx, _ := render.NewContext(opengl.NewDevice(800, 600))
	ctx.SetBaseTransform(mgl32.Ortho2D(0, 800, 600, 0))
	ctx.ResetTransform()

	// Frame loop
	for !window.ShouldClose() {
	    ctx.Clear()

	    ctx.Color = render.Red
	    ctx.DrawRectangle(10, 10, 100, 50)

	    ctx.PushTransform()
	    ctx.Translate(400, 300, 0)
	    ctx.Rotate(angle)
	    ctx.DrawCircle(0, 0, 80, 0) // 0 = auto segment count
	    ctx.PopTransform()

	    ctx.DrawBatch() // flush the frame
	    window.EndFrame()
	}

# Rendering Model

The Context is device-independent: all GPU work goes through the Device
interface, implemented for OpenGL 4.1 in backend/opengl. Tests supply a
mock Device.

The batch holds triangles only and has a fixed capacity; a full batch
forces an immediate synchronous flush rather than growing, which bounds
GPU buffer size regardless of per-frame draw volume.

All operations are single-threaded and synchronous. A Context and its
batch, transform stack, and style state must only be used from one
rendering thread.
*/
package render
