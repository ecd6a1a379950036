package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawTriangle draws a filled triangle from raw coordinates.
func (c *Context) DrawTriangle(x1, y1, x2, y2, x3, y3 float32) {
	st := c.style()
	c.CheckCapacity(3)
	c.pushVertex(st, x1, y1)
	c.pushVertex(st, x2, y2)
	c.pushVertex(st, x3, y3)
}

// DrawTriangleV draws a filled triangle from vector vertices.
func (c *Context) DrawTriangleV(p1, p2, p3 mgl32.Vec2) {
	c.DrawTriangle(p1.X(), p1.Y(), p2.X(), p2.Y(), p3.X(), p3.Y())
}

// DrawRectangle draws a filled axis-aligned rectangle, decomposed into
// two triangles.
func (c *Context) DrawRectangle(x, y, w, h float32) {
	st := c.style()
	c.CheckCapacity(6)
	c.pushVertex(st, x, y)
	c.pushVertex(st, x, y+h)
	c.pushVertex(st, x+w, y)
	c.pushVertex(st, x+w, y)
	c.pushVertex(st, x, y+h)
	c.pushVertex(st, x+w, y+h)
}

// DrawRectangleV draws a filled rectangle from a Rect value.
func (c *Context) DrawRectangleV(r Rect) {
	c.DrawRectangle(r.X, r.Y, r.W, r.H)
}

// DrawLine draws a line segment, expanded into a thin quad whose
// half-width is perpendicular to the line direction, scaled by the
// current line width. A zero-length line is a no-op: degenerate lines
// are common under live mouse input and are not an error.
func (c *Context) DrawLine(x1, y1, x2, y2 float32) {
	dx := x2 - x1
	dy := y2 - y1
	if dx == 0 && dy == 0 {
		return
	}

	st := c.style()
	invLen := 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	// Perpendicular normal scaled to half the line width.
	nx := -dy * invLen * st.LineWidth * 0.5
	ny := dx * invLen * st.LineWidth * 0.5

	c.CheckCapacity(6)
	c.pushVertex(st, x1+nx, y1+ny)
	c.pushVertex(st, x1-nx, y1-ny)
	c.pushVertex(st, x2+nx, y2+ny)
	c.pushVertex(st, x2+nx, y2+ny)
	c.pushVertex(st, x1-nx, y1-ny)
	c.pushVertex(st, x2-nx, y2-ny)
}

// DrawLineV draws a line segment between two vector endpoints.
func (c *Context) DrawLineV(p1, p2 mgl32.Vec2) {
	c.DrawLine(p1.X(), p1.Y(), p2.X(), p2.Y())
}

// DrawRectangleLines draws a rectangle outline as four filled thin
// rectangles in a pinwheel layout: each side's length is reduced by one
// line width at one end so no corner pixel is covered twice. Overlapped
// corners would double-blend semi-transparent outlines.
func (c *Context) DrawRectangleLines(x, y, w, h float32) {
	t := c.LineWidth
	c.DrawRectangle(x, y, w-t, t)       // top, stops short of the right corner
	c.DrawRectangle(x, y+t, t, h-t)     // left, starts below the top corner
	c.DrawRectangle(x+t, y+h-t, w-t, t) // bottom, starts past the left corner
	c.DrawRectangle(x+w-t, y, t, h-t)   // right, stops short of the bottom corner
}

// DrawRectangleLinesV draws a rectangle outline from a Rect value.
func (c *Context) DrawRectangleLinesV(r Rect) {
	c.DrawRectangleLines(r.X, r.Y, r.W, r.H)
}
