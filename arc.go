package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// segmentErrorTolerance is the maximum curvature error, in world
	// units, allowed when auto-computing arc segment counts.
	segmentErrorTolerance = 0.5

	// minArcRadius replaces non-positive radii so the error-bound
	// formula cannot divide by zero.
	minArcRadius = 0.1
)

// arcSegments returns the segment count to use for an arc spanning
// span radians at the given radius. Requested counts below the
// error-bound computation are raised to it, so arcs stay visually
// smooth regardless of radius without the caller reasoning about pixel
// error. A requested count of 0 always selects the computed value.
func arcSegments(requested int, radius, span float32) int {
	minSegments := int(math.Ceil(float64(span) / (math.Pi / 2)))
	if minSegments < 1 {
		minSegments = 1
	}

	// Segment count bounding the sagitta error at the tolerance. The
	// acos argument leaves [-1, 1] for radii below twice the tolerance,
	// where the bound does not apply.
	a := 1 - segmentErrorTolerance/float64(radius)
	theta := math.Acos(2*a*a - 1)
	computed := 0
	if !math.IsNaN(theta) && theta > 0 {
		computed = int(math.Ceil(float64(span) * math.Ceil(2*math.Pi/theta) / (2 * math.Pi)))
	}
	if computed < minSegments {
		computed = minSegments
	}
	if requested < computed {
		return computed
	}
	return requested
}

// normalizeArc swaps reversed angle bounds and clamps degenerate radii
// to a small positive epsilon.
func normalizeArc(radius, startAngle, endAngle float32) (float32, float32, float32) {
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}
	if radius <= 0 {
		radius = minArcRadius
	}
	return radius, startAngle, endAngle
}

// DrawCircleSector draws a filled pie slice as a triangle fan from the
// center. Angles are in radians; bounds given in reverse order are
// swapped. segments <= 0, or below the adaptive minimum for the span
// and radius, selects the computed count.
func (c *Context) DrawCircleSector(center mgl32.Vec2, radius, startAngle, endAngle float32, segments int) {
	radius, startAngle, endAngle = normalizeArc(radius, startAngle, endAngle)
	if startAngle == endAngle {
		return
	}
	segs := arcSegments(segments, radius, endAngle-startAngle)
	step := (endAngle - startAngle) / float32(segs)

	st := c.style()
	angle := startAngle
	for i := 0; i < segs; i++ {
		x0 := center.X() + float32(math.Cos(float64(angle)))*radius
		y0 := center.Y() + float32(math.Sin(float64(angle)))*radius
		x1 := center.X() + float32(math.Cos(float64(angle+step)))*radius
		y1 := center.Y() + float32(math.Sin(float64(angle+step)))*radius

		c.CheckCapacity(3)
		c.pushVertex(st, center.X(), center.Y())
		c.pushVertex(st, x1, y1)
		c.pushVertex(st, x0, y0)

		angle += step
	}
}

// DrawRingSector strokes the outer boundary of an arc as a sequence of
// line segments at the current line width. Unlike DrawCircleSector it
// emits no fill and no center vertex; a pie slice and an arc stroke are
// deliberately different primitives.
func (c *Context) DrawRingSector(center mgl32.Vec2, radius, startAngle, endAngle float32, segments int) {
	radius, startAngle, endAngle = normalizeArc(radius, startAngle, endAngle)
	if startAngle == endAngle {
		return
	}
	segs := arcSegments(segments, radius, endAngle-startAngle)
	step := (endAngle - startAngle) / float32(segs)

	angle := startAngle
	for i := 0; i < segs; i++ {
		x0 := center.X() + float32(math.Cos(float64(angle)))*radius
		y0 := center.Y() + float32(math.Sin(float64(angle)))*radius
		x1 := center.X() + float32(math.Cos(float64(angle+step)))*radius
		y1 := center.Y() + float32(math.Sin(float64(angle+step)))*radius

		c.DrawLine(x0, y0, x1, y1)

		angle += step
	}
}

// DrawCircle draws a filled circle. segments <= 0 selects the adaptive
// count for the radius.
func (c *Context) DrawCircle(x, y, radius float32, segments int) {
	c.DrawCircleSector(mgl32.Vec2{x, y}, radius, 0, 2*math.Pi, segments)
}

// DrawRing strokes a full circle outline at the current line width.
func (c *Context) DrawRing(x, y, radius float32, segments int) {
	c.DrawRingSector(mgl32.Vec2{x, y}, radius, 0, 2*math.Pi, segments)
}
