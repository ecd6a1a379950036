package render

import "github.com/go-gl/mathgl/mgl32"

// Transform operations compose in local space: each call multiplies the
// requested transform onto the inside of the current matrix, so it
// applies to subsequent geometry before the already-accumulated
// transform. Column-vector convention (v' = M * v).

// Translate composes a translation onto the current transform.
func (c *Context) Translate(x, y, z float32) {
	c.transform = c.transform.Mul4(mgl32.Translate3D(x, y, z))
}

// Scale composes a scale onto the current transform.
func (c *Context) Scale(x, y, z float32) {
	c.transform = c.transform.Mul4(mgl32.Scale3D(x, y, z))
}

// Rotate composes a rotation about the Z axis, in radians. This is the
// rotation for 2D drawing.
func (c *Context) Rotate(rad float32) {
	c.RotateZ(rad)
}

// RotateX composes a rotation about the X axis, in radians.
func (c *Context) RotateX(rad float32) {
	c.transform = c.transform.Mul4(mgl32.HomogRotate3DX(rad))
}

// RotateY composes a rotation about the Y axis, in radians.
func (c *Context) RotateY(rad float32) {
	c.transform = c.transform.Mul4(mgl32.HomogRotate3DY(rad))
}

// RotateZ composes a rotation about the Z axis, in radians.
func (c *Context) RotateZ(rad float32) {
	c.transform = c.transform.Mul4(mgl32.HomogRotate3DZ(rad))
}

// Transform returns the current transform matrix.
func (c *Context) Transform() mgl32.Mat4 {
	return c.transform
}

// SetTransform replaces the current transform matrix.
func (c *Context) SetTransform(m mgl32.Mat4) {
	c.transform = m
}

// BaseTransform returns the transform restored by ResetTransform.
func (c *Context) BaseTransform() mgl32.Mat4 {
	return c.base
}

// SetBaseTransform sets the transform restored by ResetTransform,
// allowing a fixed camera or view transform to be layered underneath
// everything drawn. It does not modify the current transform.
func (c *Context) SetBaseTransform(m mgl32.Mat4) {
	c.base = m
}

// ResetTransform resets the current transform to the base transform.
func (c *Context) ResetTransform() {
	c.transform = c.base
}

// PushTransform saves the current transform on the stack.
func (c *Context) PushTransform() {
	c.stack = append(c.stack, c.transform)
}

// PopTransform restores the most recently pushed transform.
//
// Popping an empty stack panics: an unbalanced push/pop pair is a
// programming error, and silently substituting a wrong transform would
// corrupt all subsequent rendering undetected.
func (c *Context) PopTransform() {
	n := len(c.stack)
	if n == 0 {
		panic("render: PopTransform on empty transform stack")
	}
	c.transform = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// ClearTransformationStack discards all saved stack entries without
// affecting the current matrix. An escape hatch for error recovery when
// push/pop become unbalanced.
func (c *Context) ClearTransformationStack() {
	c.stack = c.stack[:0]
}

// WithTransform runs fn between a PushTransform/PopTransform pair. The
// pop is guaranteed even if fn panics, so callers cannot leak stack
// depth.
func (c *Context) WithTransform(fn func()) {
	c.PushTransform()
	defer c.PopTransform()
	fn()
}
