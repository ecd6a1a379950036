package render

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultBatchCapacity is the number of vertices the shared batch holds
// before a push forces a flush.
const DefaultBatchCapacity = 1024

// renderLogLevel controls the log level for render debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var renderLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging, including the
// per-flush diagnostics emitted when the batch fills up.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		renderLogLevel.Set(slog.LevelDebug)
	} else {
		renderLogLevel.Set(slog.LevelInfo)
	}
}

// renderLogger is the logger for batch diagnostics.
var renderLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: renderLogLevel}))

// shaderChoice selects the program bound at flush time. The zero value
// selects the Context's own default shader; an override is borrowed
// from the caller, never owned.
type shaderChoice struct {
	overridden bool
	shader     *Shader
}

func (sc shaderChoice) resolve(def *Shader) *Shader {
	if sc.overridden {
		return sc.shader
	}
	return def
}

// Context is a batched immediate-mode 2D render context. It owns the
// shared vertex batch and its GPU resources for its entire lifetime,
// and applies the current transform and style to every vertex at push
// time.
//
// A Context is not safe for concurrent use; all draw calls within a
// frame must originate from a single rendering thread.
type Context struct {
	device Device

	verts    []Vertex
	capacity int

	transform mgl32.Mat4
	stack     []mgl32.Mat4
	base      mgl32.Mat4

	defaultShader *Shader
	shader        shaderChoice

	forcedFlushes uint64

	// Mutable style state applied to subsequently pushed vertices.
	Color     Color
	LineWidth float32
	U, V      float32

	// BackgroundColor is the color used by Clear.
	BackgroundColor Color
}

// Option configures a Context.
type Option func(*Context)

// WithBatchCapacity overrides the batch vertex capacity.
func WithBatchCapacity(capacity int) Option {
	return func(c *Context) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithBaseTransform sets the base transform restored by ResetTransform,
// typically an orthographic view matrix. The current transform starts
// at the base.
func WithBaseTransform(m mgl32.Mat4) Option {
	return func(c *Context) { c.base = m }
}

// NewContext creates a render context on the given device. It allocates
// the batch buffer and compiles the built-in default shader; the
// Context owns both until Close.
func NewContext(device Device, opts ...Option) (*Context, error) {
	c := &Context{
		device:    device,
		capacity:  DefaultBatchCapacity,
		base:      mgl32.Ident4(),
		stack:     make([]mgl32.Mat4, 0, 8),
		Color:     White,
		LineWidth: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transform = c.base
	c.verts = make([]Vertex, 0, c.capacity)

	if err := device.InitBatch(c.capacity); err != nil {
		return nil, fmt.Errorf("init batch buffer: %w", err)
	}

	shader, err := c.CreateShader("", "")
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("create default shader: %w", err)
	}
	c.defaultShader = shader

	return c, nil
}

// style snapshots the current mutable style state.
func (c *Context) style() DrawStyle {
	return DrawStyle{Color: c.Color, LineWidth: c.LineWidth, U: c.U, V: c.V}
}

// PushVertex transforms (x, y, 0, 1) by the current transform matrix,
// performs the homogeneous divide, and appends the result with the
// current UV and draw color to the batch. A full batch is flushed
// first; PushVertex never fails to accept a vertex.
func (c *Context) PushVertex(x, y float32) {
	c.CheckCapacity(1)
	c.pushVertex(c.style(), x, y)
}

// pushVertex appends one transformed vertex styled by st. The caller
// must have reserved capacity via CheckCapacity.
func (c *Context) pushVertex(st DrawStyle, x, y float32) {
	pos := c.transform.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	w := pos.W()
	c.verts = append(c.verts, Vertex{
		Pos:   [3]float32{pos.X() / w, pos.Y() / w, pos.Z() / w},
		UV:    [2]float32{st.U, st.V},
		Color: [4]float32{st.Color.R, st.Color.G, st.Color.B, st.Color.A},
	})
}

// CheckCapacity flushes the batch if the next n vertices would overflow
// it. Call before emitting any primitive of n vertices; this is the
// sole backpressure mechanism, so the batch buffer never grows.
func (c *Context) CheckCapacity(n int) {
	if len(c.verts)+n <= c.capacity {
		return
	}
	c.forcedFlushes++
	renderLogger.Debug("batch full, forcing flush",
		"queued", len(c.verts), "requested", n)
	c.DrawBatch()
}

// DrawBatch flushes the batch: uploads the populated sub-range of the
// vertex buffer, binds the active shader, and issues one triangle-list
// draw call for the buffered vertex count. No-op when the batch is
// empty.
//
// Vertices were already transformed at push time, so the draw uses an
// identity transform; one flush may contain geometry pushed under many
// different transform-stack states.
func (c *Context) DrawBatch() {
	if len(c.verts) == 0 {
		return
	}
	c.device.UploadVertices(c.verts)
	c.device.DrawTriangles(c.shader.resolve(c.defaultShader).id, mgl32.Ident4(), len(c.verts))
	c.verts = c.verts[:0]
}

// ForcedFlushes reports how many times a full batch has forced a flush
// over the Context's lifetime. Useful for tuning per-frame draw volume.
func (c *Context) ForcedFlushes() uint64 {
	return c.forcedFlushes
}

// SetShader overrides the shader used for subsequent draws. The Context
// borrows the shader; ownership stays with the caller. Passing nil
// restores the default shader. Pending vertices are flushed first so
// they are not misattributed to the wrong program.
func (c *Context) SetShader(s *Shader) {
	c.DrawBatch()
	if s == nil {
		c.shader = shaderChoice{}
		return
	}
	c.shader = shaderChoice{overridden: true, shader: s}
}

// UseDefaultShader restores the Context's own default shader,
// flushing pending vertices first.
func (c *Context) UseDefaultShader() {
	c.SetShader(nil)
}

// ClearBackground sets the background color and fills the target
// surface with it.
func (c *Context) ClearBackground(color Color) {
	c.BackgroundColor = color
	c.device.Clear(color)
}

// Clear fills the target surface with the current background color.
func (c *Context) Clear() {
	c.device.Clear(c.BackgroundColor)
}

// Resize updates the device viewport size.
func (c *Context) Resize(width, height int) {
	c.device.Resize(width, height)
}

// Close flushes pending vertices and releases the Context's GPU
// resources: the default shader and the batch buffers. Borrowed shader
// overrides and caller-created meshes are not touched; their owners
// release them separately. Safe to call more than once.
func (c *Context) Close() {
	c.DrawBatch()
	if c.defaultShader != nil {
		c.defaultShader.Close()
		c.defaultShader = nil
	}
	c.device.Close()
}
