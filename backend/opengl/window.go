package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window with an initialized OpenGL 4.1 core
// context. The caller must lock the OS thread before creating one
// (runtime.LockOSThread in init) and use it from that thread only.
type Window struct {
	window *glfw.Window
}

// NewWindow initializes GLFW, opens a window, makes its GL context
// current, and loads the OpenGL function pointers. VSync is enabled.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{window: window}, nil
}

// ShouldClose reports whether the user has requested the window close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// EndFrame swaps buffers and polls window events.
func (w *Window) EndFrame() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

// FramebufferSize returns the framebuffer size in pixels, which can
// differ from the window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SetResizeCallback registers fn to run when the framebuffer size
// changes. Use it to forward the new size to Context.Resize and to
// rebuild the base transform.
func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Handle returns the underlying GLFW window for input callbacks or
// other window configuration.
func (w *Window) Handle() *glfw.Window {
	return w.window
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
		glfw.Terminate()
	}
}
