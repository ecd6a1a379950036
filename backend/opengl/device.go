// Package opengl provides an OpenGL 4.1 backend for the render package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render"
)

// mesh holds the GL objects backing one standalone mesh.
type mesh struct {
	vao, vbo, ebo uint32
	vertexCount   int32
	indexCount    int32
}

// Device implements render.Device on OpenGL 4.1 core.
// A current GL context is required before construction, and all methods
// must run on the thread that owns it.
type Device struct {
	vao, vbo uint32
	width    int
	height   int

	meshes     map[render.MeshID]*mesh
	nextMeshID render.MeshID

	// Cached "transform" uniform locations per program.
	transformLocs map[render.ShaderID]int32
}

// NewDevice creates an OpenGL device for a surface of the given pixel
// size. It configures the fixed pipeline state the render context
// assumes: alpha blending on, depth test and face culling off.
func NewDevice(width, height int) *Device {
	d := &Device{
		width:         width,
		height:        height,
		meshes:        make(map[render.MeshID]*mesh),
		transformLocs: make(map[render.ShaderID]int32),
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	return d
}

// vertexStride is the byte size of one render.Vertex (9 floats).
var vertexStride = int32(unsafe.Sizeof(render.Vertex{}))

// configureVertexLayout binds the render.Vertex attribute layout to the
// currently bound VAO/VBO pair.
func configureVertexLayout() {
	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(render.Vertex{}.UV))
	gl.EnableVertexAttribArray(1)

	// Color attribute
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexStride, unsafe.Offsetof(render.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
}

// InitBatch allocates the GPU-resident batch buffer for capacity
// vertices. The buffer is sized once and updated via partial uploads.
func (d *Device) InitBatch(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("batch capacity must be positive, got %d", capacity)
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*int(vertexStride), nil, gl.STREAM_DRAW)

	configureVertexLayout()
	gl.BindVertexArray(0)

	return nil
}

// UploadVertices uploads the populated sub-range of the batch buffer.
func (d *Device) UploadVertices(verts []render.Vertex) {
	if len(verts) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*int(vertexStride), gl.Ptr(verts))
}

// DrawTriangles issues one triangle-list draw call for count vertices
// from the batch buffer.
func (d *Device) DrawTriangles(shader render.ShaderID, transform mgl32.Mat4, count int) {
	gl.UseProgram(uint32(shader))
	gl.UniformMatrix4fv(d.transformLoc(shader), 1, false, &transform[0])

	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}

// transformLoc returns the cached "transform" uniform location for a
// program.
func (d *Device) transformLoc(shader render.ShaderID) int32 {
	if loc, ok := d.transformLocs[shader]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(uint32(shader), gl.Str("transform\x00"))
	d.transformLocs[shader] = loc
	return loc
}

// CompileShader compiles and links a shader program.
func (d *Device) CompileShader(vertexSrc, fragmentSrc string) (render.ShaderID, error) {
	program, err := createShaderProgram(vertexSrc+"\x00", fragmentSrc+"\x00")
	if err != nil {
		return 0, err
	}
	return render.ShaderID(program), nil
}

// DeleteShader releases a shader program.
func (d *Device) DeleteShader(id render.ShaderID) {
	if id == 0 {
		return
	}
	gl.DeleteProgram(uint32(id))
	delete(d.transformLocs, id)
}

// CreateMesh allocates a standalone vertex(+index) buffer with the same
// attribute layout as the batch.
func (d *Device) CreateMesh(verts []render.Vertex, indices []uint32) (render.MeshID, error) {
	m := &mesh{vertexCount: int32(len(verts)), indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(vertexStride), gl.Ptr(verts), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	configureVertexLayout()
	gl.BindVertexArray(0)

	d.nextMeshID++
	d.meshes[d.nextMeshID] = m
	return d.nextMeshID, nil
}

// DrawMesh issues the mesh's own draw call.
func (d *Device) DrawMesh(id render.MeshID, shader render.ShaderID, transform mgl32.Mat4) {
	m, ok := d.meshes[id]
	if !ok {
		return
	}

	gl.UseProgram(uint32(shader))
	gl.UniformMatrix4fv(d.transformLoc(shader), 1, false, &transform[0])

	gl.BindVertexArray(m.vao)
	if m.indexCount > 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// DeleteMesh releases a mesh's GL objects.
func (d *Device) DeleteMesh(id render.MeshID) {
	m, ok := d.meshes[id]
	if !ok {
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	delete(d.meshes, id)
}

// Clear fills the framebuffer with a color.
func (d *Device) Clear(color render.Color) {
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Resize updates the viewport size.
func (d *Device) Resize(width, height int) {
	d.width = width
	d.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Close releases the batch GL objects. Safe to call more than once.
// Meshes and shaders are owned by their creators and released through
// DeleteMesh/DeleteShader.
func (d *Device) Close() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}
