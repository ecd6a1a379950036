package render

import "github.com/go-gl/mathgl/mgl32"

// ShaderID identifies a compiled shader program on a Device.
// Zero is never a valid ID.
type ShaderID uint32

// MeshID identifies a device-resident mesh. Zero is never a valid ID.
type MeshID uint32

// Device is the interface for GPU-facing work. The Context is
// device-independent; backend/opengl implements Device for OpenGL 4.1,
// and tests supply a mock.
//
// All methods are called from the single rendering thread that owns the
// Context. Implementations do not need to be safe for concurrent use.
type Device interface {
	// InitBatch allocates the shared batch vertex buffer, sized for
	// capacity vertices. Called once during Context construction.
	InitBatch(capacity int) error

	// UploadVertices uploads the populated sub-range of the batch
	// buffer. len(verts) never exceeds the InitBatch capacity.
	UploadVertices(verts []Vertex)

	// DrawTriangles binds the shader, uploads the transform uniform,
	// and issues one triangle-list draw call for count vertices from
	// the batch buffer.
	DrawTriangles(shader ShaderID, transform mgl32.Mat4, count int)

	// CompileShader compiles and links a shader program from GLSL
	// source. Compilation or link failure is a hard error.
	CompileShader(vertexSrc, fragmentSrc string) (ShaderID, error)

	// DeleteShader releases a shader program.
	DeleteShader(id ShaderID)

	// CreateMesh allocates an independently owned vertex(+index)
	// buffer. indices may be nil for a non-indexed mesh.
	CreateMesh(verts []Vertex, indices []uint32) (MeshID, error)

	// DrawMesh issues the mesh's own draw call under the given shader
	// and transform.
	DrawMesh(id MeshID, shader ShaderID, transform mgl32.Mat4)

	// DeleteMesh releases a mesh's buffers.
	DeleteMesh(id MeshID)

	// Clear fills the target surface with a color.
	Clear(color Color)

	// Resize updates the viewport size.
	Resize(width, height int)

	// Close releases the batch buffer and any remaining device state.
	// Safe to call more than once.
	Close()
}
