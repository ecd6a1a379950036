package render

import (
	"errors"
	"fmt"
)

// MeshConfig describes the geometry of a standalone mesh. Vertices are
// in the same layout as batched vertices; Indices is optional and
// selects indexed drawing when present. Index values reference
// positions in Vertices and must form complete triangles.
type MeshConfig struct {
	Vertices []Vertex
	Indices  []uint32
}

// Mesh is an independently owned GPU vertex(+index) buffer, distinct
// from the shared batch. The caller owns it and must release it with
// Close.
type Mesh struct {
	id     MeshID
	device Device
}

// CreateMesh allocates a standalone drawable resource from the config.
// Unlike batched primitives, mesh vertices are uploaded untransformed;
// the current transform applies at draw time instead.
func (c *Context) CreateMesh(cfg MeshConfig) (*Mesh, error) {
	if len(cfg.Vertices) == 0 {
		return nil, errors.New("mesh has no vertices")
	}
	if len(cfg.Indices) > 0 && len(cfg.Indices)%3 != 0 {
		return nil, fmt.Errorf("mesh index count %d is not a multiple of 3", len(cfg.Indices))
	}
	id, err := c.device.CreateMesh(cfg.Vertices, cfg.Indices)
	if err != nil {
		return nil, fmt.Errorf("create mesh: %w", err)
	}
	return &Mesh{id: id, device: c.device}, nil
}

// Draw flushes the pending batch, then issues the mesh's own draw call
// under the current transform and active shader. Flushing first keeps
// draw order correct between batched primitives and standalone meshes.
func (c *Context) Draw(m *Mesh) {
	c.DrawBatch()
	c.device.DrawMesh(m.id, c.shader.resolve(c.defaultShader).id, c.transform)
}

// ID returns the device mesh ID, or zero after Close.
func (m *Mesh) ID() MeshID {
	return m.id
}

// Close releases the mesh's buffers. Safe to call more than once.
func (m *Mesh) Close() {
	if m.id != 0 {
		m.device.DeleteMesh(m.id)
		m.id = 0
	}
}
