package render

import "fmt"

// Built-in shader sources used when CreateShader is called with empty
// strings. The vertex shader applies the transform uniform; batched
// geometry is already transformed at push time, so the flush path
// uploads identity, while mesh draws upload the current transform. The
// fragment shader passes the vertex color through; UV is forwarded for
// custom shaders that sample their own textures.
const defaultVertexSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 transform;

void main() {
    gl_Position = transform * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

const defaultFragmentSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
`

// Shader is an owned GPU program resource. The creator owns it and must
// release it with Close; a Context only owns the default shader it
// compiles for itself.
type Shader struct {
	id     ShaderID
	device Device
}

// CreateShader compiles and links a shader program. Empty source
// strings select the built-in shader text. Compilation failure is a
// programming error and propagates as a hard failure.
func (c *Context) CreateShader(vertexSource, fragmentSource string) (*Shader, error) {
	if vertexSource == "" {
		vertexSource = defaultVertexSource
	}
	if fragmentSource == "" {
		fragmentSource = defaultFragmentSource
	}
	id, err := c.device.CompileShader(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	return &Shader{id: id, device: c.device}, nil
}

// ID returns the device shader ID, or zero after Close.
func (s *Shader) ID() ShaderID {
	return s.id
}

// Close releases the shader program. Safe to call more than once.
func (s *Shader) Close() {
	if s.id != 0 {
		s.device.DeleteShader(s.id)
		s.id = 0
	}
}
