package render

// Color is an RGBA color with normalized float components (0.0-1.0).
// Colors are stored per vertex as four floats, matching the GPU vertex
// layout directly.
type Color struct {
	R, G, B, A float32
}

// RGBA creates a Color from byte components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// RGBAf creates a Color from float components, clamped to 0.0-1.0.
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// Predefined colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	Transparent = Color{0, 0, 0, 0}
)

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point (px, py) is inside the rectangle.
func (r Rect) Contains(px, py float32) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Vertex is a single batched vertex.
// Memory layout matches OpenGL vertex attribute expectations:
// 9 contiguous floats, no padding.
type Vertex struct {
	Pos   [3]float32 // Position (x, y, z), pre-transformed
	UV    [2]float32 // Texture coordinates (u, v)
	Color [4]float32 // RGBA, normalized floats
}

// DrawStyle is the styling applied to a primitive, captured immutably
// at the moment the primitive function is invoked. Tessellation works
// from a DrawStyle snapshot, never from the Context's mutable fields,
// so style changes mid-tessellation cannot tear a primitive.
type DrawStyle struct {
	Color     Color
	LineWidth float32
	U, V      float32
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
