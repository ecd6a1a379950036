package render_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render"
)

// flushedVerts flushes the batch and returns all vertices drawn so far,
// in submission order.
func flushedVerts(ctx *render.Context, device *mockDevice) []render.Vertex {
	ctx.DrawBatch()
	var all []render.Vertex
	for _, dc := range device.draws {
		all = append(all, dc.verts[:dc.count]...)
	}
	return all
}

// triangleArea computes the unsigned area of the triangle spanned by
// three consecutive vertices.
func triangleArea(a, b, c render.Vertex) float64 {
	abx := float64(b.Pos[0] - a.Pos[0])
	aby := float64(b.Pos[1] - a.Pos[1])
	acx := float64(c.Pos[0] - a.Pos[0])
	acy := float64(c.Pos[1] - a.Pos[1])
	return math.Abs(abx*acy-aby*acx) / 2
}

func TestTriangleEmitsThreeVertices(t *testing.T) {
	ctx, device := newTestContext(t)
	ctx.DrawTriangle(0, 0, 10, 0, 0, 10)

	verts := flushedVerts(ctx, device)
	if len(verts) != 3 {
		t.Fatalf("triangle emitted %d vertices, want 3", len(verts))
	}

	ctx.DrawTriangleV(mgl32.Vec2{0, 0}, mgl32.Vec2{5, 0}, mgl32.Vec2{0, 5})
	ctx.DrawBatch()
	if got := device.totalDrawn(); got != 6 {
		t.Errorf("total vertices = %d, want 6", got)
	}
}

func TestRectangleDecomposition(t *testing.T) {
	ctx, device := newTestContext(t)
	ctx.DrawRectangle(10, 20, 30, 40)

	verts := flushedVerts(ctx, device)
	if len(verts) != 6 {
		t.Fatalf("rectangle emitted %d vertices, want 6", len(verts))
	}
	if got := triangleArea(verts[0], verts[1], verts[2]) + triangleArea(verts[3], verts[4], verts[5]); got != 30*40 {
		t.Errorf("rectangle area = %g, want 1200", got)
	}

	// Vertices stay within the rectangle bounds.
	for _, v := range verts {
		if v.Pos[0] < 10 || v.Pos[0] > 40 || v.Pos[1] < 20 || v.Pos[1] > 60 {
			t.Errorf("vertex %v outside rectangle", v.Pos)
		}
	}
}

func TestDegenerateLineIsNoOp(t *testing.T) {
	ctx, device := newTestContext(t)

	ctx.DrawLine(5, 5, 5, 5)
	ctx.DrawBatch()

	if len(device.draws) != 0 {
		t.Errorf("zero-length line emitted vertices: %d draws", len(device.draws))
	}
}

func TestLineQuadWidth(t *testing.T) {
	ctx, device := newTestContext(t)
	ctx.LineWidth = 4
	ctx.DrawLine(0, 0, 10, 0)

	verts := flushedVerts(ctx, device)
	if len(verts) != 6 {
		t.Fatalf("line emitted %d vertices, want 6", len(verts))
	}
	// Horizontal line: the half-width extends perpendicular, so every
	// vertex sits at y = +2 or y = -2.
	for _, v := range verts {
		if v.Pos[1] != 2 && v.Pos[1] != -2 {
			t.Errorf("vertex y = %g, want +-2", v.Pos[1])
		}
	}
	if got := triangleArea(verts[0], verts[1], verts[2]) + triangleArea(verts[3], verts[4], verts[5]); got != 40 {
		t.Errorf("line quad area = %g, want 40", got)
	}
}

func TestLineUsesWidthAtCallTime(t *testing.T) {
	ctx, device := newTestContext(t)

	ctx.LineWidth = 2
	ctx.DrawLine(0, 0, 10, 0)
	ctx.LineWidth = 10 // must not affect the queued line

	verts := flushedVerts(ctx, device)
	for _, v := range verts {
		if v.Pos[1] != 1 && v.Pos[1] != -1 {
			t.Errorf("vertex y = %g, want +-1", v.Pos[1])
		}
	}
}

func TestRectangleOutlineAreaIdentity(t *testing.T) {
	const (
		x, y = 10.0, 20.0
		w, h = 100.0, 60.0
		lw   = 3.0
	)

	ctx, device := newTestContext(t)
	ctx.LineWidth = lw
	ctx.DrawRectangleLines(x, y, w, h)

	verts := flushedVerts(ctx, device)
	if len(verts) != 24 {
		t.Fatalf("outline emitted %d vertices, want 24 (4 quads)", len(verts))
	}

	var total float64
	for i := 0; i+3 <= len(verts); i += 3 {
		total += triangleArea(verts[i], verts[i+1], verts[i+2])
	}

	// Non-overlapping sides: the union's area is the outer rectangle
	// minus the rectangle inset by the line width.
	want := float64(w*h - (w-2*lw)*(h-2*lw))
	if math.Abs(total-want) > 1e-6 {
		t.Errorf("outline area = %g, want %g", total, want)
	}

	// Every vertex stays inside the outer rectangle.
	for _, v := range verts {
		if v.Pos[0] < x || v.Pos[0] > x+w || v.Pos[1] < y || v.Pos[1] > y+h {
			t.Errorf("outline vertex %v outside rectangle", v.Pos)
		}
	}
}

func TestRectangleOutlineQuadsDisjoint(t *testing.T) {
	ctx, device := newTestContext(t)
	ctx.LineWidth = 5
	ctx.DrawRectangleLines(0, 0, 50, 40)

	verts := flushedVerts(ctx, device)

	// Recover each side's bounding box from its 6 vertices and check
	// pairwise interiors do not intersect.
	type box struct{ x0, y0, x1, y1 float32 }
	var boxes []box
	for i := 0; i+6 <= len(verts); i += 6 {
		b := box{verts[i].Pos[0], verts[i].Pos[1], verts[i].Pos[0], verts[i].Pos[1]}
		for _, v := range verts[i : i+6] {
			if v.Pos[0] < b.x0 {
				b.x0 = v.Pos[0]
			}
			if v.Pos[0] > b.x1 {
				b.x1 = v.Pos[0]
			}
			if v.Pos[1] < b.y0 {
				b.y0 = v.Pos[1]
			}
			if v.Pos[1] > b.y1 {
				b.y1 = v.Pos[1]
			}
		}
		boxes = append(boxes, b)
	}
	if len(boxes) != 4 {
		t.Fatalf("expected 4 side quads, got %d", len(boxes))
	}
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if a.x0 < b.x1 && a.x1 > b.x0 && a.y0 < b.y1 && a.y1 > b.y0 {
				t.Errorf("side quads %d and %d overlap: %+v vs %+v", i, j, a, b)
			}
		}
	}
}

func TestRectValueForms(t *testing.T) {
	ctx, device := newTestContext(t)
	r := render.Rect{X: 1, Y: 2, W: 3, H: 4}

	ctx.DrawRectangleV(r)
	ctx.LineWidth = 0.5
	ctx.DrawRectangleLinesV(r)
	ctx.DrawLineV(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1})
	ctx.DrawBatch()

	// 6 fill + 24 outline + 6 line.
	if got := device.totalDrawn(); got != 36 {
		t.Errorf("total vertices = %d, want 36", got)
	}
}
