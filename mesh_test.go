package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render"
)

func quadConfig() render.MeshConfig {
	return render.MeshConfig{
		Vertices: []render.Vertex{
			{Pos: [3]float32{0, 0, 0}},
			{Pos: [3]float32{1, 0, 0}},
			{Pos: [3]float32{1, 1, 0}},
			{Pos: [3]float32{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestCreateMeshValidation(t *testing.T) {
	ctx, _ := newTestContext(t)

	if _, err := ctx.CreateMesh(render.MeshConfig{}); err == nil {
		t.Error("expected error for mesh with no vertices")
	}

	cfg := quadConfig()
	cfg.Indices = []uint32{0, 1}
	if _, err := ctx.CreateMesh(cfg); err == nil {
		t.Error("expected error for index count not divisible by 3")
	}
}

func TestDrawMeshFlushesBatchFirst(t *testing.T) {
	ctx, device := newTestContext(t)

	m, err := ctx.CreateMesh(quadConfig())
	if err != nil {
		t.Fatalf("CreateMesh: %v", err)
	}

	// Batched geometry queued before the mesh must be submitted before
	// the mesh's draw call to preserve draw order.
	ctx.DrawRectangle(0, 0, 10, 10)
	ctx.Draw(m)

	want := []string{"upload", "draw", "mesh"}
	if len(device.events) != len(want) {
		t.Fatalf("events = %v, want %v", device.events, want)
	}
	for i, e := range want {
		if device.events[i] != e {
			t.Fatalf("events = %v, want %v", device.events, want)
		}
	}
}

func TestDrawMeshUsesCurrentTransformAndShader(t *testing.T) {
	ctx, device := newTestContext(t)

	m, err := ctx.CreateMesh(quadConfig())
	if err != nil {
		t.Fatalf("CreateMesh: %v", err)
	}

	ctx.Translate(30, 40, 0)
	ctx.Draw(m)

	if len(device.meshDraws) != 1 {
		t.Fatalf("expected 1 mesh draw, got %d", len(device.meshDraws))
	}
	md := device.meshDraws[0]
	if md.id != m.ID() {
		t.Errorf("mesh draw id = %d, want %d", md.id, m.ID())
	}
	if md.transform != mgl32.Translate3D(30, 40, 0) {
		t.Error("mesh must draw under the current transform, not identity")
	}

	custom, err := ctx.CreateShader("vs", "fs")
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}
	ctx.SetShader(custom)
	ctx.Draw(m)
	if device.meshDraws[1].shader != custom.ID() {
		t.Errorf("mesh draw shader = %d, want override %d", device.meshDraws[1].shader, custom.ID())
	}
}

func TestMeshCloseIdempotent(t *testing.T) {
	ctx, device := newTestContext(t)

	m, err := ctx.CreateMesh(quadConfig())
	if err != nil {
		t.Fatalf("CreateMesh: %v", err)
	}

	m.Close()
	m.Close()

	if len(device.deletedMesh) != 1 {
		t.Errorf("mesh deleted %d times, want 1", len(device.deletedMesh))
	}
	if m.ID() != 0 {
		t.Errorf("mesh ID after Close = %d, want 0", m.ID())
	}
}

func TestNonIndexedMesh(t *testing.T) {
	ctx, device := newTestContext(t)

	cfg := quadConfig()
	cfg.Indices = nil
	cfg.Vertices = cfg.Vertices[:3]
	m, err := ctx.CreateMesh(cfg)
	if err != nil {
		t.Fatalf("CreateMesh: %v", err)
	}
	if got := device.meshes[m.ID()]; got != [2]int{3, 0} {
		t.Errorf("device mesh geometry = %v, want [3 0]", got)
	}
}
