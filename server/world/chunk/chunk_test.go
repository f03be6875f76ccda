package chunk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
)

func TestOutOfRangeAccess(t *testing.T) {
	c := New(mgl64.Vec3{})
	c.SetBlock(-1, 0, 0, block.Stone)
	c.SetBlock(0, Size, 0, block.Stone)
	c.SetBlock(0, 0, 99, block.Stone)
	if n := c.Solid(); n != 0 {
		t.Fatalf("out of range writes changed %d voxels", n)
	}
	for _, p := range []cube.Pos{{-1, 0, 0}, {16, 0, 0}, {0, -1, 0}, {0, 0, 16}} {
		if k := c.Block(p[0], p[1], p[2]); k != block.Air {
			t.Fatalf("expected air at %v, got %v", p, k)
		}
	}
}

func TestSetBlockRoundTrip(t *testing.T) {
	c := New(mgl64.Vec3{16, -32, 0})
	c.SetBlock(3, 15, 7, block.GoldOre)
	if k := c.Block(3, 15, 7); k != block.GoldOre {
		t.Fatalf("expected gold ore, got %v", k)
	}
	if k := c.Block(7, 15, 3); k != block.Air {
		t.Fatalf("write leaked to a transposed index: %v", k)
	}
	b := c.Bounds()
	if b.Min() != (mgl64.Vec3{16, -32, 0}) || b.Max() != (mgl64.Vec3{32, -16, 16}) {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestDigestIgnoresOrigin(t *testing.T) {
	a, b := New(mgl64.Vec3{}), New(mgl64.Vec3{64, 0, 0})
	a.Fill(cube.Pos{0, 0, 0}, cube.Pos{15, 3, 15}, block.Stone)
	b.Fill(cube.Pos{0, 0, 0}, cube.Pos{15, 3, 15}, block.Stone)
	if a.Digest() != b.Digest() {
		t.Fatalf("equal contents produced different digests")
	}
	b.SetBlock(0, 0, 0, block.Dirt)
	if a.Digest() == b.Digest() {
		t.Fatalf("different contents produced equal digests")
	}
	if a.Solid() != 16*16*4 {
		t.Fatalf("expected %d solid voxels, got %d", 16*16*4, a.Solid())
	}
}

func TestMeshSingleVoxel(t *testing.T) {
	c := New(mgl64.Vec3{32, 0, 0})
	c.SetBlock(1, 1, 1, block.Stone)
	verts := c.Mesh()
	if len(verts) != 6*6 {
		t.Fatalf("expected 36 vertices for a lone voxel, got %d", len(verts))
	}
	for _, v := range verts {
		if v.Position[0] < 33 || v.Position[0] > 34 {
			t.Fatalf("vertex %v lies outside the voxel", v.Position)
		}
	}
	top := verts[int(cube.FaceUp)*6]
	if top.Normal[1] != 1 || top.Color != block.Stone.Color() {
		t.Fatalf("unexpected top face vertex %+v", top)
	}
}

func TestMeshHidesSharedFaces(t *testing.T) {
	c := New(mgl64.Vec3{})
	c.SetBlock(4, 4, 4, block.Stone)
	c.SetBlock(5, 4, 4, block.Stone)
	if n := len(c.Mesh()) / 6; n != 10 {
		t.Fatalf("expected 10 faces for two adjacent opaque voxels, got %d", n)
	}
}

func TestMeshTransparentRule(t *testing.T) {
	c := New(mgl64.Vec3{})
	c.SetBlock(4, 4, 4, block.Water)
	c.SetBlock(5, 4, 4, block.Water)
	if n := len(c.Mesh()) / 6; n != 10 {
		t.Fatalf("expected 10 faces for two adjacent water voxels, got %d", n)
	}

	c = New(mgl64.Vec3{})
	c.SetBlock(4, 4, 4, block.Stone)
	c.SetBlock(5, 4, 4, block.Water)
	// Stone shows its face towards water, water hides its face towards stone.
	if n := len(c.Mesh()) / 6; n != 11 {
		t.Fatalf("expected 11 faces for stone next to water, got %d", n)
	}
}

func TestMeshBoundaryFaces(t *testing.T) {
	c := New(mgl64.Vec3{})
	c.Fill(cube.Pos{0, 0, 0}, cube.Pos{15, 15, 15}, block.Stone)
	if n := len(c.Mesh()) / 6; n != 6*16*16 {
		t.Fatalf("expected only boundary faces, got %d", n)
	}
}
