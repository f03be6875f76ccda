package terra

import (
	"testing"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/chunk"
)

func generate(g *Generator, pos world.ChunkPos) *chunk.Chunk {
	c := chunk.New(pos.Origin())
	g.GenerateChunk(pos, c)
	return c
}

// columnDigest hashes a vertical stack of chunks so that seeds can be compared regardless of where the
// surface lies.
func columnDigest(g *Generator) []uint64 {
	var digests []uint64
	for y := int32(-4); y <= 4; y++ {
		digests = append(digests, generate(g, world.ChunkPos{2, y, -3}).Digest())
	}
	return digests
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := New(DefaultConfig(1234)), New(DefaultConfig(1234))
	da, db := columnDigest(a), columnDigest(b)
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("chunk %d differs between generators with equal configs", i)
		}
	}

	other := columnDigest(New(DefaultConfig(4321)))
	same := true
	for i := range da {
		same = same && da[i] == other[i]
	}
	if same {
		t.Fatalf("different seeds produced identical terrain")
	}
}

func TestGenerateConcurrentMatchesSequential(t *testing.T) {
	g := New(DefaultConfig(99))
	positions := []world.ChunkPos{{0, 0, 0}, {1, 0, 0}, {0, -1, 0}, {-1, 0, 1}}
	want := make([]uint64, len(positions))
	for i, pos := range positions {
		want[i] = generate(g, pos).Digest()
	}

	got := make([]uint64, len(positions))
	done := make(chan struct{})
	for i, pos := range positions {
		go func() {
			got[i] = generate(g, pos).Digest()
			done <- struct{}{}
		}()
	}
	for range positions {
		<-done
	}
	for i := range positions {
		if got[i] != want[i] {
			t.Fatalf("chunk %v differs when generated concurrently", positions[i])
		}
	}
}

func flatConfig(height int) Config {
	conf := DefaultConfig(7)
	conf.FlatHeight = &height
	conf.DisableFeatures = true
	conf.DisableCaves = true
	conf.DisableOres = true
	return conf
}

func TestGenerateFlatColumn(t *testing.T) {
	g := New(flatConfig(10))
	c := generate(g, world.ChunkPos{0, 0, 0})
	b := g.BiomeAt(0, 0)

	for y := 10; y < chunk.Size; y++ {
		if k := c.Block(0, y, 0); k != block.Air {
			t.Fatalf("expected air at y=%d, got %v", y, k)
		}
	}
	if k := c.Block(0, 9, 0); k != b.Top() {
		t.Fatalf("expected %v top block at y=9, got %v", b.Top(), k)
	}
	for y := 6; y <= 8; y++ {
		if k := c.Block(0, y, 0); k != b.Under() {
			t.Fatalf("expected %v under block at y=%d, got %v", b.Under(), y, k)
		}
	}
	for y := 0; y <= 5; y++ {
		if k := c.Block(0, y, 0); k != block.Stone {
			t.Fatalf("expected stone at y=%d, got %v", y, k)
		}
	}
	if h := g.HeightAt(12345, -999); h != 10 {
		t.Fatalf("flat height must be 10 everywhere, got %d", h)
	}
}

func TestGenerateWaterBelowSeaLevel(t *testing.T) {
	g := New(flatConfig(-5))
	c := generate(g, world.ChunkPos{0, -1, 0})
	// Local y 11 is world y -5, the first voxel above the surface.
	for y := 11; y < chunk.Size; y++ {
		if k := c.Block(3, y, 3); k != block.Water {
			t.Fatalf("expected water at local y=%d, got %v", y, k)
		}
	}
	if k, want := c.Block(3, 10, 3), g.BiomeAt(3, 3).Top(); k != want {
		t.Fatalf("expected %v at world y=-6, got %v", want, k)
	}
}

func TestBedrockFloor(t *testing.T) {
	g := New(DefaultConfig(5))
	floor := generate(g, world.ChunkPos{1, -4, 1})
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			if k := floor.Block(x, 0, z); k != block.Bedrock {
				t.Fatalf("expected bedrock at the floor, got %v", k)
			}
		}
	}
	if below := generate(g, world.ChunkPos{1, -5, 1}); !below.Empty() {
		t.Fatalf("chunks below the floor must be empty")
	}
}

func TestHeightAtMatchesSurface(t *testing.T) {
	conf := DefaultConfig(42)
	conf.DisableFeatures = true
	g := New(conf)

	for _, col := range []cube.Pos{{5, 0, 7}, {-20, 0, 33}, {300, 0, -41}} {
		h := g.HeightAt(col[0], col[2])
		top := cube.Pos{col[0], h - 1, col[2]}
		pos := world.ChunkPos{
			int32(cube.FloorDiv(top[0], chunk.Size)),
			int32(cube.FloorDiv(top[1], chunk.Size)),
			int32(cube.FloorDiv(top[2], chunk.Size)),
		}
		c := generate(g, pos)
		local := top.Sub(cube.Pos{int(pos[0]) * chunk.Size, int(pos[1]) * chunk.Size, int(pos[2]) * chunk.Size})
		want := g.BiomeAt(col[0], col[2]).Top()
		if top[1] == conf.FloorY {
			want = block.Bedrock
		}
		if k := c.Block(local[0], local[1], local[2]); k != want {
			t.Fatalf("expected %v at the surface of %v, got %v", want, col, k)
		}
		if local[1]+1 < chunk.Size {
			if k := c.Block(local[0], local[1]+1, local[2]); k != block.Air && k != block.Water {
				t.Fatalf("expected air or water above the surface of %v, got %v", col, k)
			}
		}
	}
}

func TestOresStayInBands(t *testing.T) {
	conf := DefaultConfig(8)
	conf.DisableCaves = true
	g := New(conf)
	for y := int32(-4); y <= -1; y++ {
		c := generate(g, world.ChunkPos{0, y, 0})
		for x := 0; x < chunk.Size; x++ {
			for z := 0; z < chunk.Size; z++ {
				for ly := 0; ly < chunk.Size; ly++ {
					wy := int(y)*chunk.Size + ly
					switch c.Block(x, ly, z) {
					case block.DiamondOre:
						if wy > -48 {
							t.Fatalf("diamond ore at y=%d", wy)
						}
					case block.GoldOre:
						if wy > -24 {
							t.Fatalf("gold ore at y=%d", wy)
						}
					case block.IronOre:
						if wy > 16 {
							t.Fatalf("iron ore at y=%d", wy)
						}
					}
				}
			}
		}
	}
}
