package generator

import (
	"testing"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/chunk"
)

func TestFlatLayers(t *testing.T) {
	f := NewFlat(block.Bedrock, block.Dirt, block.Dirt, block.Grass)
	pos := world.ChunkPos{3, 0, -2}
	c := chunk.New(pos.Origin())
	f.GenerateChunk(pos, c)

	want := []block.Kind{block.Bedrock, block.Dirt, block.Dirt, block.Grass, block.Air}
	for y, k := range want {
		if got := c.Block(7, y, 11); got != k {
			t.Fatalf("expected %v at y=%d, got %v", k, y, got)
		}
	}
	if f.Height() != 4 {
		t.Fatalf("expected height 4, got %d", f.Height())
	}
}

func TestFlatOtherLayersEmpty(t *testing.T) {
	f := NewFlat(block.Stone)
	for _, pos := range []world.ChunkPos{{0, -1, 0}, {0, 1, 0}} {
		c := chunk.New(pos.Origin())
		f.GenerateChunk(pos, c)
		if !c.Empty() {
			t.Fatalf("chunk %v must be empty", pos)
		}
	}
}
