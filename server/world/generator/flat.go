// Package generator holds simple world generators.
package generator

import (
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/chunk"
)

// Flat is the flat generator of World. It generates flat worlds (like those in vanilla) with no other
// decoration. The layers passed are stacked from y=0 upwards: everything below y=0 is left empty.
type Flat struct {
	layers []block.Kind
}

// NewFlat creates a new Flat generator. Layers are listed from the bottom up: NewFlat(block.Bedrock,
// block.Dirt, block.Grass) places bedrock at y=0, dirt at y=1 and grass at y=2.
func NewFlat(layers ...block.Kind) Flat {
	return Flat{layers: layers}
}

// Height returns the y value of the first voxel of air above the layers.
func (f Flat) Height() int {
	return len(f.layers)
}

// GenerateChunk ...
func (f Flat) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	minY := int(pos[1]) * chunk.Size
	for y := 0; y < chunk.Size; y++ {
		i := minY + y
		if i < 0 || i >= len(f.layers) {
			continue
		}
		k := f.layers[i]
		for x := 0; x < chunk.Size; x++ {
			for z := 0; z < chunk.Size; z++ {
				c.SetBlock(x, y, z, k)
			}
		}
	}
}
