package world

import "github.com/terrastream/terra/server/world/chunk"

// Generator handles the generation of chunks. Implementations must be safe for concurrent use: GenerateChunk
// is called from many worker goroutines at once, each with its own chunk.
type Generator interface {
	// GenerateChunk fills the empty chunk passed with the voxels of the chunk at the position passed. The
	// result must depend on nothing but the position and the state of the generator.
	GenerateChunk(pos ChunkPos, c *chunk.Chunk)
}

// NopGenerator is the default generator a world uses. It leaves every chunk empty.
type NopGenerator struct{}

// GenerateChunk ...
func (NopGenerator) GenerateChunk(ChunkPos, *chunk.Chunk) {}

// GeneratorFunc is a function that implements Generator.
type GeneratorFunc func(pos ChunkPos, c *chunk.Chunk)

// GenerateChunk calls f.
func (f GeneratorFunc) GenerateChunk(pos ChunkPos, c *chunk.Chunk) {
	f(pos, c)
}
