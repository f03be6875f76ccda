// Package chunk implements fixed size cubic volumes of voxels and their surface geometry.
package chunk

import (
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
)

const (
	// Size is the edge length of a chunk in voxels on every axis.
	Size = 16
	// Volume is the amount of voxels held by a single chunk.
	Volume = Size * Size * Size
)

// Chunk is a Size*Size*Size volume of voxels anchored at a world space origin. A Chunk is filled once by a
// generator and treated as read-only after it has been committed to a world. Reads outside of the chunk
// return block.Air and writes outside of it are ignored.
type Chunk struct {
	origin mgl64.Vec3
	blocks [Volume]block.Kind
}

// New returns an empty chunk with its minimum corner at the origin passed.
func New(origin mgl64.Vec3) *Chunk {
	return &Chunk{origin: origin}
}

// Origin returns the world space position of the minimum corner of the chunk.
func (c *Chunk) Origin() mgl64.Vec3 {
	return c.origin
}

// Bounds returns the world space box covered by the chunk.
func (c *Chunk) Bounds() cube.BBox {
	return cube.NewBBox(c.origin, c.origin.Add(mgl64.Vec3{Size, Size, Size}))
}

// index returns the flat index of a local position and false if it lies outside the chunk.
func index(x, y, z int) (int, bool) {
	if x < 0 || y < 0 || z < 0 || x >= Size || y >= Size || z >= Size {
		return 0, false
	}
	return (x*Size+z)*Size + y, true
}

// Block returns the kind at the local position passed.
func (c *Chunk) Block(x, y, z int) block.Kind {
	i, ok := index(x, y, z)
	if !ok {
		return block.Air
	}
	return c.blocks[i]
}

// SetBlock sets the kind at the local position passed.
func (c *Chunk) SetBlock(x, y, z int, k block.Kind) {
	if i, ok := index(x, y, z); ok {
		c.blocks[i] = k
	}
}

// Fill sets every voxel in the inclusive local range [from, to] to k. Parts of the range outside the chunk
// are ignored.
func (c *Chunk) Fill(from, to cube.Pos, k block.Kind) {
	for x := max(from[0], 0); x <= min(to[0], Size-1); x++ {
		for z := max(from[2], 0); z <= min(to[2], Size-1); z++ {
			for y := max(from[1], 0); y <= min(to[1], Size-1); y++ {
				c.blocks[(x*Size+z)*Size+y] = k
			}
		}
	}
}

// Solid returns the amount of non-air voxels in the chunk.
func (c *Chunk) Solid() int {
	n := 0
	for _, k := range c.blocks {
		if k != block.Air {
			n++
		}
	}
	return n
}

// Empty reports if the chunk holds nothing but air.
func (c *Chunk) Empty() bool {
	for _, k := range c.blocks {
		if k != block.Air {
			return false
		}
	}
	return true
}

// Digest returns a hash of the contents of the chunk. Two chunks with equal contents have equal digests
// regardless of their origin.
func (c *Chunk) Digest() uint64 {
	buf := make([]byte, Volume)
	for i, k := range c.blocks {
		buf[i] = byte(k)
	}
	return xxhash.Sum64(buf)
}

// Clone returns a deep copy of the chunk.
func (c *Chunk) Clone() *Chunk {
	cp := *c
	return &cp
}
