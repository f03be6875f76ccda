// Package populate places features such as trees and ores in freshly generated chunks.
package populate

import (
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world/chunk"
)

// Area is the part of the world a feature may be written to: a single chunk addressed in world coordinates.
// Writes outside of the chunk are dropped, so features that cross a chunk border are cut off.
type Area struct {
	c   *chunk.Chunk
	min cube.Pos
}

// NewArea returns an Area covering the chunk passed.
func NewArea(c *chunk.Chunk) Area {
	return Area{c: c, min: cube.PosFromVec3(c.Origin())}
}

// Contains reports if the world position passed lies in the area.
func (a Area) Contains(pos cube.Pos) bool {
	l := pos.Sub(a.min)
	return l[0] >= 0 && l[1] >= 0 && l[2] >= 0 && l[0] < chunk.Size && l[1] < chunk.Size && l[2] < chunk.Size
}

// Block returns the kind at the world position passed, or air if it lies outside the area.
func (a Area) Block(pos cube.Pos) block.Kind {
	l := pos.Sub(a.min)
	return a.c.Block(l[0], l[1], l[2])
}

// SetBlock sets the kind at the world position passed if it lies inside the area.
func (a Area) SetBlock(pos cube.Pos, k block.Kind) {
	l := pos.Sub(a.min)
	a.c.SetBlock(l[0], l[1], l[2], k)
}

// overridable reports if a feature may replace the kind passed.
func overridable(k block.Kind) bool {
	return k == block.Air || k.IsLeaves()
}
