package world

import (
	"cmp"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world/chunk"
)

// ChunkPos holds the position of a chunk in chunk coordinates. The world space position of the chunk is
// found by multiplying each component by chunk.Size.
type ChunkPos [3]int32

// String implements fmt.Stringer and returns (x, y, z).
func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
}

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Y returns the Y coordinate of the chunk position.
func (p ChunkPos) Y() int32 {
	return p[1]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[2]
}

// Origin returns the world space position of the minimum corner of the chunk.
func (p ChunkPos) Origin() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]) * chunk.Size, float64(p[1]) * chunk.Size, float64(p[2]) * chunk.Size}
}

// Add ...
func (p ChunkPos) Add(o ChunkPos) ChunkPos {
	return ChunkPos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// Sub ...
func (p ChunkPos) Sub(o ChunkPos) ChunkPos {
	return ChunkPos{p[0] - o[0], p[1] - o[1], p[2] - o[2]}
}

// DistSq returns the squared, unweighted distance between two chunk positions.
func (p ChunkPos) DistSq(o ChunkPos) int64 {
	dx, dy, dz := int64(p[0]-o[0]), int64(p[1]-o[1]), int64(p[2]-o[2])
	return dx*dx + dy*dy + dz*dz
}

// Compare orders chunk positions by X, then Y, then Z. It returns -1, 0 or 1.
func (p ChunkPos) Compare(o ChunkPos) int {
	if c := cmp.Compare(p[0], o[0]); c != 0 {
		return c
	}
	if c := cmp.Compare(p[1], o[1]); c != 0 {
		return c
	}
	return cmp.Compare(p[2], o[2])
}

const (
	packBits = 21
	packMask = 1<<packBits - 1
)

// Pack packs the position into a single int64 using 21 bits per axis. Positions with a component outside of
// [-2^20, 2^20) wrap around.
func (p ChunkPos) Pack() int64 {
	return int64(p[0])&packMask<<(2*packBits) | int64(p[1])&packMask<<packBits | int64(p[2])&packMask
}

// UnpackChunkPos reverses ChunkPos.Pack.
func UnpackChunkPos(v int64) ChunkPos {
	return ChunkPos{signExtend(v >> (2 * packBits)), signExtend(v >> packBits), signExtend(v)}
}

func signExtend(v int64) int32 {
	const shift = 64 - packBits
	return int32((v & packMask) << shift >> shift)
}

// ChunkPosFromVec3 returns the position of the chunk containing the world space position passed.
func ChunkPosFromVec3(vec mgl64.Vec3) ChunkPos {
	return ChunkPos{
		int32(math.Floor(vec[0] / chunk.Size)),
		int32(math.Floor(vec[1] / chunk.Size)),
		int32(math.Floor(vec[2] / chunk.Size)),
	}
}

// chunkPosFromBlockPos returns the chunk holding the voxel passed, along with the voxel's position local
// to that chunk.
func chunkPosFromBlockPos(p cube.Pos) (ChunkPos, cube.Pos) {
	c := ChunkPos{
		int32(cube.FloorDiv(p[0], chunk.Size)),
		int32(cube.FloorDiv(p[1], chunk.Size)),
		int32(cube.FloorDiv(p[2], chunk.Size)),
	}
	return c, cube.Pos{p[0] - int(c[0])*chunk.Size, p[1] - int(c[1])*chunk.Size, p[2] - int(c[2])*chunk.Size}
}
