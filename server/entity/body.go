package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
)

// VoxelSource provides the voxels a body collides with. Voxels that are not loaded should be reported as
// block.Air.
type VoxelSource interface {
	Voxel(pos cube.Pos) block.Kind
}

// Body is a rigid, axis aligned box moving through the voxel world.
type Body struct {
	ID uuid.UUID
	// Position is the minimum corner of Box.
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	// OnGround is true if the body rests on top of a solid voxel.
	OnGround bool
	Box      cube.BBox
}

// NewBody returns a body at rest with its minimum corner at pos and the size passed.
func NewBody(pos, size mgl64.Vec3) Body {
	return Body{
		ID:       uuid.New(),
		Position: pos,
		Box:      cube.NewBBox(pos, pos.Add(size)),
	}
}

// Size returns the extent of the body on every axis.
func (b Body) Size() mgl64.Vec3 {
	return b.Box.Size()
}

// Teleport moves the body to a new position without resolving collisions and stops it.
func (b Body) Teleport(pos mgl64.Vec3) Body {
	b.Box = cube.NewBBox(pos, pos.Add(b.Box.Size()))
	b.Position = pos
	b.Velocity, b.Acceleration = mgl64.Vec3{}, mgl64.Vec3{}
	b.OnGround = false
	return b
}
