package block

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind is the material classification of a single voxel. Kinds carry no per-instance state: everything a
// voxel can do is looked up in a table keyed by its Kind. The zero value is Air.
type Kind uint8

const (
	// Air is the empty voxel, and the value returned for any read outside of loaded storage.
	Air Kind = iota
	Stone
	Dirt
	Grass
	Sand
	Sandstone
	Gravel
	Snow
	Water
	Bedrock
	OakLog
	BirchLog
	SpruceLog
	OakLeaves
	BirchLeaves
	SpruceLeaves
	CoalOre
	IronOre
	GoldOre
	DiamondOre

	kindCount
)

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Air; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports if k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// props returns the property row for k. Values outside the table behave as Air.
func (k Kind) props() *Properties {
	if k >= kindCount {
		return &properties[Air]
	}
	return &properties[k]
}

// Properties returns a copy of the full property row of the Kind.
func (k Kind) Properties() Properties {
	return *k.props()
}

// String ...
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return properties[k].Name
}

// Transparent reports if light and sight pass through the voxel. Faces of neighbouring voxels are rendered
// against transparent voxels.
func (k Kind) Transparent() bool {
	return k.props().Transparent
}

// Solid reports if the voxel blocks the movement of bodies.
func (k Kind) Solid() bool {
	return k.props().Solid
}

// Fluid reports if the voxel is a liquid. Fluids never take part in collision.
func (k Kind) Fluid() bool {
	return k.props().Fluid
}

// Collides reports if bodies are pushed out of the voxel: it must be solid and not a fluid.
func (k Kind) Collides() bool {
	p := k.props()
	return p.Solid && !p.Fluid
}

// Hardness ...
func (k Kind) Hardness() float64 {
	return k.props().Hardness
}

// BlastResistance ...
func (k Kind) BlastResistance() float64 {
	return k.props().BlastResistance
}

// FlammabilityInfo returns the chance of fire spreading to and consuming the voxel.
func (k Kind) FlammabilityInfo() (encouragement, flammability int) {
	p := k.props()
	return p.FlameEncouragement, p.Flammability
}

// LightEmissionLevel ...
func (k Kind) LightEmissionLevel() uint8 {
	return k.props().Luminance
}

// Sound returns the sound played when the voxel is stepped on, placed or broken.
func (k Kind) Sound() Sound {
	return k.props().Sound
}

// Particle returns the particle spawned when the voxel is broken.
func (k Kind) Particle() Particle {
	return k.props().Particle
}

// Color returns the base color the voxel is rendered with.
func (k Kind) Color() mgl32.Vec3 {
	return k.props().Color
}

// Breakable reports if the voxel can be mined at all.
func (k Kind) Breakable() bool {
	return !math.IsInf(k.props().Hardness, 1)
}

// MiningTime returns the time in seconds it takes to mine the voxel with a tool of the speed passed. A speed of
// 0 or less is treated as mining by hand. Voxels with infinite hardness take an infinite amount of time.
func (k Kind) MiningTime(toolSpeed float64) float64 {
	if toolSpeed <= 0 {
		toolSpeed = 1
	}
	return k.props().Hardness * 1.5 / toolSpeed
}

// ExplosionDamage returns the remaining explosion power after it passes through the voxel. Voxels with infinite
// blast resistance absorb any explosion.
func (k Kind) ExplosionDamage(power float64) float64 {
	return math.Max(0, power-k.props().BlastResistance*0.3)
}
