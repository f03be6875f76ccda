package block

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sound is a hint for the sound a voxel makes.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundStone
	SoundGravel
	SoundGrass
	SoundSand
	SoundSnow
	SoundWood
	SoundWater
)

// Particle is a hint for the particle a voxel emits when broken.
type Particle uint8

const (
	ParticleNone Particle = iota
	ParticleDust
	ParticleSplash
	ParticleLeaf
)

// Properties holds everything known about a Kind.
type Properties struct {
	Name        string
	Transparent bool
	Solid       bool
	Fluid       bool
	// Hardness determines mining time. math.Inf(1) marks an unbreakable voxel.
	Hardness        float64
	BlastResistance float64
	// FlameEncouragement and Flammability are the chances of fire catching on and burning up the voxel.
	FlameEncouragement, Flammability int
	Luminance                        uint8
	Sound                            Sound
	Particle                         Particle
	Color                           mgl32.Vec3
}

var inf = math.Inf(1)

// properties is indexed by Kind. Every Kind declared in kind.go must have a row here: TestPropertiesComplete
// fails on a missing one.
var properties = [kindCount]Properties{
	Air:          {Name: "air", Transparent: true},
	Stone:        {Name: "stone", Solid: true, Hardness: 1.5, BlastResistance: 6, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0.5, 0.5, 0.5}},
	Dirt:         {Name: "dirt", Solid: true, Hardness: 0.5, BlastResistance: 0.5, Sound: SoundGravel, Particle: ParticleDust, Color: mgl32.Vec3{0.6, 0.3, 0}},
	Grass:        {Name: "grass", Solid: true, Hardness: 0.6, BlastResistance: 0.6, Sound: SoundGrass, Particle: ParticleDust, Color: mgl32.Vec3{0, 0.8, 0}},
	Sand:         {Name: "sand", Solid: true, Hardness: 0.5, BlastResistance: 0.5, Sound: SoundSand, Particle: ParticleDust, Color: mgl32.Vec3{0.85, 0.8, 0.6}},
	Sandstone:    {Name: "sandstone", Solid: true, Hardness: 0.8, BlastResistance: 0.8, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0.8, 0.75, 0.55}},
	Gravel:       {Name: "gravel", Solid: true, Hardness: 0.6, BlastResistance: 0.6, Sound: SoundGravel, Particle: ParticleDust, Color: mgl32.Vec3{0.55, 0.52, 0.5}},
	Snow:         {Name: "snow", Solid: true, Hardness: 0.2, BlastResistance: 0.2, Sound: SoundSnow, Particle: ParticleDust, Color: mgl32.Vec3{0.95, 0.97, 1}},
	Water:        {Name: "water", Transparent: true, Fluid: true, Hardness: 100, BlastResistance: 100, Sound: SoundWater, Particle: ParticleSplash, Color: mgl32.Vec3{0, 0.3, 0.8}},
	Bedrock:      {Name: "bedrock", Solid: true, Hardness: inf, BlastResistance: inf, Sound: SoundStone, Color: mgl32.Vec3{0.2, 0.2, 0.2}},
	OakLog:       {Name: "oak_log", Solid: true, Hardness: 2, BlastResistance: 2, FlameEncouragement: 5, Flammability: 5, Sound: SoundWood, Particle: ParticleDust, Color: mgl32.Vec3{0.5, 0.3, 0.2}},
	BirchLog:     {Name: "birch_log", Solid: true, Hardness: 2, BlastResistance: 2, FlameEncouragement: 5, Flammability: 5, Sound: SoundWood, Particle: ParticleDust, Color: mgl32.Vec3{0.85, 0.82, 0.75}},
	SpruceLog:    {Name: "spruce_log", Solid: true, Hardness: 2, BlastResistance: 2, FlameEncouragement: 5, Flammability: 5, Sound: SoundWood, Particle: ParticleDust, Color: mgl32.Vec3{0.35, 0.24, 0.15}},
	OakLeaves:    {Name: "oak_leaves", Transparent: true, Solid: true, Hardness: 0.2, BlastResistance: 0.2, FlameEncouragement: 30, Flammability: 60, Sound: SoundGrass, Particle: ParticleLeaf, Color: mgl32.Vec3{0, 0.5, 0}},
	BirchLeaves:  {Name: "birch_leaves", Transparent: true, Solid: true, Hardness: 0.2, BlastResistance: 0.2, FlameEncouragement: 30, Flammability: 60, Sound: SoundGrass, Particle: ParticleLeaf, Color: mgl32.Vec3{0.35, 0.6, 0.25}},
	SpruceLeaves: {Name: "spruce_leaves", Transparent: true, Solid: true, Hardness: 0.2, BlastResistance: 0.2, FlameEncouragement: 30, Flammability: 60, Sound: SoundGrass, Particle: ParticleLeaf, Color: mgl32.Vec3{0.2, 0.4, 0.25}},
	CoalOre:      {Name: "coal_ore", Solid: true, Hardness: 3, BlastResistance: 3, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0.2, 0.2, 0.2}},
	IronOre:      {Name: "iron_ore", Solid: true, Hardness: 3, BlastResistance: 3, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0.8, 0.7, 0.6}},
	GoldOre:      {Name: "gold_ore", Solid: true, Hardness: 3, BlastResistance: 3, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0.9, 0.8, 0.2}},
	DiamondOre:   {Name: "diamond_ore", Solid: true, Hardness: 3, BlastResistance: 3, Luminance: 1, Sound: SoundStone, Particle: ParticleDust, Color: mgl32.Vec3{0, 0.8, 0.8}},
}

// IsLeaves reports if the kind is any of the leaf kinds.
func (k Kind) IsLeaves() bool {
	return k == OakLeaves || k == BirchLeaves || k == SpruceLeaves
}

// IsLog reports if the kind is any of the log kinds.
func (k Kind) IsLog() bool {
	return k == OakLog || k == BirchLog || k == SpruceLog
}
