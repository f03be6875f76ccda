// Package terra implements a procedural terrain generator with biomes, caves, ores and trees.
package terra

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/block/cube"
	"github.com/terrastream/terra/server/world"
	"github.com/terrastream/terra/server/world/chunk"
	"github.com/terrastream/terra/server/world/generator/terra/biome"
	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

const (
	// SmoothSize is the radius in columns over which biome height multipliers are blended.
	SmoothSize = 2
	// SubsurfaceDepth is the amount of under-blocks placed below the surface voxel.
	SubsurfaceDepth = 3
	// CaveThreshold is the cave noise value above which underground voxels are carved out.
	CaveThreshold = 0.55
)

var gaussianKernel = [5][5]float64{
	{
		1.4715177646858,
		2.141045714076,
		2.4261226388505,
		2.141045714076,
		1.4715177646858,
	},
	{
		2.141045714076,
		3.1152031322856,
		3.5299876103384,
		3.1152031322856,
		2.141045714076,
	},
	{
		2.4261226388505,
		3.5299876103384,
		4,
		3.5299876103384,
		2.4261226388505,
	},
	{
		2.141045714076,
		3.1152031322856,
		3.5299876103384,
		3.1152031322856,
		2.141045714076,
	},
	{
		1.4715177646858,
		2.141045714076,
		2.4261226388505,
		2.141045714076,
		1.4715177646858,
	},
}

// Generator generates terrain from layered simplex noise. A Generator holds no mutable state and is safe for
// concurrent use: the contents of a chunk depend on nothing but its position and the Config.
type Generator struct {
	conf Config

	continent, hills, roughness field
	temperature, rainfall       field
	caves, ores                 field
}

// New creates a Generator using the Config passed.
func New(conf Config) *Generator {
	s := conf.Seed
	return &Generator{
		conf:        conf,
		continent:   newField(s, "continent", 1.0/256),
		hills:       newField(s, "hills", 1.0/64),
		roughness:   newField(s, "roughness", 1.0/16),
		temperature: newField(s, "temperature", 1.0/512),
		rainfall:    newField(s, "rainfall", 1.0/512),
		caves:       newField(s, "caves", 1.0/24),
		ores:        newField(s, "ores", 1.0/6),
	}
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.conf
}

// BiomeAt returns the biome of the column at the world position passed.
func (g *Generator) BiomeAt(x, z int) biome.Biome {
	return biome.Select(g.temperature.at2(x, z), g.rainfall.at2(x, z))
}

// HeightAt returns the terrain height of the column at the world position passed: the y value of the first
// voxel above the surface.
func (g *Generator) HeightAt(x, z int) int {
	return g.height(x, z, g.BiomeAt)
}

// height computes the height of a column, blending the height multipliers of the biomes around it.
func (g *Generator) height(x, z int, biomeAt func(x, z int) biome.Biome) int {
	if g.conf.FlatHeight != nil {
		return *g.conf.FlatHeight
	}
	var heightSum, roughSum, weightSum float64
	for sx := -SmoothSize; sx <= SmoothSize; sx++ {
		for sz := -SmoothSize; sz <= SmoothSize; sz++ {
			weight := gaussianKernel[sx+SmoothSize][sz+SmoothSize]
			adjacent := biomeAt(x+sx, z+sz)

			heightSum += adjacent.HeightMultiplier() * weight
			roughSum += adjacent.Roughness() * weight
			weightSum += weight
		}
	}
	h := float64(g.conf.SeaLevel+g.conf.BaseHeight) +
		g.continent.at2(x, z)*24 +
		g.hills.at2(x, z)*12*(heightSum/weightSum) +
		g.roughness.at2(x, z)*4*(roughSum/weightSum)
	return int(math.Floor(h))
}

// GenerateChunk ...
func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	base := cube.Pos{int(pos[0]) * chunk.Size, int(pos[1]) * chunk.Size, int(pos[2]) * chunk.Size}

	// Biomes of the chunk and a border of SmoothSize columns around it, used for height smoothing.
	const span = chunk.Size + 2*SmoothSize
	var biomeCache [span][span]biome.Biome
	for x := 0; x < span; x++ {
		for z := 0; z < span; z++ {
			biomeCache[x][z] = g.BiomeAt(base[0]+x-SmoothSize, base[2]+z-SmoothSize)
		}
	}
	biomeAt := func(x, z int) biome.Biome {
		return biomeCache[x-base[0]+SmoothSize][z-base[2]+SmoothSize]
	}

	var heights [chunk.Size][chunk.Size]int
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			wx, wz := base[0]+x, base[2]+z
			h := g.height(wx, wz, biomeAt)
			heights[x][z] = h

			b := biomeAt(wx, wz)
			for y := 0; y < chunk.Size; y++ {
				c.SetBlock(x, y, z, g.voxel(wx, base[1]+y, wz, h, b))
			}
		}
	}

	if !g.conf.DisableFeatures {
		g.populate(populate.NewArea(c), base, &heights, biomeAt)
	}
}

// voxel returns the kind of the voxel at a world position in a column of height h and biome b, before any
// features are placed.
func (g *Generator) voxel(x, y, z, h int, b biome.Biome) block.Kind {
	switch {
	case y < g.conf.FloorY:
		return block.Air
	case y == g.conf.FloorY:
		return block.Bedrock
	case y >= h:
		if y < g.conf.SeaLevel {
			return block.Water
		}
		return block.Air
	case y == h-1:
		return b.Top()
	case y >= h-1-SubsurfaceDepth:
		return b.Under()
	}
	if !g.conf.DisableCaves && g.caves.at3(x, y, z) > CaveThreshold {
		return block.Air
	}
	if g.conf.DisableOres {
		return block.Stone
	}
	return populate.PickOre(populate.Ores, block.Stone, y, g.ores.at3(x, y, z))
}

// populate grows trees on the columns of the chunk. Every chunk in the column of a tree grows the same tree,
// so trees reaching into the chunk above are complete. Trees reaching into a neighbour on the X or Z axis are
// cut off at the border.
func (g *Generator) populate(a populate.Area, base cube.Pos, heights *[chunk.Size][chunk.Size]int, biomeAt func(x, z int) biome.Biome) {
	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			h := heights[x][z]
			if h-1 < g.conf.SeaLevel || h-1 <= g.conf.FloorY {
				continue
			}
			if h+populate.MaxTreeHeight < base[1] || h-1 >= base[1]+chunk.Size {
				continue
			}
			wx, wz := base[0]+x, base[2]+z
			b := biomeAt(wx, wz)
			if top := b.Top(); top != block.Grass && top != block.Snow {
				continue
			}
			r := g.treeRand(wx, h, wz)
			if r.Float64() >= b.TreeDensity() {
				continue
			}
			if tree := b.Tree(r); tree != nil {
				tree.Grow(a, cube.Pos{wx, h, wz}, r)
			}
		}
	}
}

// treeRand returns a random source seeded from the world seed and the position of a tree.
func (g *Generator) treeRand(x, y, z int) *rand.Rand {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(g.conf.Seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(x))
	binary.LittleEndian.PutUint64(buf[16:], uint64(y))
	binary.LittleEndian.PutUint64(buf[24:], uint64(z))
	s := xxhash.Sum64(buf[:])
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
