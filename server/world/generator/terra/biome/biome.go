// Package biome holds the biomes of the terra generator and the rules used to select them.
package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

// Biome is a climate zone. It determines the surface blocks of a column, how strongly height noise shapes
// it and which trees grow on it.
type Biome interface {
	// Name returns the name of the biome in snake case.
	Name() string
	// Temperature and Rainfall return the typical climate of the biome.
	Temperature() float64
	Rainfall() float64
	// HeightMultiplier scales the hills noise of columns in the biome.
	HeightMultiplier() float64
	// Roughness scales the roughness noise of columns in the biome.
	Roughness() float64
	// TreeDensity is the chance of a single column growing a tree.
	TreeDensity() float64
	// Top returns the kind of the surface voxel.
	Top() block.Kind
	// Under returns the kind of the voxels right below the surface.
	Under() block.Kind
	// Tree returns the tree to grow on a column, or nil if the biome grows no trees.
	Tree(r *rand.Rand) populate.TreeType
}

// Select returns the biome for a column with the temperature and rainfall noise values passed.
func Select(temperature, rainfall float64) Biome {
	t, r := temperature, rainfall
	switch {
	case t < -0.5:
		return Tundra{}
	case r > 0.7:
		return Ocean{}
	case t > 0.5 && r < -0.3:
		return Desert{}
	case t > 0.3 && r > 0.3:
		return Jungle{}
	case t > 0 && r > 0.2:
		return Forest{}
	case t > 0.2 && r < 0:
		return Savanna{}
	case t > 0.6 || t < -0.6:
		return Mountains{}
	default:
		return Plains{}
	}
}

// All returns every biome.
func All() []Biome {
	return []Biome{Plains{}, Desert{}, Mountains{}, Forest{}, Tundra{}, Savanna{}, Jungle{}, Ocean{}}
}

// grassy is embedded by biomes covered in grass over dirt.
type grassy struct{}

func (grassy) Top() block.Kind {
	return block.Grass
}

func (grassy) Under() block.Kind {
	return block.Dirt
}

// treeless is embedded by biomes that grow no trees.
type treeless struct{}

func (treeless) Tree(*rand.Rand) populate.TreeType {
	return nil
}

func (treeless) TreeDensity() float64 {
	return 0
}
