package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

type Jungle struct {
	grassy
}

func (Jungle) Name() string {
	return "jungle"
}

// Tree returns tall birch trees for about a third of the trees and oak trees otherwise.
func (Jungle) Tree(r *rand.Rand) populate.TreeType {
	if r.IntN(3) == 0 {
		return populate.BirchTree{Super: true}
	}
	return populate.OakTree{}
}

func (Jungle) HeightMultiplier() float64 {
	return 1.2
}

func (Jungle) Roughness() float64 {
	return 0.7
}

func (Jungle) TreeDensity() float64 {
	return 0.1
}

func (Jungle) Temperature() float64 {
	return 1.2
}

func (Jungle) Rainfall() float64 {
	return 0.9
}
