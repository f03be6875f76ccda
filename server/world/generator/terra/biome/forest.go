package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

type Forest struct {
	grassy
}

func (Forest) Name() string {
	return "forest"
}

// Tree returns a birch tree for roughly one in five trees and an oak tree otherwise.
func (Forest) Tree(r *rand.Rand) populate.TreeType {
	if r.IntN(5) == 0 {
		return populate.BirchTree{Super: r.IntN(39) == 0}
	}
	return populate.OakTree{}
}

func (Forest) HeightMultiplier() float64 {
	return 1.1
}

func (Forest) Roughness() float64 {
	return 0.6
}

func (Forest) TreeDensity() float64 {
	return 0.09
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}
