package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

type Savanna struct {
	grassy
}

func (Savanna) Name() string {
	return "savanna"
}

func (Savanna) Tree(*rand.Rand) populate.TreeType {
	return populate.OakTree{}
}

func (Savanna) HeightMultiplier() float64 {
	return 1.2
}

func (Savanna) Roughness() float64 {
	return 0.7
}

func (Savanna) TreeDensity() float64 {
	return 0.1
}

func (Savanna) Temperature() float64 {
	return 1.5
}

func (Savanna) Rainfall() float64 {
	return 0.9
}
