package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

type Plains struct {
	grassy
}

func (Plains) Name() string {
	return "plains"
}

func (Plains) Tree(*rand.Rand) populate.TreeType {
	return populate.OakTree{}
}

func (Plains) HeightMultiplier() float64 {
	return 1
}

func (Plains) Roughness() float64 {
	return 0.5
}

func (Plains) TreeDensity() float64 {
	return 0.01
}

func (Plains) Temperature() float64 {
	return 0.5
}

func (Plains) Rainfall() float64 {
	return 0.4
}
