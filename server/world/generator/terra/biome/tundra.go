package biome

import (
	"math/rand/v2"

	"github.com/terrastream/terra/server/block"
	"github.com/terrastream/terra/server/world/generator/terra/populate"
)

type Tundra struct{}

func (Tundra) Name() string {
	return "tundra"
}

func (Tundra) Top() block.Kind {
	return block.Snow
}

func (Tundra) Under() block.Kind {
	return block.Dirt
}

func (Tundra) Tree(*rand.Rand) populate.TreeType {
	return populate.SpruceTree{}
}

func (Tundra) HeightMultiplier() float64 {
	return 0.9
}

func (Tundra) Roughness() float64 {
	return 0.4
}

func (Tundra) TreeDensity() float64 {
	return 0.005
}

func (Tundra) Temperature() float64 {
	return -0.5
}

func (Tundra) Rainfall() float64 {
	return 0.3
}
