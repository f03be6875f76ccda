package biome

import "github.com/terrastream/terra/server/block"

type Desert struct {
	treeless
}

func (Desert) Name() string {
	return "desert"
}

func (Desert) Top() block.Kind {
	return block.Sand
}

func (Desert) Under() block.Kind {
	return block.Sandstone
}

func (Desert) HeightMultiplier() float64 {
	return 0.8
}

func (Desert) Roughness() float64 {
	return 0.3
}

func (Desert) Temperature() float64 {
	return 2
}

func (Desert) Rainfall() float64 {
	return 0
}
