package biome

import "github.com/terrastream/terra/server/block"

type Mountains struct {
	treeless
}

func (Mountains) Name() string {
	return "mountains"
}

func (Mountains) Top() block.Kind {
	return block.Stone
}

func (Mountains) Under() block.Kind {
	return block.Stone
}

func (Mountains) HeightMultiplier() float64 {
	return 3
}

func (Mountains) Roughness() float64 {
	return 1.5
}

func (Mountains) Temperature() float64 {
	return 0.2
}

func (Mountains) Rainfall() float64 {
	return 0.5
}
