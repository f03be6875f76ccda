package biome

import "github.com/terrastream/terra/server/block"

type Ocean struct {
	treeless
}

func (Ocean) Name() string {
	return "ocean"
}

func (Ocean) Top() block.Kind {
	return block.Sand
}

func (Ocean) Under() block.Kind {
	return block.Gravel
}

func (Ocean) HeightMultiplier() float64 {
	return 0.3
}

func (Ocean) Roughness() float64 {
	return 0.2
}

func (Ocean) Temperature() float64 {
	return 0.5
}

func (Ocean) Rainfall() float64 {
	return 1
}
