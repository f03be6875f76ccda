package populate

import "github.com/terrastream/terra/server/block"

// OreType is a band of ore. The ore replaces a voxel of Replaces at or below MaxHeight wherever the ore noise
// exceeds Threshold.
type OreType struct {
	Material, Replaces block.Kind
	MaxHeight          int
	Threshold          float64
}

// Ores holds the ore bands of the overworld, rarest first.
var Ores = []OreType{
	{block.DiamondOre, block.Stone, -48, 0.82},
	{block.GoldOre, block.Stone, -24, 0.76},
	{block.IronOre, block.Stone, 16, 0.68},
	{block.CoalOre, block.Stone, 96, 0.60},
}

// PickOre returns the material of the first ore type in ores that may replace current at height y with the
// ore noise value v. If none matches, current is returned.
func PickOre(ores []OreType, current block.Kind, y int, v float64) block.Kind {
	for _, o := range ores {
		if current == o.Replaces && y <= o.MaxHeight && v > o.Threshold {
			return o.Material
		}
	}
	return current
}
