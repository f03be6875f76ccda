package terra

// Config holds the parameters of a Generator. Unlike most configs, the zero value is not filled with
// defaults: DefaultConfig should be used as a starting point.
type Config struct {
	// Seed is the world seed. Generators with equal configs produce identical chunks.
	Seed int64
	// SeaLevel is the height below which empty space above the terrain is filled with water.
	SeaLevel int
	// BaseHeight is added to SeaLevel to find the average terrain height.
	BaseHeight int
	// FloorY is the height of the bedrock floor of the world. Everything below it is left empty.
	FloorY int
	// FlatHeight, if non-nil, gives every column this height and disables height noise.
	FlatHeight *int
	// DisableCaves, DisableOres and DisableFeatures turn off the respective generation stages.
	DisableCaves    bool
	DisableOres     bool
	DisableFeatures bool
}

// DefaultConfig returns the default configuration of a generator with the seed passed.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		SeaLevel:   0,
		BaseHeight: 4,
		FloorY:     -64,
	}
}
