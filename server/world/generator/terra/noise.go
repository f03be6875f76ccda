package terra

import (
	"github.com/ojrac/opensimplex-go"
	"github.com/segmentio/fasthash/fnv1a"
)

// field is a coherent noise function sampled at a fixed frequency.
type field struct {
	noise opensimplex.Noise
	freq  float64
}

// newField returns a field seeded from both the world seed and its name, so that fields of the same world
// are independent of each other.
func newField(seed int64, name string, freq float64) field {
	h := fnv1a.AddString64(fnv1a.HashUint64(uint64(seed)), name)
	return field{noise: opensimplex.New(int64(h)), freq: freq}
}

// at2 samples the field in two dimensions. The result lies roughly in [-1, 1].
func (f field) at2(x, z int) float64 {
	return f.noise.Eval2(float64(x)*f.freq, float64(z)*f.freq)
}

// at3 samples the field in three dimensions. The result lies roughly in [-1, 1].
func (f field) at3(x, y, z int) float64 {
	return f.noise.Eval3(float64(x)*f.freq, float64(y)*f.freq, float64(z)*f.freq)
}
