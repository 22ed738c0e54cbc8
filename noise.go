package vecmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// ErrNoiseParams is returned by NewNoise for parameters that do not describe
// a usable fractal noise.
var ErrNoiseParams = errors.New("vecmath: invalid noise parameters")

// Noise is a seeded 2D Perlin noise generator summing several octaves.
// Octave i is sampled at frequency lacunarity^i with amplitude
// persistence^i, and the sum is divided by the total amplitude so results
// stay in [-1, 1]. The value at integer coordinates is 0 when lacunarity
// is an integer.
//
// Noise is safe for concurrent use.
type Noise struct {
	p    *perlin.Perlin
	norm float64
}

// NewNoise creates a generator. octaves must be at least 1; persistence and
// lacunarity must be positive and finite.
func NewNoise(seed int64, octaves int, persistence, lacunarity float64) (*Noise, error) {
	switch {
	case octaves < 1 || octaves > math.MaxInt32:
		return nil, fmt.Errorf("%w: octaves %d", ErrNoiseParams, octaves)
	case !(persistence > 0) || math.IsInf(persistence, 0):
		return nil, fmt.Errorf("%w: persistence %v", ErrNoiseParams, persistence)
	case !(lacunarity > 0) || math.IsInf(lacunarity, 0):
		return nil, fmt.Errorf("%w: lacunarity %v", ErrNoiseParams, lacunarity)
	}

	norm, amp := 0.0, 1.0
	for range octaves {
		norm += amp
		amp *= persistence
	}
	return &Noise{
		p:    perlin.NewPerlin(1/persistence, lacunarity, int32(octaves), seed),
		norm: norm,
	}, nil
}

// At samples the noise at p.
func (n *Noise) At(p Vec2) float64 {
	return n.p.Noise2D(p.X, p.Y) / n.norm
}

// PerlinNoise samples seed-0 fractal Perlin noise at (x, y). Invalid
// parameters yield NaN. Use a Noise to sample many points with the same
// parameters.
func PerlinNoise(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	n, err := NewNoise(0, octaves, persistence, lacunarity)
	if err != nil {
		return math.NaN()
	}
	return n.At(Vec2{X: x, Y: y})
}
