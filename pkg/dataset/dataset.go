// Package dataset generates the synthetic input distributions used by the
// sorting benchmark. All generation is driven by a single seeded
// math/rand source, so runs with the same seed reproduce identical data.
package dataset

import (
	"fmt"
	"math/rand"
)

// Kind names one of the input distributions.
type Kind string

const (
	Random         Kind = "random"
	Sorted         Kind = "sorted"
	Reverse        Kind = "reverse"
	NearlySorted   Kind = "nearly_sorted"
	ManyDuplicates Kind = "many_duplicates"
)

// Kinds lists every distribution in report order.
var Kinds = []Kind{Random, Sorted, Reverse, NearlySorted, ManyDuplicates}

// DefaultSeed is the seed used when none is configured.
const DefaultSeed = 42

// randomMax bounds values drawn by the random distribution.
const randomMax = 1_000_000_000

// Config configures a Generator.
type Config struct {
	// Seed for the pseudo-random source. 0 = use DefaultSeed.
	Seed int64
	// SwapRatio is the fraction of elements disturbed by nearly_sorted.
	// 0 = use 0.01.
	SwapRatio float64
	// Uniques is the alphabet size for many_duplicates. 0 = use 100.
	Uniques int
}

// DefaultConfig returns the configuration matching the benchmark defaults.
func DefaultConfig() Config {
	return Config{
		Seed:      DefaultSeed,
		SwapRatio: 0.01,
		Uniques:   100,
	}
}

// Generator produces datasets from one seeded random source. It is not safe
// for concurrent use; the benchmark generates datasets sequentially.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a generator, filling in defaults for zero fields.
func NewGenerator(cfg Config) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.SwapRatio == 0 {
		cfg.SwapRatio = 0.01
	}
	if cfg.Uniques == 0 {
		cfg.Uniques = 100
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate returns n elements of the named distribution. An unknown kind is
// a configuration mistake and returns an error; every known kind accepts
// any n >= 0 and yields an empty slice for n = 0.
func (g *Generator) Generate(kind Kind, n int) ([]int, error) {
	switch kind {
	case Random:
		return g.Random(n), nil
	case Sorted:
		return g.Sorted(n), nil
	case Reverse:
		return g.Reverse(n), nil
	case NearlySorted:
		return g.NearlySorted(n), nil
	case ManyDuplicates:
		return g.ManyDuplicates(n), nil
	default:
		return nil, fmt.Errorf("unknown dataset kind: %s", kind)
	}
}

// Random returns n values drawn uniformly from [0, 1e9).
func (g *Generator) Random(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = g.rng.Intn(randomMax)
	}
	return data
}

// Sorted returns 0..n-1 ascending: the best case for insertion sort.
func (g *Generator) Sorted(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Reverse returns n..1 descending: the worst case for insertion sort.
func (g *Generator) Reverse(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	return data
}

// NearlySorted returns 0..n-1 with max(1, n*SwapRatio) random index-pair
// swaps applied, exercising adaptive behavior on almost-ordered input.
func (g *Generator) NearlySorted(n int) []int {
	data := g.Sorted(n)
	if n < 2 {
		return data
	}
	swaps := int(float64(n) * g.cfg.SwapRatio)
	if swaps < 1 {
		swaps = 1
	}
	for s := 0; s < swaps; s++ {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// ManyDuplicates returns n values drawn from a small alphabet of Uniques
// distinct values, exercising stability and duplicate-heavy performance.
func (g *Generator) ManyDuplicates(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = g.rng.Intn(g.cfg.Uniques)
	}
	return data
}
