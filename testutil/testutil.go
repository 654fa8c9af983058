package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies the random source used for training.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors around `clusters` random centers in [0, 1).
// Vector i belongs to cluster i%clusters; Gaussian noise scaled by spread is
// added and every component is clamped to [0, 1], so the output is a valid
// normalized dataset.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float32) [][]float32 {
	centers := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	vectors := make([][]float32, num)

	for i := range num {
		center := centers[i%clusters]
		vec := data[i*dim : (i+1)*dim]
		for j := range dim {
			v := center[j] + float32(r.rand.NormFloat64())*spread
			vec[j] = min(max(v, 0), 1)
		}
		vectors[i] = vec
	}

	return vectors
}

// Nearest returns the index of the vector in candidates closest to query by
// Euclidean distance, preferring the lowest index on ties. It is a brute-force
// reference for winner selection tests and returns -1 for no candidates.
func Nearest(query []float32, candidates [][]float32) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		var sum float64
		for j := range c {
			d := float64(query[j]) - float64(c[j])
			sum += d * d
		}
		if d := math.Sqrt(sum); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
