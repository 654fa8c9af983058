package som

// Source is the pseudo-random generator consumed by initialization and sampling.
//
// *math/rand.Rand and testutil.RNG both satisfy it.
type Source interface {
	// Intn returns a value in [0,n).
	Intn(n int) int
	// Float32 returns a value in [0.0,1.0).
	Float32() float32
}

// Initialize creates a store of k neurons with dim-dimensional weights, each
// component drawn uniformly from [-1, 1).
func Initialize(k, dim int, src Source) (*WeightStore, error) {
	if k <= 0 {
		return nil, &ErrInvalidParameter{Name: "neurons", Value: k}
	}
	if dim <= 0 {
		return nil, &ErrInvalidParameter{Name: "dimension", Value: dim}
	}
	if src == nil {
		return nil, &ErrInvalidParameter{Name: "source", Value: nil}
	}

	s := newWeightStore(k, dim)
	for i := range s.data {
		s.data[i] = uniform(src)
	}
	return s, nil
}

// uniform maps src.Float32 onto [-1, 1). The rejection guards against float32
// rounding producing exactly 1.
func uniform(src Source) float32 {
	for {
		v := src.Float32()*2 - 1
		if v < 1 {
			return v
		}
	}
}
