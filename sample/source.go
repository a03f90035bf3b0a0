package sample

import (
	"math/big"

	"github.com/statlab/cryptorandom/prng"
)

// Source is the capability set every sampling algorithm needs from a
// PRNG: draw n reals in [0,1), or draw n integers in a half-open range.
// Any concrete generator, or a test double, satisfying this interface
// may be passed to the sampler functions — the algorithms never reach
// past it into hash-level state.
type Source interface {
	// Random draws n independent reals in [0, 1), in draw order.
	Random(n int) []float64

	// RandInt draws n independent integers in [a, b), in draw order.
	RandInt(a, b int64, n int) ([]int64, error)
}

// HashSource adapts a *prng.PRNG to Source, converting its full-width
// big.Float and big.Int draws to float64 and int64 for the samplers,
// which do not need 256 bits of precision to remain statistically
// unbiased.
type HashSource struct {
	PRNG *prng.PRNG
}

// NewHashSource wraps p as a Source.
func NewHashSource(p *prng.PRNG) *HashSource {
	return &HashSource{PRNG: p}
}

func (h *HashSource) Random(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		f, _ := h.PRNG.Random().Float64()
		out[i] = f
	}
	return out
}

func (h *HashSource) RandInt(a, b int64, n int) ([]int64, error) {
	vs, err := h.PRNG.RandIntN(big.NewInt(a), big.NewInt(b), n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i, v := range vs {
		out[i] = v.Int64()
	}
	return out, nil
}
