package prng

import "math/big"

// GetRandBits returns an integer in [0, 2**k) built from exactly k
// uniform random bits. Bits beyond what is requested are cached in the
// generator and served to the next call before any new block is drawn,
// so the bit stream emitted is the concatenation of the low-to-high bit
// streams of successive NextRandom blocks, regardless of how it is cut
// into GetRandBits(k) windows.
func (p *PRNG) GetRandBits(k uint) *big.Int {
	if k == 0 {
		return new(big.Int)
	}
	for p.randBitsRemaining < k {
		block := p.NextRandom()
		newBits := new(big.Int).SetBytes(block[:])
		newBits.Lsh(newBits, p.randBitsRemaining)
		p.randBits.Or(p.randBits, newBits)
		p.randBitsRemaining += 256
	}
	mask := new(big.Int).Lsh(big.NewInt(1), k)
	mask.Sub(mask, big.NewInt(1))
	result := new(big.Int).And(p.randBits, mask)
	p.randBits.Rsh(p.randBits, k)
	p.randBitsRemaining -= k
	return result
}

// RandBelowFromRandBits draws an unbiased integer in [0, n) by
// rejection sampling over the smallest power-of-two window containing
// that range: expected fewer than two draws per call. n must be
// positive; n <= 0 is a caller precondition violation (spec §9 leaves
// randbelow_from_randbits(0) unspecified — this implementation fails
// fast rather than looping forever).
func (p *PRNG) RandBelowFromRandBits(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositiveBound
	}
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	k := uint(nMinus1.BitLen())
	for {
		r := p.GetRandBits(k)
		if r.Cmp(n) < 0 {
			return r, nil
		}
	}
}
