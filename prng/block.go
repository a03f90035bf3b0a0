package prng

import "math/big"

// floatPrec gives a big.Float enough mantissa bits to hold all 256 bits
// of entropy a block carries, with headroom for the division by 2**256.
const floatPrec = 300

// NextRandom returns the SHA-256 digest of the current accumulator —
// i.e. of encode(seed) || "," || 0x00*counter — and then advances the
// counter by one. Two PRNGs with equal (baseseed, counter) emit
// bitwise-identical blocks (invariant I4).
func (p *PRNG) NextRandom() [32]byte {
	sum := p.acc.Sum(nil)
	var block [32]byte
	copy(block[:], sum)
	p.JumpAhead(1)
	return block
}

// Random draws one real in [0, 1): the block interpreted as a
// big-endian unsigned 256-bit integer U, scaled by 2**-256. The result
// keeps the full 256 bits of entropy rather than rounding to a 53-bit
// IEEE float, so callers checking it against reference vectors must
// compare at full precision rather than via float64.
func (p *PRNG) Random() *big.Float {
	block := p.NextRandom()
	u := new(big.Int).SetBytes(block[:])
	f := new(big.Float).SetPrec(floatPrec).SetInt(u)
	recip := new(big.Float).SetPrec(floatPrec).SetMantExp(big.NewFloat(1), -256)
	return f.Mul(f, recip)
}

// RandomN draws n independent reals in [0, 1), in draw order.
func (p *PRNG) RandomN(n int) []*big.Float {
	out := make([]*big.Float, n)
	for i := range out {
		out[i] = p.Random()
	}
	return out
}
