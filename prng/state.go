package prng

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"
)

// zeroChunk is folded into the accumulator in slices to advance the
// counter without allocating per call.
var zeroChunk [4096]byte

// PRNG is a stateful counter-mode SHA-256 generator. The zero value is
// not ready for use; construct one with New, or call Seed
// before drawing anything from it.
//
// A PRNG is not safe for concurrent use: every draw mutates counter,
// the running hash context, and the cached-bit buffer. Two independent
// PRNGs seeded with the same base seed and advanced through the same
// counter history are deterministic clones of each other and may be
// used as such, but a single instance must not be shared across
// goroutines without external synchronization.
type PRNG struct {
	baseSeed          Seed
	counter           uint64
	acc               hash.Hash
	randBits          *big.Int
	randBitsRemaining uint
}

// New returns a PRNG seeded with base.
func New(base Seed) *PRNG {
	p := &PRNG{}
	p.Seed(base)
	return p
}

// Seed resets counter to 0, clears the cached-bit buffer, and
// reinitializes the accumulator from base.
func (p *PRNG) Seed(base Seed) {
	p.baseSeed = base
	p.counter = 0
	p.randBits = new(big.Int)
	p.randBitsRemaining = 0
	p.acc = sha256.New()
	p.acc.Write(base.encode())
	p.acc.Write([]byte{commaByte})
}

// State is the exported triple sufficient to reconstruct the
// deterministic output stream, modulo the contents of the bit cache
// (see SetState).
type State struct {
	BaseSeed          Seed
	Counter           uint64
	RandBitsRemaining uint
}

// GetState returns the current (baseseed, counter, randbits_remaining)
// triple.
func (p *PRNG) GetState() State {
	return State{
		BaseSeed:          p.baseSeed,
		Counter:           p.counter,
		RandBitsRemaining: p.randBitsRemaining,
	}
}

// SetState reconstructs the generator from an external triple.
// randBitsRemaining is optional and defaults to 0; regardless of its
// value the bit cache's contents are cleared, since only the remaining
// count — not the cached bits themselves — is part of the exported
// state (spec §9). Reproducibility across a save/restore round trip is
// only guaranteed when the cache was empty at save time.
func (p *PRNG) SetState(base Seed, counter uint64, randBitsRemaining ...uint) {
	rbr := uint(0)
	if len(randBitsRemaining) > 0 {
		rbr = randBitsRemaining[0]
	}
	p.baseSeed = base
	p.counter = 0
	p.randBits = new(big.Int)
	p.randBitsRemaining = rbr
	p.acc = sha256.New()
	p.acc.Write(base.encode())
	p.acc.Write([]byte{commaByte})
	p.JumpAhead(counter)
}

// Next advances the counter by one, folding a single zero byte into the
// accumulator. It is equivalent to JumpAhead(1).
func (p *PRNG) Next() {
	p.JumpAhead(1)
}

// JumpAhead advances the counter by n, folding n zero bytes into the
// running accumulator.
func (p *PRNG) JumpAhead(n uint64) {
	remaining := n
	for remaining > 0 {
		chunk := remaining
		if chunk > uint64(len(zeroChunk)) {
			chunk = uint64(len(zeroChunk))
		}
		p.acc.Write(zeroChunk[:chunk])
		remaining -= chunk
	}
	p.counter += n
}

// String implements the generator's repr, e.g.
// "SHA256 PRNG. seed: 5 counter: 0 randbits_remaining: 0".
func (p *PRNG) String() string {
	return fmt.Sprintf("SHA256 PRNG. seed: %s counter: %d randbits_remaining: %d",
		p.baseSeed.String(), p.counter, p.randBitsRemaining)
}
