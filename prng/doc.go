// Package prng implements a deterministic pseudorandom number generator
// whose state-transition function is SHA-256 run in counter mode.
//
// The generator is built for statistical applications — risk-limiting
// election audits and survey sampling — where every draw must be
// reconstructable by a third party from nothing more than the published
// seed and counter. It trades raw throughput and adversarial
// unpredictability for a single property: two generators seeded with the
// same base seed and advanced through the same counter history emit
// bitwise-identical output, on any platform, forever.
//
// The running state is a SHA-256 digest context that has already
// absorbed the encoded seed and one zero byte per counter tick. Reading
// the current block is a snapshot: hash.Hash.Sum does not finalize or
// reset the underlying state, so the context keeps growing as the
// counter advances, and it is equivalent (see conformance_test.go) to
// recomputing SHA256(seed-encoding || 0x00*counter) from scratch at
// every tick.
package prng
