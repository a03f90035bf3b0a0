// Package sample implements the unweighted and weighted sampling and
// permutation algorithms built on top of package prng: Fisher-Yates,
// PIKK, the Cormen recursive sampler, Waterman's reservoir Algorithm
// R, Vitter's reservoir Algorithm Z, index-elimination sampling,
// weighted elimination, and exponential-weighted sampling.
//
// Every algorithm is a stateless function of a Source — the minimal
// capability a PRNG needs to expose (draw reals in [0,1), draw
// integers in a half-open range) — and a population size. Internally
// every algorithm works over 1-based indices {1, ..., N}; the
// dispatchers (RandomSample, RandomAllocation, RandomPermutation)
// subtract 1 before handing indices back to the caller.
package sample
