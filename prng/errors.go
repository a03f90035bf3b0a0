package prng

import "errors"

// ErrNonPositiveBound is returned by RandBelowFromRandBits (and, via it,
// RandInt) when the exclusive bound is not strictly positive. Spec §9
// leaves randbelow_from_randbits(0) and randint(a, a, ...) unspecified;
// this implementation's policy is to fail fast rather than loop.
var ErrNonPositiveBound = errors.New("prng: bound must be positive")

// ErrBoundsReversed is returned by RandInt and RandIntTrunc when the
// lower bound exceeds the upper bound.
var ErrBoundsReversed = errors.New("prng: lower bound exceeds upper bound")
