package sample

import "fmt"

// recursiveSampleMaxDepth bounds the recursion depth of RecursiveSample.
// Go's goroutine stacks grow on demand, so a naive recursive sampler
// does not blow up as readily as it would with a fixed call stack, but
// an unbounded k still risks an unrecoverable stack-overflow fatal
// error rather than a catchable Go error; this cap turns that failure
// mode into an ordinary error (spec §7 item 4).
const recursiveSampleMaxDepth = 1 << 16

// RecursiveSample draws k of {1, ..., n} without replacement using the
// recursive algorithm from Cormen et al.: S(n, 0) = ∅, and S(n, k) =
// S(n-1, k-1) ∪ {i} for i drawn uniformly in [1, n], substituting n for
// i when i already appears in S(n-1, k-1).
func RecursiveSample(n, k int, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	if k > recursiveSampleMaxDepth {
		return nil, fmt.Errorf("%w: k=%d exceeds %d", ErrRecursionTooDeep, k, recursiveSampleMaxDepth)
	}
	return recursiveSample(n, k, src)
}

func recursiveSample(n, k int, src Source) ([]int, error) {
	if k == 0 {
		return []int{}, nil
	}
	s, err := recursiveSample(n-1, k-1, src)
	if err != nil {
		return nil, err
	}
	draws, err := src.RandInt(1, int64(n)+1, 1)
	if err != nil {
		return nil, err
	}
	i := int(draws[0])
	if containsInt(s, i) {
		return append(s, n), nil
	}
	return append(s, i), nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
