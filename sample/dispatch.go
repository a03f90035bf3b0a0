package sample

import (
	"fmt"
	"sort"
)

// Method names a sampling algorithm by its literature name, for
// dispatch by configuration rather than by direct function reference
// (used by RandomSample/RandomAllocation/RandomPermutation and by the
// audit-plan configuration format).
type Method string

const (
	MethodFisherYates   Method = "fisher_yates"
	MethodPIKK          Method = "pikk"
	MethodRecursive     Method = "cormen"
	MethodWaterman      Method = "waterman_r"
	MethodVitter        Method = "vitter_z"
	MethodSampleByIndex Method = "sample_by_index"
	MethodElimination   Method = "elimination"
	MethodExponential   Method = "exponential"
)

type methodInfo struct {
	weighted           bool
	withReplacement    bool
	permutationCapable bool
}

// methodTable records what each Method supports. Only methods whose
// output order is itself a uniformly random permutation of the drawn
// items are permutationCapable: Fisher-Yates, PIKK, and sample_by_index's
// ordinary swap-pop draw all produce one by construction. RandomPermutation
// never requests sample_by_index's fast mode, whose ascending output order
// is a function of index, not draw order. The reservoir algorithms (waterman_r, vitter_z) and
// the weighted algorithms are exact samplers but do not have that
// property and so are never offered for RandomPermutation.
var methodTable = map[Method]methodInfo{
	MethodFisherYates:   {permutationCapable: true},
	MethodPIKK:          {permutationCapable: true},
	MethodRecursive:     {},
	MethodWaterman:      {},
	MethodVitter:        {},
	MethodSampleByIndex: {withReplacement: true, permutationCapable: true},
	MethodElimination:   {weighted: true, withReplacement: true},
	MethodExponential:   {weighted: true},
}

// SampleOptions configures RandomSample.
type SampleOptions struct {
	Method  Method
	Replace bool
	Weights []float64

	// Fast requests sample_by_index's complement variant
	// (SampleByIndexFast) instead of its ordinary swap-pop draw. Ignored
	// by every other method and when Replace is set. When k > n-k a Fast
	// draw is not permutation-capable: its output order is index order,
	// not draw order.
	Fast bool
}

// RandomSample draws k items from pop according to opts.Method,
// returning the selection as a Result over pop's item type.
func RandomSample[T any](pop Population[T], k int, opts SampleOptions, src Source) (Result[T], error) {
	sam, err := dispatchMethod(pop.N(), k, opts, src)
	if err != nil {
		return Result[T]{}, err
	}
	return pop.resultFrom(sam), nil
}

func dispatchMethod(n, k int, opts SampleOptions, src Source) ([]int, error) {
	info, ok := methodTable[opts.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
	if opts.Replace && !info.withReplacement {
		return nil, fmt.Errorf("%w: %q does not support sampling with replacement", ErrMethodIncompatible, opts.Method)
	}
	if len(opts.Weights) > 0 && !info.weighted {
		return nil, fmt.Errorf("%w: %q does not accept weights", ErrMethodIncompatible, opts.Method)
	}
	if info.weighted && len(opts.Weights) == 0 {
		return nil, fmt.Errorf("%w: %q requires weights", ErrMethodIncompatible, opts.Method)
	}

	switch opts.Method {
	case MethodFisherYates:
		return FYKDSample(n, k, src)
	case MethodPIKK:
		return PIKK(n, k, src)
	case MethodRecursive:
		return RecursiveSample(n, k, src)
	case MethodWaterman:
		return AlgorithmR(n, k, src)
	case MethodVitter:
		return AlgorithmZ(n, k, src)
	case MethodSampleByIndex:
		if opts.Replace {
			return SampleByIndexWithReplacement(n, k, src)
		}
		if opts.Fast {
			return SampleByIndexFast(n, k, src)
		}
		return SampleByIndex(n, k, src)
	case MethodElimination:
		if opts.Replace {
			return EliminationSampleWithReplacement(n, k, opts.Weights, src)
		}
		return EliminationSample(n, k, opts.Weights, src)
	case MethodExponential:
		return ExponentialSample(n, k, opts.Weights, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// AllocationOptions configures RandomAllocation: the population is split
// into len(GroupSizes) disjoint groups, each group drawn from whatever of
// the population the earlier groups did not already claim.
type AllocationOptions struct {
	Method     Method
	GroupSizes []int
}

// RandomAllocation partitions pop into disjoint groups of the given
// sizes, each group an unweighted without-replacement sample of what
// remains after the prior groups were removed — the complement of
// RandomSample used to assign, e.g., audit strata or treatment arms.
func RandomAllocation[T any](pop Population[T], opts AllocationOptions, src Source) ([]Result[T], error) {
	total := 0
	for _, g := range opts.GroupSizes {
		total += g
	}
	if total > pop.N() {
		return nil, fmt.Errorf("%w: total allocation %d exceeds population %d", ErrSampleExceedsPopulation, total, pop.N())
	}

	pool := make([]int, pop.N())
	for i := range pool {
		pool[i] = i
	}

	// Draw the smallest group first, then the next, etc., regardless of
	// the order the caller listed them in; drawOrder maps draw order
	// back to the caller's original group index so the result slice is
	// still returned in the order GroupSizes was given.
	drawOrder := make([]int, len(opts.GroupSizes))
	for i := range drawOrder {
		drawOrder[i] = i
	}
	sort.SliceStable(drawOrder, func(a, b int) bool {
		return opts.GroupSizes[drawOrder[a]] < opts.GroupSizes[drawOrder[b]]
	})

	out := make([]Result[T], len(opts.GroupSizes))
	for _, gi := range drawOrder {
		size := opts.GroupSizes[gi]
		sam, err := dispatchMethod(len(pool), size, SampleOptions{Method: opts.Method}, src)
		if err != nil {
			return nil, err
		}
		chosen := make([]int, size)
		chosenSet := make(map[int]struct{}, size)
		for i, s := range sam {
			zi := pool[s-1]
			chosen[i] = zi
			chosenSet[s-1] = struct{}{}
		}
		out[gi] = pop.resultFromZeroBased(chosen)

		remaining := make([]int, 0, len(pool)-size)
		for i, p := range pool {
			if _, taken := chosenSet[i]; !taken {
				remaining = append(remaining, p)
			}
		}
		pool = remaining
	}
	return out, nil
}

// RandomPermutation returns a uniformly random ordering of all of
// pop's items, using one of the permutation-capable methods (Method
// zero-value resolves to Fisher-Yates).
func RandomPermutation[T any](pop Population[T], method Method, src Source) (Result[T], error) {
	if method == "" {
		method = MethodFisherYates
	}
	info, ok := methodTable[method]
	if !ok {
		return Result[T]{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if !info.permutationCapable {
		return Result[T]{}, fmt.Errorf("%w: %q does not produce a uniform permutation", ErrMethodIncompatible, method)
	}
	return RandomSample(pop, pop.N(), SampleOptions{Method: method}, src)
}
