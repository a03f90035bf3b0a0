package sample

// EliminationSample draws k of {1, ..., n} without replacement with
// probabilities proportional to the supplied weights, by repeatedly
// drawing one item from the weights still in play and removing it
// (probability-proportional-to-size sampling, elimination form). Each
// draw renormalizes over what remains, so this is O(k*n); it is exact
// but not meant for large k against a large population — weighted
// sampling under that regime should prefer ExponentialSample.
func EliminationSample(n, k int, weights []float64, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	if len(weights) != n {
		return nil, ErrWeightLengthMismatch
	}

	remaining := append([]float64(nil), weights...)
	alive := make([]int, n)
	for i := range alive {
		alive[i] = i + 1
	}

	out := make([]int, 0, k)
	for draw := 0; draw < k; draw++ {
		cum := cumulativeNormalized(remaining)
		u := src.Random(1)
		pos := searchSorted(cum, u[0])

		out = append(out, alive[pos])
		remaining = append(remaining[:pos], remaining[pos+1:]...)
		alive = append(alive[:pos], alive[pos+1:]...)
	}
	return out, nil
}

// EliminationSampleWithReplacement draws k of {1, ..., n} with
// replacement, probabilities proportional to the supplied weights: the
// normalized cumulative sum of w is computed once, and each of the k
// draws independently looks up a fresh uniform against that same fixed
// distribution (no renormalization, unlike the without-replacement
// form — nothing is ever removed from the population).
func EliminationSampleWithReplacement(n, k int, weights []float64, src Source) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidPopulation
	}
	if k < 0 {
		return nil, ErrInvalidPopulation
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	if len(weights) != n {
		return nil, ErrWeightLengthMismatch
	}

	cum := cumulativeNormalized(weights)
	u := src.Random(k)
	out := make([]int, k)
	for i := range out {
		out[i] = searchSorted(cum, u[i]) + 1
	}
	return out, nil
}

// cumulativeNormalized returns the cumulative sum of w, normalized so
// the final entry is 1.
func cumulativeNormalized(w []float64) []float64 {
	cum := make([]float64, len(w))
	total := 0.0
	for i, x := range w {
		total += x
		cum[i] = total
	}
	if total > 0 {
		for i := range cum {
			cum[i] /= total
		}
	}
	return cum
}

// searchSorted returns the first index i such that cum[i] >= v,
// matching numpy's searchsorted(side="left") rather than a strict
// greater-than test, so that a draw landing exactly on a cumulative
// boundary selects the item that boundary belongs to rather than the
// next one.
func searchSorted(cum []float64, v float64) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] >= v {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
