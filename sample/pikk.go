package sample

import "sort"

// PIKK ("Permute Indices and Keep K") draws k of {1, ..., n} without
// replacement: draw a uniform for every index, then return the indices
// of the k smallest draws, 1-based. Deprecated by the reservoir and
// index-elimination algorithms for large n (it materializes all N
// uniforms) but kept because it also implements random_sort, the
// permutation form used by RandomPermutation.
func PIKK(n, k int, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	u := src.Random(n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return u[idx[a]] < u[idx[b]] })
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = idx[i] + 1
	}
	return out, nil
}
