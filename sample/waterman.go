package sample

// AlgorithmR (Waterman's Algorithm R) draws k of {1, ..., n} without
// replacement in a single reservoir pass: fill the reservoir with
// {1, ..., k}, then for every subsequent item t = k+1..n, draw i
// uniform in [1, t] and, if i falls within the reservoir, overwrite
// position i with t. Unlike the shuffle- and sort-based algorithms, the
// output order does not randomize the sample — it reflects reservoir
// position, not draw order.
func AlgorithmR(n, k int, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	s := make([]int, k)
	for i := range s {
		s[i] = i + 1
	}
	for t := k + 1; t <= n; t++ {
		draws, err := src.RandInt(1, int64(t)+1, 1)
		if err != nil {
			return nil, err
		}
		i := int(draws[0])
		if i <= k {
			s[i-1] = t
		}
	}
	return s, nil
}
