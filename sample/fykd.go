package sample

// FYKDSample draws k of {1, ..., n} without replacement by running a
// partial Fisher-Yates-Knuth-Durstenfeld shuffle: for i = 0..k-1, swap
// position i with a uniformly chosen position J in [i, n). The first k
// positions, in swap order, are the sample.
func FYKDSample(n, k int, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	a := make([]int, n)
	for i := range a {
		a[i] = i + 1
	}
	u := src.Random(k)
	for i := 0; i < k; i++ {
		j := i + int(u[i]*float64(n-i))
		a[i], a[j] = a[j], a[i]
	}
	return append([]int(nil), a[:k]...), nil
}
