package sample

// Population is the sampling frame passed to the dispatchers: either a
// bare size N (built with FromSize, interpreted as {0, ..., N-1}) or a
// concrete, ordered slice of items (built with FromItems). The internal
// algorithms always operate on 1-based indices over {1, ..., N}; the
// dispatchers subtract 1 before indexing back into the population.
type Population[T any] struct {
	n     int
	items []T
}

// FromSize describes a population as the first n non-negative
// integers, {0, ..., n-1}.
func FromSize(n int) Population[int] {
	return Population[int]{n: n}
}

// FromItems describes a population as a concrete, ordered slice of
// items.
func FromItems[T any](items []T) Population[T] {
	return Population[T]{n: len(items), items: items}
}

// N returns the population size.
func (p Population[T]) N() int { return p.n }

// Result is what the dispatchers return: the 0-based indices selected
// from the population, in draw order, and the corresponding items.
type Result[T any] struct {
	Indices []int
	Items   []T
}

// resultFrom converts a 1-based index sample, as every algorithm in
// this package returns it, into a Result.
func (p Population[T]) resultFrom(sam []int) Result[T] {
	idx := make([]int, len(sam))
	for i, s := range sam {
		idx[i] = s - 1
	}
	return p.resultFromZeroBased(idx)
}

// resultFromZeroBased builds a Result from already-0-based indices,
// used by RandomAllocation where pool bookkeeping is 0-based.
func (p Population[T]) resultFromZeroBased(idx []int) Result[T] {
	items := make([]T, len(idx))
	for i, zi := range idx {
		if p.items != nil {
			items[i] = p.items[zi]
		} else {
			// Only reachable when T == int: FromSize is the sole
			// constructor that leaves items nil.
			items[i] = any(zi).(T)
		}
	}
	return Result[T]{Indices: idx, Items: items}
}
