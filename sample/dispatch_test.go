package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSampleOverItems(t *testing.T) {
	pop := FromItems([]string{"a", "b", "c", "d", "e"})
	result, err := RandomSample(pop, 2, SampleOptions{Method: MethodFisherYates}, newFixtureSource())
	require.NoError(t, err)
	assert.Len(t, result.Indices, 2)
	assert.Len(t, result.Items, 2)
	for i, idx := range result.Indices {
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}[idx], result.Items[i])
	}
}

func TestRandomSampleUnknownMethod(t *testing.T) {
	pop := FromSize(10)
	_, err := RandomSample(pop, 2, SampleOptions{Method: Method("not-a-method")}, newFixtureSource())
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestRandomSampleReplaceRejectedByExactMethods(t *testing.T) {
	pop := FromSize(10)
	_, err := RandomSample(pop, 2, SampleOptions{Method: MethodFisherYates, Replace: true}, newFixtureSource())
	assert.ErrorIs(t, err, ErrMethodIncompatible)
}

func TestRandomSampleWeightsRequiredForWeightedMethod(t *testing.T) {
	pop := FromSize(10)
	_, err := RandomSample(pop, 2, SampleOptions{Method: MethodElimination}, newFixtureSource())
	assert.ErrorIs(t, err, ErrMethodIncompatible)
}

func TestRandomSampleWeightsRejectedForUnweightedMethod(t *testing.T) {
	pop := FromSize(5)
	_, err := RandomSample(pop, 2, SampleOptions{Method: MethodFisherYates, Weights: []float64{1, 1, 1, 1, 1}}, newFixtureSource())
	assert.ErrorIs(t, err, ErrMethodIncompatible)
}

func TestRandomAllocationPartitionsWithoutOverlap(t *testing.T) {
	pop := FromSize(20)
	results, err := RandomAllocation(pop, AllocationOptions{
		Method:     MethodFisherYates,
		GroupSizes: []int{5, 5, 5},
	}, newFixtureSource())
	require.NoError(t, err)
	require.Len(t, results, 3)

	seen := make(map[int]bool)
	for _, r := range results {
		assert.Len(t, r.Indices, 5)
		for _, idx := range r.Indices {
			assert.False(t, seen[idx], "index %d assigned to more than one group", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 15)
}

func TestRandomAllocationRejectsOversizedTotal(t *testing.T) {
	pop := FromSize(10)
	_, err := RandomAllocation(pop, AllocationOptions{
		Method:     MethodFisherYates,
		GroupSizes: []int{6, 6},
	}, newFixtureSource())
	assert.ErrorIs(t, err, ErrSampleExceedsPopulation)
}

func TestRandomPermutationCoversWholePopulation(t *testing.T) {
	pop := FromSize(8)
	result, err := RandomPermutation(pop, MethodFisherYates, newFixtureSource())
	require.NoError(t, err)
	assert.Len(t, result.Indices, 8)

	seen := make(map[int]bool, 8)
	for _, idx := range result.Indices {
		seen[idx] = true
	}
	assert.Len(t, seen, 8)
}

func TestRandomPermutationRejectsNonPermutationCapableMethod(t *testing.T) {
	pop := FromSize(8)
	_, err := RandomPermutation(pop, MethodVitter, newFixtureSource())
	assert.ErrorIs(t, err, ErrMethodIncompatible)
}

func TestRandomPermutationDefaultsToFisherYates(t *testing.T) {
	pop := FromSize(6)
	_, err := RandomPermutation(pop, "", newFixtureSource())
	assert.NoError(t, err)
}
