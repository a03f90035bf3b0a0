package sample

import "testing"

func TestFYKDSampleFixtureVector(t *testing.T) {
	got, err := FYKDSample(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2}
	if !equalInts(got, want) {
		t.Fatalf("FYKDSample(5,2) = %v, want %v", got, want)
	}
}

func TestPIKKFixtureVector(t *testing.T) {
	got, err := PIKK(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2}
	if !equalInts(got, want) {
		t.Fatalf("PIKK(5,2) = %v, want %v", got, want)
	}
}

func checkValidSample(t *testing.T, name string, s []int, n, k int) {
	t.Helper()
	if len(s) != k {
		t.Fatalf("%s: len = %d, want %d", name, len(s), k)
	}
	seen := make(map[int]bool, k)
	for _, v := range s {
		if v < 1 || v > n {
			t.Fatalf("%s: value %d out of range [1,%d]", name, v, n)
		}
		if seen[v] {
			t.Fatalf("%s: duplicate value %d in without-replacement sample", name, v)
		}
		seen[v] = true
	}
}

func TestRecursiveSampleFixtureVector(t *testing.T) {
	got, err := RecursiveSample(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 3}
	if !equalInts(got, want) {
		t.Fatalf("RecursiveSample(5,2) = %v, want %v", got, want)
	}
}

func TestAlgorithmRFixtureVector(t *testing.T) {
	got, err := AlgorithmR(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 3}
	if !equalInts(got, want) {
		t.Fatalf("AlgorithmR(5,2) = %v, want %v", got, want)
	}
}

func TestAlgorithmZValid(t *testing.T) {
	s, err := AlgorithmZ(500, 11, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "AlgorithmZ", s, 500, 11)
}

func TestAlgorithmZSmallPopulation(t *testing.T) {
	s, err := AlgorithmZ(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "AlgorithmZ", s, 5, 2)
}

func TestAlgorithmZFullPopulationIsIdentity(t *testing.T) {
	s, err := AlgorithmZ(6, 6, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "AlgorithmZ", s, 6, 6)
	if want := []int{1, 2, 3, 4, 5, 6}; !equalInts(s, want) {
		t.Fatalf("AlgorithmZ(6,6) = %v, want %v", s, want)
	}
}

func TestSampleByIndexFixtureVector(t *testing.T) {
	got, err := SampleByIndex(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 3}
	if !equalInts(got, want) {
		t.Fatalf("SampleByIndex(5,2) = %v, want %v", got, want)
	}
}

// SampleByIndexFast only diverges from SampleByIndex when k > n-k, where
// it draws the n-k complement instead and returns the set difference in
// ascending order; for k <= n-k it's the same draw as SampleByIndex.
func TestSampleByIndexFastMatchesSampleByIndexBelowHalf(t *testing.T) {
	got, err := SampleByIndexFast(5, 2, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 3}
	if !equalInts(got, want) {
		t.Fatalf("SampleByIndexFast(5,2) = %v, want %v", got, want)
	}
}

func TestSampleByIndexFastComplementAboveHalf(t *testing.T) {
	s, err := SampleByIndexFast(5, 4, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "SampleByIndexFast", s, 5, 4)
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("SampleByIndexFast complement not ascending: %v", s)
		}
	}
}

func TestSampleByIndexWithReplacementAllowsDuplicates(t *testing.T) {
	s, err := SampleByIndexWithReplacement(2, 20, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 20 {
		t.Fatalf("len = %d, want 20", len(s))
	}
	for _, v := range s {
		if v < 1 || v > 2 {
			t.Fatalf("value %d out of range [1,2]", v)
		}
	}
}

func TestEliminationSampleRespectsZeroWeight(t *testing.T) {
	weights := []float64{0, 1, 1, 1, 1}
	s, err := EliminationSample(5, 3, weights, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "EliminationSample", s, 5, 3)
	for _, v := range s {
		if v == 1 {
			t.Fatalf("EliminationSample drew index 1 despite zero weight: %v", s)
		}
	}
}

func TestExponentialSampleRespectsZeroWeight(t *testing.T) {
	weights := []float64{0, 1, 1, 1, 1}
	s, err := ExponentialSample(5, 3, weights, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	checkValidSample(t, "ExponentialSample", s, 5, 3)
	for _, v := range s {
		if v == 1 {
			t.Fatalf("ExponentialSample drew index 1 despite zero weight: %v", s)
		}
	}
}

func TestEliminationSampleWithReplacementAllowsDuplicates(t *testing.T) {
	weights := []float64{1, 1}
	s, err := EliminationSampleWithReplacement(2, 20, weights, newFixtureSource())
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 20 {
		t.Fatalf("len = %d, want 20", len(s))
	}
	for _, v := range s {
		if v < 1 || v > 2 {
			t.Fatalf("value %d out of range [1,2]", v)
		}
	}
}

func TestWeightLengthMismatchRejected(t *testing.T) {
	_, err := EliminationSample(5, 2, []float64{1, 1}, newFixtureSource())
	if err == nil {
		t.Fatal("expected error for mismatched weight length")
	}
}

func TestNegativeWeightRejected(t *testing.T) {
	_, err := ExponentialSample(3, 1, []float64{1, -1, 1}, newFixtureSource())
	if err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
