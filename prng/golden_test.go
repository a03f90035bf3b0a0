package prng

import (
	"encoding/json"
	"math/big"
	"os"
	"testing"
)

type randIntTruncVector struct {
	Name  string  `json:"name"`
	Seed  string  `json:"seed"`
	Low   int64   `json:"low"`
	High  int64   `json:"high"`
	Draws int     `json:"draws"`
	Want  []int64 `json:"want"`
}

// TestRandIntTruncGoldenVectors replays the legacy randint_trunc vectors
// checked into testdata/, the same way TestRandIntTruncLegacyVector
// pins S3 inline — kept as a separate JSON-driven fixture so further
// vectors can be added without touching Go source.
func TestRandIntTruncGoldenVectors(t *testing.T) {
	raw, err := os.ReadFile("../testdata/randint_trunc_vectors.json")
	if err != nil {
		t.Fatalf("reading golden vectors: %v", err)
	}
	var vectors []randIntTruncVector
	if err := json.Unmarshal(raw, &vectors); err != nil {
		t.Fatalf("parsing golden vectors: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("no golden vectors loaded")
	}

	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			seed := bigFromDecimal(t, v.Seed)
			p := New(SeedFromBigInt(seed))
			got, err := p.RandIntTruncN(big.NewInt(v.Low), big.NewInt(v.High), v.Draws)
			if err != nil {
				t.Fatalf("RandIntTruncN: %v", err)
			}
			if len(got) != len(v.Want) {
				t.Fatalf("got %d draws, want %d", len(got), len(v.Want))
			}
			for i, w := range v.Want {
				if got[i].Int64() != w {
					t.Fatalf("draw %d: got %s, want %d", i, got[i], w)
				}
			}
		})
	}
}
