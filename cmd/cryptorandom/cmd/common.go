package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/statlab/cryptorandom/internal/config"
	"github.com/statlab/cryptorandom/prng"
	"github.com/statlab/cryptorandom/sample"
)

// resolvedRun is the run parameters after reconciling --plan against
// the individual --seed/--population/--method flags: a plan file, when
// given, takes precedence over the flags it covers.
type resolvedRun struct {
	seed       prng.Seed
	population int
	method     sample.Method
	weights    []float64
	replace    bool
	groupSizes []int
}

func resolveRun() (*resolvedRun, error) {
	if planFile != "" {
		p, err := config.Load(planFile)
		if err != nil {
			return nil, err
		}
		method := p.Method
		if method == "" {
			method = methodFlag
		}
		return &resolvedRun{
			seed:       seedFromString(p.Seed),
			population: p.Population,
			method:     sample.Method(method),
			weights:    p.Weights,
			replace:    p.Replace,
			groupSizes: p.Groups,
		}, nil
	}
	if seedFlag == "" {
		return nil, fmt.Errorf("--seed or --plan is required")
	}
	if populationFlag <= 0 {
		return nil, fmt.Errorf("--population must be positive")
	}
	return &resolvedRun{
		seed:       seedFromString(seedFlag),
		population: populationFlag,
		method:     sample.Method(methodFlag),
	}, nil
}

// seedFromString accepts a decimal integer seed, falling back to a raw
// string seed for anything that doesn't parse as one.
func seedFromString(s string) prng.Seed {
	if v, ok := new(big.Int).SetString(s, 10); ok {
		return prng.SeedFromBigInt(v)
	}
	return prng.SeedFromString(s)
}

func newSource(seed prng.Seed) *sample.HashSource {
	return sample.NewHashSource(prng.New(seed))
}

func formatIndices(idx []int) string {
	out := ""
	for i, v := range idx {
		if i > 0 {
			out += " "
		}
		out += strconv.Itoa(v)
	}
	return out
}
