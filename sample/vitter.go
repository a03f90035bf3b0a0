package sample

import "math"

// AlgorithmZ draws k of {1, ..., n} without replacement using Vitter's
// reservoir Algorithm Z: the reservoir starts as {1, ..., k}, and for
// each subsequent candidate the number of records to SKIP before the
// next inclusion is drawn directly from its closed-form distribution,
// rather than tested one record at a time the way AlgorithmR does it.
// This turns an O(n) scan into an O(k log(n/k)) one for n >> k, at the
// cost of the bookkeeping in algorithmX/f/g/h/c below.
//
// The skip distribution has no closed-form inverse, so Z estimates it
// with a cheap approximation and then accepts or rejects that estimate
// with ratio tests (h/c, then f/g below); a rejected estimate is drawn
// again, and an estimate that overshoots the remaining population falls
// back to algorithmX, the exact but linear-cost skip procedure. For small reservoirs or
// early in the scan, the approximation's setup cost exceeds its
// payoff, so AlgorithmZ defers to algorithmX directly in that regime.
func AlgorithmZ(n, k int, src Source) ([]int, error) {
	if err := validatePopulation(n, k); err != nil {
		return nil, err
	}
	s := make([]int, k)
	for i := range s {
		s[i] = i + 1
	}
	if k == n {
		return s, nil
	}

	t := k // number of records already scanned
	for t < n {
		var skip int
		var err error
		if float64(k)*4 >= float64(t) {
			// Reservoir still large relative to what's been scanned:
			// the accelerated estimator isn't worth its own overhead.
			skip, err = algorithmX(n, k, t, src)
		} else {
			skip, err = algorithmZSkip(n, k, t, src)
		}
		if err != nil {
			return nil, err
		}
		t += skip + 1
		if t > n {
			break
		}
		draws, err := src.RandInt(1, int64(k)+1, 1)
		if err != nil {
			return nil, err
		}
		s[draws[0]-1] = t
	}
	return s, nil
}

// algorithmX computes the exact skip count before the next inclusion,
// one candidate record at a time, by walking the quotient
// (t+1-k)/(t+1) down against a single uniform draw.
func algorithmX(n, k, t int, src Source) (int, error) {
	u := src.Random(1)
	v := u[0]
	skip := 0
	tt := t
	quot := float64(tt+1-k) / float64(tt+1)
	for quot > v && tt < n {
		skip++
		tt++
		quot *= float64(tt+1-k) / float64(tt+1)
	}
	return skip, nil
}

// algorithmZSkip estimates the skip count via Vitter's W-estimator and
// accepts it through the h/c ratio test or, failing that, the f/g test,
// drawing a fresh estimate when both reject it; an estimate that
// overshoots the remaining population falls back to algorithmX.
func algorithmZSkip(n, k, t int, src Source) (int, error) {
	nReal := float64(n)
	kReal := float64(k)
	tReal := float64(t)

	for {
		u := src.Random(1)
		w := estimateW(kReal, tReal, nReal, u[0])
		if w >= nReal-tReal {
			// Estimate overshoots the remaining population (or is +Inf
			// for u == 0); defer to the exact procedure instead of
			// clamping a biased value.
			return algorithmX(n, k, t, src)
		}
		skip := int(w)

		term := tReal + 1
		numerHC := hFunc(term/(term-kReal+1), kReal)
		denomC := cFunc(tReal, nReal, kReal)

		u2 := src.Random(1)
		if u2[0] <= numerHC/denomC {
			return skip, nil
		}

		y := src.Random(1)
		top := fFunc(tReal+w, kReal, nReal)
		bot := gFunc(skip, kReal, tReal, nReal)
		if y[0] <= top/bot {
			return skip, nil
		}
		// Rejected: retry the estimate (Vitter's loop around step D2-D5).
	}
}

// estimateW draws Vitter's closed-form approximation to the skip
// count, used as a candidate before the acceptance test.
func estimateW(k, t, n, u float64) float64 {
	term := u * math.Pow((t+1-k)/(t+1), 2)
	return math.Floor(t * (math.Pow(term, -1.0/k) - 1))
}

// fFunc, gFunc, hFunc, and cFunc implement the acceptance-ratio test
// from Vitter's paper as ratios of consecutive terms rather than raw
// factorials or combinatorial counts, which overflow float64 for
// populations in the millions; each is a product of O(k) terms near 1.
func fFunc(x, k, n float64) float64 {
	p := 1.0
	for i := 0.0; i < k; i++ {
		p *= (x - i) / (n - i)
	}
	return p
}

func gFunc(skip int, k, t, n float64) float64 {
	s := float64(skip)
	return (k / (t + 1 + s)) * math.Pow((t+1+s)/(t+1), k)
}

func hFunc(ratio, k float64) float64 {
	return math.Pow(ratio, k)
}

func cFunc(t, n, k float64) float64 {
	return ((t + 1) / (t + 1 - k))
}
