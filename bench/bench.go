// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench generates input sequences under named distributions and
// times the selection algorithms against each other on them.
package bench

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/biogo/order/selection"
)

// A Distribution names a shape of generated input sequence.
type Distribution string

const (
	Uniform    Distribution = "random"  // Uniformly random values in [0, 10n].
	Ascending  Distribution = "sorted"  // The increasing run 0..n-1.
	Descending Distribution = "reverse" // The decreasing run n-1..0.
)

// Distributions returns the supported distributions in reporting order.
func Distributions() []Distribution {
	return []Distribution{Uniform, Ascending, Descending}
}

// Sequence returns a sequence of n values drawn from the distribution d.
// Uniform values are drawn from src, or from the shared global generator
// when src is nil.
func (d Distribution) Sequence(n int, src rand.Source) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("bench: negative sequence length %d", n)
	}
	seq := make([]int, n)
	switch d {
	case Uniform:
		intn := rand.Intn
		if src != nil {
			intn = rand.New(src).Intn
		}
		for i := range seq {
			seq[i] = intn(10*n + 1)
		}
	case Ascending:
		for i := range seq {
			seq[i] = i
		}
	case Descending:
		for i := range seq {
			seq[i] = n - 1 - i
		}
	default:
		return nil, errors.Errorf("bench: unknown distribution %q", d)
	}
	return seq, nil
}

// A Result records the observed timing of both selection algorithms for
// one size and distribution combination.
type Result struct {
	N               int          `json:"n"`
	Distribution    Distribution `json:"distribution"`
	RandomizedMs    float64      `json:"randomized_time_ms"`
	DeterministicMs float64      `json:"deterministic_time_ms"`
}

// Compare times selection of the median rank, k = n/2, over every size
// and distribution combination. One sequence is generated per
// combination and both algorithms are run trials times on it; the
// recorded figures are mean wall-clock milliseconds per run. Randomized
// pivots and Uniform sequences are drawn from src, or from the shared
// global generator when src is nil. Sizes must be at least 2 so the
// median rank is selectable.
func Compare(sizes []int, trials int, src rand.Source) ([]Result, error) {
	if trials < 1 {
		return nil, errors.Errorf("bench: trials must be positive: %d", trials)
	}
	var results []Result
	for _, n := range sizes {
		if n < 2 {
			return nil, errors.Errorf("bench: size %d too small to select a median", n)
		}
		for _, d := range Distributions() {
			seq, err := d.Sequence(n, src)
			if err != nil {
				return nil, errors.Wrapf(err, "generating %d elements", n)
			}
			k := n / 2
			var rTotal, dTotal time.Duration
			for t := 0; t < trials; t++ {
				start := time.Now()
				if _, err := selection.Randomized(seq, k, src); err != nil {
					return nil, errors.Wrapf(err, "randomized selection n=%d %s", n, d)
				}
				mid := time.Now()
				if _, err := selection.Deterministic(seq, k); err != nil {
					return nil, errors.Wrapf(err, "deterministic selection n=%d %s", n, d)
				}
				rTotal += mid.Sub(start)
				dTotal += time.Since(mid)
			}
			results = append(results, Result{
				N:               n,
				Distribution:    d,
				RandomizedMs:    rTotal.Seconds() * 1e3 / float64(trials),
				DeterministicMs: dTotal.Seconds() * 1e3 / float64(trials),
			})
		}
	}
	return results, nil
}
