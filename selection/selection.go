// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection implements order statistic selection over sequences
// of ordered elements.
//
// Two selection functions are provided: Randomized, a quickselect with
// uniformly random pivots and expected linear running time, and
// Deterministic, a median of medians select with worst-case linear
// running time. Both report the same element for the same sequence and
// rank.
package selection

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	// fallbackSize is the length at or below which Deterministic sorts
	// directly. It must not be less than groupSize so the group median
	// recursion always bottoms out in the sorting path.
	fallbackSize = 10

	// groupSize is the length of the element groups whose medians feed
	// the deterministic pivot choice.
	groupSize = 5
)

// A RangeError is returned when a requested rank falls outside the valid
// range [1, n] for a sequence of length n.
type RangeError struct {
	K int // Requested 1-based rank.
	N int // Length of the queried sequence.
}

func (e RangeError) Error() string {
	return fmt.Sprintf("selection: rank %d out of range for length %d", e.K, e.N)
}

// Partition splits seq into the elements less than, equal to and greater
// than pivot, preserving relative order within each part. seq is not
// modified. The three parts always cover seq exactly; the equal part is
// never folded into the others, so a working set holding duplicates of
// the pivot shrinks at every level of selection.
func Partition[E constraints.Ordered](seq []E, pivot E) (less, equal, greater []E) {
	for _, v := range seq {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}
	return less, equal, greater
}

// Randomized returns the element of seq with 1-based rank k, that is the
// element that would be at index k-1 if seq were sorted, choosing a
// uniformly random pivot at each level. The expected running time is
// linear in len(seq); seq itself is never modified. A RangeError is
// returned if k is outside [1, len(seq)].
//
// Pivot indices are drawn from src, or from the shared global generator
// when src is nil. Callers needing reproducible pivot sequences or
// making concurrent calls should pass an owned Source.
func Randomized[E constraints.Ordered](seq []E, k int, src rand.Source) (E, error) {
	if k < 1 || k > len(seq) {
		var zero E
		return zero, RangeError{K: k, N: len(seq)}
	}
	intn := rand.Intn
	if src != nil {
		intn = rand.New(src).Intn
	}
	work := append([]E(nil), seq...)
	for {
		if len(work) == 1 {
			return work[0], nil
		}
		pivot := work[intn(len(work))]
		less, equal, greater := Partition(work, pivot)
		switch {
		case k <= len(less):
			work = less
		case k <= len(less)+len(equal):
			return pivot, nil
		default:
			k -= len(less) + len(equal)
			work = greater
		}
	}
}

// Deterministic returns the element of seq with 1-based rank k, choosing
// each pivot as the median of per-group medians. The worst-case running
// time is linear in len(seq); seq itself is never modified. A RangeError
// is returned if k is outside [1, len(seq)].
func Deterministic[E constraints.Ordered](seq []E, k int) (E, error) {
	if k < 1 || k > len(seq) {
		var zero E
		return zero, RangeError{K: k, N: len(seq)}
	}
	return dSelect(append([]E(nil), seq...), k), nil
}

// dSelect selects rank k from work, which it owns and may permute.
// The descent is a loop rather than a tail call so the stack stays flat
// on large inputs; only the pivot selection recurses, to logarithmic
// depth.
func dSelect[E constraints.Ordered](work []E, k int) E {
	for {
		if len(work) <= fallbackSize {
			slices.Sort(work)
			return work[k-1]
		}
		pivot := medianOfMedians(work)
		less, equal, greater := Partition(work, pivot)
		switch {
		case k <= len(less):
			work = less
		case k <= len(less)+len(equal):
			return pivot
		default:
			k -= len(less) + len(equal)
			work = greater
		}
	}
}

// medianOfMedians returns the median of the medians of consecutive
// groups of groupSize elements of work, permuting work in the process.
// At least roughly 30% of the elements of work are less than or equal to
// the returned value and at least roughly 30% are greater than or equal
// to it, which is what bounds the worst case of dSelect.
func medianOfMedians[E constraints.Ordered](work []E) E {
	medians := make([]E, 0, (len(work)+groupSize-1)/groupSize)
	for i := 0; i < len(work); i += groupSize {
		g := work[i:min(i+groupSize, len(work))]
		slices.Sort(g)
		medians = append(medians, g[len(g)/2])
	}
	// The upper middle rank for an odd number of groups and the lower
	// middle for an even number. The shrinkage guarantee depends on this
	// exact choice.
	m := len(medians)
	k := m / 2
	if m%2 != 0 {
		k++
	}
	return dSelect(medians, k)
}

func min(a, b int) int {
	if a > b {
		return b
	}
	return a
}
