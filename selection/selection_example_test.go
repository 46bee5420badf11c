// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection_test

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/biogo/order/selection"
)

func ExampleRandomized() {
	seq := []int{5, 3, 8, 4, 2}
	v, err := selection.Randomized(seq, 3, rand.NewSource(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output:
	// 4
}

func ExampleDeterministic() {
	seq := []float64{0.5, 2.5, -1, 3, 0.5}
	median, err := selection.Deterministic(seq, (len(seq)+1)/2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(median)
	// Output:
	// 0.5
}

func ExampleDeterministic_rangeError() {
	_, err := selection.Deterministic([]int{2, 2, 1, 1, 3}, 0)
	fmt.Println(err)
	// Output:
	// selection: rank 0 out of range for length 5
}
