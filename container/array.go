// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

// initialCap is the capacity given to an Array's backing buffer on first
// insertion and the floor below which shrinking stops.
const initialCap = 16

// An Array is a dynamic array. The backing buffer doubles when an
// insertion finds it full and halves when a deletion leaves it no more
// than a quarter full, so a long run of insertions or deletions costs
// amortized constant time per element beyond the shifting.
type Array[E any] struct {
	data []E
	n    int
}

// Len returns the number of elements held by the array.
func (a *Array[E]) Len() int { return a.n }

// Insert places v at index i, shifting subsequent elements rightward.
// Inserting at index Len() appends. If i is outside [0, Len()] an
// ErrOutOfRange is returned.
func (a *Array[E]) Insert(i int, v E) error {
	if i < 0 || i > a.n {
		return ErrOutOfRange
	}
	switch {
	case a.data == nil:
		a.data = make([]E, initialCap)
	case a.n == len(a.data):
		a.resize(2 * len(a.data))
	}
	for j := a.n; j > i; j-- {
		a.data[j] = a.data[j-1]
	}
	a.data[i] = v
	a.n++
	return nil
}

// Delete removes and returns the element at index i, shifting subsequent
// elements leftward. If i is outside [0, Len()) an ErrOutOfRange is
// returned.
func (a *Array[E]) Delete(i int) (E, error) {
	var zero E
	if i < 0 || i >= a.n {
		return zero, ErrOutOfRange
	}
	v := a.data[i]
	for j := i; j < a.n-1; j++ {
		a.data[j] = a.data[j+1]
	}
	a.data[a.n-1] = zero
	a.n--
	if 0 < a.n && a.n <= len(a.data)/4 && len(a.data) > initialCap {
		a.resize(len(a.data) / 2)
	}
	return v, nil
}

// At returns the element at index i. If i is outside [0, Len()) an
// ErrOutOfRange is returned.
func (a *Array[E]) At(i int) (E, error) {
	if i < 0 || i >= a.n {
		var zero E
		return zero, ErrOutOfRange
	}
	return a.data[i], nil
}

func (a *Array[E]) resize(cap int) {
	data := make([]E, cap)
	copy(data, a.data[:a.n])
	a.data = data
}
