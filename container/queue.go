// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

// A Queue is a first in, first out container. Dequeued elements are
// dropped lazily by advancing a head index; the backing slice is
// compacted once the head has consumed more than half of it, keeping
// both operations amortized constant time without unbounded growth.
type Queue[E any] struct {
	elems []E
	head  int
}

// Len returns the number of elements held by the queue.
func (q *Queue[E]) Len() int { return len(q.elems) - q.head }

// Empty returns whether the queue holds no elements.
func (q *Queue[E]) Empty() bool { return q.Len() == 0 }

// Enqueue places v at the back of the queue.
func (q *Queue[E]) Enqueue(v E) { q.elems = append(q.elems, v) }

// Dequeue removes and returns the front element of the queue, or
// ErrEmpty if there is none.
func (q *Queue[E]) Dequeue() (E, error) {
	var zero E
	if q.head >= len(q.elems) {
		return zero, ErrEmpty
	}
	v := q.elems[q.head]
	q.elems[q.head] = zero
	q.head++
	if q.head > len(q.elems)/2 {
		rest := make([]E, len(q.elems)-q.head)
		copy(rest, q.elems[q.head:])
		q.elems = rest
		q.head = 0
	}
	return v, nil
}

// Peek returns the front element of the queue without removing it, or
// ErrEmpty if there is none.
func (q *Queue[E]) Peek() (E, error) {
	if q.head >= len(q.elems) {
		var zero E
		return zero, ErrEmpty
	}
	return q.elems[q.head], nil
}
