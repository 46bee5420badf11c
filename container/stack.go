// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

// A Stack is a last in, first out container.
type Stack[E any] struct {
	elems []E
}

// Len returns the number of elements held by the stack.
func (s *Stack[E]) Len() int { return len(s.elems) }

// Empty returns whether the stack holds no elements.
func (s *Stack[E]) Empty() bool { return len(s.elems) == 0 }

// Push places v on top of the stack.
func (s *Stack[E]) Push(v E) { s.elems = append(s.elems, v) }

// Pop removes and returns the top element of the stack, or ErrEmpty if
// there is none.
func (s *Stack[E]) Pop() (E, error) {
	var zero E
	if len(s.elems) == 0 {
		return zero, ErrEmpty
	}
	v := s.elems[len(s.elems)-1]
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
	return v, nil
}

// Peek returns the top element of the stack without removing it, or
// ErrEmpty if there is none.
func (s *Stack[E]) Peek() (E, error) {
	if len(s.elems) == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return s.elems[len(s.elems)-1], nil
}
