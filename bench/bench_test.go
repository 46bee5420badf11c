// Copyright ©2026 The bíogo.order Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"testing"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	check "gopkg.in/check.v1"
)

// Tests
func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestSequence(c *check.C) {
	const n = 500
	for i, test := range []struct {
		dist   Distribution
		sorted bool
		first  int
	}{
		{Uniform, false, 0},
		{Ascending, true, 0},
		{Descending, false, n - 1},
	} {
		seq, err := test.dist.Sequence(n, rand.NewSource(1))
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d: %s", i, test.dist))
		c.Assert(len(seq), check.Equals, n)
		for j, v := range seq {
			if v < 0 || v > 10*n {
				c.Errorf("Test %d: %s[%d] = %d outside [0, %d]", i, test.dist, j, v, 10*n)
			}
		}
		c.Check(slices.IsSorted(seq), check.Equals, test.sorted, check.Commentf("Test %d: %s", i, test.dist))
		if test.dist != Uniform {
			c.Check(seq[0], check.Equals, test.first)
		}
	}
}

func (s *S) TestSequenceReproducible(c *check.C) {
	a, err := Uniform.Sequence(100, rand.NewSource(42))
	c.Assert(err, check.Equals, nil)
	b, err := Uniform.Sequence(100, rand.NewSource(42))
	c.Assert(err, check.Equals, nil)
	c.Check(a, check.DeepEquals, b)
}

func (s *S) TestSequenceDescending(c *check.C) {
	seq, err := Descending.Sequence(10, nil)
	c.Assert(err, check.Equals, nil)
	c.Check(seq, check.DeepEquals, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
}

func (s *S) TestSequenceErrors(c *check.C) {
	_, err := Distribution("gaussian").Sequence(10, nil)
	c.Check(err, check.ErrorMatches, `bench: unknown distribution "gaussian"`)
	_, err = Uniform.Sequence(-1, nil)
	c.Check(err, check.ErrorMatches, `bench: negative sequence length -1`)
}

func (s *S) TestSequenceEmpty(c *check.C) {
	for _, d := range Distributions() {
		seq, err := d.Sequence(0, rand.NewSource(1))
		c.Check(err, check.Equals, nil)
		c.Check(len(seq), check.Equals, 0, check.Commentf("%s", d))
	}
}

func (s *S) TestCompare(c *check.C) {
	sizes := []int{100, 250}
	results, err := Compare(sizes, 2, rand.NewSource(1))
	c.Assert(err, check.Equals, nil)
	c.Assert(len(results), check.Equals, len(sizes)*len(Distributions()))
	i := 0
	for _, n := range sizes {
		for _, d := range Distributions() {
			r := results[i]
			c.Check(r.N, check.Equals, n, check.Commentf("result %d", i))
			c.Check(r.Distribution, check.Equals, d, check.Commentf("result %d", i))
			c.Check(r.RandomizedMs >= 0, check.Equals, true)
			c.Check(r.DeterministicMs >= 0, check.Equals, true)
			i++
		}
	}
}

func (s *S) TestCompareErrors(c *check.C) {
	_, err := Compare([]int{100}, 0, nil)
	c.Check(err, check.ErrorMatches, `bench: trials must be positive: 0`)
	_, err = Compare([]int{1}, 1, nil)
	c.Check(err, check.ErrorMatches, `bench: size 1 too small to select a median`)
}
