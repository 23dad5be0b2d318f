// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Shape holds the extent of each axis, outermost first.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the number of elements in an array of this shape.
// The empty shape has size 1.
func (s Shape) Size() int {
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

func (s Shape) Equal(t Shape) bool {
	return slices.Equal(s, t)
}

// Agrees reports whether the shorter of s and t is a suffix of the longer:
// the trailing axes must match one for one.
func (s Shape) Agrees(t Shape) bool {
	if len(s) > len(t) {
		s, t = t, s
	}
	return slices.Equal(s, t[len(t)-len(s):])
}

// FlatIndex returns the position in row-major order of the element at
// index. It reports false if index has the wrong length or is out of range.
func (s Shape) FlatIndex(index []int) (int, bool) {
	if len(index) != len(s) {
		return 0, false
	}
	acc := 0
	for i, x := range index {
		if x < 0 || x >= s[i] {
			return 0, false
		}
		acc = acc*s[i] + x
	}
	return acc, true
}

// Indices returns an iterator over every index of the shape, in row-major
// order, like an odometer whose last wheel turns fastest. The iterator
// reuses its slice between steps.
func (s Shape) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if s.Size() == 0 {
			return
		}
		index := make([]int, len(s))
		for {
			if !yield(index) {
				return
			}
			axis := len(s) - 1
			for ; axis >= 0; axis-- {
				index[axis]++
				if index[axis] < s[axis] {
					break
				}
				index[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}

func (s Shape) String() string {
	strs := make([]string, len(s))
	for i, e := range s {
		strs[i] = strconv.Itoa(e)
	}
	return strings.Join(strs, " ")
}

func (s Shape) clone() Shape {
	return slices.Clone(s)
}
