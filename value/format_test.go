// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"testing"

	"robpike.io/rho/config"
)

func TestSprint(t *testing.T) {
	cube, _ := Iota(Shape{2, 2, 2})
	hyper, _ := Iota(Shape{2, 2, 1, 2})
	tests := []struct {
		noun Noun
		want string
	}{
		{NewAtom(true), "1"},
		{NewAtom[int64](-7), "_7"},
		{NewAtom(2.5), "2.5"},
		{NewAtom(-0.5), "_0.5"},
		{NewAtom(math.Inf(1)), "_"},
		{NewAtom(math.Inf(-1)), "__"},
		{Vector(true, false), "1 0"},
		{Vector[int64](1, -2, 3), "1 _2 3"},
		{Vector[int64](), ""},
		{MustArray(Shape{2, 3}, []int64{0, 1, 2, 3, 4, 5}), "0 1 2\n3 4 5"},
		{MustArray(Shape{2, 2}, []int64{1, -10, 100, 2}), "  1 _10\n100   2"},
		{cube, "0 1\n2 3\n\n4 5\n6 7"},
		{hyper, "0 1\n\n2 3\n\n\n4 5\n\n6 7"},
		{MustArray(Shape{0, 3}, []int64{}), ""},
	}
	conf := new(config.Config)
	for _, test := range tests {
		if got := Sprint(conf, test.noun); got != test.want {
			t.Errorf("Sprint(%#v) = %q, want %q", test.noun, got, test.want)
		}
	}
}

func TestSprintFormat(t *testing.T) {
	conf := new(config.Config)
	conf.SetFormat("%.2f")
	if got, want := Sprint(conf, Vector(0.5, -1.0/3)), "0.50 _0.33"; got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
	// Integers ignore the format.
	if got, want := Sprint(conf, NewAtom[int64](3)), "3"; got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}

func TestString(t *testing.T) {
	a := MustArray(Shape{2, 2}, []int64{1, 2, 3, 4})
	if got, want := a.String(), "(1 2; 3 4)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
