// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// UnaryFn is the monadic form of a verb.
type UnaryFn func(w Noun) (Noun, error)

// BinaryFn is the dyadic form of a verb. By APL convention the left
// operand is called a (alpha) and the right w (omega).
type BinaryFn func(a, w Noun) (Noun, error)

// Verb is a named operation with an optional monadic and an optional dyadic form.
type Verb struct {
	Name   string
	Unary  UnaryFn
	Binary BinaryFn
}

// Registry maps verb names to their definitions.
// It is not modified after NewRegistry returns.
type Registry struct {
	verbs map[string]Verb
}

// NewRegistry returns a registry holding the predefined verbs.
func NewRegistry() *Registry {
	r := &Registry{verbs: make(map[string]Verb)}
	for _, v := range []Verb{
		{"+", conjugate, binaryAdd},
		{"-", unaryNegate, binarySubtract},
		{"*", unarySignum, binaryMultiply},
		{"%", unaryReciprocal, binaryDivide},
		{"=", nil, binaryEqual},
		{"*.", nil, binaryAnd},
		{"i.", unaryIota, nil},
		{"$", unaryShape, nil},
		{"]", same, right},
		{"[", same, left},
	} {
		r.verbs[v.Name] = v
	}
	return r
}

// Lookup returns the verb with the given name.
func (r *Registry) Lookup(name string) (Verb, bool) {
	v, ok := r.verbs[name]
	return v, ok
}

// Names returns the names of the verbs in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Unary applies the monadic form of the named verb to w.
func (r *Registry) Unary(name string, w Noun) (Noun, error) {
	v, ok := r.verbs[name]
	if !ok || v.Unary == nil {
		return nil, &VerbError{Name: name, Arity: Monadic}
	}
	z, err := v.Unary(w)
	if err != nil {
		return nil, errors.Wrapf(err, "monad %s", name)
	}
	return z, nil
}

// Binary applies the dyadic form of the named verb to a and w.
func (r *Registry) Binary(name string, a, w Noun) (Noun, error) {
	v, ok := r.verbs[name]
	if !ok || v.Binary == nil {
		return nil, &VerbError{Name: name, Arity: Dyadic}
	}
	z, err := v.Binary(a, w)
	if err != nil {
		return nil, errors.Wrapf(err, "dyad %s", name)
	}
	return z, nil
}

type number interface {
	constraints.Integer | constraints.Float
}

func add[T number](x, y T) T { return x + y }
func sub[T number](x, y T) T { return x - y }
func mul[T number](x, y T) T { return x * y }
func neg[T number](x T) T    { return -x }

func eq[T comparable](x, y T) bool { return x == y }

func sgn[T number](x T) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// arith applies an arithmetic dyad. Booleans are added, subtracted
// and multiplied as Integers.
func arith(a, w Noun, fi func(int64, int64) int64, fd func(float64, float64) float64) (Noun, error) {
	m, err := PromotePair(a, w)
	if err != nil {
		return nil, err
	}
	fb := func(x, y bool) int64 { return fi(boolToInt(x), boolToInt(y)) }
	return Dyad(m, fb, fi, fd)
}

func binaryAdd(a, w Noun) (Noun, error) {
	return arith(a, w, add[int64], add[float64])
}

func binarySubtract(a, w Noun) (Noun, error) {
	return arith(a, w, sub[int64], sub[float64])
}

func binaryMultiply(a, w Noun) (Noun, error) {
	return arith(a, w, mul[int64], mul[float64])
}

// binaryDivide always divides Decimals; there is no integer division.
func binaryDivide(a, w Noun) (Noun, error) {
	a, err := Promote(a, Decimal)
	if err != nil {
		return nil, err
	}
	w, err = Promote(w, Decimal)
	if err != nil {
		return nil, err
	}
	m, err := PromotePair(a, w)
	if err != nil {
		return nil, err
	}
	// Both operands are Decimal now, so only the last function runs.
	return Dyad(m,
		func(x, y bool) float64 { return float64(boolToInt(x)) / float64(boolToInt(y)) },
		func(x, y int64) float64 { return float64(x) / float64(y) },
		func(x, y float64) float64 { return x / y },
	)
}

func binaryEqual(a, w Noun) (Noun, error) {
	m, err := PromotePair(a, w)
	if err != nil {
		return nil, err
	}
	return Dyad(m, eq[bool], eq[int64], eq[float64])
}

// binaryAnd views both operands as Booleans instead of promoting them.
func binaryAnd(a, w Noun) (Noun, error) {
	m, err := PromotePair(BooleanView(a), BooleanView(w))
	if err != nil {
		return nil, err
	}
	return Dyad(m,
		func(x, y bool) bool { return x && y },
		func(x, y int64) bool { return x != 0 && y != 0 },
		func(x, y float64) bool { return x != 0 && y != 0 },
	)
}

func right(a, w Noun) (Noun, error) { return w, nil }
func left(a, w Noun) (Noun, error)  { return a, nil }
func same(w Noun) (Noun, error)     { return w, nil }

// conjugate is the identity on real numbers.
func conjugate(w Noun) (Noun, error) {
	return w, nil
}

func unaryNegate(w Noun) (Noun, error) {
	return Monad(w, func(x bool) int64 { return -boolToInt(x) }, neg[int64], neg[float64]), nil
}

func unarySignum(w Noun) (Noun, error) {
	return Monad(w, boolToInt, sgn[int64], sgn[float64]), nil
}

func unaryReciprocal(w Noun) (Noun, error) {
	return Monad(w,
		func(x bool) float64 { return 1 / float64(boolToInt(x)) },
		func(x int64) float64 { return 1 / float64(x) },
		func(x float64) float64 { return 1 / x },
	), nil
}

// unaryIota returns the array of the shape given by w, an Integer atom or
// vector, holding 0, 1, 2, ...
func unaryIota(w Noun) (Noun, error) {
	shape, err := toShape(w)
	if err != nil {
		return nil, err
	}
	a, err := Iota(shape)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// unaryShape returns the shape of w as an Integer vector.
func unaryShape(w Noun) (Noun, error) {
	s := w.Shape()
	data := make([]int64, len(s))
	for i, e := range s {
		data[i] = int64(e)
	}
	return Vector(data...), nil
}

// toShape converts a non-negative Integer or Boolean atom or vector to a shape.
func toShape(w Noun) (Shape, error) {
	if w.Kind() == Decimal {
		return nil, Errorf("shape must be integer, have %s", w.Kind())
	}
	if w.Rank() > 1 {
		return nil, Errorf("shape must be scalar or vector, have rank %d", w.Rank())
	}
	n := operand[int64](w)
	var data []int64
	if n.IsAtom() {
		data = []int64{n.Atom}
	} else {
		data = n.Array.Data()
	}
	shape := make(Shape, len(data))
	for i, x := range data {
		if x < 0 || x > math.MaxInt32 {
			return nil, Errorf("bad extent %d in shape", x)
		}
		shape[i] = int(x)
	}
	return shape, nil
}
