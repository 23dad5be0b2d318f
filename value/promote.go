// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Promotion of nouns to a common kind.
//
// The kinds form a chain, Boolean < Integer < Decimal. Any two kinds
// therefore have a least upper bound, the higher of the two, and an
// operand of a lower kind can always be widened to it.

// Operand is one side of a Pair: an array or, if Array is nil, an atom.
type Operand[T Element] struct {
	Array *Array[T]
	Atom  T
}

// IsAtom reports whether the operand is a scalar.
func (o Operand[T]) IsAtom() bool {
	return o.Array == nil
}

// Noun returns the operand as a noun.
func (o Operand[T]) Noun() Noun {
	if o.Array == nil {
		return Atom[T]{X: o.Atom}
	}
	return o.Array
}

// Config identifies which operands of a Pair are arrays.
type Config int

const (
	ArrayArray Config = iota
	ArrayAtom
	AtomArray
	AtomAtom
)

func (c Config) String() string {
	switch c {
	case ArrayArray:
		return "array-array"
	case ArrayAtom:
		return "array-atom"
	case AtomArray:
		return "atom-array"
	}
	return "atom-atom"
}

// Pair holds the two operands of a dyad after promotion to a common kind.
type Pair[T Element] struct {
	Left, Right Operand[T]
}

// Config reports which operands are arrays.
func (p Pair[T]) Config() Config {
	switch {
	case !p.Left.IsAtom() && !p.Right.IsAtom():
		return ArrayArray
	case !p.Left.IsAtom():
		return ArrayAtom
	case !p.Right.IsAtom():
		return AtomArray
	}
	return AtomAtom
}

func (p Pair[T]) Kind() Kind { return kindOf[T]() }
func (p Pair[T]) matching()  {}

// Matching is a Pair of any kind: a Pair[bool], Pair[int64] or Pair[float64].
type Matching interface {
	Kind() Kind
	Config() Config

	matching()
}

// Promote returns n converted to kind k, which must not be lower than n's kind.
func Promote(n Noun, k Kind) (Noun, error) {
	if k.Rank() < n.Kind().Rank() {
		return nil, &PromotionError{From: n.Kind(), To: k}
	}
	switch k {
	case Boolean:
		return operand[bool](n).Noun(), nil
	case Integer:
		return operand[int64](n).Noun(), nil
	}
	return operand[float64](n).Noun(), nil
}

// PromotePair converts a and w to the higher of their kinds and
// returns them as a Matching.
func PromotePair(a, w Noun) (Matching, error) {
	switch maxKind(a.Kind(), w.Kind()) {
	case Boolean:
		return Pair[bool]{operand[bool](a), operand[bool](w)}, nil
	case Integer:
		return Pair[int64]{operand[int64](a), operand[int64](w)}, nil
	case Decimal:
		return Pair[float64]{operand[float64](a), operand[float64](w)}, nil
	}
	return nil, &PromotionError{From: a.Kind(), To: w.Kind()}
}

// operand converts n to an Operand of element type U.
func operand[U Element](n Noun) Operand[U] {
	switch n := n.(type) {
	case Atom[bool]:
		return Operand[U]{Atom: converter[bool, U]()(n.X)}
	case Atom[int64]:
		return Operand[U]{Atom: converter[int64, U]()(n.X)}
	case Atom[float64]:
		return Operand[U]{Atom: converter[float64, U]()(n.X)}
	case *Array[bool]:
		return Operand[U]{Array: Cast[bool, U](n)}
	case *Array[int64]:
		return Operand[U]{Array: Cast[int64, U](n)}
	case *Array[float64]:
		return Operand[U]{Array: Cast[float64, U](n)}
	}
	panic(Errorf("internal error: unknown noun type %T", n))
}

// BooleanView returns n as a Boolean noun in which every nonzero
// element is true. It is not a promotion: it narrows.
func BooleanView(n Noun) Noun {
	return operand[bool](n).Noun()
}
