// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements rho's nouns: atoms and shaped arrays of
// Boolean, Integer or Decimal elements, the promotion of mixed kinds to a
// common kind, the broadcasting of operations across shapes, and the
// registry of verbs that combine them.
package value // import "robpike.io/rho/value"

import "fmt"

// Noun is a value: an Atom or an Array of one of the three kinds.
// Nouns are immutable; operations always build new ones.
type Noun interface {
	// Kind returns the element kind.
	Kind() Kind
	// Shape returns the axis extents; nil for an atom.
	Shape() Shape
	// Rank returns len(Shape()).
	Rank() int
	String() string

	noun()
}

// Element is the set of element types, one per Kind.
type Element interface {
	bool | int64 | float64
}

// Kind identifies the type of the elements of a noun.
// Kinds are ordered: a lower kind promotes to a higher one.
type Kind int

const (
	Boolean Kind = iota
	Integer
	Decimal
)

// Rank returns the position of the kind in the promotion order.
func (k Kind) Rank() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// maxKind returns the higher of the two kinds.
func maxKind(k1, k2 Kind) Kind {
	if k1.Rank() > k2.Rank() {
		return k1
	}
	return k2
}

// kindOf returns the Kind corresponding to the element type T.
func kindOf[T Element]() Kind {
	var x T
	switch any(x).(type) {
	case bool:
		return Boolean
	case int64:
		return Integer
	}
	return Decimal
}

// Atom is a scalar noun.
type Atom[T Element] struct {
	X T
}

// NewAtom returns x as a noun.
func NewAtom[T Element](x T) Atom[T] {
	return Atom[T]{X: x}
}

func (a Atom[T]) Kind() Kind   { return kindOf[T]() }
func (a Atom[T]) Shape() Shape { return nil }
func (a Atom[T]) Rank() int    { return 0 }
func (a Atom[T]) noun()        {}

func (a Atom[T]) String() string {
	return formatElem(debugFormat, a.X)
}

// Error is the type of a plain evaluation error.
type Error string

func (err Error) Error() string {
	return string(err)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}
