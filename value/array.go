// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

/*
	i. 2 3

0 1 2
3 4 5
*/

// Array is a dense array of elements of one kind. The data is stored in
// row-major order and len(data) is always shape.Size().
type Array[T Element] struct {
	shape Shape
	data  []T
}

// NewArray returns an array with the given shape and data.
// The array takes ownership of both slices.
func NewArray[T Element](shape Shape, data []T) (*Array[T], error) {
	for _, e := range shape {
		if e < 0 {
			return nil, Errorf("negative extent in shape %s", shape)
		}
	}
	if len(data) != shape.Size() {
		return nil, Errorf("shape %s needs %d elements, have %d", shape, shape.Size(), len(data))
	}
	return &Array[T]{shape: shape, data: data}, nil
}

// MustArray is like NewArray but panics if the data does not fit the shape.
func MustArray[T Element](shape Shape, data []T) *Array[T] {
	a, err := NewArray(shape, data)
	if err != nil {
		panic(err)
	}
	return a
}

// Vector returns a rank-1 array holding data.
func Vector[T Element](data ...T) *Array[T] {
	return &Array[T]{shape: Shape{len(data)}, data: data}
}

func (a *Array[T]) Kind() Kind { return kindOf[T]() }
func (a *Array[T]) noun()      {}

// Shape returns the shape of the array. The caller must not modify it.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Data returns the elements in row-major order. The caller must not modify them.
func (a *Array[T]) Data() []T {
	return a.data
}

// Get returns the element at the index, which must have one
// component per axis.
func (a *Array[T]) Get(index ...int) (T, bool) {
	i, ok := a.shape.FlatIndex(index)
	if !ok {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

func (a *Array[T]) String() string {
	if a.Rank() <= 1 {
		return a.sprint(debugFormat)
	}
	return "(" + strings.ReplaceAll(a.sprint(debugFormat), "\n", "; ") + ")"
}

// Map applies f to every element of a. The shape is preserved.
func Map[T, U Element](a *Array[T], f func(T) U) *Array[U] {
	data := make([]U, len(a.data))
	for i, x := range a.data {
		data[i] = f(x)
	}
	return &Array[U]{shape: a.shape.clone(), data: data}
}

// MapAtomRight pairs every element of a with the scalar w.
func MapAtomRight[T, U, V Element](a *Array[T], w U, f func(T, U) V) *Array[V] {
	data := make([]V, len(a.data))
	for i, x := range a.data {
		data[i] = f(x, w)
	}
	return &Array[V]{shape: a.shape.clone(), data: data}
}

// MapAtomLeft pairs the scalar x with every element of w.
func MapAtomLeft[T, U, V Element](x T, w *Array[U], f func(T, U) V) *Array[V] {
	data := make([]V, len(w.data))
	for i, y := range w.data {
		data[i] = f(x, y)
	}
	return &Array[V]{shape: w.shape.clone(), data: data}
}

// AgreementMap applies f elementwise to a and w. Arrays of equal rank
// must have equal shapes. Otherwise the shape of the lower-ranked array
// must be a suffix of the other's, and its data is repeated across the
// leading axes of the higher-ranked one, which gives the result its shape.
func AgreementMap[T, U, V Element](a *Array[T], w *Array[U], f func(T, U) V) (*Array[V], error) {
	switch {
	case a.Rank() == w.Rank():
		if !a.shape.Equal(w.shape) {
			return nil, &ShapeError{Left: a.shape, Right: w.shape}
		}
		data := make([]V, len(a.data))
		for i := range a.data {
			data[i] = f(a.data[i], w.data[i])
		}
		return &Array[V]{shape: a.shape.clone(), data: data}, nil
	case !a.shape.Agrees(w.shape):
		return nil, &ShapeError{Left: a.shape, Right: w.shape}
	case a.Rank() < w.Rank():
		data := make([]V, len(w.data))
		n := len(a.data)
		for i, y := range w.data {
			data[i] = f(a.data[i%n], y)
		}
		return &Array[V]{shape: w.shape.clone(), data: data}, nil
	default:
		data := make([]V, len(a.data))
		n := len(w.data)
		for i, x := range a.data {
			data[i] = f(x, w.data[i%n])
		}
		return &Array[V]{shape: a.shape.clone(), data: data}, nil
	}
}

// Cast converts every element of a to type U. Converting to a higher kind
// never fails; converting to a lower one truncates, and any nonzero value
// becomes true. Casting to the same type returns a itself.
func Cast[T, U Element](a *Array[T]) *Array[U] {
	if same, ok := any(a).(*Array[U]); ok {
		return same
	}
	return Map(a, converter[T, U]())
}

// converter returns the function converting T to U.
func converter[T, U Element]() func(T) U {
	var t T
	var u U
	var f any
	switch any(t).(type) {
	case bool:
		switch any(u).(type) {
		case bool:
			f = func(x bool) bool { return x }
		case int64:
			f = func(x bool) int64 { return boolToInt(x) }
		case float64:
			f = func(x bool) float64 { return float64(boolToInt(x)) }
		}
	case int64:
		switch any(u).(type) {
		case bool:
			f = func(x int64) bool { return x != 0 }
		case int64:
			f = func(x int64) int64 { return x }
		case float64:
			f = func(x int64) float64 { return float64(x) }
		}
	case float64:
		switch any(u).(type) {
		case bool:
			f = func(x float64) bool { return x != 0 }
		case int64:
			f = func(x float64) int64 { return int64(x) }
		case float64:
			f = func(x float64) float64 { return x }
		}
	}
	return f.(func(T) U)
}

func boolToInt(x bool) int64 {
	if x {
		return 1
	}
	return 0
}

// maxSize bounds the number of elements Iota will allocate.
const maxSize = 1 << 26

// Iota returns an Integer array of the given shape holding 0, 1, 2, ...
// in row-major order.
func Iota(shape Shape) (*Array[int64], error) {
	size := 1
	for _, e := range shape {
		if e < 0 {
			return nil, Errorf("iota: negative extent in shape %s", shape)
		}
		if e > 0 && size > maxSize/e {
			return nil, Errorf("iota: shape %s too large", shape)
		}
		size *= e
	}
	data := make([]int64, size)
	for i := range data {
		data[i] = int64(i)
	}
	return &Array[int64]{shape: shape.clone(), data: data}, nil
}

func (a *Array[T]) GoString() string {
	return fmt.Sprintf("Array[%s]{shape: %v, data: %v}", a.Kind(), []int(a.shape), a.data)
}
