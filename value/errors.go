// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// ShapeError reports two arrays whose shapes do not agree.
type ShapeError struct {
	Left, Right Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch: %s and %s", shapeText(e.Left), shapeText(e.Right))
}

func shapeText(s Shape) string {
	if len(s) == 0 {
		return "scalar"
	}
	return "[" + s.String() + "]"
}

// LiteralError reports a numeral that does not parse.
type LiteralError struct {
	Text string
	Err  error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("bad number %q: %v", e.Text, e.Err)
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}

// Arity distinguishes the monadic and dyadic use of a verb.
type Arity int

const (
	Monadic Arity = 1
	Dyadic  Arity = 2
)

func (a Arity) String() string {
	if a == Monadic {
		return "monad"
	}
	return "dyad"
}

// VerbError reports a verb with no definition for the arity it was used with.
type VerbError struct {
	Name  string
	Arity Arity
}

func (e *VerbError) Error() string {
	return fmt.Sprintf("unknown verb: no %s %s", e.Arity, e.Name)
}

// PromotionError reports a request to convert a noun to a lower kind.
type PromotionError struct {
	From, To Kind
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("cannot promote %s to %s", e.From, e.To)
}
