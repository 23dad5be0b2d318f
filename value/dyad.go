// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Dyad applies to m the one of fb, fi and fd that matches its kind,
// elementwise across arrays and atoms, and returns the result as a noun
// whose kind is that of the function's result.
func Dyad[B, I, D Element](m Matching, fb func(bool, bool) B, fi func(int64, int64) I, fd func(float64, float64) D) (Noun, error) {
	switch m := m.(type) {
	case Pair[bool]:
		return dyad(m, fb)
	case Pair[int64]:
		return dyad(m, fi)
	case Pair[float64]:
		return dyad(m, fd)
	}
	return nil, Errorf("internal error: unknown operand pair %T", m)
}

func dyad[T, U Element](p Pair[T], f func(T, T) U) (Noun, error) {
	switch p.Config() {
	case ArrayArray:
		a, err := AgreementMap(p.Left.Array, p.Right.Array, f)
		if err != nil {
			return nil, err
		}
		return a, nil
	case ArrayAtom:
		return MapAtomRight(p.Left.Array, p.Right.Atom, f), nil
	case AtomArray:
		return MapAtomLeft(p.Left.Atom, p.Right.Array, f), nil
	}
	return Atom[U]{X: f(p.Left.Atom, p.Right.Atom)}, nil
}

// Monad applies to n the one of fb, fi and fd that matches its kind,
// elementwise, and returns the result as a noun of the function's result kind.
func Monad[B, I, D Element](n Noun, fb func(bool) B, fi func(int64) I, fd func(float64) D) Noun {
	switch n := n.(type) {
	case Atom[bool]:
		return Atom[B]{X: fb(n.X)}
	case Atom[int64]:
		return Atom[I]{X: fi(n.X)}
	case Atom[float64]:
		return Atom[D]{X: fd(n.X)}
	case *Array[bool]:
		return Map(n, fb)
	case *Array[int64]:
		return Map(n, fi)
	case *Array[float64]:
		return Map(n, fd)
	}
	panic(Errorf("internal error: unknown noun type %T", n))
}
