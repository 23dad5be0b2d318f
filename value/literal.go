// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// numeral is a parsed numeral: an integer, or a decimal if isDecimal is set.
type numeral struct {
	i         int64
	f         float64
	isDecimal bool
}

// parseNumeral parses a numeral. An underscore is a minus sign, as in
// _3 and 1e_3, except that _ alone is infinity and __ minus infinity.
// Numerals that are not integers are decimals.
func parseNumeral(text string) (numeral, error) {
	switch text {
	case "_":
		return numeral{f: math.Inf(1), isDecimal: true}, nil
	case "__":
		return numeral{f: math.Inf(-1), isDecimal: true}, nil
	}
	s := strings.ReplaceAll(text, "_", "-")
	if strings.ContainsAny(s, "iInNxX") {
		// Go would accept inf, nan and hexadecimal floats; rho does not.
		return numeral{}, &LiteralError{Text: text, Err: &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return numeral{i: i}, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return numeral{}, &LiteralError{Text: text, Err: err}
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return numeral{}, &LiteralError{Text: text, Err: ferr}
	}
	return numeral{f: f, isDecimal: true}, nil
}

// ParseAtom parses a single numeral as an Integer or Decimal atom.
func ParseAtom(text string) (Noun, error) {
	n, err := parseNumeral(text)
	if err != nil {
		return nil, err
	}
	if n.isDecimal {
		return Atom[float64]{X: n.f}, nil
	}
	return Atom[int64]{X: n.i}, nil
}

// ParseVector parses the numerals as a vector. The vector is Decimal
// if any element is; otherwise it is Integer.
func ParseVector(fragments []string) (Noun, error) {
	nums := make([]numeral, len(fragments))
	decimal := false
	for i, text := range fragments {
		n, err := parseNumeral(text)
		if err != nil {
			return nil, err
		}
		nums[i] = n
		decimal = decimal || n.isDecimal
	}
	if !decimal {
		data := make([]int64, len(nums))
		for i, n := range nums {
			data[i] = n.i
		}
		return Vector(data...), nil
	}
	data := make([]float64, len(nums))
	for i, n := range nums {
		if n.isDecimal {
			data[i] = n.f
		} else {
			data[i] = float64(n.i)
		}
	}
	return Vector(data...), nil
}

// ParseNumber returns the noun denoted by the fragments of a Number token:
// an atom for a single numeral, a vector otherwise.
func ParseNumber(fragments []string) (Noun, error) {
	if len(fragments) == 1 {
		return ParseAtom(fragments[0])
	}
	return ParseVector(fragments)
}
