// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Rho is an interpreter for a small subset of J, an array language in the
APL family.

Values are nouns: atoms or rectangular arrays of any rank whose elements
are all of one kind. There are three kinds, ordered so that a lower kind
promotes to a higher one when the two meet in a dyad:

	boolean   1 or 0, the result of comparisons
	integer   64-bit signed integers: 3 _1 007
	decimal   64-bit floating point: 1.5 _0.25 1e3 _ __

As in J, the underscore is the negative sign and is written on output as
well as input, so _3 is minus three. An underscore on its own is infinity
and two are negative infinity. Numbers separated by blanks form a vector:
1 2 3 is one noun of three elements.

A statement is evaluated from right to left with no precedence among
verbs, so 2 * 3 + 4 is 14. A verb with a noun to its left is applied
dyadically; otherwise it is applied monadically. Names are bound with =:
as in

	x =: i. 2 3

and an assignment prints nothing.

When the operands of a dyad have different ranks, the shape of the lower
rank operand must be a suffix of the shape of the other; its elements are
then repeated along the leading axes. An atom agrees with anything.

	10 20 30 + i. 2 3
	10 21 32
	13 24 35

The verbs are

	Verb  Monad        Dyad
	+     conjugate    plus
	-     negate       minus
	*     signum       times
	%     reciprocal   divide (always decimal)
	=                  equal (boolean result)
	*.                 and (operands viewed as booleans)
	i.    integers
	$     shape of
	]     same         right
	[     same         left

Lines beginning with a right parenthesis are special commands:

	)clear          Remove every binding.
	)debug          Show the debug flags.
	)debug flag     Toggle the named flag: cpu, tokens or types.
	)format         Show the printf format used for decimals.
	)format "%.2f"  Set it.
	)prompt         Show the prompt.
	)prompt "> "    Set it.
	)vars           List the bound names with their kinds and shapes.
	)verbs          List the verbs and the forms they support.

Usage:

	rho [-format f] [-prompt p] [-debug flags] [-log-level l] [file ...]
	rho -e expression
	rho -demo

With no files, rho reads the standard input, prompting if it is a
terminal. The -demo flag steps through a short script, running the next
line of it each time return is pressed.
*/
package main
