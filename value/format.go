// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"robpike.io/rho/config"
)

// debugFormat is the Decimal format used by String methods.
const debugFormat = "%v"

// Sprint returns the text of n as the interpreter prints it.
// Decimals use the format from conf.
func Sprint(conf *config.Config, n Noun) string {
	format := conf.Format()
	switch n := n.(type) {
	case Atom[bool]:
		return formatElem(format, n.X)
	case Atom[int64]:
		return formatElem(format, n.X)
	case Atom[float64]:
		return formatElem(format, n.X)
	case *Array[bool]:
		return n.sprint(format)
	case *Array[int64]:
		return n.sprint(format)
	case *Array[float64]:
		return n.sprint(format)
	}
	return fmt.Sprint(n)
}

// formatElem formats a single element. Booleans print as 1 and 0 and
// negative numbers use _ as the minus sign, so output can be read back in.
func formatElem[T Element](format string, x T) string {
	switch x := any(x).(type) {
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int64:
		return highMinus(strconv.FormatInt(x, 10))
	case float64:
		switch {
		case math.IsInf(x, 1):
			return "_"
		case math.IsInf(x, -1):
			return "__"
		}
		return highMinus(fmt.Sprintf(format, x))
	}
	return fmt.Sprint(x)
}

func highMinus(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// sprint formats the array. A vector prints on one line; a matrix prints
// one row per line with the columns aligned; higher ranks print each
// matrix in turn, separated by blank lines.
func (a *Array[T]) sprint(format string) string {
	strs := make([]string, len(a.data))
	for i, x := range a.data {
		strs[i] = formatElem(format, x)
	}
	switch a.Rank() {
	case 0:
		if len(strs) == 0 {
			return ""
		}
		return strs[0]
	case 1:
		return strings.Join(strs, " ")
	}
	if len(strs) == 0 {
		return ""
	}
	wid := 1
	for _, s := range strs {
		if wid < len(s) {
			wid = len(s)
		}
	}
	var b bytes.Buffer
	nrows := a.shape[a.Rank()-2]
	ncols := a.shape[a.Rank()-1]
	size := nrows * ncols // number of elems in each matrix.
	for start := 0; start < len(strs); start += size {
		if start > 0 {
			// End the row, then one blank line, plus one more for each
			// enclosing axis that turned over.
			b.WriteString(strings.Repeat("\n", 2+a.boundaries(start/size)))
		}
		write2d(&b, strs[start:start+size], nrows, ncols, wid)
	}
	return b.String()
}

// boundaries returns how many of the axes enclosing the matrices have
// just turned over to zero at the nth matrix of the array.
func (a *Array[T]) boundaries(n int) int {
	count := 0
	outer := a.shape[:a.Rank()-2]
	for i := len(outer) - 1; i >= 0 && n%outer[i] == 0; i-- {
		count++
		n /= outer[i]
	}
	return count
}

// write2d prints the nrows by ncols matrix of already-printed values into
// the buffer, right-justified in columns of the given width.
func write2d(b *bytes.Buffer, value []string, nrows, ncols, width int) {
	index := 0
	for row := 0; row < nrows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < ncols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s := value[index]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
			index++
		}
	}
}
