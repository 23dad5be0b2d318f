// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"fmt"
	"strings"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  int    // Byte offset of the start of the item in the line.
	Text string // The text of this item.
	// Fragments holds the numerals of a Number, in order.
	// "1 2 3" scans as one Number with three fragments.
	Fragments []string
}

// Type identifies the type of lex items.
type Type int

const (
	EOL        Type = iota // end of a statement: newline or end of input
	Identifier             // alphanumeric identifier
	Number                 // one or more space-separated numerals
	Operator               // punctuation, possibly followed by . or :
	String                 // quoted string (includes quotes)
)

func (t Type) String() string {
	switch t {
	case EOL:
		return "EOL"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case String:
		return "String"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOL:
		return "EOL"
	case i.Type == Number:
		return fmt.Sprintf("%s: %q", i.Type, strings.Join(i.Fragments, " "))
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// IsNoun reports whether the token can denote a noun: a Number or an Identifier.
func (i Token) IsNoun() bool {
	return i.Type == Number || i.Type == Identifier
}

// Unquote returns the contents of a String token without the
// surrounding quotes and with each doubled quote reduced to one.
func (i Token) Unquote() string {
	s := i.Text
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}
