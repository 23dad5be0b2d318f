// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

// Class is the coarse lexical class of a character.
type Class int

const (
	Other Class = iota
	Whitespace
	Letter
	Digit
	Dot
	Colon
	Quote
	LineBreak
	numClass
)

// endOfInput is the pseudo-class fed to the table after the last character.
// Classify never returns it.
const endOfInput = numClass

func (c Class) String() string {
	switch c {
	case Other:
		return "Other"
	case Whitespace:
		return "Whitespace"
	case Letter:
		return "Letter"
	case Digit:
		return "Digit"
	case Dot:
		return "Dot"
	case Colon:
		return "Colon"
	case Quote:
		return "Quote"
	case LineBreak:
		return "LineBreak"
	case endOfInput:
		return "EOF"
	}
	return "Class(?)"
}

// Classify returns the class of r. Underscore is a digit because it
// is the negative sign of a numeral: _3 is minus three.
func Classify(r rune) Class {
	switch {
	case r == ' ' || r == '\t' || r == '\r':
		return Whitespace
	case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		return Letter
	case '0' <= r && r <= '9' || r == '_':
		return Digit
	case r == '.':
		return Dot
	case r == ':':
		return Colon
	case r == '"':
		return Quote
	case r == '\n':
		return LineBreak
	}
	return Other
}

// State is the kind of span the scanner is accumulating.
type State int

const (
	Initial State = iota
	InWhitespace
	InOther
	InAlphanumeric
	InNumeric
	InQuoted
	InDoubleQuoted
	InLineBreak
	numState
)

func (s State) String() string {
	switch s {
	case Initial:
		return "Initial"
	case InWhitespace:
		return "Whitespace"
	case InOther:
		return "Other"
	case InAlphanumeric:
		return "Alphanumeric"
	case InNumeric:
		return "Numeric"
	case InQuoted:
		return "Quoted"
	case InDoubleQuoted:
		return "DoubleQuoted"
	case InLineBreak:
		return "LineBreak"
	}
	return "State(?)"
}

// tokenType returns the type of token a span in state s becomes.
// Initial and Whitespace have no pending span and so no type.
func (s State) tokenType() (Type, bool) {
	switch s {
	case InOther:
		return Operator, true
	case InAlphanumeric:
		return Identifier, true
	case InNumeric:
		return Number, true
	case InQuoted, InDoubleQuoted:
		return String, true
	case InLineBreak:
		return EOL, true
	}
	return 0, false
}

// Action is what the scanner does with the pending span on a transition.
type Action int

const (
	NoAction         Action = iota // keep accumulating
	Advance                        // open a new span at this character
	EmitAndAdvance                 // emit the span, open a new one here
	EmitAndReset                   // emit the span, leave no span open
	AppendAndAdvance               // add the numeral to the previous Number, or emit; open a new span
	AppendAndReset                 // add the numeral to the previous Number, or emit; leave no span open
	Stop                           // unterminated string
)

func (a Action) emits() bool {
	switch a {
	case EmitAndAdvance, EmitAndReset, AppendAndAdvance, AppendAndReset:
		return true
	}
	return false
}

type transition struct {
	next   State
	action Action
}

// table is the transition function of the scanner, indexed by the current
// state and the class of the next character.
var table = [numState][numClass + 1]transition{
	Initial: {
		Other:      {InOther, Advance},
		Whitespace: {InWhitespace, NoAction},
		Letter:     {InAlphanumeric, Advance},
		Digit:      {InNumeric, Advance},
		Dot:        {InOther, Advance},
		Colon:      {InOther, Advance},
		Quote:      {InQuoted, Advance},
		LineBreak:  {InLineBreak, Advance},
		endOfInput: {InLineBreak, Advance},
	},
	InWhitespace: {
		Other:      {InOther, Advance},
		Whitespace: {InWhitespace, NoAction},
		Letter:     {InAlphanumeric, Advance},
		Digit:      {InNumeric, Advance},
		Dot:        {InOther, Advance},
		Colon:      {InOther, Advance},
		Quote:      {InQuoted, Advance},
		LineBreak:  {InLineBreak, Advance},
		endOfInput: {InLineBreak, Advance},
	},
	InOther: {
		Other:      {InOther, EmitAndAdvance},
		Whitespace: {InWhitespace, EmitAndReset},
		Letter:     {InAlphanumeric, EmitAndAdvance},
		Digit:      {InNumeric, EmitAndAdvance},
		Dot:        {InOther, NoAction},
		Colon:      {InOther, NoAction},
		Quote:      {InQuoted, EmitAndAdvance},
		LineBreak:  {InLineBreak, EmitAndAdvance},
		endOfInput: {InLineBreak, EmitAndAdvance},
	},
	InAlphanumeric: {
		Other:      {InOther, EmitAndAdvance},
		Whitespace: {InWhitespace, EmitAndReset},
		Letter:     {InAlphanumeric, NoAction},
		Digit:      {InAlphanumeric, NoAction},
		Dot:        {InOther, NoAction},
		Colon:      {InOther, NoAction},
		Quote:      {InQuoted, EmitAndAdvance},
		LineBreak:  {InLineBreak, EmitAndAdvance},
		endOfInput: {InLineBreak, EmitAndAdvance},
	},
	InNumeric: {
		Other:      {InOther, AppendAndAdvance},
		Whitespace: {InWhitespace, AppendAndReset},
		Letter:     {InNumeric, NoAction},
		Digit:      {InNumeric, NoAction},
		Dot:        {InNumeric, NoAction},
		Colon:      {InOther, NoAction},
		Quote:      {InQuoted, AppendAndAdvance},
		LineBreak:  {InLineBreak, AppendAndAdvance},
		endOfInput: {InLineBreak, AppendAndAdvance},
	},
	InQuoted: {
		Other:      {InQuoted, NoAction},
		Whitespace: {InQuoted, NoAction},
		Letter:     {InQuoted, NoAction},
		Digit:      {InQuoted, NoAction},
		Dot:        {InQuoted, NoAction},
		Colon:      {InQuoted, NoAction},
		Quote:      {InDoubleQuoted, NoAction},
		LineBreak:  {InQuoted, NoAction},
		endOfInput: {InLineBreak, Stop},
	},
	InDoubleQuoted: {
		Other:      {InOther, EmitAndAdvance},
		Whitespace: {InWhitespace, EmitAndReset},
		Letter:     {InAlphanumeric, EmitAndAdvance},
		Digit:      {InNumeric, EmitAndAdvance},
		Dot:        {InOther, EmitAndAdvance},
		Colon:      {InOther, EmitAndAdvance},
		Quote:      {InQuoted, NoAction},
		LineBreak:  {InLineBreak, EmitAndAdvance},
		endOfInput: {InLineBreak, EmitAndAdvance},
	},
	InLineBreak: {
		Other:      {InOther, EmitAndAdvance},
		Whitespace: {InWhitespace, EmitAndReset},
		Letter:     {InAlphanumeric, EmitAndAdvance},
		Digit:      {InNumeric, EmitAndAdvance},
		Dot:        {InOther, EmitAndAdvance},
		Colon:      {InOther, EmitAndAdvance},
		Quote:      {InQuoted, EmitAndAdvance},
		LineBreak:  {InLineBreak, EmitAndAdvance},
		endOfInput: {InLineBreak, EmitAndReset},
	},
}
