// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns a line of input into tokens.
//
// The scanner is a finite-state machine driven by a table indexed by the
// current state and the class of the next character (see table.go). Each
// transition names the next state and what to do with the span of text
// accumulated so far. Numerals separated only by spaces collect into a
// single Number token, so "1 2 3" is one token with three fragments.
package scan // import "robpike.io/rho/scan"

import (
	"fmt"

	"github.com/pkg/errors"

	"robpike.io/rho/config"
)

// ErrTable reports an attempt to emit a token from a state that has no
// token type. It means the transition table is malformed.
var ErrTable = errors.New("scan: transition table emits from a state without a token type")

// Error is a scanning error, reported with the offset at which it occurred.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Pos, e.Msg)
}

// Scanner holds the state of the scanner.
type Scanner struct {
	conf   *config.Config
	input  string  // the line of text being scanned
	state  State   // current state of the machine
	start  int     // start of the pending span; -1 if none
	tokens []Token // tokens emitted so far
}

// New creates and returns a new scanner.
func New(conf *config.Config) *Scanner {
	return &Scanner{conf: conf}
}

// Lex scans the input and returns its tokens. The result always ends
// with an EOL token. The only user-visible failure is an unterminated
// string.
func (l *Scanner) Lex(input string) ([]Token, error) {
	l.input = input
	l.state = Initial
	l.start = -1
	l.tokens = nil
	for pos, r := range input {
		if err := l.step(Classify(r), pos); err != nil {
			return nil, err
		}
	}
	if err := l.step(endOfInput, len(input)); err != nil {
		return nil, err
	}
	// End of input always lands in LineBreak; a pending span there is the final EOL.
	if l.start >= 0 {
		if err := l.emit(len(input)); err != nil {
			return nil, err
		}
	}
	toks := l.tokens
	l.tokens = nil
	return toks, nil
}

// step performs the transition for a character of class c at offset pos.
func (l *Scanner) step(c Class, pos int) error {
	t := table[l.state][c]
	var err error
	switch t.action {
	case NoAction:
	case Advance:
		l.start = pos
	case EmitAndAdvance:
		err = l.emit(pos)
		l.start = pos
	case EmitAndReset:
		err = l.emit(pos)
		l.start = -1
	case AppendAndAdvance:
		err = l.appendNumeral(pos)
		l.start = pos
	case AppendAndReset:
		err = l.appendNumeral(pos)
		l.start = -1
	case Stop:
		return &Error{Pos: l.start, Msg: "unterminated string"}
	}
	l.state = t.next
	return err
}

// emit closes the pending span at pos and records it as a token
// of the type of the current state.
func (l *Scanner) emit(pos int) error {
	typ, ok := l.state.tokenType()
	if !ok || l.start < 0 {
		return errors.Wrapf(ErrTable, "state %s at offset %d", l.state, pos)
	}
	text := l.input[l.start:pos]
	tok := Token{Type: typ, Pos: l.start, Text: text}
	if typ == Number {
		tok.Fragments = []string{text}
	}
	if l.conf != nil && l.conf.Debug("tokens") {
		l.conf.Logger().Debugw("emit", "token", tok.String(), "pos", tok.Pos)
	}
	l.tokens = append(l.tokens, tok)
	return nil
}

// appendNumeral closes the pending numeral at pos. If the previous token is a
// Number the numeral becomes its next fragment; otherwise it is emitted.
func (l *Scanner) appendNumeral(pos int) error {
	n := len(l.tokens)
	if l.state != InNumeric || n == 0 || l.tokens[n-1].Type != Number || l.start < 0 {
		return l.emit(pos)
	}
	last := &l.tokens[n-1]
	frag := l.input[l.start:pos]
	last.Fragments = append(last.Fragments, frag)
	last.Text = l.input[last.Pos:pos]
	if l.conf != nil && l.conf.Debug("tokens") {
		l.conf.Logger().Debugw("append", "token", last.String(), "fragment", frag)
	}
	return nil
}
