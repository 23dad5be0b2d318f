// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"robpike.io/rho/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{' ', Whitespace},
		{'\t', Whitespace},
		{'a', Letter},
		{'Z', Letter},
		{'0', Digit},
		{'9', Digit},
		{'_', Digit},
		{'.', Dot},
		{':', Colon},
		{'"', Quote},
		{'\n', LineBreak},
		{'+', Other},
		{'$', Other},
		{'é', Other},
	}
	for _, test := range tests {
		if got := Classify(test.r); got != test.want {
			t.Errorf("Classify(%q) = %s, want %s", test.r, got, test.want)
		}
	}
}

var lexTests = []struct {
	input string
	want  []Token
}{
	{"", []Token{
		{Type: EOL, Pos: 0},
	}},
	{"1 2 3", []Token{
		{Type: Number, Pos: 0, Text: "1 2 3", Fragments: []string{"1", "2", "3"}},
		{Type: EOL, Pos: 5},
	}},
	{"1  x", []Token{
		{Type: Number, Pos: 0, Text: "1", Fragments: []string{"1"}},
		{Type: Identifier, Pos: 3, Text: "x"},
		{Type: EOL, Pos: 4},
	}},
	{"x =: 1 2", []Token{
		{Type: Identifier, Pos: 0, Text: "x"},
		{Type: Operator, Pos: 2, Text: "=:"},
		{Type: Number, Pos: 5, Text: "1 2", Fragments: []string{"1", "2"}},
		{Type: EOL, Pos: 8},
	}},
	{"i. 3", []Token{
		{Type: Operator, Pos: 0, Text: "i."},
		{Type: Number, Pos: 3, Text: "3", Fragments: []string{"3"}},
		{Type: EOL, Pos: 4},
	}},
	{"1+2", []Token{
		{Type: Number, Pos: 0, Text: "1", Fragments: []string{"1"}},
		{Type: Operator, Pos: 1, Text: "+"},
		{Type: Number, Pos: 2, Text: "2", Fragments: []string{"2"}},
		{Type: EOL, Pos: 3},
	}},
	{"2*.3 4", []Token{
		{Type: Number, Pos: 0, Text: "2", Fragments: []string{"2"}},
		{Type: Operator, Pos: 1, Text: "*."},
		{Type: Number, Pos: 3, Text: "3 4", Fragments: []string{"3", "4"}},
		{Type: EOL, Pos: 6},
	}},
	{"3 x 4", []Token{
		{Type: Number, Pos: 0, Text: "3", Fragments: []string{"3"}},
		{Type: Identifier, Pos: 2, Text: "x"},
		{Type: Number, Pos: 4, Text: "4", Fragments: []string{"4"}},
		{Type: EOL, Pos: 5},
	}},
	{"_1.5 2e3 1x", []Token{
		{Type: Number, Pos: 0, Text: "_1.5 2e3 1x", Fragments: []string{"_1.5", "2e3", "1x"}},
		{Type: EOL, Pos: 11},
	}},
	{`"it""s" x`, []Token{
		{Type: String, Pos: 0, Text: `"it""s"`},
		{Type: Identifier, Pos: 8, Text: "x"},
		{Type: EOL, Pos: 9},
	}},
	{"1\n2", []Token{
		{Type: Number, Pos: 0, Text: "1", Fragments: []string{"1"}},
		{Type: EOL, Pos: 1, Text: "\n"},
		{Type: Number, Pos: 2, Text: "2", Fragments: []string{"2"}},
		{Type: EOL, Pos: 3},
	}},
	{"1\n", []Token{
		{Type: Number, Pos: 0, Text: "1", Fragments: []string{"1"}},
		{Type: EOL, Pos: 1, Text: "\n"},
	}},
	{"abc1 + :", []Token{
		{Type: Identifier, Pos: 0, Text: "abc1"},
		{Type: Operator, Pos: 5, Text: "+"},
		{Type: Operator, Pos: 7, Text: ":"},
		{Type: EOL, Pos: 8},
	}},
}

func TestLex(t *testing.T) {
	s := New(new(config.Config))
	for _, test := range lexTests {
		got, err := s.Lex(test.input)
		if err != nil {
			t.Errorf("Lex(%q): %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestLexUnterminatedString(t *testing.T) {
	for _, input := range []string{`"abc`, `x "a""b`, `"`} {
		_, err := New(nil).Lex(input)
		var lexErr *Error
		if !errors.As(err, &lexErr) {
			t.Errorf("Lex(%q): got %v, want *Error", input, err)
			continue
		}
		if want := strings.Index(input, `"`); lexErr.Pos != want {
			t.Errorf("Lex(%q): error at %d, want %d", input, lexErr.Pos, want)
		}
	}
}

// Spans of the tokens, in order, reproduce the input apart from white space.
func TestLexReconstructs(t *testing.T) {
	inputs := []string{
		"1 2 3 + x",
		"a =: 3 4 * i. 2 3",
		`"hello world" + 7`,
		"  1.5e3\t_2 ]\n y *. 1 0\n",
		"+/-:.%x",
		`"a""b" "c"`,
	}
	strip := func(s string) string { return strings.Join(strings.Fields(s), "") }
	s := New(nil)
	for _, input := range inputs {
		toks, err := s.Lex(input)
		if err != nil {
			t.Errorf("Lex(%q): %v", input, err)
			continue
		}
		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.Text)
		}
		if got, want := strip(b.String()), strip(input); got != want {
			t.Errorf("Lex(%q): spans give %q, want %q", input, got, want)
		}
		if last := toks[len(toks)-1]; last.Type != EOL {
			t.Errorf("Lex(%q): last token is %s, want EOL", input, last)
		}
	}
}

// Every transition that emits must leave a state that has a token type,
// and only Quoted may stop.
func TestTableEmitsFromTokenStates(t *testing.T) {
	for s := State(0); s < numState; s++ {
		for c := Class(0); c <= endOfInput; c++ {
			tr := table[s][c]
			if tr.action.emits() {
				if _, ok := s.tokenType(); !ok {
					t.Errorf("%s on %s: %d emits from a state with no token type", s, c, tr.action)
				}
			}
			if tr.action == Stop && s != InQuoted {
				t.Errorf("%s on %s: unexpected Stop", s, c)
			}
			if c == endOfInput && tr.next != InLineBreak {
				t.Errorf("%s on end of input goes to %s, want LineBreak", s, tr.next)
			}
		}
	}
}

func TestUnquote(t *testing.T) {
	tok := Token{Type: String, Text: `"say ""hi"""`}
	if got, want := tok.Unquote(), `say "hi"`; got != want {
		t.Errorf("Unquote(%s) = %q, want %q", tok.Text, got, want)
	}
}

func TestTokenTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	conf := new(config.Config)
	conf.SetLogger(zap.New(core).Sugar())
	s := New(conf)
	if _, err := s.Lex("1 2 + x"); err != nil {
		t.Fatal(err)
	}
	if n := logs.Len(); n != 0 {
		t.Fatalf("%d log entries without the tokens flag", n)
	}
	conf.SetDebug("tokens", true)
	if _, err := s.Lex("1 2 + x"); err != nil {
		t.Fatal(err)
	}
	// Number 1, Operator, Identifier, EOL emitted; 2 appended.
	if got := logs.FilterMessage("emit").Len(); got != 4 {
		t.Errorf("got %d emit entries, want 4", got)
	}
	if got := logs.FilterMessage("append").Len(); got != 1 {
		t.Errorf("got %d append entries, want 1", got)
	}
}
