// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"robpike.io/rho/config"
	"robpike.io/rho/scan"
	"robpike.io/rho/value"
)

var verbs = value.NewRegistry()

// eval scans and evaluates input in c and returns the printed form of
// each resulting value.
func eval(t *testing.T, c *Context, input string) ([]string, error) {
	t.Helper()
	toks, err := scan.New(c.Config()).Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q): %v", input, err)
	}
	values, err := c.Eval(toks)
	var out []string
	for _, v := range values {
		out = append(out, value.Sprint(c.Config(), v))
	}
	return out, err
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"1 2 3", []string{"1 2 3"}},
		{"1 + 2", []string{"3"}},
		{"2 * 3 + 4", []string{"14"}},
		{"- 1 2", []string{"_1 _2"}},
		{"- - 3", []string{"3"}},
		{"1 - - 3", []string{"4"}},
		{"1 % 4", []string{"0.25"}},
		{"i. 2 3", []string{"0 1 2\n3 4 5"}},
		{"$ i. 2 3", []string{"2 3"}},
		{"10 20 30 + i. 2 3", []string{"10 21 32\n13 24 35"}},
		{"1 2 = 1 3", []string{"1 0"}},
		{"1\n2 3", []string{"1", "2 3"}},
		{"\n\n1\n", []string{"1"}},
	}
	for _, test := range tests {
		c := NewContext(new(config.Config), verbs)
		got, err := eval(t, c, test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestAssign(t *testing.T) {
	c := NewContext(new(config.Config), verbs)
	got, err := eval(t, c, "x =: 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("assignment printed %q", got)
	}
	got, err = eval(t, c, "y =: 10 + x\ny * 2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"22 24 26"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	// An assignment in the middle of a statement passes its value on.
	got, err = eval(t, c, "1 + z =: 4")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"5"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, c.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	c.Clear()
	if n := c.Lookup("x"); n != nil {
		t.Errorf("x is %v after Clear", n)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"undefined + 1", "undefined: undefined"},
		{"1 # 2", "unknown verb: no dyad #"},
		{"= 2", "unknown verb: no monad ="},
		{"1 2 + 1 2 3", "shape mismatch: [2] and [3]"},
		{`"abc"`, "not a noun"},
		{`"it""s"`, `string "it\"s" is not a noun`},
		{"1 2 =: 3", "needs a name"},
		{"1 x =: 2", "unexpected"},
		{"1 +", "right operand"},
		{"1x + 2", "bad number"},
	}
	for _, test := range tests {
		c := NewContext(new(config.Config), verbs)
		_, err := eval(t, c, test.input)
		if err == nil {
			t.Errorf("%q: no error", test.input)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: error %q does not contain %q", test.input, err, test.want)
		}
	}
}

func TestEvalStopsAtError(t *testing.T) {
	c := NewContext(new(config.Config), verbs)
	got, err := eval(t, c, "a =: 1\n2\nb + 1\nc =: 3")
	var verr value.Error
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want value.Error", err)
	}
	if diff := cmp.Diff([]string{"2"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if c.Lookup("a") == nil {
		t.Error("a is not bound")
	}
	if c.Lookup("c") != nil {
		t.Error("c was bound after the error")
	}
}

func TestEvalTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	conf := new(config.Config)
	conf.SetLogger(zap.New(core).Sugar())
	c := NewContext(conf, verbs)
	if _, err := eval(t, c, "x =: - 1 + 2"); err != nil {
		t.Fatal(err)
	}
	var msgs []string
	for _, entry := range logs.All() {
		msgs = append(msgs, entry.Message)
	}
	if diff := cmp.Diff([]string{"dyad", "monad", "assign"}, msgs); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

// Operands reach the logger unformatted, so a disabled logger never
// pays for printing large arrays.
func TestEvalTraceIsLazy(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	conf := new(config.Config)
	conf.SetLogger(zap.New(core).Sugar())
	c := NewContext(conf, verbs)
	if _, err := eval(t, c, "x =: i. 300 300\nx + - x"); err != nil {
		t.Fatal(err)
	}
	entries := logs.All()
	if len(entries) == 0 {
		t.Fatal("no trace")
	}
	for _, entry := range entries {
		for _, f := range entry.Context {
			if f.Key == "op" || f.Key == "name" {
				continue
			}
			if f.Type != zapcore.StringerType {
				t.Errorf("%s: field %q has type %v, want a lazy Stringer", entry.Message, f.Key, f.Type)
			}
			if _, ok := f.Interface.(value.Noun); !ok {
				t.Errorf("%s: field %q holds %T, want a noun", entry.Message, f.Key, f.Interface)
			}
		}
	}

	// With debug logging off nothing is recorded.
	core, logs = observer.New(zap.InfoLevel)
	conf.SetLogger(zap.New(core).Sugar())
	if _, err := eval(t, c, "x + x"); err != nil {
		t.Fatal(err)
	}
	if n := logs.Len(); n != 0 {
		t.Errorf("%d entries at info level", n)
	}
}
