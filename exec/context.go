// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates statements: it binds names to nouns and applies
// verbs to nouns in a single right-to-left pass over the tokens.
package exec // import "robpike.io/rho/exec"

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"robpike.io/rho/config"
	"robpike.io/rho/scan"
	"robpike.io/rho/value"
)

// AssignOp is the operator that binds a name, as in x =: 1 2 3.
const AssignOp = "=:"

// Symtab is a symbol table, a map of names to values.
type Symtab map[string]value.Noun

// Context holds execution context, specifically the binding of names to
// values and the verbs that may be applied to them.
// A Context is not safe for concurrent use.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	config *config.Config
	// verbs is shared and never modified.
	verbs *value.Registry
	// Globals holds the bound names.
	Globals Symtab
}

// NewContext returns a new execution context with no names bound.
func NewContext(conf *config.Config, verbs *value.Registry) *Context {
	return &Context{
		config:  conf,
		verbs:   verbs,
		Globals: make(Symtab),
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Verbs returns the registry of verbs.
func (c *Context) Verbs() *value.Registry {
	return c.verbs
}

// Lookup returns the value bound to name, or nil.
func (c *Context) Lookup(name string) value.Noun {
	return c.Globals[name]
}

// Assign binds name to n.
func (c *Context) Assign(name string, n value.Noun) {
	c.Globals[name] = n
}

// Names returns the bound names in sorted order.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.Globals))
	for name := range c.Globals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clear removes every binding.
func (c *Context) Clear() {
	c.Globals = make(Symtab)
}

// Eval evaluates the statements in the token stream, which are separated
// by EOL tokens, and returns the values to print, in order. Assignments
// and empty statements yield nothing. Evaluation stops at the first error;
// bindings made by earlier statements remain.
func (c *Context) Eval(toks []scan.Token) ([]value.Noun, error) {
	var values []value.Noun
	start := 0
	for i, tok := range toks {
		if tok.Type != scan.EOL {
			continue
		}
		n, err := c.evalStatement(toks[start:i])
		if err != nil {
			return values, err
		}
		if n != nil {
			values = append(values, n)
		}
		start = i + 1
	}
	if start < len(toks) {
		n, err := c.evalStatement(toks[start:])
		if err != nil {
			return values, err
		}
		if n != nil {
			values = append(values, n)
		}
	}
	return values, nil
}

// evalStatement evaluates one statement right to left. It returns nil
// for an empty statement or one whose last action is an assignment.
func (c *Context) evalStatement(toks []scan.Token) (value.Noun, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	// Operands are logged as fmt.Stringers so they are only
	// formatted when debug logging is enabled.
	log := c.config.Logger()
	last := toks[len(toks)-1]
	toks = toks[:len(toks)-1]
	right, err := c.noun(last)
	if err != nil {
		return nil, errors.Wrap(err, "right operand")
	}
	assigned := false
	for len(toks) > 0 {
		tok := toks[len(toks)-1]
		toks = toks[:len(toks)-1]
		if tok.Type != scan.Operator {
			return nil, value.Errorf("offset %d: unexpected %s", tok.Pos, tok)
		}
		op := tok.Text
		if op == AssignOp {
			if len(toks) == 0 || toks[len(toks)-1].Type != scan.Identifier {
				return nil, value.Errorf("offset %d: %s needs a name on its left", tok.Pos, op)
			}
			name := toks[len(toks)-1].Text
			toks = toks[:len(toks)-1]
			c.Assign(name, right)
			log.Debugw("assign", "name", name, "value", right)
			assigned = true
			continue
		}
		assigned = false
		// Look ahead: a noun on the left makes the verb dyadic.
		if len(toks) > 0 && toks[len(toks)-1].IsNoun() {
			leftTok := toks[len(toks)-1]
			toks = toks[:len(toks)-1]
			left, err := c.noun(leftTok)
			if err != nil {
				return nil, errors.Wrapf(err, "left operand of %s", op)
			}
			log.Debugw("dyad", "op", op, "left", left, "right", right)
			right, err = c.verbs.Binary(op, left, right)
			if err != nil {
				return nil, errors.Wrapf(err, "offset %d", tok.Pos)
			}
			continue
		}
		log.Debugw("monad", "op", op, "right", right)
		right, err = c.verbs.Unary(op, right)
		if err != nil {
			return nil, errors.Wrapf(err, "offset %d", tok.Pos)
		}
	}
	if assigned {
		return nil, nil
	}
	return right, nil
}

// noun returns the value denoted by a Number or Identifier token.
func (c *Context) noun(tok scan.Token) (value.Noun, error) {
	switch tok.Type {
	case scan.Number:
		return value.ParseNumber(tok.Fragments)
	case scan.Identifier:
		n := c.Lookup(tok.Text)
		if n == nil {
			return nil, value.Errorf("undefined: %s", tok.Text)
		}
		return n, nil
	case scan.String:
		return nil, value.Errorf("offset %d: string %q is not a noun", tok.Pos, tok.Unquote())
	}
	return nil, value.Errorf("offset %d: expected a noun, have %s", tok.Pos, tok)
}
