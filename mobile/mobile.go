// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mobile provides a very narrow interface to rho,
// suitable for wrapping in a UI for mobile applications.
// It exposes only primitive types. It's also handy for testing.
package mobile // import "robpike.io/rho/mobile"

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"

	"robpike.io/rho/config"
	"robpike.io/rho/demo"
	"robpike.io/rho/exec"
	"robpike.io/rho/run"
	"robpike.io/rho/value"
)

var verbs = value.NewRegistry()

// Session is an independent execution stream with its own bindings
// and settings.
type Session struct {
	conf    config.Config
	context *exec.Context
}

// NewSession returns a session with nothing bound.
func NewSession() *Session {
	s := new(Session)
	s.Reset()
	return s
}

// Eval evaluates the input string and returns its output.
// Execution continues past errors; if there were any, they are
// returned concatenated together in the error value.
func (s *Session) Eval(expr string) (result string, err error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if !run.Rho(s.context, expr, stdout, stderr) {
		err = errors.New(strings.TrimSuffix(stderr.String(), "\n"))
	}
	return stdout.String(), err
}

// Reset clears all state to the initial value.
func (s *Session) Reset() {
	s.conf = config.Config{}
	s.context = exec.NewContext(&s.conf, verbs)
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	session *Session
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will run the input text line by line
// in a fresh session. An empty input runs the standard demo script.
func NewDemo(input string) *Demo {
	if input == "" {
		input = demo.Lines()
	}
	return &Demo{
		session: NewSession(),
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.session.Eval(d.scanner.Text())
}
