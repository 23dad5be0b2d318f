// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the scanner, the evaluator
// and the run loop.
package config // import "robpike.io/rho/config"

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"cpu",    // log the time taken to evaluate each line
	"tokens", // log every token the scanner emits
	"types",  // print the Go type of each result before the result
}

type Config struct {
	prompt    string
	format    string
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
	logger    *zap.SugaredLogger
}

// Format returns the printf verb used to print Decimal elements.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

// CheckFormat reports whether s is a printf format for a single
// float64: exactly one of the verbs %v %g %G %e %E %f %F, with any
// flags, width and precision, among literal text and %%.
func CheckFormat(s string) error {
	verbs := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		i++
		if i < len(s) && s[i] == '%' {
			continue
		}
		for i < len(s) && strings.IndexByte("+-# 0123456789.", s[i]) >= 0 {
			i++
		}
		if i == len(s) {
			return errors.Errorf("format %q: missing verb", s)
		}
		if strings.IndexByte("vgGeEfF", s[i]) < 0 {
			return errors.Errorf("format %q: %%%c does not print decimals", s, s[i])
		}
		verbs++
	}
	if verbs != 1 {
		return errors.Errorf("format %q: need one verb, have %d", s, verbs)
	}
	return nil
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the named debug flag. It reports false if the
// flag is not one of DebugFlags.
func (c *Config) SetDebug(s string, state bool) bool {
	if !slices.Contains(DebugFlags, s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer for results. The default is os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// ErrOutput returns the writer for error reports. The default is os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Logger returns the logger for debugging traces.
// It discards everything unless SetLogger was called.
func (c *Config) Logger() *zap.SugaredLogger {
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
	return c.logger
}

func (c *Config) SetLogger(l *zap.SugaredLogger) {
	c.logger = l
}
