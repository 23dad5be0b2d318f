// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo steps a user through a short rho script.
// The script is in demo.rho in this directory and is embedded in the binary.
package demo // import "robpike.io/rho/demo"

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.rho
var script []byte

// Text returns the demo script. Its first line is instructions for the
// user, not input for the interpreter.
func Text() string {
	return string(script)
}

// Lines returns the lines of the script that are meant to be executed.
func Lines() string {
	_, rest, _ := strings.Cut(Text(), "\n")
	return rest
}

// Run drives the demo. It shows the instructions on output and then reads
// lines from user. An empty line sends the next line of the script to the
// interpreter through toRho and echoes it on output. Any other line is sent
// as typed and the script does not advance; "quit" ends the demo.
// A nil user runs the whole script without waiting.
func Run(user io.Reader, toRho, output io.Writer) error {
	lines := bufio.NewScanner(bytes.NewReader(script))
	next := func() ([]byte, bool) {
		if !lines.Scan() {
			return nil, false
		}
		return []byte(lines.Text() + "\n"), true
	}
	if header, ok := next(); ok {
		if _, err := output.Write(header); err != nil {
			return err
		}
	}
	var in *bufio.Scanner
	if user != nil {
		in = bufio.NewScanner(user)
	}
	for in == nil || in.Scan() {
		if in != nil {
			typed := strings.TrimSpace(in.Text())
			if typed == "quit" {
				break
			}
			if len(typed) > 0 {
				if _, err := io.WriteString(toRho, typed+"\n"); err != nil {
					return err
				}
				continue
			}
		}
		line, ok := next()
		if !ok {
			break
		}
		if _, err := output.Write(line); err != nil {
			return err
		}
		if _, err := toRho.Write(line); err != nil {
			return err
		}
	}
	if in != nil {
		return in.Err()
	}
	return lines.Err()
}
