// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for rho.
// It is factored out of main so it can be used for tests.
package run // import "robpike.io/rho/run"

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"robpike.io/rho/config"
	"robpike.io/rho/exec"
	"robpike.io/rho/scan"
	"robpike.io/rho/value"
)

// cpuTime reports the user and system time used by the process.
// It is replaced on systems that can measure it.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// Run reads lines from r and executes them until EOF.
// Results go to the configured output stream, errors to the configured
// error output stream. An error does not stop execution; the return value
// reports whether every line ran without error.
func Run(context *exec.Context, r io.Reader, interactive bool) (success bool) {
	conf := context.Config()
	writer := conf.Output()
	scanner := scan.New(conf)
	lines := bufio.NewReader(r)
	success = true
	for lineNum := 1; ; lineNum++ {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		// ReadString has no line length limit.
		line, readErr := lines.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			var err error
			if strings.HasPrefix(strings.TrimSpace(line), ")") {
				err = special(context, strings.TrimSpace(line))
			} else {
				err = runLine(context, scanner, line)
			}
			if err != nil {
				fmt.Fprintf(conf.ErrOutput(), "line %d: %s\n", lineNum, err)
				success = false
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fmt.Fprintf(conf.ErrOutput(), "read: %s\n", readErr)
			return false
		}
	}
	return success
}

// Rho runs the input text in the context, sending results to stdout and
// errors to stderr. It reports whether the text ran without error.
func Rho(context *exec.Context, input string, stdout, stderr io.Writer) bool {
	conf := context.Config()
	saveOut, saveErr := conf.Output(), conf.ErrOutput()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	defer func() {
		conf.SetOutput(saveOut)
		conf.SetErrOutput(saveErr)
	}()
	return Run(context, strings.NewReader(input), false)
}

// runLine scans, evaluates and prints one line of input.
func runLine(context *exec.Context, scanner *scan.Scanner, line string) error {
	conf := context.Config()
	toks, err := scanner.Lex(line)
	if err != nil {
		return errors.Wrap(err, "scan")
	}
	start := time.Now()
	user, sys := cpuTime()
	values, err := context.Eval(toks)
	if conf.Debug("cpu") {
		user2, sys2 := cpuTime()
		conf.Logger().Infow("cpu",
			"real", time.Since(start),
			"user", user2-user,
			"sys", sys2-sys)
	}
	// Values computed before an error are still shown.
	printValues(conf, conf.Output(), values)
	return err
}

// printValues prints each value on its own line.
// It also handles the ')debug types' output.
func printValues(conf *config.Config, writer io.Writer, values []value.Noun) {
	if len(values) == 0 {
		return
	}
	if conf.Debug("types") {
		for i, v := range values {
			if i > 0 {
				fmt.Fprint(writer, ",")
			}
			fmt.Fprintf(writer, "%T", v)
		}
		fmt.Fprintln(writer)
	}
	for _, v := range values {
		fmt.Fprintln(writer, value.Sprint(conf, v))
	}
}
