// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main // import "robpike.io/rho"

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"robpike.io/rho/config"
	"robpike.io/rho/demo"
	"robpike.io/rho/exec"
	"robpike.io/rho/run"
	"robpike.io/rho/value"
)

var (
	execute = flag.Bool("e", false, "execute arguments as a single expression")
	debug   = flag.String("debug", "", "comma-separated list of debug flags to enable")
	format  = flag.String("format", "", "printf format for printing decimals")
	prompt  = flag.String("prompt", "", "command prompt")
	runDemo = flag.Bool("demo", false, "run the interactive demo")
	level   = zap.LevelFlag("log-level", zap.WarnLevel, "set log level")
)

var conf config.Config

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rho: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	conf.SetLogger(logger.Sugar())

	if *format != "" {
		if err := config.CheckFormat(*format); err != nil {
			fmt.Fprintf(os.Stderr, "rho: %s\n", err)
			os.Exit(2)
		}
		conf.SetFormat(*format)
	}
	conf.SetPrompt(*prompt)
	if *debug != "" {
		for _, d := range strings.Split(*debug, ",") {
			if !conf.SetDebug(d, true) {
				fmt.Fprintf(os.Stderr, "rho: unknown debug flag %q\n", d)
				os.Exit(2)
			}
		}
	}

	context := exec.NewContext(&conf, value.NewRegistry())

	if *execute {
		if !run.Rho(context, strings.Join(flag.Args(), " "), os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		return
	}

	if *runDemo {
		if !rhoDemo(context) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		ok := true
		for _, name := range flag.Args() {
			fd, err := os.Open(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "rho: %s\n", err)
				os.Exit(1)
			}
			ok = run.Run(context, fd, false) && ok
			fd.Close()
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if !run.Run(context, os.Stdin, term.IsTerminal(int(os.Stdin.Fd()))) {
		os.Exit(1)
	}
}

// rhoDemo runs the demo script, feeding it to the interpreter through a pipe
// as the user steps through it.
func rhoDemo(context *exec.Context) bool {
	pr, pw := io.Pipe()
	done := make(chan error, 1)
	go func() {
		err := demo.Run(os.Stdin, pw, os.Stdout)
		pw.Close()
		done <- err
	}()
	ok := run.Run(context, pr, false)
	if err := <-done; err != nil {
		conf.Logger().Errorw("demo", "err", err)
		return false
	}
	return ok
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: rho [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
