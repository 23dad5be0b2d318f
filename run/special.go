// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"strconv"
	"strings"

	"robpike.io/rho/config"
	"robpike.io/rho/exec"
	"robpike.io/rho/value"
)

// special executes a command line that begins with ')'.
func special(context *exec.Context, line string) error {
	conf := context.Config()
	w := conf.Output()
	fields := strings.Fields(strings.TrimPrefix(line, ")"))
	if len(fields) == 0 {
		return value.Errorf("empty special command")
	}
	cmd, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, ")"), cmd))
	switch cmd {
	case "clear":
		context.Clear()
	case "debug":
		if len(args) == 0 {
			for _, f := range config.DebugFlags {
				fmt.Fprintf(w, "%s\t%d\n", f, truth(conf.Debug(f)))
			}
			return nil
		}
		for _, f := range args {
			state := !conf.Debug(f)
			if !conf.SetDebug(f, state) {
				return value.Errorf("no such debug flag: %s", f)
			}
			fmt.Fprintf(w, "%s\t%d\n", f, truth(state))
		}
	case "format":
		if rest == "" {
			fmt.Fprintf(w, "%q\n", conf.Format())
			return nil
		}
		f := unquote(rest)
		if err := config.CheckFormat(f); err != nil {
			return value.Errorf("%v", err)
		}
		conf.SetFormat(f)
	case "prompt":
		if rest == "" {
			fmt.Fprintf(w, "%q\n", conf.Prompt())
			return nil
		}
		conf.SetPrompt(unquote(rest))
	case "vars":
		for _, name := range context.Names() {
			n := context.Lookup(name)
			fmt.Fprintf(w, "%s\t%s [%v]\n", name, n.Kind(), n.Shape())
		}
	case "verbs":
		verbs := context.Verbs()
		for _, name := range verbs.Names() {
			v, _ := verbs.Lookup(name)
			var arities []string
			if v.Unary != nil {
				arities = append(arities, value.Monadic.String())
			}
			if v.Binary != nil {
				arities = append(arities, value.Dyadic.String())
			}
			fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(arities, " "))
		}
	default:
		return value.Errorf("unknown command )%s", cmd)
	}
	return nil
}

func truth(b bool) int {
	if b {
		return 1
	}
	return 0
}

// unquote strips Go-style quotes from s if it has them.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '`') {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}
