// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunScript(t *testing.T) {
	var toRho, output bytes.Buffer
	if err := Run(nil, &toRho, &output); err != nil {
		t.Fatal(err)
	}
	if got := toRho.String(); got != Lines() {
		t.Errorf("sent %q, want %q", got, Lines())
	}
	if got := output.String(); got != Text() {
		t.Errorf("showed %q, want %q", got, Text())
	}
}

func TestRunUser(t *testing.T) {
	var toRho, output bytes.Buffer
	user := strings.NewReader("\n  1 + 1  \n\nquit\n\n")
	if err := Run(user, &toRho, &output); err != nil {
		t.Fatal(err)
	}
	script := strings.Split(Text(), "\n")
	if got, want := toRho.String(), script[1]+"\n1 + 1\n"+script[2]+"\n"; got != want {
		t.Errorf("sent %q, want %q", got, want)
	}
	if got, want := output.String(), strings.Join(script[:3], "\n")+"\n"; got != want {
		t.Errorf("showed %q, want %q", got, want)
	}
}
