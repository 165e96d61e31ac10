// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command richsync runs the rich-text editing engine on HTML files:
// flattening them to plain text, cleaning them up and pasting the
// system clipboard into them.
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

func main() {
	if err := newRootCmd(os.Stdout, clipboard.ReadAll).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
