// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
