// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package riplog

import (
	"strings"
	"testing"
)

func TestEachLineSplitsOnLFAndCR(t *testing.T) {
	input := "first\nsecond\r\nthird\rfourth"

	var lines []string
	if err := EachLine(strings.NewReader(input), func(line string) {
		lines = append(lines, line)
	}); err != nil {
		t.Fatalf("EachLine: %v", err)
	}

	want := []string{"first", "second", "third", "fourth"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEachLineEmptyInput(t *testing.T) {
	calls := 0
	if err := EachLine(strings.NewReader(""), func(string) { calls++ }); err != nil {
		t.Fatalf("EachLine: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no callbacks, got %d", calls)
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := OpenFile("/nonexistent/ripwatch-test.log"); err == nil {
		t.Fatal("expected error opening missing file")
	}
}
