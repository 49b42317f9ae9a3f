// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package riplog

import "testing"

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		line    string
		current Phase
		want    Phase
		matched bool
	}{
		{
			name:    "scanning",
			line:    "[23:50:01] Scanning source: title 1 of 3",
			current: PhaseQueueComplete,
			want:    PhaseScanning,
			matched: true,
		},
		{
			name:    "scan complete",
			line:    "[23:52:10] Scan complete: 3 titles found",
			current: PhaseScanning,
			want:    PhaseScanComplete,
			matched: true,
		},
		{
			name:    "encode start marker",
			line:    "[23:55:58] Starting encode: Snatched",
			current: PhaseScanComplete,
			want:    PhaseRipping,
			matched: true,
		},
		{
			name:    "generic rip line",
			line:    "[23:56:00] rip: opening output file",
			current: PhaseRipping,
			want:    PhaseRipping,
			matched: true,
		},
		{
			name:    "subtitle scan during rip",
			line:    "[23:56:30] rip: subtitle scan pass",
			current: PhaseRipping,
			want:    PhaseSubScan,
			matched: true,
		},
		{
			name:    "subtitle scan outside rip is inert",
			line:    "[23:50:30] probing subtitle scan support",
			current: PhaseScanning,
			want:    PhaseScanning,
			matched: false,
		},
		{
			name:    "encode pass during rip",
			line:    "[23:58:00] rip: encode pass 1 of 1",
			current: PhaseSubScan,
			want:    PhaseEncoding,
			matched: true,
		},
		{
			name:    "encode pass outside rip is inert",
			line:    "[23:50:00] encode pass parameters loaded",
			current: PhaseScanComplete,
			want:    PhaseScanComplete,
			matched: false,
		},
		{
			name:    "chapter progress keeps encoding",
			line:    "[00:01:00] rip: chapter 1 of 5 done",
			current: PhaseEncoding,
			want:    PhaseEncoding,
			matched: true,
		},
		{
			name:    "queue complete",
			line:    "[00:34:57] Rip queue complete",
			current: PhaseEncoding,
			want:    PhaseQueueComplete,
			matched: true,
		},
		{
			name:    "diagnostic chatter is inert",
			line:    "[00:03:00] vobsub palette loaded",
			current: PhaseEncoding,
			want:    PhaseEncoding,
			matched: false,
		},
		{
			name:    "empty line is inert",
			line:    "",
			current: PhaseQueueComplete,
			want:    PhaseQueueComplete,
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := c.Classify(tt.line, tt.current)
			if got != tt.want || matched != tt.matched {
				t.Fatalf("Classify(%q, %s) = (%s, %v), want (%s, %v)",
					tt.line, tt.current, got, matched, tt.want, tt.matched)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		line string
		want string
	}{
		{"[23:55:58] Starting encode: Snatched", "23:55:58"},
		{"[00:34:57] Rip queue complete", "00:34:57"},
		{"[bad time] something", ""},
		{"no timestamp here", ""},
		{"[23:55:58", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := c.Timestamp(tt.line); got != tt.want {
			t.Fatalf("Timestamp(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestEncodeName(t *testing.T) {
	c := NewClassifier()

	if got := c.EncodeName("[23:55:58] Starting encode: Snatched"); got != "Snatched" {
		t.Fatalf("EncodeName = %q, want %q", got, "Snatched")
	}
	if got := c.EncodeName("[23:55:58] Starting encode: The Long Title "); got != "The Long Title" {
		t.Fatalf("EncodeName = %q, want trimmed title", got)
	}
	if got := c.EncodeName("[23:56:00] rip: opening output file"); got != "" {
		t.Fatalf("EncodeName on non-marker line = %q, want empty", got)
	}
}

func TestIsEncodeStart(t *testing.T) {
	c := NewClassifier()

	if !c.IsEncodeStart("[23:55:58] Starting encode: Snatched") {
		t.Fatal("expected marker line to be detected")
	}
	if c.IsEncodeStart("[23:56:00] rip: opening output file") {
		t.Fatal("non-marker rip line must not count as encode start")
	}
}

func TestChapterCount(t *testing.T) {
	c := NewClassifier()

	n, ok := c.ChapterCount("[23:56:00] rip: title has 5 chapters")
	if !ok || n != 5 {
		t.Fatalf("ChapterCount = (%d, %v), want (5, true)", n, ok)
	}
	if _, ok := c.ChapterCount("[23:56:00] rip: opening output file"); ok {
		t.Fatal("unexpected chapter count match")
	}
}

func TestIsChapterProgress(t *testing.T) {
	c := NewClassifier()

	if !c.IsChapterProgress("[00:01:00] rip: chapter 1 of 5 done") {
		t.Fatal("expected chapter progress match")
	}
	if c.IsChapterProgress("[23:56:00] rip: title has 5 chapters") {
		t.Fatal("chapter count line must not match progress")
	}
}
