// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package status

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{90 * time.Second, "00:01:30"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{25 * time.Hour, "25:00:00"},
		{-7 * time.Minute, "-00:07:00"},
		{-time.Second, "-00:00:01"},
		{1500 * time.Millisecond, "00:00:01"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestComputeETASkipsUnparseableSamples(t *testing.T) {
	// Two progress lines but only one carries a usable timestamp: not
	// enough intervals, so the sentinel stands.
	log := strings.Join([]string{
		"[23:55:58] Starting encode: Snatched",
		"[23:56:00] rip: title has 5 chapters",
		"[23:58:00] rip: encode pass 1 of 1",
		"[00:01:00] rip: chapter 1 of 5 done",
		"(no ts) rip: chapter 2 of 5 done",
	}, "\n")

	rec, err := newTestTracker(t, log).Status(Options{Now: refTime(0, 5, 0)})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if rec.ETA != "~" {
		t.Fatalf("ETA = %q, want ~", rec.ETA)
	}
}

func TestLabelCoversEveryPhase(t *testing.T) {
	for phase, label := range statusLabels {
		if label == "" {
			t.Fatalf("phase %s has empty label", phase)
		}
		if Label(phase) != label {
			t.Fatalf("Label(%s) mismatch", phase)
		}
	}
}
