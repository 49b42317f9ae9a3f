// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer
//
// Package status owns the running status record: the fold of classified log
// lines into a phase state machine, and the ETA derived from per-chapter
// timing samples once the replay ends.

package status

import (
	"ripwatch/internal/riplog"
)

// Record is the status snapshot returned by one replay. It is built fresh
// for every request and is read-only once returned.
type Record struct {
	CurrentEncode string       `json:"current_encode"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
	StatusText    riplog.Phase `json:"status_text"`
	Status        string       `json:"status"`
	NumChapters   int          `json:"num_chapters"`
	ETA           string       `json:"eta"`

	// etaSamples holds the raw chapter-progress lines in log order. They
	// are replay-internal ETA input, not part of the snapshot.
	etaSamples []string
}

// newRecord returns a record in its default state. An idle tracker is
// indistinguishable from one whose queue has finished, so the initial phase
// is queue_complete.
func newRecord() Record {
	return Record{
		StatusText:  riplog.PhaseQueueComplete,
		NumChapters: -1,
	}
}

// reset returns every field to its default. Used when a scan phase begins
// or a fresh encode starts: nothing accumulated for the previous job may
// leak into the next one.
func (r *Record) reset() {
	*r = newRecord()
}

var statusLabels = map[riplog.Phase]string{
	riplog.PhaseScanning:      "Scanning source",
	riplog.PhaseScanComplete:  "Scan complete",
	riplog.PhaseRipping:       "Ripping",
	riplog.PhaseSubScan:       "Performing subtitle scan",
	riplog.PhaseEncoding:      "Encoding",
	riplog.PhaseQueueComplete: "Queue complete",
}

// Label returns the human-readable text for a phase.
func Label(p riplog.Phase) string {
	return statusLabels[p]
}
