// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer
//
// Package riplog owns the text format of the rip pipeline's activity log:
// line classification, marker detection and the fixed-offset timestamp
// extraction. Everything here is pure and stateless.

package riplog

import (
	"regexp"
	"strconv"
	"strings"
)

// Phase is the classified state of the pipeline as read from the log.
type Phase string

const (
	PhaseScanning      Phase = "scanning"
	PhaseScanComplete  Phase = "scan_complete"
	PhaseRipping       Phase = "ripping"
	PhaseSubScan       Phase = "ripping_sub_scan"
	PhaseEncoding      Phase = "ripping_encoding"
	PhaseQueueComplete Phase = "queue_complete"
)

func (p Phase) String() string { return string(p) }

// IsRipping reports whether the phase belongs to an active rip, i.e. an
// encode has started and has not completed yet.
func (p Phase) IsRipping() bool {
	return p == PhaseRipping || p == PhaseSubScan || p == PhaseEncoding
}

// Log lines look like "[23:55:58] message": the wall-clock timestamp
// occupies characters 1..9 of every line the pipeline writes.
const (
	tsStart = 1
	tsEnd   = 9
)

// markerEncodeStart distinguishes the line that begins a new encode from
// other lines that merely mention ripping.
const markerEncodeStart = "Starting encode: "

// Classifier classifies log lines into phases and extracts the indicator
// values embedded in them.
type Classifier struct {
	re struct {
		chapterCount    *regexp.Regexp
		chapterProgress *regexp.Regexp
	}
}

// NewClassifier compiles the line patterns.
func NewClassifier() *Classifier {
	c := &Classifier{}
	c.re.chapterCount = regexp.MustCompile(`title has ([0-9]+) chapters`)
	c.re.chapterProgress = regexp.MustCompile(`chapter [0-9]+ of [0-9]+ done`)
	return c
}

// Classify maps a line to a phase verdict. Classification is context
// sensitive: some lines only carry meaning while a rip is active, so the
// current phase is part of the input. When no pattern matches, the current
// phase is returned with ok=false and the caller must treat the line as
// inert.
func (c *Classifier) Classify(line string, current Phase) (verdict Phase, ok bool) {
	switch {
	case strings.Contains(line, "Scanning source"):
		return PhaseScanning, true
	case strings.Contains(line, "Scan complete"):
		return PhaseScanComplete, true
	case strings.Contains(line, "Rip queue complete"):
		return PhaseQueueComplete, true
	case strings.Contains(line, markerEncodeStart):
		return PhaseRipping, true
	case strings.Contains(line, "subtitle scan"):
		// The scanner mentions subtitle tracks too; only a running rip
		// enters the subtitle scan pass.
		if current.IsRipping() {
			return PhaseSubScan, true
		}
		return current, false
	case strings.Contains(line, "encode pass"):
		if current.IsRipping() {
			return PhaseEncoding, true
		}
		return current, false
	case c.re.chapterProgress.MatchString(line):
		// Chapter completions are emitted by the encode pass, so they are
		// also evidence of the encoding phase.
		if current.IsRipping() {
			return PhaseEncoding, true
		}
		return current, false
	case strings.Contains(line, "rip:"):
		return PhaseRipping, true
	}
	return current, false
}

// IsEncodeStart reports whether the line is the encode-start marker.
func (c *Classifier) IsEncodeStart(line string) bool {
	return strings.Contains(line, markerEncodeStart)
}

// EncodeName extracts the human-readable title from an encode-start line.
func (c *Classifier) EncodeName(line string) string {
	idx := strings.Index(line, markerEncodeStart)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+len(markerEncodeStart):])
}

// Timestamp returns the HH:MM:SS substring at the fixed line offset, or ""
// when the line does not carry one.
func (c *Classifier) Timestamp(line string) string {
	if len(line) <= tsEnd || line[0] != '[' || line[tsEnd] != ']' {
		return ""
	}
	ts := line[tsStart:tsEnd]
	for i, r := range ts {
		if i == 2 || i == 5 {
			if r != ':' {
				return ""
			}
			continue
		}
		if r < '0' || r > '9' {
			return ""
		}
	}
	return ts
}

// ChapterCount extracts the total chapter count from a chapter-count
// indicator line.
func (c *Classifier) ChapterCount(line string) (int, bool) {
	m := c.re.chapterCount.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsChapterProgress reports whether the line records the completion of a
// single chapter. Matching lines are used as ETA timing samples.
func (c *Classifier) IsChapterProgress(line string) bool {
	return c.re.chapterProgress.MatchString(line)
}
