// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package status

import (
	"fmt"
	"time"

	"ripwatch/internal/riplog"
)

// etaUnknown signals "in progress, insufficient data to estimate".
const etaUnknown = "~"

const timestampLayout = "15:04:05"

// computeETA derives the estimated time remaining from the final record.
// Per-chapter completion lines carry one-second timestamps, so the result
// is an estimate, never a guarantee. The average of the observed intervals
// is used rather than the last one alone: it smooths per-chapter variance
// at the cost of lag when encoding speed changes mid-job.
func (t *Tracker) computeETA(rec *Record, now time.Time) string {
	switch {
	case rec.StatusText == riplog.PhaseQueueComplete:
		return FormatDuration(0)
	case rec.StatusText != riplog.PhaseEncoding && rec.StatusText != riplog.PhaseSubScan:
		return ""
	case len(rec.etaSamples) < 2:
		// Need at least one interval to extrapolate.
		return etaUnknown
	}

	points := make([]time.Time, 0, len(rec.etaSamples))
	for _, line := range rec.etaSamples {
		ts := t.classifier.Timestamp(line)
		if ts == "" {
			continue
		}
		clock, err := time.Parse(timestampLayout, ts)
		if err != nil {
			continue
		}
		points = append(points, time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location()))
	}
	if len(points) < 2 {
		return etaUnknown
	}

	var total time.Duration
	for i := 1; i < len(points); i++ {
		total += points[i].Sub(points[i-1])
	}
	average := total / time.Duration(len(points)-1)

	remaining := rec.NumChapters - len(rec.etaSamples)
	elapsed := now.Sub(points[len(points)-1])

	// Can go negative when the sampled average says the job should already
	// be done; formatted as-is rather than clamped.
	return FormatDuration(average*time.Duration(remaining) - elapsed)
}

// FormatDuration renders a duration as HH:MM:SS, with a leading minus for
// negative values. Hours are not wrapped at 24.
func FormatDuration(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	seconds := int64(d / time.Second)
	out := fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
	if neg {
		out = "-" + out
	}
	return out
}
