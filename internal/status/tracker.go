// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package status

import (
	"container/ring"
	"fmt"
	"time"

	"ripwatch/internal/logger"
	"ripwatch/internal/riplog"
)

// Tracker answers status queries by replaying the pipeline's activity log
// from the start. It holds no state between queries: every call builds a
// fresh record, so concurrent queries are independent.
type Tracker struct {
	classifier *riplog.Classifier
	opener     riplog.Opener
	validator  riplog.PathValidator
	logger     logger.Logger
	logPath    string
	tailLines  int
	now        func() time.Time
}

// Config for a Tracker.
type Config struct {
	LogPath   string
	TailLines int
	Opener    riplog.Opener
	Validator riplog.PathValidator
	Logger    logger.Logger
	Now       func() time.Time
}

// Options for a single query. Zero values mean "use the configured
// defaults"; overrides exist for tests and automation.
type Options struct {
	LogPath string
	Now     time.Time
}

// New creates a Tracker.
func New(config Config) (*Tracker, error) {
	if len(config.LogPath) == 0 {
		return nil, ErrNoLogPath
	}

	t := &Tracker{
		classifier: riplog.NewClassifier(),
		opener:     config.Opener,
		validator:  config.Validator,
		logger:     config.Logger,
		logPath:    config.LogPath,
		tailLines:  config.TailLines,
		now:        config.Now,
	}

	if t.opener == nil {
		t.opener = riplog.OpenFile
	}
	if t.validator == nil {
		t.validator, _ = riplog.NewPathValidator(nil, nil)
	}
	if t.logger == nil {
		t.logger = logger.Nop()
	}
	if t.tailLines <= 0 {
		t.tailLines = 100
	}
	if t.now == nil {
		t.now = time.Now
	}

	return t, nil
}

// Status replays the whole activity log and returns the resulting status
// snapshot. A read failure yields no record at all: a partial replay could
// report arbitrarily wrong status.
func (t *Tracker) Status(opts Options) (Record, error) {
	path, err := t.resolvePath(opts)
	if err != nil {
		return Record{}, err
	}
	now := t.now()
	if !opts.Now.IsZero() {
		now = opts.Now
	}

	rc, err := t.opener(path)
	if err != nil {
		return Record{}, fmt.Errorf("open activity log: %w", err)
	}
	defer rc.Close()

	rec := newRecord()
	if err := riplog.EachLine(rc, func(line string) {
		t.fold(&rec, line)
	}); err != nil {
		return Record{}, fmt.Errorf("read activity log: %w", err)
	}

	rec.ETA = t.computeETA(&rec, now)
	rec.Status = Label(rec.StatusText)

	t.logger.Debug("status replay of %s: phase=%s encode=%q samples=%d",
		path, rec.StatusText, rec.CurrentEncode, len(rec.etaSamples))

	return rec, nil
}

// fold applies one line to the record. Matched verdicts drive the state
// machine; the two indicator patterns are checked on every line since they
// touch disjoint fields. Lines matching nothing are inert.
func (t *Tracker) fold(rec *Record, line string) {
	verdict, matched := t.classifier.Classify(line, rec.StatusText)
	if matched {
		switch verdict {
		case riplog.PhaseScanning, riplog.PhaseScanComplete:
			rec.reset()
		case riplog.PhaseRipping:
			// Only the encode-start marker acts on the record. Other
			// ripping lines must not clear samples accumulated so far.
			if t.classifier.IsEncodeStart(line) {
				rec.reset()
				rec.StartTime = t.classifier.Timestamp(line)
				rec.CurrentEncode = t.classifier.EncodeName(line)
			}
		case riplog.PhaseSubScan, riplog.PhaseEncoding:
			// Placeholder until the real computation at end of replay.
			rec.ETA = etaUnknown
		case riplog.PhaseQueueComplete:
			rec.EndTime = t.classifier.Timestamp(line)
		}
		rec.StatusText = verdict
	}

	if n, ok := t.classifier.ChapterCount(line); ok {
		rec.NumChapters = n
	}
	if t.classifier.IsChapterProgress(line) {
		rec.etaSamples = append(rec.etaSamples, line)
	}
}

// Report holds the tail of the activity log for diagnostics.
type Report struct {
	Path       string   `json:"path"`
	TotalLines int      `json:"total_lines"`
	Lines      []string `json:"lines"`
}

// Report replays the log and returns its most recent lines.
func (t *Tracker) Report(opts Options) (Report, error) {
	path, err := t.resolvePath(opts)
	if err != nil {
		return Report{}, err
	}

	rc, err := t.opener(path)
	if err != nil {
		return Report{}, fmt.Errorf("open activity log: %w", err)
	}
	defer rc.Close()

	tail := ring.New(t.tailLines)
	total := 0
	if err := riplog.EachLine(rc, func(line string) {
		total++
		tail.Value = line
		tail = tail.Next()
	}); err != nil {
		return Report{}, fmt.Errorf("read activity log: %w", err)
	}

	lines := make([]string, 0, t.tailLines)
	tail.Do(func(v interface{}) {
		if v != nil {
			lines = append(lines, v.(string))
		}
	})

	return Report{Path: path, TotalLines: total, Lines: lines}, nil
}

func (t *Tracker) resolvePath(opts Options) (string, error) {
	if len(opts.LogPath) == 0 {
		return t.logPath, nil
	}
	if !t.validator.IsValid(opts.LogPath) {
		return "", ErrPathNotAllowed
	}
	return opts.LogPath, nil
}
