// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package riplog

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"
)

// Opener opens the log artifact for one full replay. Injectable so tests
// and automation can substitute an in-memory stream.
type Opener func(path string) (io.ReadCloser, error)

// OpenFile is the production Opener.
func OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// EachLine reads r to EOF, calling fn once per line in file order. The
// reader is not closed; the caller owns the handle.
func EachLine(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanLine)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// scanLine splits on both LF and CR so logs written with either line
// discipline replay the same way.
func scanLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if r != '\n' && r != '\r' {
			break
		}
		start += w
	}

	for i := start; i < len(data); {
		r, w := utf8.DecodeRune(data[i:])
		if r == '\n' || r == '\r' {
			return i + w, data[start:i], nil
		}
		i += w
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
