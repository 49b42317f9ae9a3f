// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package status

import "errors"

var (
	ErrNoLogPath      = errors.New("no activity log path configured")
	ErrPathNotAllowed = errors.New("log path override not allowed")
)
