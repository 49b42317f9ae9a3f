// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package riplog

import "testing"

func TestPathValidatorEmptyAllowsEverything(t *testing.T) {
	v, err := NewPathValidator(nil, nil)
	if err != nil {
		t.Fatalf("NewPathValidator: %v", err)
	}
	if !v.IsValid("/var/log/ripper/activity.log") {
		t.Fatal("empty validator must allow any path")
	}
}

func TestPathValidatorBlockWins(t *testing.T) {
	v, err := NewPathValidator([]string{`^/var/log/`}, []string{`secret`})
	if err != nil {
		t.Fatalf("NewPathValidator: %v", err)
	}
	if !v.IsValid("/var/log/ripper/activity.log") {
		t.Fatal("allowed path rejected")
	}
	if v.IsValid("/var/log/secret/activity.log") {
		t.Fatal("blocked path accepted")
	}
	if v.IsValid("/tmp/activity.log") {
		t.Fatal("path outside allow list accepted")
	}
}

func TestPathValidatorInvalidExpression(t *testing.T) {
	if _, err := NewPathValidator([]string{`(`}, nil); err == nil {
		t.Fatal("expected error for invalid allow expression")
	}
	if _, err := NewPathValidator(nil, []string{`(`}); err == nil {
		t.Fatal("expected error for invalid block expression")
	}
}
