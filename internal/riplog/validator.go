// Copyright (c) 2026 The RipWatch Authors. All rights reserved.
// Use of this source code is governed by the MIT License.
//
// RipWatch - rip pipeline activity log observer

package riplog

import (
	"fmt"
	"regexp"
	"strings"
)

// PathValidator decides whether a per-request log path override may be
// opened. Block rules win over allow rules; an empty allow list admits
// everything not blocked.
type PathValidator interface {
	IsValid(path string) bool
}

type pathValidator struct {
	allow []*regexp.Regexp
	block []*regexp.Regexp
}

// NewPathValidator compiles allow/block expressions. Empty expressions are
// ignored.
func NewPathValidator(allow, block []string) (PathValidator, error) {
	v := &pathValidator{}

	for _, exp := range allow {
		exp = strings.TrimSpace(exp)
		if exp == "" {
			continue
		}
		re, err := regexp.Compile(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid allow expression '%s': %w", exp, err)
		}
		v.allow = append(v.allow, re)
	}

	for _, exp := range block {
		exp = strings.TrimSpace(exp)
		if exp == "" {
			continue
		}
		re, err := regexp.Compile(exp)
		if err != nil {
			return nil, fmt.Errorf("invalid block expression '%s': %w", exp, err)
		}
		v.block = append(v.block, re)
	}

	return v, nil
}

func (v *pathValidator) IsValid(path string) bool {
	for _, e := range v.block {
		if e.MatchString(path) {
			return false
		}
	}
	if len(v.allow) == 0 {
		return true
	}
	for _, e := range v.allow {
		if e.MatchString(path) {
			return true
		}
	}
	return false
}
