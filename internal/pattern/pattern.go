// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package pattern expands the strftime-style patterns used for journal
// filenames and entry titles, e.g. "%Y-%m.md" or "## %Y-%m-%d".
package pattern

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Expand substitutes strftime conversions in p for the given time.
// Text without conversions passes through unchanged.
func Expand(p string, t time.Time) string {
	return strftime.Format(p, t)
}

// Validate reports whether p can be expanded. Patterns are validated
// once at startup so a broken config fails before a session starts.
func Validate(p string) error {
	if p == "" {
		return fmt.Errorf("pattern is empty")
	}
	if _, err := strftime.Layout(p); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", p, err)
	}
	return nil
}
