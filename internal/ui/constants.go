// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "time"

// inputMode represents the two input modes of the session screen.
type inputMode int

const (
	modeTitle inputMode = iota
	modeWriting
)

const (
	// tickInterval drives redraws and the keystroke-timer check while
	// the stopwatch runs.
	tickInterval = 250 * time.Millisecond

	// panelChrome is the rows a bordered panel adds around its
	// content: two border rows plus the label line.
	panelChrome = 3

	minBodyHeight = 3
	minBodyWidth  = 20
)
