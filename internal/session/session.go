// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package session holds the state and policy of a single writing
// session: word/time goals, the strict-mode exit gate, and the
// keystroke timer that wipes the buffer when typing pauses too long.
//
// The elapsed writing time is owned by the caller (the UI stopwatch)
// and passed in where a check needs it, which keeps this package free
// of timers and easy to test.
package session

import (
	"strings"
	"time"
)

// Goals are the optional targets a session is written against.
// A zero value means the corresponding goal is not set.
type Goals struct {
	// Words is the minimum word count to reach (0 = no goal).
	Words int

	// Time is the minimum writing time to accumulate (0 = no goal).
	Time time.Duration
}

// Urgency describes how close the keystroke timer is to firing.
// The UI maps these to colors on the text panel.
type Urgency int

const (
	UrgencyIdle    Urgency = iota // timer disabled or not armed
	UrgencyCalm                   // below half of the timeout
	UrgencyWarning                // past half of the timeout
	UrgencyDanger                 // past 80% of the timeout
)

// Session tracks the mutable state of one writing session. It is
// created when the TUI starts and discarded on exit; only the entry
// text survives.
type Session struct {
	Goals          Goals
	Strict         bool
	AllowBackspace bool

	// KeystrokeTimeout is the maximum gap allowed between keystrokes
	// before the buffer is wiped. 0 disables the timer.
	KeystrokeTimeout time.Duration

	lastKeystroke time.Time
}

// New returns a session with the given policy. The keystroke timer
// starts disarmed; it arms on the first recorded keystroke.
func New(goals Goals, strict, allowBackspace bool, keystrokeTimeout time.Duration) *Session {
	return &Session{
		Goals:            goals,
		Strict:           strict,
		AllowBackspace:   allowBackspace,
		KeystrokeTimeout: keystrokeTimeout,
	}
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// RecordKeystroke arms (or re-arms) the keystroke timer.
func (s *Session) RecordKeystroke(now time.Time) {
	s.lastKeystroke = now
}

// Disarm clears the keystroke timer, e.g. when leaving writing mode
// or after a timeout wipe.
func (s *Session) Disarm() {
	s.lastKeystroke = time.Time{}
}

// Armed reports whether a keystroke has been recorded since the timer
// was last disarmed.
func (s *Session) Armed() bool {
	return !s.lastKeystroke.IsZero()
}

// TimedOut reports whether the gap since the last keystroke exceeds
// the configured timeout. It is always false while the timer is
// disabled or disarmed.
func (s *Session) TimedOut(now time.Time) bool {
	if s.KeystrokeTimeout <= 0 || !s.Armed() {
		return false
	}
	return now.Sub(s.lastKeystroke) > s.KeystrokeTimeout
}

// Urgency returns how close the keystroke timer is to firing.
func (s *Session) Urgency(now time.Time) Urgency {
	if s.KeystrokeTimeout <= 0 || !s.Armed() {
		return UrgencyIdle
	}
	gap := now.Sub(s.lastKeystroke)
	switch {
	case gap > time.Duration(0.8*float64(s.KeystrokeTimeout)):
		return UrgencyDanger
	case gap > time.Duration(0.5*float64(s.KeystrokeTimeout)):
		return UrgencyWarning
	default:
		return UrgencyCalm
	}
}

// WordGoalMet reports whether the word goal is satisfied. An unset
// goal is always met.
func (s *Session) WordGoalMet(wordCount int) bool {
	return s.Goals.Words <= 0 || wordCount >= s.Goals.Words
}

// TimeGoalMet reports whether the time goal is satisfied. An unset
// goal is always met.
func (s *Session) TimeGoalMet(elapsed time.Duration) bool {
	return s.Goals.Time <= 0 || elapsed >= s.Goals.Time
}

// GoalsMet reports whether every configured goal is satisfied.
func (s *Session) GoalsMet(wordCount int, elapsed time.Duration) bool {
	return s.WordGoalMet(wordCount) && s.TimeGoalMet(elapsed)
}

// CanFinish reports whether the user may leave writing mode. Strict
// mode refuses until all configured goals are met.
func (s *Session) CanFinish(wordCount int, elapsed time.Duration) bool {
	return !s.Strict || s.GoalsMet(wordCount, elapsed)
}
