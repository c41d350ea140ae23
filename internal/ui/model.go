// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the writing session screen as a Bubble Tea
// model: a title field, the text buffer, and the word-count and time
// panels, with the strict-mode gate and the keystroke timer wired in.
package ui

import (
	"strings"
	"time"

	"writingbuddy/internal/config"
	"writingbuddy/internal/i18n"
	"writingbuddy/internal/journal"
	"writingbuddy/internal/pattern"
	"writingbuddy/internal/session"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for one writing session.
type Model struct {
	keymap KeyMap
	tr     *i18n.Translator
	sess   *session.Session

	titleInput textinput.Model
	body       textarea.Model
	stopwatch  stopwatch.Model

	mode    inputMode
	width   int
	height  int
	aborted bool

	// now is swapped out in tests.
	now func() time.Time
}

// NewModel builds the session model from the effective configuration.
// The title field is prefilled with the expanded title pattern.
func NewModel(cfg config.Config, tr *i18n.Translator) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(pattern.Expand(cfg.TitlePattern, time.Now()))
	ti.CursorEnd()
	ti.Focus()

	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	if !cfg.Backspace {
		// The delete key family becomes a no-op while writing.
		ta.KeyMap.DeleteCharacterBackward.SetEnabled(false)
		ta.KeyMap.DeleteCharacterForward.SetEnabled(false)
		ta.KeyMap.DeleteWordBackward.SetEnabled(false)
		ta.KeyMap.DeleteWordForward.SetEnabled(false)
		ta.KeyMap.DeleteBeforeCursor.SetEnabled(false)
		ta.KeyMap.DeleteAfterCursor.SetEnabled(false)
	}

	sess := session.New(
		session.Goals{Words: cfg.WordGoal, Time: cfg.TimeGoal.Std()},
		cfg.Strict,
		cfg.Backspace,
		cfg.KeystrokeTimeout.Std(),
	)

	return Model{
		keymap:     DefaultKeyMap,
		tr:         tr,
		sess:       sess,
		titleInput: ti,
		body:       ta,
		stopwatch:  stopwatch.NewWithInterval(tickInterval),
		mode:       modeTitle,
		now:        time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Aborted reports whether the session ended without saving (Ctrl+C).
func (m Model) Aborted() bool {
	return m.aborted
}

// Entry returns the finished entry for the journal writer.
func (m Model) Entry(now time.Time) journal.Entry {
	return journal.Entry{
		Title:     strings.TrimSpace(m.titleInput.Value()),
		Body:      m.body.Value(),
		CreatedAt: now,
	}
}

func (m Model) wordCount() int {
	return session.CountWords(m.body.Value())
}

func (m Model) canFinish() bool {
	return m.sess.CanFinish(m.wordCount(), m.stopwatch.Elapsed())
}

// layout sizes the input widgets for the current terminal dimensions.
func (m *Model) layout() {
	innerWidth := m.width - 4
	if innerWidth < minBodyWidth {
		innerWidth = minBodyWidth
	}
	m.titleInput.Width = innerWidth
	m.body.SetWidth(innerWidth)

	// Three fixed panels (instructions, title, stats) with one content
	// line each; the text panel gets the rest.
	bodyHeight := m.height - 3*(panelChrome+1) - panelChrome
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}
	m.body.SetHeight(bodyHeight)
}
