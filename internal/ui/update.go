// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeWriting {
			return m.updateWriting(msg)
		}
		return m.updateTitle(msg)

	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		cmds := []tea.Cmd{cmd}
		if _, isTick := msg.(stopwatch.TickMsg); isTick && m.mode == modeWriting && m.sess.TimedOut(m.now()) {
			// The penalty: the pause was too long, the text is gone.
			m.body.SetValue("")
			m.sess.Disarm()
			cmds = append(cmds, m.stopwatch.Reset(), m.stopwatch.Stop())
		}
		return m, tea.Batch(cmds...)
	}

	// Everything else (cursor blinks etc.) goes to the focused widget.
	var cmd tea.Cmd
	if m.mode == modeWriting {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

// updateTitle handles keys while the title field is focused.
func (m Model) updateTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Finish):
		// Leave the session; the entry is saved afterwards if there is
		// any text.
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Start):
		m.mode = modeWriting
		m.titleInput.Blur()
		return m, tea.Batch(m.body.Focus(), m.stopwatch.Start())
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// updateWriting handles keys while the text buffer is focused. Exit is
// refused while strict mode has unmet goals.
func (m Model) updateWriting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Abort):
		if !m.canFinish() {
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Finish):
		if !m.canFinish() {
			return m, nil
		}
		m.mode = modeTitle
		m.sess.Disarm()
		m.body.Blur()
		return m, tea.Batch(m.titleInput.Focus(), m.stopwatch.Stop())
	}

	if isDeleteKey(msg) && !m.sess.AllowBackspace {
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	cmds = append(cmds, cmd)

	if isPrintableKey(msg) {
		m.sess.RecordKeystroke(m.now())
		if !m.stopwatch.Running() {
			cmds = append(cmds, m.stopwatch.Start())
		}
	}
	return m, tea.Batch(cmds...)
}

func isDeleteKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyCtrlH, tea.KeyCtrlW, tea.KeyCtrlK, tea.KeyCtrlU:
		return true
	}
	return false
}

// isPrintableKey reports whether the key adds visible text. Only these
// keys feed the keystroke timer and restart the stopwatch, matching
// the rule that hesitation is measured between typed characters.
func isPrintableKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}
