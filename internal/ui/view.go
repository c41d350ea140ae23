// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strconv"

	"writingbuddy/internal/session"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	instructions := m.panel(
		m.tr.Msg("instructions"),
		instructionStyle.Render(m.instructionText()),
		m.width,
		passiveBorderStyle,
	)
	title := m.panel(m.tr.Msg("title"), m.titleInput.View(), m.width, m.titleBorderStyle())
	text := m.panel(m.tr.Msg("text"), m.body.View(), m.width, m.textBorderStyle())

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth
	words := m.panel(
		m.tr.Msg("word-count"),
		m.wordCountStyle().Render(m.wordCountText()),
		leftWidth,
		passiveBorderStyle,
	)
	elapsed := m.panel(
		m.tr.Msg("time"),
		m.timeStyle().Render(m.timeText()),
		rightWidth,
		passiveBorderStyle,
	)
	stats := lipgloss.JoinHorizontal(lipgloss.Top, words, elapsed)

	return lipgloss.JoinVertical(lipgloss.Left, instructions, title, text, stats)
}

// panel renders a bordered box with a label line above the content.
// width is the outer width including the border.
func (m Model) panel(label, content string, width int, border lipgloss.Style) string {
	inner := lipgloss.JoinVertical(lipgloss.Left, panelLabelStyle.Render(label), content)
	return border.Width(width - 2).Render(inner)
}

func (m Model) instructionText() string {
	if m.mode == modeWriting {
		if !m.canFinish() {
			return m.tr.Msg("keep-writing")
		}
		return m.tr.Msg("stop-writing")
	}

	exit := m.tr.Msg("exit-no-save")
	if m.body.Value() != "" {
		exit = m.tr.Msg("exit-save")
	}
	return exit + " " + m.tr.Msg("start-writing")
}

func (m Model) wordCountText() string {
	wc := m.wordCount()
	if m.sess.Goals.Words > 0 {
		return fmt.Sprintf("%d/%d", wc, m.sess.Goals.Words)
	}
	return strconv.Itoa(wc)
}

func (m Model) timeText() string {
	secs := int(m.stopwatch.Elapsed().Seconds())
	if m.sess.Goals.Time > 0 {
		return fmt.Sprintf("%d s/%d s", secs, int(m.sess.Goals.Time.Seconds()))
	}
	return fmt.Sprintf("%d s", secs)
}

func (m Model) wordCountStyle() lipgloss.Style {
	if m.sess.Goals.Words <= 0 {
		return passiveStyle
	}
	if m.sess.WordGoalMet(m.wordCount()) {
		return doneStyle
	}
	return warningStyle
}

func (m Model) timeStyle() lipgloss.Style {
	if m.sess.Goals.Time <= 0 {
		return passiveStyle
	}
	if m.sess.TimeGoalMet(m.stopwatch.Elapsed()) {
		return doneStyle
	}
	return activeStyle
}

// titleBorderStyle highlights the title panel while it is focused.
func (m Model) titleBorderStyle() lipgloss.Style {
	if m.mode == modeTitle {
		return activeBorderStyle
	}
	return passiveBorderStyle
}

// textBorderStyle colors the text panel by keystroke-timer urgency
// while writing, so the border works as a countdown warning.
func (m Model) textBorderStyle() lipgloss.Style {
	if m.mode != modeWriting {
		return passiveBorderStyle
	}
	switch m.sess.Urgency(m.now()) {
	case session.UrgencyDanger:
		return dangerBorderStyle
	case session.UrgencyWarning:
		return warningBorderStyle
	default:
		return activeBorderStyle
	}
}
