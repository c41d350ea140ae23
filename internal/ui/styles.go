// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))   // focused / in progress
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // goal reached
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // goal unmet / timer past half
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // timer about to fire
	passiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // unfocused / no goal

	panelLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true)

	activeBorderStyle  = panelBorderStyle.BorderForeground(lipgloss.Color("6"))
	warningBorderStyle = panelBorderStyle.BorderForeground(lipgloss.Color("11"))
	dangerBorderStyle  = panelBorderStyle.BorderForeground(lipgloss.Color("9"))
	passiveBorderStyle = panelBorderStyle.BorderForeground(lipgloss.Color("238"))
)
