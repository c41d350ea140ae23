// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the session screen.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the writing session. Everything
// else is text input.
type KeyMap struct {
	Start  key.Binding // begin writing from the title field
	Finish key.Binding // leave writing mode / leave the session
	Abort  key.Binding // leave without saving
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start writing"),
	),
	Finish: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stop/save"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
}
