// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package tui runs a writing session: it hosts the Bubble Tea program
// and appends the finished entry to the journal when the screen
// closes.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"writingbuddy/internal/config"
	"writingbuddy/internal/i18n"
	"writingbuddy/internal/journal"
	"writingbuddy/internal/logger"
	"writingbuddy/internal/pattern"
	"writingbuddy/internal/session"
	"writingbuddy/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// RunTUI loads the configuration and runs a session with it. Used
// when the binary is started without arguments.
func RunTUI() {
	logger.InitLogger(true)

	cfg, source, err := config.Load("")
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if source != "" {
		logger.Info("loaded config", "path", source)
	}

	if err := Run(cfg); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Run validates cfg, runs the session screen, and stores the entry.
func Run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tr, err := i18n.New(i18n.DetectLocale())
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	p := tea.NewProgram(ui.NewModel(cfg, tr), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	final, ok := finalModel.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", finalModel)
	}

	if final.Aborted() {
		fmt.Println(tr.Msg("aborted"))
		logger.Info("session aborted, nothing saved")
		return nil
	}

	entry := final.Entry(time.Now())
	if !entry.HasBody() {
		fmt.Println(tr.Msg("nothing-saved"))
		return nil
	}

	dir, err := config.ResolvePath(cfg.JournalDir)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, pattern.Expand(cfg.FilePattern, entry.CreatedAt))

	if err := journal.Append(path, entry); err != nil {
		logger.Error("failed to store entry", "path", path, "error", err)
		return err
	}

	successColor.Println(tr.MsgData("storing-entry", map[string]any{"Path": path}))
	logger.Info("entry stored", "path", path, "words", session.CountWords(entry.Body))
	return nil
}
