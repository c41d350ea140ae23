// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger provides the application-wide structured logger.
// Logs always go to a file under the XDG state directory; stderr is
// mirrored only outside the TUI, where it would corrupt the screen.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// LogFilePath determines the path for the application log file based
// on the XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "writingbuddy", "app.log"), nil
}

// InitLogger initializes the default logger. isTUI suppresses the
// stderr mirror so log lines never bleed into the alternate screen.
// Safe to call more than once; the last call wins.
func InitLogger(isTUI bool) {
	var writers []io.Writer

	logFilePath, err := LogFilePath()
	if err == nil {
		logDir := filepath.Dir(logFilePath)
		if mkErr := os.MkdirAll(logDir, 0750); mkErr == nil {
			file, openErr := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if openErr == nil {
				writers = append(writers, file)
			} else if !isTUI {
				fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, openErr)
			}
		}
	}

	if !isTUI {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	defaultLogger = slog.New(handler)
}

func checkLogger() {
	if defaultLogger == nil {
		InitLogger(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}
