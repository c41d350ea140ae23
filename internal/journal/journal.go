// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package journal writes finished entries to flat markdown files and
// scans a journal directory for the stats command. Files are only ever
// appended to; existing content is never rewritten.
package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one finished writing session ready to be stored.
type Entry struct {
	// Title is the entry header line, usually expanded from the title
	// pattern (e.g. "## 2025-03-07"). May be empty.
	Title string

	// Body is the text written during the session.
	Body string

	// CreatedAt is the time the session ended.
	CreatedAt time.Time
}

// HasBody reports whether the entry contains any text. Empty entries
// are never written.
func (e Entry) HasBody() bool {
	return e.Body != ""
}

// Format renders the entry as it appears in the journal file: the
// title line when present, the body, and a trailing blank line to
// separate it from the next entry.
func (e Entry) Format() string {
	var b strings.Builder
	if e.Title != "" {
		b.WriteString(e.Title)
		b.WriteString("\n")
	}
	b.WriteString(e.Body)
	b.WriteString("\n\n")
	return b.String()
}

// Append writes the entry to the end of the journal file at path,
// creating the file and its parent directory if needed. The file is
// opened append-only so prior entries cannot be truncated.
func Append(path string, e Entry) error {
	if !e.HasBody() {
		return fmt.Errorf("refusing to write an empty entry")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create journal directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("failed to open journal file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(e.Format()); err != nil {
		return fmt.Errorf("failed to append entry to %s: %w", path, err)
	}
	return nil
}

// Stats summarizes the markdown files of a journal directory.
type Stats struct {
	// Files is the number of markdown files found.
	Files int

	// Entries counts entry header lines (lines starting with '#').
	Entries int

	// Words counts the words of all non-header lines.
	Words int

	// Newest is the modification time of the most recently written
	// file; NewestFile is its name. Zero when no files were found.
	Newest     time.Time
	NewestFile string
}

// Scan reads every *.md file directly under dir and tallies entries
// and words. A missing directory yields empty stats rather than an
// error, since a fresh setup has no journal yet.
func Scan(dir string) (Stats, error) {
	var stats Stats

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("failed to read journal directory %s: %w", dir, err)
	}

	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		entries, words, err := tallyFile(path)
		if err != nil {
			return stats, err
		}
		stats.Files++
		stats.Entries += entries
		stats.Words += words

		if info, err := de.Info(); err == nil && info.ModTime().After(stats.Newest) {
			stats.Newest = info.ModTime()
			stats.NewestFile = de.Name()
		}
	}
	return stats, nil
}

func tallyFile(path string) (entries, words int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read journal file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			entries++
			continue
		}
		words += len(strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to scan journal file %s: %w", path, err)
	}
	return entries, words, nil
}
