package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	e := Entry{Title: "## 2025-03-07", Body: "a quiet morning", CreatedAt: time.Now()}
	want := "## 2025-03-07\na quiet morning\n\n"
	if got := e.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}

	untitled := Entry{Body: "no header today"}
	if got := untitled.Format(); got != "no header today\n\n" {
		t.Fatalf("untitled Format() = %q", got)
	}
}

func TestAppendCreatesFileAndDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "journal", "2025-03.md")

	if err := Append(path, Entry{Title: "## day one", Body: "hello"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "## day one\nhello\n\n" {
		t.Fatalf("unexpected file content: %q", data)
	}
}

func TestAppendNeverTruncates(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "2025-03.md")

	first := Entry{Title: "## day one", Body: "first entry"}
	second := Entry{Title: "## day two", Body: "second entry"}
	if err := Append(path, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after first append: %v", err)
	}
	if err := Append(path, second); err != nil {
		t.Fatalf("append second: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after second append: %v", err)
	}

	if !strings.HasPrefix(string(after), string(before)) {
		t.Fatalf("second append modified prior content")
	}
	if !strings.HasSuffix(string(after), second.Format()) {
		t.Fatalf("second entry missing from file end: %q", after)
	}
}

func TestAppendRejectsEmptyEntry(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "x.md")
	if err := Append(path, Entry{Title: "## only a title"}); err == nil {
		t.Fatalf("empty entry must be rejected")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty entry must not create a file")
	}
}

func TestScan(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a := Entry{Title: "## 2025-02-01", Body: "three little words"}
	b := Entry{Title: "## 2025-02-02", Body: "two words"}
	if err := Append(filepath.Join(dir, "2025-02.md"), a); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := Append(filepath.Join(dir, "2025-02.md"), b); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := Append(filepath.Join(dir, "2025-03.md"), Entry{Body: "untitled entry"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Non-markdown files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("# not a journal\n"), 0640); err != nil {
		t.Fatalf("write decoy: %v", err)
	}

	stats, err := Scan(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if stats.Files != 2 {
		t.Fatalf("Files = %d, want 2", stats.Files)
	}
	if stats.Entries != 2 {
		t.Fatalf("Entries = %d, want 2", stats.Entries)
	}
	if stats.Words != 3+2+2 {
		t.Fatalf("Words = %d, want 7", stats.Words)
	}
	if stats.NewestFile == "" {
		t.Fatalf("NewestFile should be set")
	}
}

func TestScanMissingDirectory(t *testing.T) {
	t.Parallel()
	stats, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if stats.Files != 0 || stats.Entries != 0 || stats.Words != 0 {
		t.Fatalf("missing directory should yield empty stats: %+v", stats)
	}
}
