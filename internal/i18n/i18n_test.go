package i18n

import (
	"strings"
	"testing"
)

func TestEnglishMessages(t *testing.T) {
	t.Parallel()
	tr, err := New("en")
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if got := tr.Msg("word-count"); got != "Word Count" {
		t.Fatalf("Msg(word-count) = %q", got)
	}
}

func TestGermanMessages(t *testing.T) {
	t.Parallel()
	tr, err := New("de")
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if got := tr.Msg("word-count"); got != "Wortzahl" {
		t.Fatalf("Msg(word-count) = %q", got)
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	t.Parallel()
	tr, err := New("fr-FR")
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if got := tr.Msg("title"); got != "Title" {
		t.Fatalf("Msg(title) = %q, want English fallback", got)
	}
}

func TestMissingMessageFallsBackToID(t *testing.T) {
	t.Parallel()
	tr, err := New("en")
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if got := tr.Msg("no-such-message"); got != "no-such-message" {
		t.Fatalf("missing message should fall back to the id, got %q", got)
	}
}

func TestMsgData(t *testing.T) {
	t.Parallel()
	tr, err := New("en")
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	got := tr.MsgData("storing-entry", map[string]any{"Path": "/tmp/2025-03.md"})
	if !strings.Contains(got, "/tmp/2025-03.md") {
		t.Fatalf("MsgData did not substitute path: %q", got)
	}
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := DetectLocale(); got != "de-DE" {
		t.Fatalf("DetectLocale() = %q, want de-DE", got)
	}

	t.Setenv("LC_ALL", "en_US.UTF-8")
	if got := DetectLocale(); got != "en-US" {
		t.Fatalf("LC_ALL should win, got %q", got)
	}

	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "C")
	if got := DetectLocale(); got != "en" {
		t.Fatalf("C locale should fall back to en, got %q", got)
	}
}
