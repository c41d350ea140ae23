package pattern

import (
	"testing"
	"time"
)

func TestExpand(t *testing.T) {
	t.Parallel()
	ref := time.Date(2025, time.March, 7, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		pattern string
		want    string
	}{
		{"%Y-%m.md", "2025-03.md"},
		{"## %Y-%m-%d", "## 2025-03-07"},
		{"journal.md", "journal.md"},
		{"%d.%m.%Y", "07.03.2025"},
	}
	for _, c := range cases {
		if got := Expand(c.pattern, ref); got != c.want {
			t.Fatalf("Expand(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := Validate("## %Y-%m-%d"); err != nil {
		t.Fatalf("valid pattern rejected: %v", err)
	}
	if err := Validate(""); err == nil {
		t.Fatalf("empty pattern must be rejected")
	}
}
