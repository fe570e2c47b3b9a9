package printers

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/weeklog/pkg/entry"
)

func TestEntryRendering(t *testing.T) {
	color.NoColor = true
	styled = false
	pp := &PrettyPrint{}

	a := entry.New("swimming", 0, 0, entry.Green)
	a.Status = entry.Planned
	got := pp.Entry(a)
	if !strings.Contains(got, "swimming") {
		t.Fatalf("missing text: %q", got)
	}
	if !strings.HasPrefix(got, "○") {
		t.Fatalf("expected planned marker, got %q", got)
	}
}

func TestEntryRenderingReplacement(t *testing.T) {
	color.NoColor = true
	styled = false
	pp := &PrettyPrint{}

	a := entry.New("write report", 0, 0, entry.Blue)
	a.Status = entry.Incomplete
	a.Replacement = &entry.Replacement{Text: "watched tv", Pleasure: 6, Mastery: 2, Color: entry.Red}

	got := pp.Entry(a)
	if !strings.Contains(got, "write report") || !strings.Contains(got, "watched tv") {
		t.Fatalf("replacement not rendered: %q", got)
	}
	if !strings.Contains(got, "→") {
		t.Fatalf("expected arrow between plan and replacement: %q", got)
	}
}

func TestRatings(t *testing.T) {
	color.NoColor = true

	a := entry.New("run", 7, 4, entry.Gray)
	if got := ratings(a); !strings.Contains(got, "P:7") || !strings.Contains(got, "M:4") {
		t.Fatalf("ratings = %q", got)
	}

	b := entry.New("run", 0, 0, entry.Gray)
	if got := ratings(b); got != "" {
		t.Fatalf("expected empty ratings, got %q", got)
	}
}
