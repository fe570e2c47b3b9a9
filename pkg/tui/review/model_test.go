package review

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/store"
)

type testConfig struct {
	path string
}

func (t *testConfig) BasePath() (string, error) {
	return t.path, nil
}

// wednesdayAt returns 2025-03-05 (a Wednesday, day index 2) at the given hour.
func wednesdayAt(hour int) time.Time {
	return time.Date(2025, time.March, 5, hour, 0, 0, 0, time.UTC)
}

func newTestJournal(t *testing.T) *journal.Journal {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return &journal.Journal{Persistence: p, Now: func() time.Time { return wednesdayAt(14) }}
}

func mustKey(t *testing.T, week, day, slot int) key.Activity {
	t.Helper()
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	return k
}

func reviewed(text string) *entry.Activity {
	a := entry.New(text, 0, 0, "")
	a.Status = entry.NeedsReview
	return a
}

func press(m Model, text string, code rune) Model {
	next, _ := m.Update(tea.KeyPressMsg{Text: text, Code: code})
	return next.(Model)
}

func loaded(t *testing.T, j *journal.Journal) Model {
	t.Helper()
	m := New(j)
	msg := m.Init()()
	if em, bad := msg.(errMsg); bad {
		t.Fatalf("load pending: %v", em.err)
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestConfirmFlowCompletesEntry(t *testing.T) {
	j := newTestJournal(t)
	k := mustKey(t, 0, 2, 8)
	if err := j.Persistence.PutActivity(k, reviewed("morning run")); err != nil {
		t.Fatalf("put: %v", err)
	}

	m := loaded(t, j)
	if got := stripANSI(m.View()); !strings.Contains(got, "morning run") {
		t.Fatalf("expected pending entry in view, got %q", got)
	}

	m = press(m, "y", 'y')
	m = press(m, "7", '7')
	m = press(m, "", tea.KeyEnter)
	m = press(m, "4", '4')
	m = press(m, "", tea.KeyEnter)

	a, ok := j.Get(k)
	if !ok {
		t.Fatalf("entry vanished")
	}
	if a.Status != entry.Completed {
		t.Fatalf("status = %q, want completed", a.Status)
	}
	if a.Pleasure != 7 || a.Mastery != 4 {
		t.Fatalf("ratings = %v/%v, want 7/4", a.Pleasure, a.Mastery)
	}
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want done", m.phase)
	}
}

func TestConfirmRefusesBadRating(t *testing.T) {
	j := newTestJournal(t)
	k := mustKey(t, 0, 2, 8)
	if err := j.Persistence.PutActivity(k, reviewed("morning run")); err != nil {
		t.Fatalf("put: %v", err)
	}

	m := loaded(t, j)
	m = press(m, "y", 'y')
	m = press(m, "0", '0')
	m = press(m, "", tea.KeyEnter)

	if m.phase != phasePleasure {
		t.Fatalf("expected to stay on pleasure prompt, phase = %v", m.phase)
	}
	if a, _ := j.Get(k); a.Status != entry.NeedsReview {
		t.Fatalf("entry should be untouched, status = %q", a.Status)
	}
}

func TestRejectThenReplacement(t *testing.T) {
	j := newTestJournal(t)
	k := mustKey(t, 0, 2, 8)
	if err := j.Persistence.PutActivity(k, reviewed("write report")); err != nil {
		t.Fatalf("put: %v", err)
	}

	m := loaded(t, j)
	m = press(m, "n", 'n')
	if m.phase != phaseReplacement {
		t.Fatalf("phase = %v, want replacement prompt", m.phase)
	}

	for _, r := range "tv" {
		m = press(m, string(r), r)
	}
	m = press(m, "", tea.KeyEnter)

	a, _ := j.Get(k)
	if a.Status != entry.Incomplete {
		t.Fatalf("status = %q, want incomplete", a.Status)
	}
	if a.Color != entry.White {
		t.Fatalf("color = %q, want white", a.Color)
	}
	if a.Replacement == nil || a.Replacement.Text != "tv" {
		t.Fatalf("replacement = %+v, want tv", a.Replacement)
	}
	if a.Text != "write report" {
		t.Fatalf("original text lost: %q", a.Text)
	}
}

func TestRejectWithoutReplacementKeepsRecord(t *testing.T) {
	j := newTestJournal(t)
	k := mustKey(t, 0, 2, 8)
	if err := j.Persistence.PutActivity(k, reviewed("write report")); err != nil {
		t.Fatalf("put: %v", err)
	}

	m := loaded(t, j)
	m = press(m, "n", 'n')
	m = press(m, "", tea.KeyEnter)

	a, _ := j.Get(k)
	if a.Status != entry.Incomplete || a.Replacement != nil {
		t.Fatalf("got %+v, want incomplete with no replacement", a)
	}
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want done", m.phase)
	}
}

func TestSkipLeavesEntryPending(t *testing.T) {
	j := newTestJournal(t)
	k := mustKey(t, 0, 2, 8)
	if err := j.Persistence.PutActivity(k, reviewed("morning run")); err != nil {
		t.Fatalf("put: %v", err)
	}

	m := loaded(t, j)
	m = press(m, "s", 's')

	if a, _ := j.Get(k); a.Status != entry.NeedsReview {
		t.Fatalf("skip must not touch the entry, status = %q", a.Status)
	}
	if m.skipped != 1 || m.phase != phaseDone {
		t.Fatalf("skipped = %d phase = %v", m.skipped, m.phase)
	}
}

func TestEmptyQueueRendersSummary(t *testing.T) {
	j := newTestJournal(t)
	m := loaded(t, j)

	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want done", m.phase)
	}
	if got := stripANSI(m.View()); !strings.Contains(got, "All caught up") {
		t.Fatalf("view = %q", got)
	}
}
