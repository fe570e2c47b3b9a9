package journal

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/store"
)

func statsEntry(t *testing.T, j *Journal, week, day, slot int, status entry.Status, p, m entry.Rating) {
	t.Helper()
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	a := entry.New("x", p, m, "")
	a.Status = status
	if err := j.Persistence.PutActivity(k, a); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func TestStatsAggregatesWindow(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	j := &Journal{Persistence: p, Now: func() time.Time { return wednesdayAt(14) }}

	statsEntry(t, j, 0, 0, 9, entry.Completed, 8, 6)
	statsEntry(t, j, 0, 0, 10, entry.Completed, 6, 4)
	statsEntry(t, j, 0, 1, 9, entry.Incomplete, 0, 0)
	statsEntry(t, j, -1, 2, 9, entry.Completed, 10, 10)
	statsEntry(t, j, -3, 2, 9, entry.Completed, 2, 2) // outside the window

	mk, err := key.NewMood(0, 0)
	if err != nil {
		t.Fatalf("mood key: %v", err)
	}
	if err := j.SetMood(mk, 7); err != nil {
		t.Fatalf("mood: %v", err)
	}

	report, err := j.Stats(-1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if len(report.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(report.Weeks))
	}
	if report.Weeks[0].Week != -1 || report.Weeks[1].Week != 0 {
		t.Fatalf("week order = %+v, want oldest first", report.Weeks)
	}

	current := report.Weeks[1]
	if current.Entries != 3 || current.Completed != 2 || current.Missed != 1 {
		t.Fatalf("current week = %+v", current)
	}
	if math.Abs(current.AvgPleasure-7.0) > 1e-9 {
		t.Fatalf("avg pleasure = %v, want 7", current.AvgPleasure)
	}
	if math.Abs(current.AvgMood-7.0) > 1e-9 {
		t.Fatalf("avg mood = %v, want 7", current.AvgMood)
	}

	if report.TotalEntries != 4 || report.TotalCompleted != 3 || report.TotalMissed != 1 {
		t.Fatalf("totals = %+v", report)
	}
	if math.Abs(report.CompletionRate()-0.75) > 1e-9 {
		t.Fatalf("completion rate = %v, want 0.75", report.CompletionRate())
	}
}

func TestStatsCountsReplacementRatings(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	j := &Journal{Persistence: p, Now: func() time.Time { return wednesdayAt(14) }}

	k, err := key.NewActivity(0, 0, 9)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	a := entry.New("write report", 0, 0, "")
	a.Status = entry.Incomplete
	a.Replacement = &entry.Replacement{Text: "tv", Pleasure: 6, Mastery: 2}
	if err := j.Persistence.PutActivity(k, a); err != nil {
		t.Fatalf("put: %v", err)
	}

	report, err := j.Stats(0)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	ws := report.Weeks[0]
	if ws.Replacements != 1 {
		t.Fatalf("replacements = %d", ws.Replacements)
	}
	if math.Abs(ws.AvgPleasure-6.0) > 1e-9 || math.Abs(ws.AvgMastery-2.0) > 1e-9 {
		t.Fatalf("replacement ratings not counted: %+v", ws)
	}
}
