package journal

import (
	"tableflip.dev/weeklog/pkg/entry"
)

// WeekStats aggregates one week's records.
type WeekStats struct {
	Week int

	Entries   int
	Planned   int
	Pending   int
	Completed int
	Missed    int
	Logged    int

	Replacements int

	AvgPleasure float64
	AvgMastery  float64
	AvgMood     float64
	MoodDays    int
}

// Report summarizes entries and moods over a window of weeks.
type Report struct {
	// FromWeek..0 inclusive, oldest first.
	FromWeek int
	Weeks    []WeekStats

	TotalEntries   int
	TotalCompleted int
	TotalMissed    int
}

// CompletionRate is completed over resolved plans; logged-after-the-fact
// entries don't count either way.
func (r Report) CompletionRate() float64 {
	resolved := r.TotalCompleted + r.TotalMissed
	if resolved == 0 {
		return 0
	}
	return float64(r.TotalCompleted) / float64(resolved)
}

// Stats aggregates the journal from fromWeek (a non-positive offset) through
// the current week, after a refresh pass.
func (j *Journal) Stats(fromWeek int) (Report, error) {
	if fromWeek > 0 {
		fromWeek = 0
	}
	if _, err := j.Refresh(); err != nil {
		return Report{}, err
	}

	weeks := make(map[int]*WeekStats)
	week := func(w int) *WeekStats {
		ws, ok := weeks[w]
		if !ok {
			ws = &WeekStats{Week: w}
			weeks[w] = ws
		}
		return ws
	}

	type ratingAcc struct {
		sum   int
		count int
	}
	pleasure := make(map[int]*ratingAcc)
	mastery := make(map[int]*ratingAcc)

	rate := func(acc map[int]*ratingAcc, w int, r entry.Rating) {
		if !r.Set() {
			return
		}
		a, ok := acc[w]
		if !ok {
			a = &ratingAcc{}
			acc[w] = a
		}
		a.sum += int(r)
		a.count++
	}

	for k, a := range j.Persistence.Activities() {
		if k.Week < fromWeek || k.Week > 0 {
			continue
		}
		ws := week(k.Week)
		ws.Entries++
		switch a.Status {
		case entry.Planned:
			ws.Planned++
		case entry.NeedsReview:
			ws.Pending++
		case entry.Completed:
			ws.Completed++
		case entry.Incomplete:
			ws.Missed++
		default:
			ws.Logged++
		}
		if a.Replacement != nil {
			ws.Replacements++
			rate(pleasure, k.Week, a.Replacement.Pleasure)
			rate(mastery, k.Week, a.Replacement.Mastery)
		}
		rate(pleasure, k.Week, a.Pleasure)
		rate(mastery, k.Week, a.Mastery)
	}

	for k, m := range j.Persistence.Moods() {
		if k.Week < fromWeek || k.Week > 0 {
			continue
		}
		ws := week(k.Week)
		ws.AvgMood += float64(m)
		ws.MoodDays++
	}

	report := Report{FromWeek: fromWeek}
	for w := fromWeek; w <= 0; w++ {
		ws, ok := weeks[w]
		if !ok {
			continue
		}
		if a := pleasure[w]; a != nil && a.count > 0 {
			ws.AvgPleasure = float64(a.sum) / float64(a.count)
		}
		if a := mastery[w]; a != nil && a.count > 0 {
			ws.AvgMastery = float64(a.sum) / float64(a.count)
		}
		if ws.MoodDays > 0 {
			ws.AvgMood /= float64(ws.MoodDays)
		}
		report.Weeks = append(report.Weeks, *ws)
		report.TotalEntries += ws.Entries
		report.TotalCompleted += ws.Completed
		report.TotalMissed += ws.Missed
	}
	return report, nil
}
