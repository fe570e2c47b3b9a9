package status

import (
	"testing"
	"time"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
)

func mustKey(t *testing.T, week, day, slot int) key.Activity {
	t.Helper()
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		t.Fatalf("key(%d,%d,%d): %v", week, day, slot, err)
	}
	return k
}

// 2025-03-05 is a Wednesday, so the Monday-indexed day is 2.
func wednesdayAt(hour int) time.Time {
	return time.Date(2025, time.March, 5, hour, 15, 0, 0, time.Local)
}

var allStatuses = []entry.Status{
	entry.None, entry.Planned, entry.NeedsReview, entry.Completed, entry.Incomplete,
}

func TestCompletedIsTerminal(t *testing.T) {
	for week := -2; week <= 2; week++ {
		for day := 0; day < calendar.DaysPerWeek; day++ {
			for _, hour := range []int{0, 11, 23} {
				k := mustKey(t, week, day, hour)
				if got := Next(k, entry.Completed, wednesdayAt(14)); got != entry.Completed {
					t.Fatalf("Next(%v, completed) = %q", k, got)
				}
			}
		}
	}
}

func TestFutureWeekAlwaysPlanned(t *testing.T) {
	for _, current := range allStatuses {
		if current == entry.Completed {
			continue
		}
		for day := 0; day < calendar.DaysPerWeek; day++ {
			k := mustKey(t, 1, day, 9)
			if got := Next(k, current, wednesdayAt(14)); got != entry.Planned {
				t.Fatalf("Next(week=+1, %q) = %q, want planned", current, got)
			}
		}
	}
}

func TestPastWeekFrozen(t *testing.T) {
	for _, current := range allStatuses {
		for day := 0; day < calendar.DaysPerWeek; day++ {
			k := mustKey(t, -1, day, 9)
			if got := Next(k, current, wednesdayAt(14)); got != current {
				t.Fatalf("Next(week=-1, %q) = %q, want unchanged", current, got)
			}
		}
	}
}

func TestCurrentWeekLaterDayIsPlanned(t *testing.T) {
	now := wednesdayAt(14) // day 2
	for day := 3; day < calendar.DaysPerWeek; day++ {
		k := mustKey(t, 0, day, 0)
		for _, current := range []entry.Status{entry.None, entry.Planned, entry.Incomplete} {
			if got := Next(k, current, now); got != entry.Planned {
				t.Fatalf("Next(day=%d, %q) = %q, want planned", day, current, got)
			}
		}
	}
}

func TestCurrentWeekEarlierDayReviewsPlans(t *testing.T) {
	now := wednesdayAt(14)
	k := mustKey(t, 0, 1, 9) // Tuesday, already past

	if got := Next(k, entry.Planned, now); got != entry.NeedsReview {
		t.Fatalf("expected needs-review, got %q", got)
	}
	for _, current := range []entry.Status{entry.None, entry.NeedsReview, entry.Incomplete} {
		if got := Next(k, current, now); got != current {
			t.Fatalf("Next(%q) = %q, want unchanged", current, got)
		}
	}
}

func TestTodaySlotBoundary(t *testing.T) {
	now := wednesdayAt(14)

	// Slot 10 ("10-11 am") has fully elapsed by hour 14.
	elapsed := mustKey(t, 0, 2, 10)
	if got := Next(elapsed, entry.Planned, now); got != entry.NeedsReview {
		t.Fatalf("elapsed slot: expected needs-review, got %q", got)
	}

	// Slot 15 is still at or ahead of the current hour.
	ahead := mustKey(t, 0, 2, 15)
	if got := Next(ahead, entry.Planned, now); got != entry.Planned {
		t.Fatalf("future slot: expected planned, got %q", got)
	}

	// The slot containing the current hour has not fully elapsed either.
	current := mustKey(t, 0, 2, 14)
	if got := Next(current, entry.Planned, now); got != entry.Planned {
		t.Fatalf("current slot: expected planned, got %q", got)
	}

	// Entries never marked planned stay untouched when their time passes.
	if got := Next(elapsed, entry.None, now); got != entry.None {
		t.Fatalf("elapsed none: expected none, got %q", got)
	}
}

func TestIdempotent(t *testing.T) {
	now := wednesdayAt(14)
	for week := -1; week <= 1; week++ {
		for day := 0; day < calendar.DaysPerWeek; day++ {
			for slot := 0; slot < calendar.SlotsPerDay; slot += 5 {
				k := mustKey(t, week, day, slot)
				for _, current := range allStatuses {
					once := Next(k, current, now)
					twice := Next(k, once, now)
					if once != twice {
						t.Fatalf("not idempotent at %v from %q: %q then %q", k, current, once, twice)
					}
				}
			}
		}
	}
}

// A plan in the current week, observed hour by hour through the week, never
// returns to planned once it needed review and never reaches needs-review
// once completed.
func TestMonotonicUnderTimeAdvance(t *testing.T) {
	k := mustKey(t, 0, 2, 10) // Wednesday 10-11 am
	monday := time.Date(2025, time.March, 3, 0, 30, 0, 0, time.Local)

	current := entry.Planned
	seenReview := false
	for h := 0; h < calendar.DaysPerWeek*calendar.SlotsPerDay; h++ {
		now := monday.Add(time.Duration(h) * time.Hour)
		current = Next(k, current, now)
		switch current {
		case entry.NeedsReview:
			seenReview = true
		case entry.Planned:
			if seenReview {
				t.Fatalf("re-entered planned at hour %d", h)
			}
		}
	}
	if !seenReview {
		t.Fatalf("plan never came up for review")
	}

	// Completing mid-week pins the status for the rest of the week.
	current = entry.Completed
	for h := 0; h < calendar.DaysPerWeek*calendar.SlotsPerDay; h++ {
		now := monday.Add(time.Duration(h) * time.Hour)
		if got := Next(k, current, now); got != entry.Completed {
			t.Fatalf("completed regressed to %q at hour %d", got, h)
		}
	}
}

func TestInitial(t *testing.T) {
	now := wednesdayAt(14)
	cases := []struct {
		week, day, slot int
		want            entry.Status
	}{
		{1, 0, 0, entry.Planned},    // future week
		{-1, 6, 23, entry.None},     // past week
		{0, 4, 0, entry.Planned},    // later this week
		{0, 1, 20, entry.None},      // earlier this week
		{0, 2, 14, entry.Planned},   // today, current hour
		{0, 2, 20, entry.Planned},   // today, ahead
		{0, 2, 9, entry.None},       // today, elapsed
	}
	for _, tc := range cases {
		k := mustKey(t, tc.week, tc.day, tc.slot)
		if got := Initial(k, now); got != tc.want {
			t.Fatalf("Initial(%v) = %q, want %q", k, got, tc.want)
		}
	}
}

// The worked scenario: Wednesday at 14:00, two plans for today.
func TestWednesdayScenario(t *testing.T) {
	now := wednesdayAt(14)

	tenToEleven := mustKey(t, 0, 2, 10)
	if got := Next(tenToEleven, entry.Planned, now); got != entry.NeedsReview {
		t.Fatalf("10-11 am plan: expected needs-review, got %q", got)
	}

	threeToFour := mustKey(t, 0, 2, 15)
	if got := Next(threeToFour, entry.Planned, now); got != entry.Planned {
		t.Fatalf("3-4 pm plan: expected planned, got %q", got)
	}
}
