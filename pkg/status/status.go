// Package status decides what state an activity entry is in, purely as a
// function of its cell position and an injected wall-clock time. There are no
// timers; callers re-run the computation on load and whenever the visible
// week or day changes.
package status

import (
	"time"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
)

// Next computes the correct status for the cell at k holding current, as of
// now.
//
// Completed is terminal. Future weeks are always provisional plans. Past
// weeks are frozen and never auto-transition; only the current week is
// subject to review. Within the current week, a plan whose slot has fully
// elapsed moves to needs-review exactly once; everything else is left alone.
func Next(k key.Activity, current entry.Status, now time.Time) entry.Status {
	if current.Terminal() {
		return current
	}

	switch {
	case k.Week > 0:
		return entry.Planned
	case k.Week < 0:
		return current
	}

	today := calendar.DayIndex(now)
	switch {
	case k.Day > today:
		return entry.Planned
	case k.Day < today:
		return review(current)
	}

	if k.Slot >= calendar.CurrentSlot(now) {
		return entry.Planned
	}
	return review(current)
}

// review fires the one-way planned -> needs-review edge.
func review(current entry.Status) entry.Status {
	if current == entry.Planned {
		return entry.NeedsReview
	}
	return current
}

// Initial assigns the status of a brand-new entry at creation time: cells
// whose time has not yet arrived start planned, cells already elapsed start
// with no status at all.
func Initial(k key.Activity, now time.Time) entry.Status {
	switch {
	case k.Week > 0:
		return entry.Planned
	case k.Week < 0:
		return entry.None
	}

	today := calendar.DayIndex(now)
	switch {
	case k.Day > today:
		return entry.Planned
	case k.Day < today:
		return entry.None
	}

	if k.Slot >= calendar.CurrentSlot(now) {
		return entry.Planned
	}
	return entry.None
}
