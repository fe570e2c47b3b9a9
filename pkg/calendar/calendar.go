// Package calendar maps week offsets and Monday-indexed days onto dates and
// owns the fixed catalog of hourly time slots.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DaysPerWeek is the number of days in a journal week, Monday first.
	DaysPerWeek = 7

	// SlotsPerDay is the number of one-hour slots covering a day.
	SlotsPerDay = 24
)

// slots is the fixed catalog; the index of a label is its hour of day.
var slots = [SlotsPerDay]string{
	"12-1 am", "1-2 am", "2-3 am", "3-4 am", "4-5 am", "5-6 am",
	"6-7 am", "7-8 am", "8-9 am", "9-10 am", "10-11 am", "11 am-12 pm",
	"12-1 pm", "1-2 pm", "2-3 pm", "3-4 pm", "4-5 pm", "5-6 pm",
	"6-7 pm", "7-8 pm", "8-9 pm", "9-10 pm", "10-11 pm", "11 pm-12 am",
}

var dayLabels = [DaysPerWeek]string{"M", "T", "W", "Th", "F", "Sa", "Su"}

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Slots returns the ordered slot catalog.
func Slots() []string {
	return slots[:]
}

// SlotLabel returns the label for a slot index.
func SlotLabel(slot int) (string, bool) {
	if slot < 0 || slot >= SlotsPerDay {
		return "", false
	}
	return slots[slot], true
}

// SlotIndex returns the index for an exact slot label.
func SlotIndex(label string) (int, bool) {
	for i, s := range slots {
		if s == label {
			return i, true
		}
	}
	return 0, false
}

// DayLabel returns the short label for a Monday-indexed day.
func DayLabel(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return "?"
	}
	return dayLabels[day]
}

// DayName returns the full name for a Monday-indexed day.
func DayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return "unknown"
	}
	return dayNames[day]
}

// DayIndex remaps the native Sunday-indexed weekday of t onto the journal's
// Monday-indexed numbering (0=Monday .. 6=Sunday).
func DayIndex(t time.Time) int {
	wd := t.Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// CurrentSlot returns the slot index covering the hour of t.
func CurrentSlot(t time.Time) int {
	return t.Hour()
}

// WeekDates returns the seven dates Monday..Sunday of the week weekOffset
// weeks away from the week containing now.
func WeekDates(now time.Time, weekOffset int) []time.Time {
	monday := now.AddDate(0, 0, -DayIndex(now)+weekOffset*DaysPerWeek)
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())

	dates := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		dates = append(dates, monday.AddDate(0, 0, i))
	}
	return dates
}

// FormatDate renders a date as M/D, matching the journal's compact headers.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// WeekRange renders the Monday - Sunday date range of the offset week.
func WeekRange(now time.Time, weekOffset int) string {
	dates := WeekDates(now, weekOffset)
	return fmt.Sprintf("%s - %s", FormatDate(dates[0]), FormatDate(dates[DaysPerWeek-1]))
}

// ParseDay resolves a day argument into a Monday-indexed day. It accepts the
// index itself, the short label, or any prefix-unique day name ("mon",
// "Thursday", "sa").
func ParseDay(arg string) (int, error) {
	a := strings.TrimSpace(strings.ToLower(arg))
	if a == "" {
		return 0, fmt.Errorf("calendar: day required")
	}
	if n, err := strconv.Atoi(a); err == nil {
		if n < 0 || n >= DaysPerWeek {
			return 0, fmt.Errorf("calendar: day index %d out of range 0..6", n)
		}
		return n, nil
	}
	for i, name := range dayNames {
		if strings.EqualFold(a, dayLabels[i]) {
			return i, nil
		}
		if len(a) >= 2 && strings.HasPrefix(strings.ToLower(name), a) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("calendar: unknown day %q", arg)
}

// ParseSlot resolves a slot argument into a slot index. It accepts a catalog
// label verbatim ("10-11 am") or an hour of day ("14").
func ParseSlot(arg string) (int, error) {
	a := strings.TrimSpace(arg)
	if a == "" {
		return 0, fmt.Errorf("calendar: time slot required")
	}
	if i, ok := SlotIndex(a); ok {
		return i, nil
	}
	if n, err := strconv.Atoi(a); err == nil {
		if n < 0 || n >= SlotsPerDay {
			return 0, fmt.Errorf("calendar: hour %d out of range 0..23", n)
		}
		return n, nil
	}
	return 0, fmt.Errorf("calendar: unknown time slot %q", arg)
}
