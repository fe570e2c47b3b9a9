// Package key defines the typed composite keys that address journal cells,
// and their string codec used at the storage boundary.
//
// The persisted documents are keyed "{week}-{day}-{slot label}" for activities
// and "{week}-{day}" for moods. Slot labels themselves contain hyphens
// ("12-1 am"), so parsing consumes exactly the first two fields and takes the
// remainder verbatim as the label.
package key

import (
	"fmt"
	"regexp"
	"strconv"

	"tableflip.dev/weeklog/pkg/calendar"
)

// The week field may carry a sign, so the persisted form cannot simply be
// split on hyphens; these anchor the numeric fields and leave the slot label
// intact.
var (
	activityPattern = regexp.MustCompile(`^(-?\d+)-(\d+)-(.+)$`)
	moodPattern     = regexp.MustCompile(`^(-?\d+)-(\d+)$`)
)

// Activity addresses one journal cell: a signed week offset from the current
// week, a Monday-indexed day, and a slot index into the catalog.
type Activity struct {
	Week int
	Day  int
	Slot int
}

// NewActivity validates and builds an activity key.
func NewActivity(week, day, slot int) (Activity, error) {
	if day < 0 || day >= calendar.DaysPerWeek {
		return Activity{}, fmt.Errorf("key: day index %d out of range 0..6", day)
	}
	if slot < 0 || slot >= calendar.SlotsPerDay {
		return Activity{}, fmt.Errorf("key: slot index %d out of range 0..23", slot)
	}
	return Activity{Week: week, Day: day, Slot: slot}, nil
}

// String encodes the key into its persisted form.
func (k Activity) String() string {
	label, _ := calendar.SlotLabel(k.Slot)
	return fmt.Sprintf("%d-%d-%s", k.Week, k.Day, label)
}

// SlotLabel returns the catalog label for the key's slot.
func (k Activity) SlotLabel() string {
	label, _ := calendar.SlotLabel(k.Slot)
	return label
}

// Mood addresses one day's mood rating.
type Mood struct {
	Week int
	Day  int
}

// NewMood validates and builds a mood key.
func NewMood(week, day int) (Mood, error) {
	if day < 0 || day >= calendar.DaysPerWeek {
		return Mood{}, fmt.Errorf("key: day index %d out of range 0..6", day)
	}
	return Mood{Week: week, Day: day}, nil
}

// String encodes the key into its persisted form.
func (k Mood) String() string {
	return fmt.Sprintf("%d-%d", k.Week, k.Day)
}

// ParseActivity decodes the persisted form back into a typed key.
func ParseActivity(s string) (Activity, error) {
	m := activityPattern.FindStringSubmatch(s)
	if m == nil {
		return Activity{}, fmt.Errorf("key: malformed activity key %q", s)
	}
	week, day, err := parseWeekDay(m[1], m[2], s)
	if err != nil {
		return Activity{}, err
	}
	slot, ok := calendar.SlotIndex(m[3])
	if !ok {
		return Activity{}, fmt.Errorf("key: unknown slot label %q in key %q", m[3], s)
	}
	return NewActivity(week, day, slot)
}

// ParseMood decodes the persisted form back into a typed key.
func ParseMood(s string) (Mood, error) {
	m := moodPattern.FindStringSubmatch(s)
	if m == nil {
		return Mood{}, fmt.Errorf("key: malformed mood key %q", s)
	}
	week, day, err := parseWeekDay(m[1], m[2], s)
	if err != nil {
		return Mood{}, err
	}
	return NewMood(week, day)
}

func parseWeekDay(weekField, dayField, whole string) (int, int, error) {
	week, err := strconv.Atoi(weekField)
	if err != nil {
		return 0, 0, fmt.Errorf("key: bad week offset in key %q: %w", whole, err)
	}
	day, err := strconv.Atoi(dayField)
	if err != nil {
		return 0, 0, fmt.Errorf("key: bad day index in key %q: %w", whole, err)
	}
	return week, day, nil
}
