// Package entry defines the journal's persisted records: hourly activity
// entries with their review status, and daily mood ratings.
package entry

import (
	"errors"
	"fmt"
)

// Status tracks where an activity sits in the plan/review lifecycle. The zero
// value means the entry was logged after the fact and never needed review.
type Status string

const (
	None        Status = ""
	Planned     Status = "planned"
	NeedsReview Status = "needs-review"
	Completed   Status = "completed"
	Incomplete  Status = "incomplete"
)

// Terminal reports whether the status never changes again.
func (s Status) Terminal() bool {
	return s == Completed
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case None, Planned, NeedsReview, Completed, Incomplete:
		return true
	}
	return false
}

// Color is a display tag from a fixed palette.
type Color string

const (
	White  Color = "white"
	Gray   Color = "gray"
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Purple Color = "purple"
)

// Palette returns the selectable colors in display order.
func Palette() []Color {
	return []Color{White, Gray, Red, Orange, Yellow, Green, Blue, Purple}
}

// Valid reports whether c is empty or in the palette.
func (c Color) Valid() bool {
	if c == "" {
		return true
	}
	for _, p := range Palette() {
		if c == p {
			return true
		}
	}
	return false
}

var (
	// ErrTextRequired is returned when an activity has no description.
	ErrTextRequired = errors.New("entry: activity text required")

	// ErrRatingRange is returned for ratings outside 1..10.
	ErrRatingRange = errors.New("entry: rating must be between 1 and 10")
)

// Replacement records what actually happened in place of a plan that did not.
type Replacement struct {
	Text     string `json:"activity"`
	Pleasure Rating `json:"pleasure,omitempty"`
	Mastery  Rating `json:"mastery,omitempty"`
	Color    Color  `json:"color,omitempty"`
}

// Activity is one journal record at a specific week/day/slot cell.
//
// An incomplete activity is the record of a plan that did not happen; its
// Replacement, when set, is the record of what did. At most one replacement
// exists per cell.
type Activity struct {
	Text        string       `json:"activity"`
	Pleasure    Rating       `json:"pleasure,omitempty"`
	Mastery     Rating       `json:"mastery,omitempty"`
	Color       Color        `json:"color,omitempty"`
	Status      Status       `json:"status,omitempty"`
	Replacement *Replacement `json:"replacement,omitempty"`
}

// New builds an activity with the default color applied.
func New(text string, pleasure, mastery Rating, color Color) *Activity {
	if color == "" {
		color = Gray
	}
	return &Activity{
		Text:     text,
		Pleasure: pleasure,
		Mastery:  mastery,
		Color:    color,
	}
}

// Validate checks the required fields and advisory rating ranges.
func (a *Activity) Validate() error {
	if a.Text == "" {
		return ErrTextRequired
	}
	if !a.Pleasure.ValidOrUnset() || !a.Mastery.ValidOrUnset() {
		return ErrRatingRange
	}
	if !a.Color.Valid() {
		return fmt.Errorf("entry: unknown color %q", a.Color)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("entry: unknown status %q", a.Status)
	}
	return nil
}

// Clone returns a deep copy, so callers can merge fields before a wholesale put.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	c := *a
	if a.Replacement != nil {
		r := *a.Replacement
		c.Replacement = &r
	}
	return &c
}
