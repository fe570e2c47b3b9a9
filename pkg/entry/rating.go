package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Rating is a 1..10 self-rating. Zero means unset.
//
// The persisted document historically mixed bare numbers with quoted numeric
// strings (moods are always strings), so both forms unmarshal; moods marshal
// back as strings to keep the document layout stable.
type Rating int

// Set reports whether a rating was supplied.
func (r Rating) Set() bool {
	return r != 0
}

// Valid reports whether r is inside the 1..10 scale.
func (r Rating) Valid() bool {
	return r >= 1 && r <= 10
}

// ValidOrUnset reports whether r is unset or inside the scale.
func (r Rating) ValidOrUnset() bool {
	return r == 0 || r.Valid()
}

// ParseRating parses a decimal rating argument.
func ParseRating(s string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("entry: rating %q is not a number", s)
	}
	r := Rating(n)
	if !r.Valid() {
		return 0, ErrRatingRange
	}
	return r, nil
}

func (r Rating) String() string {
	if !r.Set() {
		return "-"
	}
	return strconv.Itoa(int(r))
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*r = Rating(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*r = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("entry: rating %q is not a number", s)
	}
	*r = Rating(n)
	return nil
}

// Mood is the single daily rating. It has no status lifecycle and the latest
// save wins.
type Mood Rating

// Valid reports whether m is inside the 1..10 scale.
func (m Mood) Valid() bool {
	return Rating(m).Valid()
}

func (m Mood) String() string {
	return Rating(m).String()
}

func (m Mood) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(m)))
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var r Rating
	if err := r.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = Mood(r)
	return nil
}
