package entry

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewAppliesDefaultColor(t *testing.T) {
	a := New("read a book", 7, 5, "")
	if a.Color != Gray {
		t.Fatalf("expected default gray, got %q", a.Color)
	}
	b := New("walk", 0, 0, Blue)
	if b.Color != Blue {
		t.Fatalf("expected blue kept, got %q", b.Color)
	}
}

func TestValidate(t *testing.T) {
	a := New("cook dinner", 0, 0, Green)
	if err := a.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Text = ""
	if err := a.Validate(); !errors.Is(err, ErrTextRequired) {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}

	a.Text = "cook dinner"
	a.Pleasure = 11
	if err := a.Validate(); !errors.Is(err, ErrRatingRange) {
		t.Fatalf("expected ErrRatingRange, got %v", err)
	}

	a.Pleasure = 5
	a.Color = "chartreuse"
	if err := a.Validate(); err == nil {
		t.Fatalf("expected color error")
	}
}

func TestStatusTerminal(t *testing.T) {
	if !Completed.Terminal() {
		t.Fatalf("completed must be terminal")
	}
	for _, s := range []Status{None, Planned, NeedsReview, Incomplete} {
		if s.Terminal() {
			t.Fatalf("%q must not be terminal", s)
		}
	}
}

func TestActivityJSONShape(t *testing.T) {
	a := &Activity{
		Text:   "planned walk",
		Status: Incomplete,
		Color:  White,
		Replacement: &Replacement{
			Text:     "watched tv",
			Pleasure: 6,
			Mastery:  2,
			Color:    Gray,
		},
	}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Activity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Text != "planned walk" || back.Status != Incomplete {
		t.Fatalf("round trip lost fields: %+v", back)
	}
	if back.Replacement == nil || back.Replacement.Text != "watched tv" {
		t.Fatalf("round trip lost replacement: %+v", back.Replacement)
	}
	if back.Pleasure.Set() {
		t.Fatalf("unset rating must stay unset")
	}
}

func TestNoneStatusOmitted(t *testing.T) {
	a := New("slept in", 0, 0, "")
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, found := raw["status"]; found {
		t.Fatalf("empty status must be absent from the document, got %v", raw)
	}
}

func TestRatingUnmarshalForms(t *testing.T) {
	cases := []struct {
		in   string
		want Rating
		err  bool
	}{
		{`7`, 7, false},
		{`"7"`, 7, false},
		{`""`, 0, false},
		{`"high"`, 0, true},
	}
	for _, tc := range cases {
		var r Rating
		err := json.Unmarshal([]byte(tc.in), &r)
		if tc.err {
			if err == nil {
				t.Fatalf("unmarshal %s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if r != tc.want {
			t.Fatalf("unmarshal %s = %d, want %d", tc.in, r, tc.want)
		}
	}
}

func TestMoodMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(Mood(8))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"8"` {
		t.Fatalf("expected quoted mood, got %s", data)
	}
	var m Mood
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != 8 {
		t.Fatalf("expected 8, got %d", m)
	}
}

func TestClone(t *testing.T) {
	a := New("garden", 3, 4, Green)
	a.Replacement = &Replacement{Text: "napped"}
	c := a.Clone()
	c.Text = "changed"
	c.Replacement.Text = "changed"
	if a.Text != "garden" || a.Replacement.Text != "napped" {
		t.Fatalf("clone must not alias the original")
	}
}
