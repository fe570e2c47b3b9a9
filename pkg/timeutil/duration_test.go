package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	cases := []struct {
		in        string
		want      time.Duration
		canonical string
	}{
		{"1w", 7 * 24 * time.Hour, "1w"},
		{"3d", 3 * 24 * time.Hour, "3d"},
		{"2w3d", 17 * 24 * time.Hour, "2w3d"},
		{"1mo", 28 * 24 * time.Hour, "4w"},
		{"", 28 * 24 * time.Hour, "4w"},
		{" 2 Weeks ", 14 * 24 * time.Hour, "2w"},
	}
	for _, tc := range cases {
		got, canonical, err := ParseWindow(tc.in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseWindow(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if canonical != tc.canonical {
			t.Fatalf("ParseWindow(%q) canonical = %q, want %q", tc.in, canonical, tc.canonical)
		}
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	for _, in := range []string{"x", "1y", "-1w", "w"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("ParseWindow(%q) should fail", in)
		}
	}
}

func TestWeeks(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{7 * 24 * time.Hour, 1},
		{8 * 24 * time.Hour, 2},
		{14 * 24 * time.Hour, 2},
		{time.Hour, 1},
		{0, 1},
	}
	for _, tc := range cases {
		if got := Weeks(tc.d); got != tc.want {
			t.Fatalf("Weeks(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
