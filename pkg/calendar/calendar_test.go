package calendar

import (
	"testing"
	"time"
)

func TestSlotCatalog(t *testing.T) {
	all := Slots()
	if len(all) != SlotsPerDay {
		t.Fatalf("expected %d slots, got %d", SlotsPerDay, len(all))
	}
	if all[0] != "12-1 am" {
		t.Fatalf("expected first slot 12-1 am, got %q", all[0])
	}
	if all[23] != "11 pm-12 am" {
		t.Fatalf("expected last slot 11 pm-12 am, got %q", all[23])
	}
	for i, label := range all {
		got, ok := SlotIndex(label)
		if !ok || got != i {
			t.Fatalf("SlotIndex(%q) = %d, %v; want %d", label, got, ok, i)
		}
	}
}

func TestDayIndexRemapsSunday(t *testing.T) {
	// 2025-03-02 is a Sunday.
	sunday := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.Local)
	if got := DayIndex(sunday); got != 6 {
		t.Fatalf("expected Sunday to map to 6, got %d", got)
	}
	monday := sunday.AddDate(0, 0, 1)
	if got := DayIndex(monday); got != 0 {
		t.Fatalf("expected Monday to map to 0, got %d", got)
	}
	wednesday := sunday.AddDate(0, 0, 3)
	if got := DayIndex(wednesday); got != 2 {
		t.Fatalf("expected Wednesday to map to 2, got %d", got)
	}
}

func TestWeekDates(t *testing.T) {
	// 2025-03-05 is a Wednesday.
	now := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.Local)

	dates := WeekDates(now, 0)
	if len(dates) != DaysPerWeek {
		t.Fatalf("expected %d dates, got %d", DaysPerWeek, len(dates))
	}
	if dates[0].Day() != 3 || dates[0].Month() != time.March {
		t.Fatalf("expected Monday 3/3, got %v", dates[0])
	}
	if dates[6].Day() != 9 {
		t.Fatalf("expected Sunday 3/9, got %v", dates[6])
	}
	for _, d := range dates {
		if d.Weekday() == time.Sunday && DayIndex(d) != 6 {
			t.Fatalf("sunday not remapped in %v", d)
		}
	}

	next := WeekDates(now, 1)
	if next[0].Day() != 10 {
		t.Fatalf("expected next Monday 3/10, got %v", next[0])
	}
	prev := WeekDates(now, -1)
	if prev[0].Day() != 24 || prev[0].Month() != time.February {
		t.Fatalf("expected previous Monday 2/24, got %v", prev[0])
	}
}

func TestWeekDatesFromSunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.Local)
	dates := WeekDates(sunday, 0)
	if dates[0].Day() != 3 {
		t.Fatalf("expected Monday 3/3, got %v", dates[0])
	}
	if dates[6].Day() != 9 {
		t.Fatalf("expected Sunday 3/9, got %v", dates[6])
	}
}

func TestWeekRange(t *testing.T) {
	now := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.Local)
	if got := WeekRange(now, 0); got != "3/3 - 3/9" {
		t.Fatalf("expected 3/3 - 3/9, got %q", got)
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
		err  bool
	}{
		{"0", 0, false},
		{"6", 6, false},
		{"7", 0, true},
		{"mon", 0, false},
		{"Thursday", 3, false},
		{"th", 3, false},
		{"Sa", 5, false},
		{"su", 6, false},
		{"xyz", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDay(tc.in)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseDay(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseSlot(t *testing.T) {
	if got, err := ParseSlot("10-11 am"); err != nil || got != 10 {
		t.Fatalf("ParseSlot label = %d, %v", got, err)
	}
	if got, err := ParseSlot("14"); err != nil || got != 14 {
		t.Fatalf("ParseSlot hour = %d, %v", got, err)
	}
	if _, err := ParseSlot("25"); err == nil {
		t.Fatalf("expected out of range error")
	}
	if _, err := ParseSlot("supper"); err == nil {
		t.Fatalf("expected unknown slot error")
	}
}
