package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
)

// WeekCell addresses one activity inside a week grid.
type WeekCell struct {
	Day  int
	Slot int
}

// Week prints a full week grid. Columns are the seven days with their dates
// and moods; a slot row appears only when at least one day has an entry in it,
// unless ShowEmpty is set.
func (pp *PrettyPrint) Week(dates []time.Time, entries map[WeekCell]*entry.Activity, moods map[int]entry.Mood) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 24

	header := make([]interface{}, 0, calendar.DaysPerWeek+1)
	header = append(header, "")
	for day, date := range dates {
		h := fmt.Sprintf("%s %s", calendar.DayLabel(day), calendar.FormatDate(date))
		if m, ok := moods[day]; ok {
			h = fmt.Sprintf("%s (%s)", h, m)
		}
		header = append(header, bold(h))
	}
	tbl.AddRow(header...)

	for slot, label := range calendar.Slots() {
		row := make([]interface{}, 0, calendar.DaysPerWeek+1)
		row = append(row, label)
		filled := false
		for day := 0; day < calendar.DaysPerWeek; day++ {
			a := entries[WeekCell{Day: day, Slot: slot}]
			if a == nil {
				row = append(row, "")
				continue
			}
			filled = true
			row = append(row, pp.Entry(a))
		}
		if !filled && !pp.ShowEmpty {
			continue
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}
