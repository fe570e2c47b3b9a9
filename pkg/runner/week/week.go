package week

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/printers"
	"tableflip.dev/weeklog/pkg/store"
)

// Week prints a full week grid, the current week by default.
type Week struct {
	Week int

	ShowEmpty bool

	Persistence store.Persistence
}

func (n *Week) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	j := journal.New(n.Persistence)
	if _, err := j.Refresh(); err != nil {
		return err
	}

	now := time.Now()
	dates := calendar.WeekDates(now, n.Week)

	cells := make(map[printers.WeekCell]*entry.Activity)
	for k, a := range n.Persistence.Activities() {
		if k.Week == n.Week {
			cells[printers.WeekCell{Day: k.Day, Slot: k.Slot}] = a
		}
	}

	moods := make(map[int]entry.Mood, calendar.DaysPerWeek)
	for k, m := range n.Persistence.Moods() {
		if k.Week == n.Week {
			moods[k.Day] = m
		}
	}

	pp := printers.PrettyPrint{ShowEmpty: n.ShowEmpty}
	pp.NewLine()
	pp.Title("Week " + calendar.WeekRange(now, n.Week))
	pp.Week(dates, cells, moods)
	return nil
}
