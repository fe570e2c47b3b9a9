package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/printers"
	"tableflip.dev/weeklog/pkg/store"
)

// Get prints one day of the journal, all slots included when ShowEmpty is set.
type Get struct {
	Week int
	Day  int

	ShowEmpty bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	j := journal.New(n.Persistence)
	if _, err := j.Refresh(); err != nil {
		return err
	}

	now := time.Now()
	dates := calendar.WeekDates(now, n.Week)

	byslot := make(map[int]*entry.Activity, calendar.SlotsPerDay)
	for k, a := range n.Persistence.Activities() {
		if k.Week == n.Week && k.Day == n.Day {
			byslot[k.Slot] = a
		}
	}

	mk, err := key.NewMood(n.Week, n.Day)
	if err != nil {
		return err
	}
	mood, hasMood := n.Persistence.GetMood(mk)

	pp := printers.PrettyPrint{ShowEmpty: n.ShowEmpty}
	pp.NewLine()
	pp.DayHeader(dates[n.Day], n.Day, calendar.WeekRange(now, n.Week), mood, hasMood)
	pp.Day(byslot)
	return nil
}
