// Package review resolves entries left waiting after their hour passed.
package review

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/printers"
	"tableflip.dev/weeklog/pkg/store"
)

// Review lists pending entries, or resolves one cell when Confirm or Reject
// is set.
type Review struct {
	Week int
	Day  int
	Slot int

	Confirm  bool
	Reject   bool
	Pleasure entry.Rating
	Mastery  entry.Rating

	Persistence store.Persistence
}

func (n *Review) Do(ctx context.Context) error {
	j := journal.New(n.Persistence)

	if !n.Confirm && !n.Reject {
		return n.list(j)
	}

	k, err := key.NewActivity(n.Week, n.Day, n.Slot)
	if err != nil {
		return err
	}

	var a *entry.Activity
	if n.Confirm {
		a, err = j.Confirm(k, n.Pleasure, n.Mastery)
	} else {
		a, err = j.Reject(k)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	_, _ = fmt.Fprintln(color.Output, pp.Entry(a))
	return nil
}

func (n *Review) list(j *journal.Journal) error {
	pending, err := j.Pending()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		_, _ = fmt.Fprintln(color.Output, "nothing awaiting review")
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Awaiting review")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, k := range pending {
		a, ok := j.Get(k)
		if !ok {
			continue
		}
		tbl.AddRow(
			fmt.Sprintf("wk %+d", k.Week),
			calendar.DayName(k.Day),
			k.SlotLabel(),
			pp.Entry(a),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
