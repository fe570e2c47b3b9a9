// Package stats renders windowed summaries of the journal.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/printers"
	"tableflip.dev/weeklog/pkg/store"
	"tableflip.dev/weeklog/pkg/timeutil"
)

// Stats prints per-week aggregates over a trailing window.
type Stats struct {
	// Window is a human-friendly span like "4w" or "2w3d".
	Window string

	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}

	d, canonical, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	fromWeek := -(timeutil.Weeks(d) - 1)

	j := journal.New(n.Persistence)
	report, err := j.Stats(fromWeek)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("Last %s", canonical))

	if len(report.Weeks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing recorded\n\n")
		return nil
	}

	now := time.Now()
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(
		bold.Sprint("Week"),
		bold.Sprint("Entries"),
		bold.Sprint("Done"),
		bold.Sprint("Missed"),
		bold.Sprint("Pending"),
		bold.Sprint("P avg"),
		bold.Sprint("M avg"),
		bold.Sprint("Mood"),
	)
	for _, ws := range report.Weeks {
		tbl.AddRow(
			calendar.WeekRange(now, ws.Week),
			ws.Entries,
			ws.Completed,
			ws.Missed,
			ws.Pending,
			avg(ws.AvgPleasure),
			avg(ws.AvgMastery),
			avg(ws.AvgMood),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	resolved := report.TotalCompleted + report.TotalMissed
	if resolved > 0 {
		_, _ = fmt.Fprintf(color.Output, "\n%d of %d resolved plans completed (%.0f%%)\n",
			report.TotalCompleted, resolved, report.CompletionRate()*100)
	}
	pp.NewLine()
	return nil
}

func avg(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
