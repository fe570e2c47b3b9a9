// Package printers renders journal state for the terminal.
package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/glyph"
)

// styled gates the raw ANSI helpers (strike/italic) that bypass fatih/color's
// own TTY detection.
var styled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

type PrettyPrint struct {
	// ShowEmpty lists every slot of a day, not just the filled ones.
	ShowEmpty bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// DayHeader prints the day banner with its date, week range, and mood.
func (pp *PrettyPrint) DayHeader(date time.Time, day int, weekRange string, mood entry.Mood, hasMood bool) {
	pp.Title(fmt.Sprintf("%s %s (%s)", calendar.DayName(day), calendar.FormatDate(date), weekRange))
	if hasMood {
		f := color.New(color.Faint)
		_, _ = f.Printf("Mood: %s\n", mood)
	}
}

// Day prints one day's slots, entries keyed by slot index.
func (pp *PrettyPrint) Day(entries map[int]*entry.Activity) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	rows := 0
	for slot, label := range calendar.Slots() {
		a := entries[slot]
		if a == nil && !pp.ShowEmpty {
			continue
		}
		rows++
		if a == nil {
			tbl.AddRow(label, "", "")
			continue
		}
		tbl.AddRow(label, ratings(a), pp.Entry(a))
	}
	if rows == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Entry renders a single activity cell: status glyph, tagged text, and the
// replacement when a failed plan has one.
func (pp *PrettyPrint) Entry(a *entry.Activity) string {
	g := glyph.ForStatus(a.Status)
	marker := glyph.StatusColor(a.Status).Sprint(g.Symbol)

	text := glyph.TagColor(a.Color).Sprint(a.Text)
	switch {
	case a.Status == entry.Incomplete && styled:
		text = glyph.Strike(text)
	case a.Status == entry.Planned && styled:
		text = glyph.Italic(text)
	}

	if a.Replacement != nil {
		r := a.Replacement
		repl := glyph.TagColor(r.Color).Sprint(r.Text)
		return fmt.Sprintf("%s %s → %s", marker, text, repl)
	}
	return fmt.Sprintf("%s %s", marker, text)
}

// Legend prints the status and palette keys.
func (pp *PrettyPrint) Legend() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Symbol"), bold("Status"), bold("Meaning"))
	for _, s := range []entry.Status{entry.None, entry.Planned, entry.NeedsReview, entry.Completed, entry.Incomplete} {
		g := glyph.ForStatus(s)
		name := string(s)
		if name == "" {
			name = "none"
		}
		tbl.AddRow(glyph.StatusColor(s).Sprint(g.Symbol), name, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, bold(underline("\nStatuses")))
	_, _ = fmt.Fprintln(color.Output, tbl)

	swatches := make([]string, 0, len(entry.Palette()))
	for _, c := range entry.Palette() {
		swatches = append(swatches, glyph.TagColor(c).Sprint(string(c)))
	}
	_, _ = fmt.Fprintln(color.Output, bold(underline("\nColors")))
	_, _ = fmt.Fprintln(color.Output, strings.Join(swatches, "  "))
}

func ratings(a *entry.Activity) string {
	if !a.Pleasure.Set() && !a.Mastery.Set() {
		return ""
	}
	return color.New(color.Faint).Sprintf("P:%s M:%s", a.Pleasure, a.Mastery)
}

func bold(in string) string {
	return color.New(color.Bold).Sprint(in)
}

func underline(in string) string {
	return color.New(color.Underline).Sprint(in)
}
