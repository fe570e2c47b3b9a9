package add

import (
	"context"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/printers"
	"tableflip.dev/weeklog/pkg/store"
)

// Add logs, edits, or replaces an activity at one week/day/slot cell.
type Add struct {
	Week int
	Day  int
	Slot int

	Text     string
	Pleasure entry.Rating
	Mastery  entry.Rating
	Color    entry.Color

	// Edit updates the existing entry in place instead of logging a new one.
	Edit bool
	// Replace records the text as what was done instead of an incomplete plan.
	Replace bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	k, err := key.NewActivity(n.Week, n.Day, n.Slot)
	if err != nil {
		return err
	}

	j := journal.New(n.Persistence)

	intent := journal.NewEntry
	switch {
	case n.Edit:
		intent = journal.EditEntry
	case n.Replace:
		intent = journal.LogReplacement
	}

	a, err := j.Save(k, journal.Draft{
		Text:     n.Text,
		Pleasure: n.Pleasure,
		Mastery:  n.Mastery,
		Color:    n.Color,
	}, intent)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(k.SlotLabel())
	pp.Day(map[int]*entry.Activity{n.Slot: a})
	return nil
}
