// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/calendar"
)

// CellOptions captures the week/day/slot flags addressing one journal cell.
// Day and slot default to "now" so a bare add logs the current hour.
type CellOptions struct {
	Week int
	Day  string
	Slot string
}

// AddCellArgs wires the cell addressing flags on the provided command.
func AddCellArgs(cmd *cobra.Command, o *CellOptions) {
	cmd.Flags().IntVarP(&o.Week, "week", "w", 0,
		"Week offset from the current week; negative is past, positive is future.")
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Day of the week (name, short label, or 0-6 starting Monday). Defaults to today.")
	cmd.Flags().StringVarP(&o.Slot, "time", "t", "",
		"Time slot (label like '10-11 am', or hour 0-23). Defaults to the current hour.")
}

// AddDayArgs wires only the week and day flags, for day-level commands.
func AddDayArgs(cmd *cobra.Command, o *CellOptions) {
	cmd.Flags().IntVarP(&o.Week, "week", "w", 0,
		"Week offset from the current week; negative is past, positive is future.")
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Day of the week (name, short label, or 0-6 starting Monday). Defaults to today.")
}

// ResolveDay returns the Monday-indexed day, defaulting to today.
func (o *CellOptions) ResolveDay(now time.Time) (int, error) {
	if o.Day == "" {
		return calendar.DayIndex(now), nil
	}
	return calendar.ParseDay(o.Day)
}

// ResolveSlot returns the slot index, defaulting to the current hour.
func (o *CellOptions) ResolveSlot(now time.Time) (int, error) {
	if o.Slot == "" {
		return calendar.CurrentSlot(now), nil
	}
	return calendar.ParseSlot(o.Slot)
}
