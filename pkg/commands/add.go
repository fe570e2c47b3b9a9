package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/add"
	"tableflip.dev/weeklog/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cello := &options.CellOptions{}
	ro := &options.RatingOptions{}
	co := &options.ColorOptions{}
	edit := false
	replace := false

	cmd := &cobra.Command{
		Use:   "add <activity...>",
		Short: "Log an activity at a time slot.",
		Long: "Log an activity at a week/day/time cell. Without flags the " +
			"current hour is used, so 'weeklog add reading' journals right now. " +
			"Logging over an incomplete plan records the activity as what was " +
			"done instead; the plan itself is kept.",
		Example: `
weeklog add reading
weeklog add -d tue -t "10-11 am" swimming
weeklog add -w 1 -d fri -t 18 dinner with friends
weeklog add --edit -t 9 reading and notes
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			day, err := cello.ResolveDay(now)
			if err != nil {
				return output.HandleError(err)
			}
			slot, err := cello.ResolveSlot(now)
			if err != nil {
				return output.HandleError(err)
			}
			pleasure, mastery, err := ro.Ratings()
			if err != nil {
				return output.HandleError(err)
			}
			clr, err := co.Resolve()
			if err != nil {
				return output.HandleError(err)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Week:        cello.Week,
				Day:         day,
				Slot:        slot,
				Text:        strings.Join(args, " "),
				Pleasure:    pleasure,
				Mastery:     mastery,
				Color:       clr,
				Edit:        edit,
				Replace:     replace,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCellArgs(cmd, cello)
	options.AddRatingArgs(cmd, ro)
	options.AddColorArg(cmd, co)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&edit, "edit", false,
		"Update the existing entry in place, keeping its status.")
	cmd.Flags().BoolVar(&replace, "instead", false,
		"Record the activity as what was done instead of the incomplete plan.")

	topLevel.AddCommand(cmd)
}
