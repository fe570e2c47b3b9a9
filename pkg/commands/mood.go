package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/runner/mood"
	"tableflip.dev/weeklog/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	cello := &options.CellOptions{}

	cmd := &cobra.Command{
		Use:   "mood [rating]",
		Short: "Record or show the daily mood rating.",
		Long: "Record the single 1-10 mood rating for a day, or show it when " +
			"no rating is given. Saving again overwrites the previous value.",
		Example: `
weeklog mood 7
weeklog mood -d tue 5
weeklog mood
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := cello.ResolveDay(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			var rating entry.Mood
			if len(args) == 1 {
				r, err := entry.ParseRating(args[0])
				if err != nil {
					return output.HandleError(err)
				}
				rating = entry.Mood(r)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := mood.Mood{
				Week:        cello.Week,
				Day:         day,
				Rating:      rating,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDayArgs(cmd, cello)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
