package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/review"
	"tableflip.dev/weeklog/pkg/store"
)

func addReview(topLevel *cobra.Command) {
	cello := &options.CellOptions{}
	ro := &options.RatingOptions{}
	confirm := false
	reject := false

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List or resolve entries awaiting review.",
		Long: "Without flags, lists every entry whose hour has passed and is " +
			"waiting for confirmation. With --done (plus both ratings) or " +
			"--not-done, resolves the entry at the addressed cell.",
		Example: `
weeklog review
weeklog review --done -t 9 -p 7 -m 4
weeklog review --not-done -d tue -t "10-11 am"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm && reject {
				return errors.New("choose one of --done or --not-done")
			}

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

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := review.Review{
				Week:        cello.Week,
				Day:         day,
				Slot:        slot,
				Confirm:     confirm,
				Reject:      reject,
				Pleasure:    pleasure,
				Mastery:     mastery,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCellArgs(cmd, cello)
	options.AddRatingArgs(cmd, ro)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&confirm, "done", false,
		"Mark the entry as done; requires both ratings.")
	cmd.Flags().BoolVar(&reject, "not-done", false,
		"Mark the entry as not done.")

	topLevel.AddCommand(cmd)
}
