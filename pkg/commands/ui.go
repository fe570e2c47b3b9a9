package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/store"
	"tableflip.dev/weeklog/pkg/tui/review"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"reconcile"},
		Short:   "Walk through pending reviews interactively.",
		Example: `
weeklog ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return review.Run(journal.New(p))
		},
	}

	topLevel.AddCommand(cmd)
}
