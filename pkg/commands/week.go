package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/week"
	"tableflip.dev/weeklog/pkg/store"
)

func addWeek(topLevel *cobra.Command) {
	offset := 0
	showEmpty := false

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a week of the journal as a grid.",
		Example: `
weeklog week
weeklog week -w -1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := week.Week{
				Week:        offset,
				ShowEmpty:   showEmpty,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().IntVarP(&offset, "week", "w", 0,
		"Week offset from the current week; negative is past, positive is future.")
	cmd.Flags().BoolVar(&showEmpty, "all", false,
		"Show every time slot, including empty ones.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
