package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/get"
	"tableflip.dev/weeklog/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	cello := &options.CellOptions{}
	showEmpty := false

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"get"},
		Short:   "Show one day of the journal.",
		Example: `
weeklog day
weeklog day -d monday
weeklog day -w -1 -d sat --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := cello.ResolveDay(time.Now())
			if err != nil {
				return output.HandleError(err)
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Week:        cello.Week,
				Day:         day,
				ShowEmpty:   showEmpty,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDayArgs(cmd, cello)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&showEmpty, "all", false,
		"Show every time slot, including empty ones.")

	topLevel.AddCommand(cmd)
}
