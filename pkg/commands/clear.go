package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/clear"
	"tableflip.dev/weeklog/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every activity and mood.",
		Example: `
weeklog clear
weeklog clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{
				Confirmed:   yes,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Skip the confirmation prompt.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
