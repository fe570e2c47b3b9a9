package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/runner/legend"
)

func addLegend(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "legend",
		Aliases: []string{"key"},
		Short:   "Show the status symbols and colors.",
		Example: `
weeklog legend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := legend.Legend{}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
