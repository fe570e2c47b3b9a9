package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/stats"
	"tableflip.dev/weeklog/pkg/store"
	"tableflip.dev/weeklog/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	window := ""

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recent weeks: completion, ratings, and mood.",
		Example: `
weeklog stats
weeklog stats --window 2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				Window:      window,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&window, "window", timeutil.DefaultWindow,
		"Trailing window to report on, like 1w, 4w, or 2w3d.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
