package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weeklog/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weeklog",
		Short: base.Wrap80("An hourly activity and mood journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addWeek(topLevel)
	addMood(topLevel)
	addReview(topLevel)
	addStats(topLevel)
	addUI(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addLegend(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
