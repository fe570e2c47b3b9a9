package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/commands/options"
	"tableflip.dev/weeklog/pkg/runner/transfer"
	"tableflip.dev/weeklog/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	out := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole journal to a JSON file.",
		Example: `
weeklog export
weeklog export -o backup.json
weeklog export -o -
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := transfer.Export{
				Output:      out,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "",
		"Destination file; '-' for stdout. Defaults to weeklog-<date>.json.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the journal with the contents of a JSON export.",
		Long: "Replace the whole journal with a previously exported document. " +
			"The file is validated before anything is written; a malformed " +
			"document leaves the journal untouched.",
		Example: `
weeklog import backup.json
weeklog import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := transfer.Import{
				Input:       args[0],
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
