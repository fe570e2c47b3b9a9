package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions controls how command failures are reported.
type OutputOptions struct {
	// JSON switches error reporting to a machine-readable envelope.
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false, "Report errors as JSON.")
}

// HandleError renders err as a JSON envelope when requested, otherwise
// passes it through for cobra to print.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	envelope := struct {
		Error string `json:"error"`
	}{Error: err.Error()}
	b, merr := json.Marshal(envelope)
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
