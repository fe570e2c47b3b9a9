package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/runner/mcp"
	"tableflip.dev/weeklog/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	s := &mcp.MCP{}
	var transport string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal over the Model Context Protocol.",
		Long: `Serve the journal over the Model Context Protocol so agents can log,
review and read activities and moods. Stdio suits clients that spawn the
process; http exposes the streamable HTTP transport on --addr.`,
		Example: `
weeklog mcp
weeklog mcp --transport http --addr 127.0.0.1:8338
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s.Transport = t
			s.Persistence = p
			s.Out = cmd.ErrOrStderr()
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "Transport to serve, stdio or http.")
	cmd.Flags().StringVar(&s.Addr, "addr", "127.0.0.1:8338", "Listen address for the http transport.")
	cmd.Flags().StringVar(&s.Path, "path", "/mcp", "Endpoint path for the http transport.")
	cmd.Flags().StringVar(&s.CertFile, "tls-cert", "", "TLS certificate file, serves https when set.")
	cmd.Flags().StringVar(&s.KeyFile, "tls-key", "", "TLS key file, serves https when set.")

	topLevel.AddCommand(cmd)
}
