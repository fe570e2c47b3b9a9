// Package transfer moves the whole journal through JSON files.
package transfer

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/store"
)

// Export writes the journal to Output, defaulting to a dated file in the
// working directory. "-" writes to stdout.
type Export struct {
	Output string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	j := journal.New(n.Persistence)

	out := n.Output
	if out == "" {
		out = journal.ExportFilename(time.Now())
	}
	if out == "-" {
		return j.Export(os.Stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	if err := j.Export(f); err != nil {
		return err
	}
	fmt.Printf("exported journal to %s\n", out)
	return nil
}

// Import replaces the journal with the contents of Input. "-" reads stdin.
type Import struct {
	Input string

	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	j := journal.New(n.Persistence)

	if n.Input == "-" {
		return j.Import(os.Stdin)
	}

	f, err := os.Open(n.Input)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer f.Close()
	if err := j.Import(f); err != nil {
		return err
	}
	fmt.Printf("imported journal from %s\n", n.Input)
	return nil
}
