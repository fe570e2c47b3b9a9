// Package legend provides CLI helpers to display the journal legend.
package legend

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/weeklog/pkg/printers"
)

// Legend prints the status glyph and color keys.
type Legend struct{}

func (k *Legend) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Legend()
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}
