package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/entry"
)

// ColorOptions captures the display color flag.
type ColorOptions struct {
	Color string
}

// AddColorArg wires the color flag on the provided command.
func AddColorArg(cmd *cobra.Command, o *ColorOptions) {
	names := make([]string, 0, len(entry.Palette()))
	for _, c := range entry.Palette() {
		names = append(names, string(c))
	}
	cmd.Flags().StringVarP(&o.Color, "color", "c", "",
		"Display color, one of: "+strings.Join(names, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve validates the flag value against the palette.
func (o *ColorOptions) Resolve() (entry.Color, error) {
	c := entry.Color(strings.ToLower(strings.TrimSpace(o.Color)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", o.Color)
	}
	return c, nil
}
