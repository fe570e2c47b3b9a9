package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weeklog/pkg/entry"
)

// RatingOptions captures the pleasure and mastery rating flags.
type RatingOptions struct {
	Pleasure int
	Mastery  int
}

// AddRatingArgs wires the rating flags on the provided command.
func AddRatingArgs(cmd *cobra.Command, o *RatingOptions) {
	cmd.Flags().IntVarP(&o.Pleasure, "pleasure", "p", 0,
		"Pleasure rating, 1-10.")
	cmd.Flags().IntVarP(&o.Mastery, "mastery", "m", 0,
		"Mastery rating, 1-10.")
}

// Ratings returns the flag values as typed ratings.
func (o *RatingOptions) Ratings() (entry.Rating, entry.Rating, error) {
	p := entry.Rating(o.Pleasure)
	m := entry.Rating(o.Mastery)
	if !p.ValidOrUnset() || !m.ValidOrUnset() {
		return 0, 0, entry.ErrRatingRange
	}
	return p, m, nil
}
