package mood

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/store"
)

// Mood records or shows the single daily mood rating.
type Mood struct {
	Week int
	Day  int

	// Rating is the 1..10 value to record; zero shows the current value.
	Rating entry.Mood

	Persistence store.Persistence
}

func (n *Mood) Do(ctx context.Context) error {
	k, err := key.NewMood(n.Week, n.Day)
	if err != nil {
		return err
	}

	j := journal.New(n.Persistence)

	if n.Rating != 0 {
		if err := j.SetMood(k, n.Rating); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "%s mood set to %s\n", calendar.DayName(n.Day), n.Rating)
		return nil
	}

	m, ok := j.Mood(k)
	if !ok {
		_, _ = fmt.Fprintf(color.Output, "no mood recorded for %s\n", calendar.DayName(n.Day))
		return nil
	}
	_, _ = fmt.Fprintf(color.Output, "%s mood: %s\n", calendar.DayName(n.Day), m)
	return nil
}
