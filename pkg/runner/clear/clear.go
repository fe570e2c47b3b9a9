package clear

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/store"
)

// Clear wipes the whole journal after confirmation.
type Clear struct {
	// Confirmed skips the interactive prompt.
	Confirmed bool

	Persistence store.Persistence
}

func (n *Clear) Do(ctx context.Context) error {
	if !n.Confirmed {
		prompt := promptui.Prompt{
			Label:     "Delete every activity and mood",
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return errors.New("clear: aborted")
			}
			return fmt.Errorf("clear: %w", err)
		}
	}

	j := journal.New(n.Persistence)
	if err := j.Clear(); err != nil {
		return err
	}
	fmt.Println("journal cleared")
	return nil
}
