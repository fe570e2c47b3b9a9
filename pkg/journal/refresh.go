package journal

import (
	"tableflip.dev/weeklog/pkg/status"
)

// Refresh recomputes every stored entry's status against the current time and
// writes back only the ones that changed, returning how many did. It runs on
// every load and whenever the visible week or day changes; there are no
// per-entry timers.
func (j *Journal) Refresh() (int, error) {
	now := j.now()
	changed := 0
	for k, a := range j.Persistence.Activities() {
		next := status.Next(k, a.Status, now)
		if next == a.Status {
			continue
		}
		a.Status = next
		if err := j.Persistence.PutActivity(k, a); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}
