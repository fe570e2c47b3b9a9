// Package journal is the application service over the store: it owns the save
// semantics (including logging replacements for failed plans), the
// reconciliation workflow, and the lazy status refresh pass.
package journal

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/status"
	"tableflip.dev/weeklog/pkg/store"
)

// Intent says what kind of save the caller is performing. It is an explicit
// input to Save rather than something inferred from form state.
type Intent int

const (
	// NewEntry logs an activity into a cell the caller believes is empty. If
	// the cell actually holds an incomplete plan, the save becomes that
	// plan's replacement.
	NewEntry Intent = iota

	// EditEntry updates an existing entry in place, preserving its status.
	EditEntry

	// LogReplacement explicitly records what was done instead of an
	// incomplete plan.
	LogReplacement
)

var (
	// ErrNotUnderReview is returned when a reconciliation reply targets an
	// entry that is not waiting for one.
	ErrNotUnderReview = errors.New("journal: entry is not awaiting review")

	// ErrRatingsRequired is returned when a completion confirmation is
	// missing either rating.
	ErrRatingsRequired = errors.New("journal: pleasure and mastery ratings required to confirm completion")

	// ErrNoEntry is returned for operations that need an existing entry.
	ErrNoEntry = errors.New("journal: no entry at that time")

	// ErrNothingToReplace is returned for an explicit replacement against a
	// cell that holds no incomplete plan.
	ErrNothingToReplace = errors.New("journal: no incomplete plan to replace")
)

// Draft carries the user-supplied fields of a save.
type Draft struct {
	Text     string
	Pleasure entry.Rating
	Mastery  entry.Rating
	Color    entry.Color
}

// Journal drives all journal operations through a Persistence. Now is
// injectable so the temporal rules stay testable.
type Journal struct {
	Persistence store.Persistence
	Now         func() time.Time
}

// New returns a Journal over p using the wall clock.
func New(p store.Persistence) *Journal {
	return &Journal{Persistence: p, Now: time.Now}
}

func (j *Journal) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

// Get returns the entry at k, when present.
func (j *Journal) Get(k key.Activity) (*entry.Activity, bool) {
	return j.Persistence.GetActivity(k)
}

// Save writes the draft at k according to intent and returns the stored
// entry. An empty draft text refuses the save; nothing is written.
func (j *Journal) Save(k key.Activity, d Draft, intent Intent) (*entry.Activity, error) {
	if d.Text == "" {
		return nil, entry.ErrTextRequired
	}
	if !d.Pleasure.ValidOrUnset() || !d.Mastery.ValidOrUnset() {
		return nil, entry.ErrRatingRange
	}

	existing, exists := j.Persistence.GetActivity(k)

	// A failed plan keeps its record; what was done instead goes into the
	// replacement, never over the original.
	replacing := intent == LogReplacement ||
		(intent == NewEntry && exists && existing.Status == entry.Incomplete)
	if replacing {
		if !exists || existing.Status != entry.Incomplete {
			return nil, ErrNothingToReplace
		}
		existing.Replacement = &entry.Replacement{
			Text:     d.Text,
			Pleasure: d.Pleasure,
			Mastery:  d.Mastery,
			Color:    d.Color,
		}
		if err := j.Persistence.PutActivity(k, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	var a *entry.Activity
	switch intent {
	case EditEntry:
		if !exists {
			return nil, ErrNoEntry
		}
		// An edit only touches the fields the draft specifies; stored
		// ratings and color stay put otherwise.
		a = existing.Clone()
		a.Text = d.Text
		if d.Pleasure.Set() {
			a.Pleasure = d.Pleasure
		}
		if d.Mastery.Set() {
			a.Mastery = d.Mastery
		}
		if d.Color != "" {
			a.Color = d.Color
		}
	default:
		a = entry.New(d.Text, d.Pleasure, d.Mastery, d.Color)
		a.Status = status.Initial(k, j.now())
	}
	if err := j.Persistence.PutActivity(k, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Confirm resolves a needs-review entry as done. Both ratings are required
// here, unlike the plain save path, which leaves them advisory.
func (j *Journal) Confirm(k key.Activity, pleasure, mastery entry.Rating) (*entry.Activity, error) {
	a, ok := j.Persistence.GetActivity(k)
	if !ok {
		return nil, ErrNoEntry
	}
	if a.Status != entry.NeedsReview {
		return nil, ErrNotUnderReview
	}
	if !pleasure.Valid() || !mastery.Valid() {
		return nil, ErrRatingsRequired
	}
	a.Pleasure = pleasure
	a.Mastery = mastery
	a.Status = entry.Completed
	if err := j.Persistence.PutActivity(k, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Reject resolves a needs-review entry as not done. The entry stays as the
// record of the failed plan; a later NewEntry save against the same cell is
// stored as its replacement.
func (j *Journal) Reject(k key.Activity) (*entry.Activity, error) {
	a, ok := j.Persistence.GetActivity(k)
	if !ok {
		return nil, ErrNoEntry
	}
	if a.Status != entry.NeedsReview {
		return nil, ErrNotUnderReview
	}
	a.Status = entry.Incomplete
	a.Color = entry.White
	if err := j.Persistence.PutActivity(k, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the whole record at k, replacement included.
func (j *Journal) Delete(k key.Activity) error {
	return j.Persistence.DeleteActivity(k)
}

// SetMood stores the daily mood, overwriting any previous value.
func (j *Journal) SetMood(k key.Mood, m entry.Mood) error {
	if !m.Valid() {
		return entry.ErrRatingRange
	}
	return j.Persistence.PutMood(k, m)
}

// Mood returns the daily mood, when present.
func (j *Journal) Mood(k key.Mood) (entry.Mood, bool) {
	return j.Persistence.GetMood(k)
}

// Pending returns the keys of all entries currently awaiting review, after a
// refresh pass, ordered oldest cell first.
func (j *Journal) Pending() ([]key.Activity, error) {
	if _, err := j.Refresh(); err != nil {
		return nil, err
	}
	var pending []key.Activity
	for k, a := range j.Persistence.Activities() {
		if a.Status == entry.NeedsReview {
			pending = append(pending, k)
		}
	}
	sortKeys(pending)
	return pending, nil
}

// Clear wipes both documents.
func (j *Journal) Clear() error {
	if err := j.Persistence.ReplaceAll(nil, nil); err != nil {
		return fmt.Errorf("journal: clear: %w", err)
	}
	return nil
}

func sortKeys(keys []key.Activity) {
	sort.Slice(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})
}

func less(a, b key.Activity) bool {
	if a.Week != b.Week {
		return a.Week < b.Week
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Slot < b.Slot
}
