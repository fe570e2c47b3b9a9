package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
)

// document is the export/import file layout: both maps in their persisted
// string-keyed form plus the export timestamp.
type document struct {
	Activities map[string]*entry.Activity `json:"activities"`
	Moods      map[string]entry.Mood      `json:"moods"`
	ExportDate string                     `json:"exportDate,omitempty"`
}

// ExportFilename is the default artifact name for an export taken at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("weeklog-%s.json", now.Format("2006-01-02"))
}

// Export writes the full journal as one JSON document.
func (j *Journal) Export(w io.Writer) error {
	doc := document{
		Activities: make(map[string]*entry.Activity),
		Moods:      make(map[string]entry.Mood),
		ExportDate: j.now().Format(time.RFC3339),
	}
	for k, a := range j.Persistence.Activities() {
		doc.Activities[k.String()] = a
	}
	for k, m := range j.Persistence.Moods() {
		doc.Moods[k.String()] = m
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("journal: export: %w", err)
	}
	return nil
}

// Import replaces the journal with the document read from r. Missing fields
// default to empty maps. The document is decoded and validated in full before
// anything is stored, so a malformed file never leaves partial state behind.
func (j *Journal) Import(r io.Reader) error {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("journal: import: invalid file format: %w", err)
	}

	activities := make(map[key.Activity]*entry.Activity, len(doc.Activities))
	for ks, a := range doc.Activities {
		k, err := key.ParseActivity(ks)
		if err != nil {
			return fmt.Errorf("journal: import: %w", err)
		}
		if a == nil {
			return fmt.Errorf("journal: import: empty entry at %q", ks)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("journal: import: entry at %q: %w", ks, err)
		}
		activities[k] = a
	}

	moods := make(map[key.Mood]entry.Mood, len(doc.Moods))
	for ks, m := range doc.Moods {
		k, err := key.ParseMood(ks)
		if err != nil {
			return fmt.Errorf("journal: import: %w", err)
		}
		if !m.Valid() {
			return fmt.Errorf("journal: import: mood at %q: %w", ks, entry.ErrRatingRange)
		}
		moods[k] = m
	}

	if err := j.Persistence.ReplaceAll(activities, moods); err != nil {
		return fmt.Errorf("journal: import: %w", err)
	}
	return nil
}
