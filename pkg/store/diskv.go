package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
)

// Persistence is the persistence contract for the journal. The whole activity
// map and the whole mood map are each one durable document, rewritten on every
// mutation. There is exactly one logical writer; if two processes share a
// store the last whole-document write wins.
type Persistence interface {
	Activities() map[key.Activity]*entry.Activity
	GetActivity(k key.Activity) (*entry.Activity, bool)
	PutActivity(k key.Activity, a *entry.Activity) error
	DeleteActivity(k key.Activity) error

	Moods() map[key.Mood]entry.Mood
	GetMood(k key.Mood) (entry.Mood, bool)
	PutMood(k key.Mood, m entry.Mood) error
	DeleteMood(k key.Mood) error

	// ReplaceAll swaps in both maps wholesale and persists them. Used by
	// import and clear.
	ReplaceAll(activities map[key.Activity]*entry.Activity, moods map[key.Mood]entry.Mood) error

	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	activitiesDoc = "activities"
	moodsDoc      = "moods"
)

// Load creates a Persistence backed by diskv using the provided config and
// reads both documents. Mutations are only persisted once this initial load
// has completed, so a half-finished load can never be clobbered by empty
// defaults.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := cfg.BasePath()
	if err != nil {
		return nil, err
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath:   basePath,
		activities: make(map[key.Activity]*entry.Activity),
		moods:      make(map[key.Mood]entry.Mood),
	}
	p.load()
	p.loaded = true
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	loaded   bool

	activities map[key.Activity]*entry.Activity
	moods      map[key.Mood]entry.Mood
}

// load reads both documents. A missing document is an empty map; a corrupt
// document or key is logged and discarded so the journal always opens.
func (p *persistence) load() {
	var activities map[string]*entry.Activity
	if err := p.readJSON(activitiesDoc, &activities); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", activitiesDoc, err)
	} else {
		for ks, a := range activities {
			k, err := key.ParseActivity(ks)
			if err != nil {
				fmt.Fprintf(os.Stderr, "store: %s: %v\n", activitiesDoc, err)
				continue
			}
			p.activities[k] = a
		}
	}

	var moods map[string]entry.Mood
	if err := p.readJSON(moodsDoc, &moods); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", moodsDoc, err)
		return
	}
	for ks, m := range moods {
		k, err := key.ParseMood(ks)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", moodsDoc, err)
			continue
		}
		p.moods[k] = m
	}
}

func (p *persistence) readJSON(doc string, target any) error {
	data, err := p.d.Read(doc)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

func (p *persistence) Activities() map[key.Activity]*entry.Activity {
	all := make(map[key.Activity]*entry.Activity, len(p.activities))
	for k, a := range p.activities {
		all[k] = a.Clone()
	}
	return all
}

func (p *persistence) GetActivity(k key.Activity) (*entry.Activity, bool) {
	a, ok := p.activities[k]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

func (p *persistence) PutActivity(k key.Activity, a *entry.Activity) error {
	if a == nil {
		return errors.New("store: nil activity")
	}
	p.activities[k] = a.Clone()
	return p.flushActivities()
}

func (p *persistence) DeleteActivity(k key.Activity) error {
	if _, ok := p.activities[k]; !ok {
		return nil
	}
	delete(p.activities, k)
	return p.flushActivities()
}

func (p *persistence) Moods() map[key.Mood]entry.Mood {
	all := make(map[key.Mood]entry.Mood, len(p.moods))
	for k, m := range p.moods {
		all[k] = m
	}
	return all
}

func (p *persistence) GetMood(k key.Mood) (entry.Mood, bool) {
	m, ok := p.moods[k]
	return m, ok
}

func (p *persistence) PutMood(k key.Mood, m entry.Mood) error {
	p.moods[k] = m
	return p.flushMoods()
}

func (p *persistence) DeleteMood(k key.Mood) error {
	if _, ok := p.moods[k]; !ok {
		return nil
	}
	delete(p.moods, k)
	return p.flushMoods()
}

func (p *persistence) ReplaceAll(activities map[key.Activity]*entry.Activity, moods map[key.Mood]entry.Mood) error {
	next := make(map[key.Activity]*entry.Activity, len(activities))
	for k, a := range activities {
		next[k] = a.Clone()
	}
	nextMoods := make(map[key.Mood]entry.Mood, len(moods))
	for k, m := range moods {
		nextMoods[k] = m
	}

	p.activities = next
	p.moods = nextMoods

	if err := p.flushActivities(); err != nil {
		return err
	}
	return p.flushMoods()
}

func (p *persistence) flushActivities() error {
	if !p.loaded {
		return nil
	}
	doc := make(map[string]*entry.Activity, len(p.activities))
	for k, a := range p.activities {
		doc[k.String()] = a
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", activitiesDoc, err)
	}
	if err := p.d.Write(activitiesDoc, data); err != nil {
		return fmt.Errorf("store: write %s: %w", activitiesDoc, err)
	}
	return nil
}

func (p *persistence) flushMoods() error {
	if !p.loaded {
		return nil
	}
	doc := make(map[string]entry.Mood, len(p.moods))
	for k, m := range p.moods {
		doc[k.String()] = m
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", moodsDoc, err)
	}
	if err := p.d.Write(moodsDoc, data); err != nil {
		return fmt.Errorf("store: write %s: %w", moodsDoc, err)
	}
	return nil
}
