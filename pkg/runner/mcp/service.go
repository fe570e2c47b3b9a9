// Package mcp provides the Model Context Protocol server integration for weeklog.
package mcp

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"tableflip.dev/weeklog/pkg/calendar"
	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/glyph"
	"tableflip.dev/weeklog/pkg/journal"
	"tableflip.dev/weeklog/pkg/key"
	"tableflip.dev/weeklog/pkg/store"
)

// Service coordinates journal-backed operations that are shared by the MCP server.
type Service struct {
	Journal *journal.Journal
}

// LogActivityOptions captures the parameters used to record an activity.
type LogActivityOptions struct {
	Week     int
	Day      int
	Slot     int
	Activity string
	Pleasure entry.Rating
	Mastery  entry.Rating
	Color    entry.Color
	Intent   journal.Intent
}

// ReplacementDTO is a transport-friendly projection of a logged replacement.
type ReplacementDTO struct {
	Activity string `json:"activity"`
	Pleasure int    `json:"pleasure,omitempty"`
	Mastery  int    `json:"mastery,omitempty"`
	Color    string `json:"color,omitempty"`
}

// ActivityDTO is a transport-friendly projection of one journal cell.
type ActivityDTO struct {
	Key           string          `json:"key"`
	Week          int             `json:"week"`
	Day           int             `json:"day"`
	DayName       string          `json:"dayName"`
	Slot          int             `json:"slot"`
	SlotLabel     string          `json:"slotLabel"`
	Activity      string          `json:"activity"`
	Pleasure      int             `json:"pleasure,omitempty"`
	Mastery       int             `json:"mastery,omitempty"`
	Color         string          `json:"color,omitempty"`
	Status        string          `json:"status"`
	StatusSymbol  string          `json:"statusSymbol,omitempty"`
	StatusMeaning string          `json:"statusMeaning,omitempty"`
	Replacement   *ReplacementDTO `json:"replacement,omitempty"`
}

// MoodDTO is a transport-friendly projection of one daily mood.
type MoodDTO struct {
	Key     string `json:"key"`
	Week    int    `json:"week"`
	Day     int    `json:"day"`
	DayName string `json:"dayName"`
	Rating  int    `json:"rating"`
}

// DaySummary groups one day's entries with its mood.
type DaySummary struct {
	Week       int           `json:"week"`
	Day        int           `json:"day"`
	DayName    string        `json:"dayName"`
	Date       string        `json:"date"`
	Mood       *MoodDTO      `json:"mood,omitempty"`
	Activities []ActivityDTO `json:"activities"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Journal: journal.New(p)}
}

func (s *Service) ready() error {
	if s.Journal == nil || s.Journal.Persistence == nil {
		return errors.New("persistence is not configured")
	}
	return nil
}

// LogActivity records an activity at a cell using the supplied options.
func (s *Service) LogActivity(ctx context.Context, opts LogActivityOptions) (*ActivityDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := key.NewActivity(opts.Week, opts.Day, opts.Slot)
	if err != nil {
		return nil, err
	}
	a, err := s.Journal.Save(k, journal.Draft{
		Text:     opts.Activity,
		Pleasure: opts.Pleasure,
		Mastery:  opts.Mastery,
		Color:    opts.Color,
	}, opts.Intent)
	if err != nil {
		return nil, err
	}
	dto := toDTO(k, a)
	return &dto, nil
}

// ConfirmActivity resolves a pending entry as done with both ratings.
func (s *Service) ConfirmActivity(ctx context.Context, week, day, slot int, pleasure, mastery entry.Rating) (*ActivityDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		return nil, err
	}
	a, err := s.Journal.Confirm(k, pleasure, mastery)
	if err != nil {
		return nil, err
	}
	dto := toDTO(k, a)
	return &dto, nil
}

// RejectActivity resolves a pending entry as not done.
func (s *Service) RejectActivity(ctx context.Context, week, day, slot int) (*ActivityDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		return nil, err
	}
	a, err := s.Journal.Reject(k)
	if err != nil {
		return nil, err
	}
	dto := toDTO(k, a)
	return &dto, nil
}

// DeleteActivity removes the whole record at a cell.
func (s *Service) DeleteActivity(ctx context.Context, week, day, slot int) error {
	if err := s.ready(); err != nil {
		return err
	}
	k, err := key.NewActivity(week, day, slot)
	if err != nil {
		return err
	}
	return s.Journal.Delete(k)
}

// SetMood records the daily mood rating.
func (s *Service) SetMood(ctx context.Context, week, day int, rating entry.Mood) (*MoodDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	k, err := key.NewMood(week, day)
	if err != nil {
		return nil, err
	}
	if err := s.Journal.SetMood(k, rating); err != nil {
		return nil, err
	}
	dto := toMoodDTO(k, rating)
	return &dto, nil
}

// GetDay returns one day's entries and mood after a status refresh.
func (s *Service) GetDay(ctx context.Context, week, day int, now time.Time) (*DaySummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if day < 0 || day >= calendar.DaysPerWeek {
		return nil, errors.New("day must be 0..6, Monday first")
	}
	if _, err := s.Journal.Refresh(); err != nil {
		return nil, err
	}

	summary := &DaySummary{
		Week:    week,
		Day:     day,
		DayName: calendar.DayName(day),
		Date:    calendar.FormatDate(calendar.WeekDates(now, week)[day]),
	}
	for k, a := range s.Journal.Persistence.Activities() {
		if k.Week == week && k.Day == day {
			summary.Activities = append(summary.Activities, toDTO(k, a))
		}
	}
	sortDTOs(summary.Activities)

	if mk, err := key.NewMood(week, day); err == nil {
		if m, ok := s.Journal.Mood(mk); ok {
			dto := toMoodDTO(mk, m)
			summary.Mood = &dto
		}
	}
	return summary, nil
}

// GetWeek returns every day of a week, skipping days with nothing recorded.
func (s *Service) GetWeek(ctx context.Context, week int, now time.Time) ([]DaySummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.Journal.Refresh(); err != nil {
		return nil, err
	}

	days := make([]DaySummary, 0, calendar.DaysPerWeek)
	for day := 0; day < calendar.DaysPerWeek; day++ {
		summary, err := s.GetDay(ctx, week, day, now)
		if err != nil {
			return nil, err
		}
		if len(summary.Activities) == 0 && summary.Mood == nil {
			continue
		}
		days = append(days, *summary)
	}
	return days, nil
}

// ListPending returns every entry awaiting review, oldest cell first.
func (s *Service) ListPending(ctx context.Context) ([]ActivityDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	pending, err := s.Journal.Pending()
	if err != nil {
		return nil, err
	}
	out := make([]ActivityDTO, 0, len(pending))
	for _, k := range pending {
		if a, ok := s.Journal.Get(k); ok {
			out = append(out, toDTO(k, a))
		}
	}
	return out, nil
}

// SearchActivities performs a substring match across activity and replacement text.
func (s *Service) SearchActivities(ctx context.Context, query string, limit int) ([]ActivityDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []ActivityDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	matches := make([]ActivityDTO, 0, limit)
	for k, a := range s.Journal.Persistence.Activities() {
		hit := strings.Contains(strings.ToLower(a.Text), q)
		if !hit && a.Replacement != nil {
			hit = strings.Contains(strings.ToLower(a.Replacement.Text), q)
		}
		if hit {
			matches = append(matches, toDTO(k, a))
		}
	}
	sortDTOs(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func sortDTOs(dtos []ActivityDTO) {
	sort.Slice(dtos, func(i, j int) bool {
		a, b := dtos[i], dtos[j]
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Slot < b.Slot
	})
}

func toDTO(k key.Activity, a *entry.Activity) ActivityDTO {
	g := glyph.ForStatus(a.Status)
	dto := ActivityDTO{
		Key:           k.String(),
		Week:          k.Week,
		Day:           k.Day,
		DayName:       calendar.DayName(k.Day),
		Slot:          k.Slot,
		SlotLabel:     k.SlotLabel(),
		Activity:      a.Text,
		Pleasure:      int(a.Pleasure),
		Mastery:       int(a.Mastery),
		Color:         string(a.Color),
		Status:        string(a.Status),
		StatusSymbol:  g.Symbol,
		StatusMeaning: g.Meaning,
	}
	if a.Replacement != nil {
		dto.Replacement = &ReplacementDTO{
			Activity: a.Replacement.Text,
			Pleasure: int(a.Replacement.Pleasure),
			Mastery:  int(a.Replacement.Mastery),
			Color:    string(a.Replacement.Color),
		}
	}
	return dto
}

func toMoodDTO(k key.Mood, m entry.Mood) MoodDTO {
	return MoodDTO{
		Key:     k.String(),
		Week:    k.Week,
		Day:     k.Day,
		DayName: calendar.DayName(k.Day),
		Rating:  int(m),
	}
}

// ParseIntent resolves a save intent name; empty means a plain new entry.
func ParseIntent(input string) (journal.Intent, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "new":
		return journal.NewEntry, nil
	case "edit":
		return journal.EditEntry, nil
	case "instead", "replacement":
		return journal.LogReplacement, nil
	}
	return 0, errors.New("intent must be one of new, edit, instead")
}
