package service

import (
	"context"
	"strings"
	"time"

	"go-notes-api/internal/model"
)

// StatsStore exposes the per-user aggregate queries behind the stats
// endpoint.
type StatsStore interface {
	TotalNotes(ctx context.Context, userID string) (int, error)
	NotesCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
	TagUsage(ctx context.Context, userID string, limit int) ([]model.TagUsage, error)
	NotesByWeekday(ctx context.Context, userID string) (map[string]int, error)
	NoteContents(ctx context.Context, userID string) ([]string, error)
}

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

const mostUsedTagsLimit = 10

// StatsService assembles the usage statistics object. Purely a derived
// read; nothing here mutates state.
type StatsService struct {
	stats StatsStore
}

func NewStatsService(stats StatsStore) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) ForUser(ctx context.Context, userID string) (model.Stats, error) {
	total, err := s.stats.TotalNotes(ctx, userID)
	if err != nil {
		return model.Stats{}, err
	}

	lastWeek, err := s.stats.NotesCreatedSince(ctx, userID, time.Now().UTC().AddDate(0, 0, -7))
	if err != nil {
		return model.Stats{}, err
	}

	mostUsed, err := s.stats.TagUsage(ctx, userID, mostUsedTagsLimit)
	if err != nil {
		return model.Stats{}, err
	}

	byDay, err := s.stats.NotesByWeekday(ctx, userID)
	if err != nil {
		return model.Stats{}, err
	}

	contents, err := s.stats.NoteContents(ctx, userID)
	if err != nil {
		return model.Stats{}, err
	}

	// Every weekday appears in the map, zero or not.
	byWeekday := make(map[string]int, len(weekdays))
	for _, day := range weekdays {
		byWeekday[day] = byDay[day]
	}

	return model.Stats{
		TotalNotes:           total,
		NotesCreatedLastWeek: lastWeek,
		MostUsedTags:         mostUsed,
		NotesByDayOfWeek:     byWeekday,
		AverageNoteLength:    averageWordCount(contents),
	}, nil
}

// averageWordCount is the mean number of whitespace-separated words per
// note. Empty input yields zero.
func averageWordCount(contents []string) float64 {
	if len(contents) == 0 {
		return 0
	}

	total := 0
	for _, content := range contents {
		total += len(strings.Fields(content))
	}

	return float64(total) / float64(len(contents))
}
