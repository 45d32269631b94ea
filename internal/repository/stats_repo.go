package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-notes-api/internal/model"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) TotalNotes(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) NotesCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE user_id = $1 AND created_at >= $2`,
		userID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recent notes: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) TagUsage(ctx context.Context, userID string, limit int) ([]model.TagUsage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.name, COUNT(nt.note_id)::int AS note_count
		 FROM tags t
		 LEFT JOIN note_tags nt ON nt.tag_id = t.id
		 WHERE t.user_id = $1
		 GROUP BY t.id, t.name
		 ORDER BY note_count DESC, t.name
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("tag usage: %w", err)
	}
	defer rows.Close()

	usage := make([]model.TagUsage, 0)
	for rows.Next() {
		var u model.TagUsage
		if err := rows.Scan(&u.Tag, &u.Count); err != nil {
			return nil, fmt.Errorf("scan tag usage: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// NotesByWeekday buckets note creation by day-of-week name ("Monday" ...).
// FMDay strips trailing padding from to_char.
func (r *StatsRepository) NotesByWeekday(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT to_char(created_at, 'FMDay') AS day, COUNT(*)::int AS count
		 FROM notes
		 WHERE user_id = $1
		 GROUP BY EXTRACT(ISODOW FROM created_at), day
		 ORDER BY EXTRACT(ISODOW FROM created_at)`, userID)
	if err != nil {
		return nil, fmt.Errorf("notes by weekday: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan weekday count: %w", err)
		}
		byDay[day] = count
	}
	return byDay, rows.Err()
}

func (r *StatsRepository) NoteContents(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT content FROM notes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("note contents: %w", err)
	}
	defer rows.Close()

	contents := make([]string, 0)
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan note content: %w", err)
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}
