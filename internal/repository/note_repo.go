package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-notes-api/internal/model"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note, tagIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create note: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if err := insertNoteTags(ctx, tx, note.ID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (model.Note, error) {
	var n model.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
		 FROM notes WHERE id = $1`, id).
		Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Note{}, model.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("find note by id: %w", err)
	}

	tagsByNote, err := r.tagsForNotes(ctx, []string{n.ID})
	if err != nil {
		return model.Note{}, err
	}
	n.Tags = tagsByNote[n.ID]

	return n, nil
}

func (r *NoteRepository) FindAllByUser(ctx context.Context, userID string, filter model.NoteFilter) ([]model.Note, error) {
	query := strings.Builder{}
	query.WriteString(
		`SELECT id, user_id, title, content, created_at, updated_at
		 FROM notes WHERE user_id = $1`)
	args := []any{userID}

	if title := strings.TrimSpace(filter.Title); title != "" {
		args = append(args, "%"+title+"%")
		fmt.Fprintf(&query, " AND title ILIKE $%d", len(args))
	}

	if content := strings.TrimSpace(filter.Content); content != "" {
		args = append(args, "%"+content+"%")
		fmt.Fprintf(&query, " AND content ILIKE $%d", len(args))
	}

	if tagNames := splitTagNames(filter.Tags); len(tagNames) > 0 {
		args = append(args, tagNames)
		fmt.Fprintf(&query, ` AND EXISTS (
			SELECT 1 FROM note_tags nt
			JOIN tags t ON t.id = nt.tag_id
			WHERE nt.note_id = notes.id AND lower(t.name) = ANY($%d))`, len(args))
	}

	query.WriteString(" ORDER BY created_at DESC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
		ids = append(ids, n.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagsByNote, err := r.tagsForNotes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		notes[i].Tags = tagsByNote[notes[i].ID]
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note model.Note) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $2, content = $3, updated_at = $4 WHERE id = $1`,
		note.ID, note.Title, note.Content, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) ReplaceTags(ctx context.Context, noteID string, tagIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace tags: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM note_tags WHERE note_id = $1`, noteID); err != nil {
		return fmt.Errorf("clear note tags: %w", err)
	}

	if err := insertNoteTags(ctx, tx, noteID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace tags: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

func (r *NoteRepository) tagsForNotes(ctx context.Context, noteIDs []string) (map[string][]model.Tag, error) {
	byNote := make(map[string][]model.Tag, len(noteIDs))
	for _, id := range noteIDs {
		byNote[id] = []model.Tag{}
	}
	if len(noteIDs) == 0 {
		return byNote, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT nt.note_id, t.id, t.user_id, t.name
		 FROM note_tags nt
		 JOIN tags t ON t.id = nt.tag_id
		 WHERE nt.note_id = ANY($1)
		 ORDER BY t.name`, noteIDs)
	if err != nil {
		return nil, fmt.Errorf("load note tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID string
		var t model.Tag
		if err := rows.Scan(&noteID, &t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan note tag: %w", err)
		}
		byNote[noteID] = append(byNote[noteID], t)
	}
	return byNote, rows.Err()
}

func insertNoteTags(ctx context.Context, tx pgx.Tx, noteID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO note_tags (note_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			noteID, tagID)
		if err != nil {
			return fmt.Errorf("attach tag %s: %w", tagID, err)
		}
	}
	return nil
}

func splitTagNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		names = append(names, trimmed)
	}
	return names
}
