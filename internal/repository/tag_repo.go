package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-notes-api/internal/model"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name FROM tags WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// FindOrCreate upserts each name for the user and returns the resulting
// rows in input order. ON CONFLICT DO NOTHING plus a reselect keeps the
// (user, name) pair unique under concurrent inserts.
func (r *TagRepository) FindOrCreate(ctx context.Context, userID string, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO tags (id, user_id, name) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, name) DO NOTHING`,
			uuid.NewString(), userID, name)
		if err != nil {
			return nil, fmt.Errorf("upsert tag %q: %w", name, err)
		}

		var t model.Tag
		err = r.pool.QueryRow(ctx,
			`SELECT id, user_id, name FROM tags WHERE user_id = $1 AND name = $2`,
			userID, name).Scan(&t.ID, &t.UserID, &t.Name)
		if err != nil {
			return nil, fmt.Errorf("select tag %q: %w", name, err)
		}
		tags = append(tags, t)
	}

	return tags, nil
}
