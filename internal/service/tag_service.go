package service

import (
	"context"
	"strings"

	"go-notes-api/internal/model"
)

// TagStore is the tag persistence contract. FindOrCreate must dedupe by
// (user, name) even under concurrent inserts.
type TagStore interface {
	FindAllByUser(ctx context.Context, userID string) ([]model.Tag, error)
	FindOrCreate(ctx context.Context, userID string, names []string) ([]model.Tag, error)
}

type TagService struct {
	tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{tags: tags}
}

// FindAllByUser lists a user's tags ordered by name.
func (s *TagService) FindAllByUser(ctx context.Context, userID string) ([]model.Tag, error) {
	return s.tags.FindAllByUser(ctx, userID)
}

// FindOrCreate resolves tag names to tag rows, creating missing ones. Names
// are trimmed and deduplicated before hitting the store; blank names are
// dropped.
func (s *TagService) FindOrCreate(ctx context.Context, userID string, names []string) ([]model.Tag, error) {
	seen := map[string]struct{}{}
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}

	if len(cleaned) == 0 {
		return []model.Tag{}, nil
	}

	return s.tags.FindOrCreate(ctx, userID, cleaned)
}
