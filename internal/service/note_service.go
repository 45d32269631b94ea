package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-notes-api/internal/model"
	"go-notes-api/pkg/apierror"
)

// NoteStore is the note persistence contract. FindByID loads the note with
// its tags and returns model.ErrNoteNotFound when the id is unknown.
type NoteStore interface {
	Create(ctx context.Context, note model.Note, tagIDs []string) error
	FindByID(ctx context.Context, id string) (model.Note, error)
	FindAllByUser(ctx context.Context, userID string, filter model.NoteFilter) ([]model.Note, error)
	Update(ctx context.Context, note model.Note) error
	ReplaceTags(ctx context.Context, noteID string, tagIDs []string) error
	Delete(ctx context.Context, id string) error
}

// NoteService implements note CRUD scoped to an owning user, with tag
// association delegated to TagService.
type NoteService struct {
	notes NoteStore
	tags  *TagService
}

func NewNoteService(notes NoteStore, tags *TagService) *NoteService {
	return &NoteService{notes: notes, tags: tags}
}

func (s *NoteService) Create(ctx context.Context, userID string, req model.CreateNoteRequest) (model.Note, error) {
	tags, err := s.tags.FindOrCreate(ctx, userID, req.Tags)
	if err != nil {
		return model.Note{}, err
	}

	now := time.Now().UTC()
	note := model.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.Create(ctx, note, tagIDs(tags)); err != nil {
		return model.Note{}, err
	}

	return note, nil
}

func (s *NoteService) FindAll(ctx context.Context, userID string, filter model.NoteFilter) ([]model.Note, error) {
	return s.notes.FindAllByUser(ctx, userID, filter)
}

func (s *NoteService) FindOne(ctx context.Context, id string, userID string) (model.Note, error) {
	return s.ownedNote(ctx, id, userID)
}

func (s *NoteService) Update(ctx context.Context, id string, userID string, req model.UpdateNoteRequest) (model.Note, error) {
	note, err := s.ownedNote(ctx, id, userID)
	if err != nil {
		return model.Note{}, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.UpdatedAt = time.Now().UTC()

	if err := s.notes.Update(ctx, note); err != nil {
		return model.Note{}, err
	}

	// nil means "leave tags alone"; an empty slice clears the set.
	if req.Tags != nil {
		tags, err := s.tags.FindOrCreate(ctx, userID, req.Tags)
		if err != nil {
			return model.Note{}, err
		}
		if err := s.notes.ReplaceTags(ctx, note.ID, tagIDs(tags)); err != nil {
			return model.Note{}, err
		}
		note.Tags = tags
	}

	return note, nil
}

func (s *NoteService) Remove(ctx context.Context, id string, userID string) error {
	note, err := s.ownedNote(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.notes.Delete(ctx, note.ID)
}

// ownedNote enforces the ownership check shared by FindOne, Update and
// Remove: unknown id is NotFound, someone else's note is Forbidden.
func (s *NoteService) ownedNote(ctx context.Context, id string, userID string) (model.Note, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			return model.Note{}, apierror.NotFound("Note with id " + id + " not found")
		}
		return model.Note{}, err
	}

	if note.UserID != userID {
		return model.Note{}, apierror.Forbidden("You are not authorized to access this note")
	}

	return note, nil
}

func tagIDs(tags []model.Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
