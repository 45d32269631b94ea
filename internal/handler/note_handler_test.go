package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"go-notes-api/internal/model"
)

func registerAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := doJSON(t, h, "POST", "/auth/register", map[string]string{
		"name": "Tester", "email": email, "password": "Abcdef1",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, "POST", "/auth/login", map[string]string{
		"email": email, "password": "Abcdef1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body model.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.AccessToken
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestNoteScenario(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	token := registerAndLogin(t, h, "notes@b.com")

	// Unauthenticated access is rejected.
	rec := doJSON(t, h, "GET", "/note", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Create two notes, one tagged.
	rec = doJSON(t, h, "POST", "/note", map[string]any{
		"title": "Groceries", "content": "milk eggs bread", "tags": []string{"shopping", "home"},
	}, withBearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	var tagged model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tagged))
	require.NotEmpty(t, tagged.ID)
	require.Len(t, tagged.Tags, 2)

	rec = doJSON(t, h, "POST", "/note", map[string]any{
		"title": "Plain", "content": "no tags here",
	}, withBearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	// List all.
	rec = doJSON(t, h, "GET", "/note", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)

	// Filter by tag name.
	rec = doJSON(t, h, "GET", "/note?tags=shopping", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	notes = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, "Groceries", notes[0].Title)

	rec = doJSON(t, h, "GET", "/note?tags=unknown", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	notes = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Empty(t, notes)

	// Filter by title substring.
	rec = doJSON(t, h, "GET", "/note?title=groc", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	notes = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)

	// Partial update keeps untouched fields.
	rec = doJSON(t, h, "PATCH", "/note/"+tagged.ID, map[string]any{
		"title": "Groceries v2",
	}, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Groceries v2", updated.Title)
	require.Equal(t, "milk eggs bread", updated.Content)
	require.Len(t, updated.Tags, 2)

	// Owned tag listing.
	rec = doJSON(t, h, "GET", "/tag", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tags))
	require.Len(t, tags, 2)

	// Stats reflect the two notes.
	rec = doJSON(t, h, "GET", "/stats", nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats model.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 2, stats.TotalNotes)

	// Delete, then the note is gone.
	rec = doJSON(t, h, "DELETE", "/note/"+tagged.ID, nil, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "GET", "/note/"+tagged.ID, nil, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteOwnership(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	ownerToken := registerAndLogin(t, h, "owner@b.com")
	otherToken := registerAndLogin(t, h, "other@b.com")

	rec := doJSON(t, h, "POST", "/note", map[string]any{
		"title": "Private", "content": "mine",
	}, withBearer(ownerToken))
	require.Equal(t, http.StatusCreated, rec.Code)

	var note model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))

	// Another user's token cannot read, modify or delete it.
	rec = doJSON(t, h, "GET", "/note/"+note.ID, nil, withBearer(otherToken))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, "PATCH", "/note/"+note.ID, map[string]any{"title": "Stolen"}, withBearer(otherToken))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, "DELETE", "/note/"+note.ID, nil, withBearer(otherToken))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Nor does it see the note in its own listing.
	rec = doJSON(t, h, "GET", "/note", nil, withBearer(otherToken))
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Empty(t, notes)
}

func TestNoteMalformedID(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	token := registerAndLogin(t, h, "badid@b.com")

	// An id that cannot be a note row is a 404, not a database error.
	rec := doJSON(t, h, "GET", "/note/not-a-uuid", nil, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusNotFound, body.StatusCode)
	require.Equal(t, "Note with id not-a-uuid not found", body.Message)

	rec = doJSON(t, h, "PATCH", "/note/not-a-uuid", map[string]any{"title": "x"}, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "DELETE", "/note/not-a-uuid", nil, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateNoteValidation(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	token := registerAndLogin(t, h, "val@b.com")

	rec := doJSON(t, h, "POST", "/note", map[string]any{"title": "   "}, withBearer(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, "POST", "/note", map[string]any{"content": "orphan"}, withBearer(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
