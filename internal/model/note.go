package model

import "time"

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []Tag     `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// NoteFilter narrows FindAll results. Zero values mean "no filter".
// Tags holds comma-separated tag names matched case-insensitively.
type NoteFilter struct {
	Title   string
	Content string
	Tags    string
}
