package model

type TagUsage struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalNotes           int            `json:"totalNotes"`
	NotesCreatedLastWeek int            `json:"notesCreatedLastWeek"`
	MostUsedTags         []TagUsage     `json:"mostUsedTags"`
	NotesByDayOfWeek     map[string]int `json:"notesByDayOfWeek"`
	AverageNoteLength    float64        `json:"averageNoteLength"`
}
