package model

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,notblank"`
	Content string   `json:"content"`
	Tags    []string `json:"tags" validate:"omitempty,max=10,dive,required"`
}

// UpdateNoteRequest uses pointers so absent fields are left untouched.
// A nil Tags slice keeps the existing tag set; an empty one clears it.
type UpdateNoteRequest struct {
	Title   *string  `json:"title" validate:"omitempty,notblank"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags" validate:"omitempty,max=10,dive,required"`
}
