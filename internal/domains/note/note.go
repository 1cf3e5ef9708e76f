package note

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

// Note is a fragrance ingredient (bergamot, oud, ...). profilePic is
// required; coverPic is optional and may stay empty for the record's
// whole life.
type Note struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Details         string       `json:"details"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	CategoryID      uuid.UUID    `json:"-"`
	ProfilePic      upload.Image `json:"profilePic"`
	CoverPic        upload.Image `json:"coverPic,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type NoteForm struct {
	Name            string `form:"name"`
	Details         string `form:"details"`
	MetaTitle       string `form:"metaTitle"`
	MetaDescription string `form:"metaDescription"`
	Category        string `form:"category"` // referenced category id, not validated for existence
}

func (f NoteForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&f.Details, validation.Required),
		validation.Field(&f.MetaTitle, validation.Required),
		validation.Field(&f.MetaDescription, validation.Required),
	)
}

// CategoryRef is the fan-out projection embedded in read responses.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Response is a note with its category reference expanded.
type Response struct {
	Note
	Category *CategoryRef `json:"category,omitempty"`
}

// Ref is the projection embedded into blog note pyramids.
type Ref struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	ProfilePic upload.Image `json:"profilePic"`
}

func (n *Note) ToRef() Ref {
	return Ref{ID: n.ID, Name: n.Name, Slug: n.Slug, ProfilePic: n.ProfilePic}
}
