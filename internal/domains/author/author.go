package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

// Author writes reviews. The authorPic is required on create but an
// update may omit it and keep the stored one.
type Author struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Bio             string       `json:"bio"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	AuthorPic       upload.Image `json:"authorPic"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type AuthorForm struct {
	Name            string `form:"name"`
	Title           string `form:"title"`
	Bio             string `form:"bio"`
	MetaTitle       string `form:"metaTitle"`
	MetaDescription string `form:"metaDescription"`
}

func (f AuthorForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Bio, validation.Required),
		validation.Field(&f.MetaTitle, validation.Required),
		validation.Field(&f.MetaDescription, validation.Required),
	)
}

type Ref struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	AuthorPic upload.Image `json:"authorPic"`
}

func (a *Author) ToRef() Ref {
	return Ref{ID: a.ID, Name: a.Name, Slug: a.Slug, AuthorPic: a.AuthorPic}
}
