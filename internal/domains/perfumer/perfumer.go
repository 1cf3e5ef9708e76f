package perfumer

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

// Perfumer is the nose behind a fragrance.
type Perfumer struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title,omitempty"`
	Intro           string       `json:"intro,omitempty"`
	Bio             string       `json:"bio"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	Image           upload.Image `json:"image"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type PerfumerForm struct {
	Name            string `form:"name"`
	Title           string `form:"title"`
	Intro           string `form:"intro"`
	Bio             string `form:"bio"`
	MetaTitle       string `form:"metaTitle"`
	MetaDescription string `form:"metaDescription"`
}

func (f PerfumerForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&f.Bio, validation.Required),
		validation.Field(&f.MetaTitle, validation.Required),
		validation.Field(&f.MetaDescription, validation.Required),
	)
}

type Ref struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Slug  string       `json:"slug"`
	Image upload.Image `json:"image"`
}

func (p *Perfumer) ToRef() Ref {
	return Ref{ID: p.ID, Name: p.Name, Slug: p.Slug, Image: p.Image}
}
