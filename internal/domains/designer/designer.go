package designer

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/shared/upload"
)

// Designer is a perfume house (Chanel, Dior, ...). Its slug is generated
// from the name and doubles as the public lookup key.
type Designer struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	MetaTitle       string       `json:"metaTitle"`
	MetaDescription string       `json:"metaDescription"`
	Logo            upload.Image `json:"logo"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// DesignerForm is the multipart body of addDesigner/updateDesigner;
// the logo file itself arrives through the upload middleware.
type DesignerForm struct {
	Name            string `form:"name"`
	Description     string `form:"description"`
	MetaTitle       string `form:"metaTitle"`
	MetaDescription string `form:"metaDescription"`
}

func (f DesignerForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.MetaTitle, validation.Required),
		validation.Field(&f.MetaDescription, validation.Required),
	)
}

// Ref is the projection embedded into blog responses.
type Ref struct {
	ID   uuid.UUID    `json:"id"`
	Name string       `json:"name"`
	Slug string       `json:"slug"`
	Logo upload.Image `json:"logo"`
}

func (d *Designer) ToRef() Ref {
	return Ref{ID: d.ID, Name: d.Name, Slug: d.Slug, Logo: d.Logo}
}
