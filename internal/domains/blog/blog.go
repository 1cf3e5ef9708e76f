package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/upload"
)

// Blog is a perfume review post. Reference fields store bare ids; read
// responses expand them through the Response projection below.
type Blog struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	Slug          string       `json:"slug"`
	ReleaseDate   string       `json:"releaseDate"`
	Description1  string       `json:"description1"`
	Description2  string       `json:"description2"`
	BrandID       uuid.UUID    `json:"-"`
	PerfumerID    uuid.UUID    `json:"-"`
	AuthorID      uuid.UUID    `json:"-"`
	TopNoteIDs    []uuid.UUID  `json:"-"`
	MiddleNoteIDs []uuid.UUID  `json:"-"`
	BaseNoteIDs   []uuid.UUID  `json:"-"`
	Image1        upload.Image `json:"image1"`
	Image2        upload.Image `json:"image2"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// BlogForm carries the multipart fields of add/update requests. Note ids
// arrive as repeated form values; single comma-separated values are also
// accepted. Reference ids are stored as-is, not validated for existence.
type BlogForm struct {
	Title        string   `form:"title"`
	Subtitle     string   `form:"subtitle"`
	ReleaseDate  string   `form:"releaseDate"`
	Description1 string   `form:"description1"`
	Description2 string   `form:"description2"`
	Brand        string   `form:"brand"`
	Perfumer     string   `form:"perfumer"`
	Author       string   `form:"author"`
	TopNotes     []string `form:"topNotes"`
	MiddleNotes  []string `form:"middleNotes"`
	BaseNotes    []string `form:"baseNotes"`
}

func (f BlogForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&f.Subtitle, validation.Required),
		validation.Field(&f.ReleaseDate, validation.Required),
		validation.Field(&f.Description1, validation.Required),
		validation.Field(&f.Description2, validation.Required),
	)
}

// NotePyramid groups the expanded note references by layer.
type NotePyramid struct {
	Top    []note.Ref `json:"top"`
	Middle []note.Ref `json:"middle"`
	Base   []note.Ref `json:"base"`
}

// Response is a blog with every reference expanded. Dangling references
// are dropped from the projection rather than erroring.
type Response struct {
	Blog
	Brand    *designer.Ref `json:"brand,omitempty"`
	Perfumer *perfumer.Ref `json:"perfumer,omitempty"`
	Author   *author.Ref   `json:"author,omitempty"`
	Notes    NotePyramid   `json:"notes"`
}
