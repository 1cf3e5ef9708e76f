package blog

import "errors"

var (
	ErrValidation   = errors.New("blog validation failed")
	ErrMissingImage = errors.New("required image missing")
	ErrSlugTaken    = errors.New("blog with this title already exists")
	ErrNotFound     = errors.New("blog not found")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrSlugTaken):
		return 409
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMissingImage):
		return 400
	default:
		return 500
	}
}
