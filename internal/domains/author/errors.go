package author

import "errors"

var (
	ErrValidation   = errors.New("author validation failed")
	ErrMissingImage = errors.New("required image missing")
	ErrSlugTaken    = errors.New("author with this name already exists")
	ErrNotFound     = errors.New("author not found")
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
