package perfumer

import "errors"

var (
	ErrValidation   = errors.New("perfumer validation failed")
	ErrMissingImage = errors.New("required image missing")
	ErrSlugTaken    = errors.New("perfumer with this name already exists")
	ErrNotFound     = errors.New("perfumer not found")
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
