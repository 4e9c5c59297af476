package invoice

import "errors"

var (
	// ErrDraftNotFound is returned when a draft is not found or has expired
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftAlreadyExists is returned on an id collision during create
	ErrDraftAlreadyExists = errors.New("draft already exists")
)
