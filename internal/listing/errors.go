package listing

import "errors"

var (
	ErrNotFound = errors.New("listing: not found")
	ErrNoFields = errors.New("listing: no fields to write")
)
