package export

import "errors"

var (
	// ErrEmptyDocument is returned when asked to export an empty document.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrInvalidFileName is returned when a file name is empty or contains
	// a path separator.
	ErrInvalidFileName = errors.New("invalid file name")
)
