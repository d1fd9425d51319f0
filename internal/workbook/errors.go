package workbook

import "errors"

var (
	// ErrUnknownField is returned by Apply and ParsePath for a path that does
	// not name a leaf of the answer record.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned by Apply when a value cannot be converted
	// to the type of its field, such as a non-numeric score.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedFormat is returned when an answers file has an extension
	// other than .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("unsupported answers file format")
)
