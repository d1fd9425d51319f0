package server

import "errors"

var (
	// ErrRatingOutOfRange is returned when a star rating posted by the
	// browser is not a whole number from 1 to 5. Answers files may hold 0,
	// but the UI only offers stars.
	ErrRatingOutOfRange = errors.New("rating must be a whole number from 1 to 5")

	// ErrChecklistNotToggle is returned when a checklist item is set
	// directly instead of toggled.
	ErrChecklistNotToggle = errors.New("checklist items can only be toggled")

	// ErrInvalidNavTarget is returned when /nav receives a target other
	// than prev, next or a section number.
	ErrInvalidNavTarget = errors.New("invalid navigation target")

	// ErrFieldTooLong is returned when a posted answer exceeds MaxFieldLength.
	ErrFieldTooLong = errors.New("answer is too long")
)
