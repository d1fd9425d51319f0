package model

import "errors"

// Record shape and score errors.
// Callers match them with errors.Is; the wrapped message names the field.
var (
	// ErrPartialAnswers is returned when a record is missing a nested object
	// or one of its fixed-length sequences has the wrong length.
	ErrPartialAnswers = errors.New("partial workbook answers")

	// ErrScoreOutOfRange is returned when an idea or founder score lies
	// outside 0..MaxScore.
	ErrScoreOutOfRange = errors.New("score out of range")
)
