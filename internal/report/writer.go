package report

import (
	"io"

	"github.com/nao1215/compass/internal/model"
)

// Writer defines the interface for report output.
// Implementations render workbook answers in various formats.
type Writer interface {
	// Write renders the answers to the configured destination.
	// Returns the number of bytes written and any error encountered.
	// A record that is not fully shaped yields an error wrapping
	// model.ErrPartialAnswers and nothing is written.
	Write(answers *model.WorkbookAnswers) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for producing several formats from one record.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the answers with all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(answers *model.WorkbookAnswers) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(answers)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
