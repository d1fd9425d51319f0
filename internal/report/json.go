package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nao1215/compass/internal/model"
)

// JSONWriter outputs the answers and their derived summary as JSON.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Document is the JSON form of a report.
//
// Summary is derived from Answers when the document is built; reading a
// Document back never restores it as state.
type Document struct {
	// Answers is the full answer record, in the answers-file layout.
	Answers *model.WorkbookAnswers `json:"answers"`

	// Summary holds the derived totals and labels.
	Summary model.Summary `json:"summary"`
}

// NewDocument builds the JSON document for a fully shaped record.
func NewDocument(answers *model.WorkbookAnswers) (*Document, error) {
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("cannot generate report: %w", err)
	}
	return &Document{
		Answers: answers,
		Summary: model.Summarize(answers),
	}, nil
}

// Write outputs the answers and summary in JSON format.
func (w *JSONWriter) Write(answers *model.WorkbookAnswers) (int, error) {
	doc, err := NewDocument(answers)
	if err != nil {
		return 0, err
	}
	return w.writeJSON(doc)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
