package workbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/compass/internal/model"
)

// Format is the encoding of an answers file.
type Format string

const (
	// FormatYAML is a YAML answers file (.yaml, .yml).
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON answers file (.json).
	FormatJSON Format = "json"
)

// FormatFromPath picks the answers format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml or .json)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads an answers file. See Decode for the checks applied.
func LoadFile(path string) (*model.WorkbookAnswers, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided answers path is intentional
	if err != nil {
		return nil, err
	}

	a, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode reads answers in the given format.
//
// Keys left out of the input keep their defaults, so a file may contain
// only the answers given so far. Unknown keys are rejected. The decoded
// record must be fully shaped (model.ErrPartialAnswers) and every score
// must be in 0..5 (model.ErrScoreOutOfRange): a file is an input edge,
// unlike the setters of this package.
func Decode(r io.Reader, format Format) (*model.WorkbookAnswers, error) {
	a := model.NewWorkbookAnswers()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(a); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML answers: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(a); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode JSON answers: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := a.ValidateScores(); err != nil {
		return nil, err
	}
	return a, nil
}
