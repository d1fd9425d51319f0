package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/compass/internal/model"
)

// FieldKind classifies the leaf a field path points at.
type FieldKind int

const (
	// KindText is a free-text answer.
	KindText FieldKind = iota
	// KindScore is a 0..5 rating (idea dimension or founder statement).
	KindScore
	// KindCheck is a checklist boolean.
	KindCheck
)

// Field is a parsed field path.
//
// Paths use the camelCase keys of the answers file joined by dots, with
// sequence indexes as numbers:
//
//	birthReflection.q1
//	ideas.0.name
//	ideas.2.marketFit
//	founderScores.9
//	checklist.3
//	canvas.nextStep
//	threepReflection
type Field struct {
	// Path is the original path.
	Path string
	// Group is the top-level key, e.g. "ideas".
	Group string
	// Index is the sequence index for ideas, founderScores and checklist.
	Index int
	// Key is the leaf key inside a group, e.g. "q1" or "marketFit".
	Key string
	// Kind is the type of the leaf.
	Kind FieldKind
}

// questionGroups maps each text group to a check of its leaf keys.
var questionGroups = map[string]func(key string) bool{
	"birthReflection": isQuestionKey,
	"leverageNotes":   isQuestionKey,
	"mvpReflection":   isQuestionKey,
	"teamReflection":  isQuestionKey,
	"finalReflection": isQuestionKey,
	"market":          func(key string) bool { _, ok := model.Market{}.Get(key); return ok },
	"unlearnNotes":    func(key string) bool { _, ok := model.UnlearnNotes{}.Get(key); return ok },
	"canvas":          func(key string) bool { _, ok := model.Canvas{}.Get(key); return ok },
}

func isQuestionKey(key string) bool {
	_, ok := model.ThreeQuestions{}.Get(key)
	return ok
}

// ParsePath parses and checks a field path. It returns ErrUnknownField
// when the path does not name a leaf of the record.
func ParsePath(path string) (Field, error) {
	parts := strings.Split(path, ".")
	f := Field{Path: path, Group: parts[0]}
	unknown := fmt.Errorf("%w: %q", ErrUnknownField, path)

	switch f.Group {
	case "threepReflection", "canvasReflection":
		if len(parts) != 1 {
			return Field{}, unknown
		}
		f.Kind = KindText
		return f, nil

	case "ideas":
		if len(parts) != 3 {
			return Field{}, unknown
		}
		idx, ok := parseIndex(parts[1], model.IdeaCount)
		if !ok {
			return Field{}, unknown
		}
		f.Index, f.Key = idx, parts[2]
		if f.Key == "name" {
			f.Kind = KindText
			return f, nil
		}
		if _, ok := model.ParseDimension(f.Key); !ok {
			return Field{}, unknown
		}
		f.Kind = KindScore
		return f, nil

	case "founderScores", "checklist":
		if len(parts) != 2 {
			return Field{}, unknown
		}
		size, kind := model.FounderStatementCount, KindScore
		if f.Group == "checklist" {
			size, kind = model.ChecklistItemCount, KindCheck
		}
		idx, ok := parseIndex(parts[1], size)
		if !ok {
			return Field{}, unknown
		}
		f.Index, f.Kind = idx, kind
		return f, nil
	}

	valid, ok := questionGroups[f.Group]
	if !ok || len(parts) != 2 || !valid(parts[1]) {
		return Field{}, unknown
	}
	f.Key, f.Kind = parts[1], KindText
	return f, nil
}

// parseIndex parses a decimal sequence index in 0..size-1.
func parseIndex(s string, size int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= size {
		return 0, false
	}
	return n, true
}

// Update is a single field change addressed by path.
type Update struct {
	Path  string
	Value string
}

// Apply applies u to a and returns the new record.
// Score values must be integers and checklist values booleans
// (strconv.ParseBool); otherwise ErrInvalidValue is returned.
// The range of a score is not checked.
func Apply(a *model.WorkbookAnswers, u Update) (*model.WorkbookAnswers, error) {
	f, err := ParsePath(u.Path)
	if err != nil {
		return a, err
	}

	switch f.Kind {
	case KindScore:
		n, err := strconv.Atoi(strings.TrimSpace(u.Value))
		if err != nil {
			return a, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidValue, u.Path, u.Value)
		}
		if f.Group == "founderScores" {
			return SetFounderScore(a, f.Index, n), nil
		}
		d, _ := model.ParseDimension(f.Key)
		return SetIdeaScore(a, f.Index, d, n), nil

	case KindCheck:
		done, err := strconv.ParseBool(strings.TrimSpace(u.Value))
		if err != nil {
			return a, fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidValue, u.Path, u.Value)
		}
		return SetChecklist(a, f.Index, done), nil
	}

	return applyText(a, f, u.Value), nil
}

// applyText routes a parsed text field to its setter.
func applyText(a *model.WorkbookAnswers, f Field, value string) *model.WorkbookAnswers {
	switch f.Group {
	case "birthReflection":
		return SetBirthReflection(a, f.Key, value)
	case "leverageNotes":
		return SetLeverageNote(a, f.Key, value)
	case "mvpReflection":
		return SetMVPReflection(a, f.Key, value)
	case "teamReflection":
		return SetTeamReflection(a, f.Key, value)
	case "finalReflection":
		return SetFinalReflection(a, f.Key, value)
	case "market":
		return SetMarket(a, f.Key, value)
	case "unlearnNotes":
		return SetUnlearnNote(a, f.Key, value)
	case "canvas":
		return SetCanvasField(a, f.Key, value)
	case "threepReflection":
		return SetThreepReflection(a, value)
	case "canvasReflection":
		return SetCanvasReflection(a, value)
	case "ideas":
		return SetIdeaName(a, f.Index, value)
	}
	return a
}

// Value returns the current value of the text or score field at f,
// formatted as a string. It is used to pre-fill form inputs.
func Value(a *model.WorkbookAnswers, f Field) string {
	switch f.Group {
	case "threepReflection":
		return a.ThreepReflection
	case "canvasReflection":
		return a.CanvasReflection
	case "ideas":
		if f.Key == "name" {
			return a.Ideas[f.Index].Name
		}
		d, _ := model.ParseDimension(f.Key)
		return strconv.Itoa(a.Ideas[f.Index].Score(d))
	case "founderScores":
		return strconv.Itoa(a.FounderScores[f.Index])
	case "checklist":
		return strconv.FormatBool(a.Checklist[f.Index])
	case "birthReflection":
		v, _ := a.BirthReflection.Get(f.Key)
		return v
	case "leverageNotes":
		v, _ := a.LeverageNotes.Get(f.Key)
		return v
	case "mvpReflection":
		v, _ := a.MVPReflection.Get(f.Key)
		return v
	case "teamReflection":
		v, _ := a.TeamReflection.Get(f.Key)
		return v
	case "finalReflection":
		v, _ := a.FinalReflection.Get(f.Key)
		return v
	case "market":
		v, _ := a.Market.Get(f.Key)
		return v
	case "unlearnNotes":
		v, _ := a.UnlearnNotes.Get(f.Key)
		return v
	case "canvas":
		v, _ := a.Canvas.Get(f.Key)
		return v
	}
	return ""
}
