package model

import "fmt"

// Fixed sizes of the workbook sequences. They never change at runtime.
const (
	// IdeaCount is the number of candidate ideas scored in the 3P framework.
	IdeaCount = 3

	// FounderStatementCount is the number of Founder Fit statements.
	FounderStatementCount = 10

	// ChecklistItemCount is the number of Validation Checklist milestones.
	ChecklistItemCount = 10

	// MaxScore is the highest rating of any single idea dimension or
	// founder statement. The lowest is 0 (unrated).
	MaxScore = 5
)

// ThreeQuestions holds the answers of a section that asks three open questions.
type ThreeQuestions struct {
	Q1 string `json:"q1" yaml:"q1"`
	Q2 string `json:"q2" yaml:"q2"`
	Q3 string `json:"q3" yaml:"q3"`
}

// Get returns the answer stored under key ("q1", "q2" or "q3").
func (t ThreeQuestions) Get(key string) (string, bool) {
	switch key {
	case "q1":
		return t.Q1, true
	case "q2":
		return t.Q2, true
	case "q3":
		return t.Q3, true
	}
	return "", false
}

// With returns a copy of t with the answer under key replaced.
// The second result is false when key is unknown.
func (t ThreeQuestions) With(key, value string) (ThreeQuestions, bool) {
	switch key {
	case "q1":
		t.Q1 = value
	case "q2":
		t.Q2 = value
	case "q3":
		t.Q3 = value
	default:
		return t, false
	}
	return t, true
}

// Market holds the Market Map answers: the three market sizes and three questions.
type Market struct {
	TAM string `json:"tam" yaml:"tam"`
	SAM string `json:"sam" yaml:"sam"`
	SOM string `json:"som" yaml:"som"`
	Q1  string `json:"q1" yaml:"q1"`
	Q2  string `json:"q2" yaml:"q2"`
	Q3  string `json:"q3" yaml:"q3"`
}

// Get returns the answer stored under key.
func (m Market) Get(key string) (string, bool) {
	switch key {
	case "tam":
		return m.TAM, true
	case "sam":
		return m.SAM, true
	case "som":
		return m.SOM, true
	case "q1":
		return m.Q1, true
	case "q2":
		return m.Q2, true
	case "q3":
		return m.Q3, true
	}
	return "", false
}

// With returns a copy of m with the answer under key replaced.
func (m Market) With(key, value string) (Market, bool) {
	switch key {
	case "tam":
		m.TAM = value
	case "sam":
		m.SAM = value
	case "som":
		m.SOM = value
	case "q1":
		m.Q1 = value
	case "q2":
		m.Q2 = value
	case "q3":
		m.Q3 = value
	default:
		return m, false
	}
	return m, true
}

// UnlearnNotes holds the Unlearn to Earn answers.
type UnlearnNotes struct {
	// Biggest names the habit the user sees as their biggest bottleneck.
	Biggest string `json:"biggest" yaml:"biggest"`
	Q2      string `json:"q2" yaml:"q2"`
	Q3      string `json:"q3" yaml:"q3"`
}

// Get returns the answer stored under key ("biggest", "q2" or "q3").
func (u UnlearnNotes) Get(key string) (string, bool) {
	switch key {
	case "biggest":
		return u.Biggest, true
	case "q2":
		return u.Q2, true
	case "q3":
		return u.Q3, true
	}
	return "", false
}

// With returns a copy of u with the answer under key replaced.
func (u UnlearnNotes) With(key, value string) (UnlearnNotes, bool) {
	switch key {
	case "biggest":
		u.Biggest = value
	case "q2":
		u.Q2 = value
	case "q3":
		u.Q3 = value
	default:
		return u, false
	}
	return u, true
}

// Canvas holds the ten fields of the Validation Canvas.
type Canvas struct {
	Problem        string `json:"problem" yaml:"problem"`
	Audience       string `json:"audience" yaml:"audience"`
	Solution       string `json:"solution" yaml:"solution"`
	Differentiator string `json:"differentiator" yaml:"differentiator"`
	BusinessModel  string `json:"businessModel" yaml:"businessModel"`
	Validation     string `json:"validation" yaml:"validation"`
	Feedback       string `json:"feedback" yaml:"feedback"`
	Pricing        string `json:"pricing" yaml:"pricing"`
	Channel        string `json:"channel" yaml:"channel"`
	NextStep       string `json:"nextStep" yaml:"nextStep"`
}

// field returns a pointer to the canvas field named key, or nil.
func (c *Canvas) field(key string) *string {
	switch key {
	case "problem":
		return &c.Problem
	case "audience":
		return &c.Audience
	case "solution":
		return &c.Solution
	case "differentiator":
		return &c.Differentiator
	case "businessModel":
		return &c.BusinessModel
	case "validation":
		return &c.Validation
	case "feedback":
		return &c.Feedback
	case "pricing":
		return &c.Pricing
	case "channel":
		return &c.Channel
	case "nextStep":
		return &c.NextStep
	}
	return nil
}

// Get returns the canvas field named key.
func (c Canvas) Get(key string) (string, bool) {
	p := c.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// With returns a copy of c with the field named key replaced.
func (c Canvas) With(key, value string) (Canvas, bool) {
	p := c.field(key)
	if p == nil {
		return c, false
	}
	*p = value
	return c, true
}

// WorkbookAnswers is the complete set of answers of one workbook.
//
// Nested objects are pointers and sequences are slices so that an update can
// copy only the branch it changes and share every other branch with the
// previous record. A record built by NewWorkbookAnswers is fully shaped;
// Validate reports records that are not.
type WorkbookAnswers struct {
	BirthReflection  *ThreeQuestions `json:"birthReflection" yaml:"birthReflection"`
	Ideas            []Idea          `json:"ideas" yaml:"ideas"`
	ThreepReflection string          `json:"threepReflection" yaml:"threepReflection"`
	Market           *Market         `json:"market" yaml:"market"`
	LeverageNotes    *ThreeQuestions `json:"leverageNotes" yaml:"leverageNotes"`
	UnlearnNotes     *UnlearnNotes   `json:"unlearnNotes" yaml:"unlearnNotes"`
	FounderScores    []int           `json:"founderScores" yaml:"founderScores"`
	Canvas           *Canvas         `json:"canvas" yaml:"canvas"`
	CanvasReflection string          `json:"canvasReflection" yaml:"canvasReflection"`
	MVPReflection    *ThreeQuestions `json:"mvpReflection" yaml:"mvpReflection"`
	TeamReflection   *ThreeQuestions `json:"teamReflection" yaml:"teamReflection"`
	Checklist        []bool          `json:"checklist" yaml:"checklist"`
	FinalReflection  *ThreeQuestions `json:"finalReflection" yaml:"finalReflection"`
}

// NewWorkbookAnswers returns a fully shaped record with every text empty,
// every score 0 and every checklist item pending.
func NewWorkbookAnswers() *WorkbookAnswers {
	return &WorkbookAnswers{
		BirthReflection: &ThreeQuestions{},
		Ideas:           make([]Idea, IdeaCount),
		Market:          &Market{},
		LeverageNotes:   &ThreeQuestions{},
		UnlearnNotes:    &UnlearnNotes{},
		FounderScores:   make([]int, FounderStatementCount),
		Canvas:          &Canvas{},
		MVPReflection:   &ThreeQuestions{},
		TeamReflection:  &ThreeQuestions{},
		Checklist:       make([]bool, ChecklistItemCount),
		FinalReflection: &ThreeQuestions{},
	}
}

// Validate reports whether a is fully shaped: a non-nil record, every nested
// object present and every sequence at its fixed length. The returned error
// wraps ErrPartialAnswers and names the first offending field.
// Scores are not checked; see ValidateScores.
func (a *WorkbookAnswers) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: record is nil", ErrPartialAnswers)
	}

	nested := []struct {
		name    string
		present bool
	}{
		{"birthReflection", a.BirthReflection != nil},
		{"market", a.Market != nil},
		{"leverageNotes", a.LeverageNotes != nil},
		{"unlearnNotes", a.UnlearnNotes != nil},
		{"canvas", a.Canvas != nil},
		{"mvpReflection", a.MVPReflection != nil},
		{"teamReflection", a.TeamReflection != nil},
		{"finalReflection", a.FinalReflection != nil},
	}
	for _, n := range nested {
		if !n.present {
			return fmt.Errorf("%w: %s is missing", ErrPartialAnswers, n.name)
		}
	}

	if len(a.Ideas) != IdeaCount {
		return fmt.Errorf("%w: ideas has %d entries, want %d", ErrPartialAnswers, len(a.Ideas), IdeaCount)
	}
	if len(a.FounderScores) != FounderStatementCount {
		return fmt.Errorf("%w: founderScores has %d entries, want %d",
			ErrPartialAnswers, len(a.FounderScores), FounderStatementCount)
	}
	if len(a.Checklist) != ChecklistItemCount {
		return fmt.Errorf("%w: checklist has %d entries, want %d",
			ErrPartialAnswers, len(a.Checklist), ChecklistItemCount)
	}
	return nil
}

// ValidateScores reports the first idea or founder score outside 0..MaxScore.
// The returned error wraps ErrScoreOutOfRange.
func (a *WorkbookAnswers) ValidateScores() error {
	for i, idea := range a.Ideas {
		for _, d := range Dimensions {
			if n := idea.Score(d); !InScoreRange(n) {
				return fmt.Errorf("%w: ideas[%d].%s = %d", ErrScoreOutOfRange, i, d.Key(), n)
			}
		}
	}
	for i, n := range a.FounderScores {
		if !InScoreRange(n) {
			return fmt.Errorf("%w: founderScores[%d] = %d", ErrScoreOutOfRange, i, n)
		}
	}
	return nil
}

// InScoreRange reports whether n is a valid rating (0..MaxScore).
func InScoreRange(n int) bool {
	return n >= 0 && n <= MaxScore
}
