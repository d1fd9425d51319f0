package workbook

import "github.com/nao1215/compass/internal/model"

// State is the state of one workbook session: the answers and the index
// of the section on screen.
//
// State is a value. Methods that change it return a new State and leave
// the receiver untouched.
type State struct {
	// Answers is the current answer record. It is never nil in a State
	// returned by New.
	Answers *model.WorkbookAnswers

	// Active is the 0-based index of the active section in model.Sections.
	Active int
}

// New returns the state of a freshly opened workbook: default answers and
// the first section active.
func New() State {
	return State{Answers: model.NewWorkbookAnswers()}
}

// Section returns the active section.
func (s State) Section() model.Section {
	return model.Sections[clampSection(s.Active)]
}

// Goto makes section i active, clamped to the valid range.
func (s State) Goto(i int) State {
	s.Active = clampSection(i)
	return s
}

// Next moves to the following section, staying on the last one.
func (s State) Next() State {
	return s.Goto(s.Active + 1)
}

// Prev moves to the preceding section, staying on the first one.
func (s State) Prev() State {
	return s.Goto(s.Active - 1)
}

// IsFirst reports whether the first section is active.
func (s State) IsFirst() bool {
	return s.Active <= 0
}

// IsLast reports whether the last section is active.
func (s State) IsLast() bool {
	return s.Active >= len(model.Sections)-1
}

// Apply applies u to the answers and returns the new state.
// On error the receiver is returned unchanged.
func (s State) Apply(u Update) (State, error) {
	answers, err := Apply(s.Answers, u)
	if err != nil {
		return s, err
	}
	s.Answers = answers
	return s, nil
}

// Summary computes the derived values of the current answers.
func (s State) Summary() model.Summary {
	return model.Summarize(s.Answers)
}

func clampSection(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= len(model.Sections):
		return len(model.Sections) - 1
	default:
		return i
	}
}
