package workbook

import "github.com/nao1215/compass/internal/model"

// shallow returns a copy of a that shares every nested pointer and slice.
func shallow(a *model.WorkbookAnswers) *model.WorkbookAnswers {
	c := *a
	return &c
}

// updateQuestions applies key=value to a copy of current and stores it
// through set on a shallow copy of a. A missing group is treated as empty.
func updateQuestions(
	a *model.WorkbookAnswers,
	current *model.ThreeQuestions,
	key, value string,
	set func(*model.WorkbookAnswers, *model.ThreeQuestions),
) *model.WorkbookAnswers {
	var q model.ThreeQuestions
	if current != nil {
		q = *current
	}
	q, ok := q.With(key, value)
	if !ok {
		return a
	}
	c := shallow(a)
	set(c, &q)
	return c
}

// SetBirthReflection sets one answer ("q1".."q3") of The Birth of the Idea.
func SetBirthReflection(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	return updateQuestions(a, a.BirthReflection, key, value, func(c *model.WorkbookAnswers, q *model.ThreeQuestions) {
		c.BirthReflection = q
	})
}

// SetLeverageNote sets one answer of the Leverage Map.
func SetLeverageNote(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	return updateQuestions(a, a.LeverageNotes, key, value, func(c *model.WorkbookAnswers, q *model.ThreeQuestions) {
		c.LeverageNotes = q
	})
}

// SetMVPReflection sets one answer of Minimum Viable Proof.
func SetMVPReflection(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	return updateQuestions(a, a.MVPReflection, key, value, func(c *model.WorkbookAnswers, q *model.ThreeQuestions) {
		c.MVPReflection = q
	})
}

// SetTeamReflection sets one answer of Early Team.
func SetTeamReflection(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	return updateQuestions(a, a.TeamReflection, key, value, func(c *model.WorkbookAnswers, q *model.ThreeQuestions) {
		c.TeamReflection = q
	})
}

// SetFinalReflection sets one answer of the Final Reflection.
func SetFinalReflection(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	return updateQuestions(a, a.FinalReflection, key, value, func(c *model.WorkbookAnswers, q *model.ThreeQuestions) {
		c.FinalReflection = q
	})
}

// SetMarket sets one Market Map answer ("tam", "sam", "som", "q1".."q3").
func SetMarket(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	var m model.Market
	if a.Market != nil {
		m = *a.Market
	}
	m, ok := m.With(key, value)
	if !ok {
		return a
	}
	c := shallow(a)
	c.Market = &m
	return c
}

// SetUnlearnNote sets one Unlearn to Earn answer ("biggest", "q2", "q3").
func SetUnlearnNote(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	var u model.UnlearnNotes
	if a.UnlearnNotes != nil {
		u = *a.UnlearnNotes
	}
	u, ok := u.With(key, value)
	if !ok {
		return a
	}
	c := shallow(a)
	c.UnlearnNotes = &u
	return c
}

// SetCanvasField sets one Validation Canvas field.
func SetCanvasField(a *model.WorkbookAnswers, key, value string) *model.WorkbookAnswers {
	var cv model.Canvas
	if a.Canvas != nil {
		cv = *a.Canvas
	}
	cv, ok := cv.With(key, value)
	if !ok {
		return a
	}
	c := shallow(a)
	c.Canvas = &cv
	return c
}

// SetThreepReflection sets the 3P Framework reflection.
func SetThreepReflection(a *model.WorkbookAnswers, value string) *model.WorkbookAnswers {
	c := shallow(a)
	c.ThreepReflection = value
	return c
}

// SetCanvasReflection sets the Validation Canvas reflection.
func SetCanvasReflection(a *model.WorkbookAnswers, value string) *model.WorkbookAnswers {
	c := shallow(a)
	c.CanvasReflection = value
	return c
}

// SetIdeaName sets the name of idea i. An index outside the idea list
// leaves the record unchanged.
func SetIdeaName(a *model.WorkbookAnswers, i int, name string) *model.WorkbookAnswers {
	if i < 0 || i >= len(a.Ideas) {
		return a
	}
	ideas := append([]model.Idea(nil), a.Ideas...)
	ideas[i].Name = name
	c := shallow(a)
	c.Ideas = ideas
	return c
}

// SetIdeaScore sets the rating of idea i on dimension d.
func SetIdeaScore(a *model.WorkbookAnswers, i int, d model.Dimension, score int) *model.WorkbookAnswers {
	if i < 0 || i >= len(a.Ideas) {
		return a
	}
	ideas := append([]model.Idea(nil), a.Ideas...)
	ideas[i] = ideas[i].WithScore(d, score)
	c := shallow(a)
	c.Ideas = ideas
	return c
}

// SetFounderScore sets the self-rating of founder statement i.
func SetFounderScore(a *model.WorkbookAnswers, i, score int) *model.WorkbookAnswers {
	if i < 0 || i >= len(a.FounderScores) {
		return a
	}
	scores := append([]int(nil), a.FounderScores...)
	scores[i] = score
	c := shallow(a)
	c.FounderScores = scores
	return c
}

// SetChecklist marks checklist item i done or pending.
func SetChecklist(a *model.WorkbookAnswers, i int, done bool) *model.WorkbookAnswers {
	if i < 0 || i >= len(a.Checklist) {
		return a
	}
	items := append([]bool(nil), a.Checklist...)
	items[i] = done
	c := shallow(a)
	c.Checklist = items
	return c
}

// ToggleChecklist flips checklist item i.
func ToggleChecklist(a *model.WorkbookAnswers, i int) *model.WorkbookAnswers {
	if i < 0 || i >= len(a.Checklist) {
		return a
	}
	return SetChecklist(a, i, !a.Checklist[i])
}
