package server

import (
	"strconv"

	"github.com/nao1215/compass/internal/config"
	"github.com/nao1215/compass/internal/model"
	"github.com/nao1215/compass/internal/workbook"
)

// Textarea heights.
const (
	rowsShort   = 2
	rowsDefault = 3
)

type navItem struct {
	Index  int
	Number int
	ID     string
	Title  string
	Active bool
}

type questionView struct {
	Number      int
	Path        string
	Label       string
	Description string
	Placeholder string
	Value       string
	Rows        int
}

type starView struct {
	N       int
	Checked bool
	Filled  bool
}

type ratingView struct {
	Path   string
	Label  string
	Value  int
	Number int
	Stars  []starView
}

type ideaView struct {
	Index       int
	Number      int
	NamePath    string
	Name        string
	Placeholder string
	Ratings     []ratingView
	Total       int
	Band        string
}

type checkView struct {
	Index  int
	Number int
	Text   string
	Done   bool
}

type scoreView struct {
	Value   int
	Max     int
	Percent int
	Label   string
	Band    string
	BarBand string
}

// barBand colours a progress bar by percentage alone.
func barBand(pct int) string {
	switch {
	case pct >= 80:
		return model.BandGood.String()
	case pct >= 50:
		return model.BandFair.String()
	default:
		return model.BandLow.String()
	}
}

// pageView is the data behind one rendered workbook page.
type pageView struct {
	Nav     []navItem
	Section model.Section
	Number  int
	Count   int
	IsFirst bool
	IsLast  bool

	Layout  string
	Compact bool
	// LayoutAuto is set when the layout is the configured default rather
	// than the browser's choice, so the page script may adapt it.
	LayoutAuto bool

	Questions  []questionView
	Prompts    []questionView
	Reflection *questionView

	Dimensions   []string
	Ideas        []ideaView
	MaxIdeaTotal int

	Founder      []ratingView
	FounderScore scoreView

	Checklist      []checkView
	ChecklistScore scoreView
	Final          []questionView

	LeverageAssets []model.LeverageAsset
	UnlearnHabits  []model.UnlearnHabit
}

// buildPage assembles the view of the active section of st.
func buildPage(st workbook.State, layout string) pageView {
	a := st.Answers
	sec := st.Section()
	active := st.Active

	v := pageView{
		Section: sec,
		Number:  sec.Page,
		Count:   len(model.Sections),
		IsFirst: st.IsFirst(),
		IsLast:  st.IsLast(),
		Layout:  layout,
		Compact: layout == config.LayoutCompact,
	}
	for i, s := range model.Sections {
		v.Nav = append(v.Nav, navItem{
			Index:  i,
			Number: s.Page,
			ID:     s.ID,
			Title:  s.Title,
			Active: i == active,
		})
	}

	switch sec.ID {
	case "birth":
		v.Questions = questions(a, "birthReflection", model.BirthQuestions, rowsDefault)
	case "threep":
		v.Dimensions = make([]string, 0, len(model.Dimensions))
		for _, d := range model.Dimensions {
			v.Dimensions = append(v.Dimensions, d.String())
		}
		v.Ideas = ideas(a)
		v.MaxIdeaTotal = model.MaxIdeaTotal
		v.Reflection = single(model.ThreepQuestion, a.ThreepReflection)
	case "market":
		v.Prompts = questions(a, "market", model.MarketSizes, rowsShort)
		v.Questions = questions(a, "market", model.MarketQuestions, rowsShort)
	case "leverage":
		v.LeverageAssets = model.LeverageAssets
		v.Questions = questions(a, "leverageNotes", model.LeverageQuestions, rowsDefault)
	case "unlearn":
		v.UnlearnHabits = model.UnlearnHabits
		v.Questions = questions(a, "unlearnNotes", model.UnlearnQuestions, rowsDefault)
	case "founder":
		v.Founder = founder(a)
		total := a.FounderTotal()
		pct := model.Percent(total, model.MaxFounderTotal)
		v.FounderScore = scoreView{
			Value:   total,
			Max:     model.MaxFounderTotal,
			Percent: pct,
			Label:   model.FounderLabel(total),
			Band:    model.FounderBand(total).String(),
			BarBand: barBand(pct),
		}
	case "canvas":
		prompts := make([]model.Prompt, len(model.CanvasFields))
		for i, p := range model.CanvasFields {
			p.Placeholder = p.Description
			prompts[i] = p
		}
		v.Prompts = questions(a, "canvas", prompts, rowsShort)
		v.Reflection = single(model.CanvasQuestion, a.CanvasReflection)
	case "mvp":
		v.Questions = questions(a, "mvpReflection", model.MVPQuestions, rowsDefault)
		v.Questions[1].Rows = rowsShort
	case "team":
		v.Questions = questions(a, "teamReflection", model.TeamQuestions, rowsDefault)
	case "checklist":
		v.Checklist = checklist(a)
		done := a.ChecklistDone()
		pct := model.Percent(done, model.ChecklistItemCount)
		v.ChecklistScore = scoreView{
			Value:   done,
			Max:     model.ChecklistItemCount,
			Percent: pct,
			Band:    model.ChecklistBand(done).String(),
			BarBand: barBand(pct),
		}
		v.Final = questions(a, "finalReflection", model.FinalQuestions, rowsDefault)
	}
	return v
}

// questions builds the inputs of a group of prompts, pre-filled from a.
func questions(a *model.WorkbookAnswers, group string, prompts []model.Prompt, rows int) []questionView {
	out := make([]questionView, len(prompts))
	for i, p := range prompts {
		out[i] = questionView{
			Number:      i + 1,
			Path:        group + "." + p.Key,
			Label:       p.Label,
			Description: p.Description,
			Placeholder: p.Placeholder,
			Value:       workbook.Value(a, workbook.Field{Group: group, Key: p.Key}),
			Rows:        rows,
		}
	}
	return out
}

// single builds the input of a top-level reflection field.
func single(p model.Prompt, value string) *questionView {
	return &questionView{
		Path:        p.Key,
		Label:       p.Label,
		Placeholder: p.Placeholder,
		Value:       value,
		Rows:        rowsDefault,
	}
}

func ideas(a *model.WorkbookAnswers) []ideaView {
	out := make([]ideaView, len(a.Ideas))
	for i, idea := range a.Ideas {
		prefix := "ideas." + strconv.Itoa(i) + "."
		ratings := make([]ratingView, len(model.Dimensions))
		for j, d := range model.Dimensions {
			ratings[j] = rating(prefix+d.Key(), d.String(), j+1, idea.Score(d))
		}
		total := idea.Total()
		out[i] = ideaView{
			Index:       i,
			Number:      i + 1,
			NamePath:    prefix + "name",
			Name:        idea.Name,
			Placeholder: "Idea " + strconv.Itoa(i+1),
			Ratings:     ratings,
			Total:       total,
			Band:        model.IdeaBand(total).String(),
		}
	}
	return out
}

func founder(a *model.WorkbookAnswers) []ratingView {
	out := make([]ratingView, len(a.FounderScores))
	for i, n := range a.FounderScores {
		out[i] = rating("founderScores."+strconv.Itoa(i), model.FounderStatements[i], i+1, n)
	}
	return out
}

// rating builds a five-star input. Stars up to value are filled.
func rating(path, label string, number, value int) ratingView {
	stars := make([]starView, model.MaxScore)
	for i := range stars {
		n := i + 1
		stars[i] = starView{N: n, Checked: n == value, Filled: n <= value}
	}
	return ratingView{Path: path, Label: label, Number: number, Value: value, Stars: stars}
}

func checklist(a *model.WorkbookAnswers) []checkView {
	out := make([]checkView, len(a.Checklist))
	for i, done := range a.Checklist {
		out[i] = checkView{Index: i, Number: i + 1, Text: model.ChecklistItems[i], Done: done}
	}
	return out
}
