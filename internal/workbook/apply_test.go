package workbook

import (
	"errors"
	"testing"

	"github.com/nao1215/compass/internal/model"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path string
		want Field
	}{
		{"threepReflection", Field{Path: "threepReflection", Group: "threepReflection", Kind: KindText}},
		{"canvasReflection", Field{Path: "canvasReflection", Group: "canvasReflection", Kind: KindText}},
		{"birthReflection.q1", Field{Path: "birthReflection.q1", Group: "birthReflection", Key: "q1", Kind: KindText}},
		{"market.som", Field{Path: "market.som", Group: "market", Key: "som", Kind: KindText}},
		{"unlearnNotes.biggest", Field{Path: "unlearnNotes.biggest", Group: "unlearnNotes", Key: "biggest", Kind: KindText}},
		{"canvas.nextStep", Field{Path: "canvas.nextStep", Group: "canvas", Key: "nextStep", Kind: KindText}},
		{"ideas.0.name", Field{Path: "ideas.0.name", Group: "ideas", Key: "name", Kind: KindText}},
		{"ideas.2.marketFit", Field{Path: "ideas.2.marketFit", Group: "ideas", Index: 2, Key: "marketFit", Kind: KindScore}},
		{"founderScores.9", Field{Path: "founderScores.9", Group: "founderScores", Index: 9, Kind: KindScore}},
		{"checklist.3", Field{Path: "checklist.3", Group: "checklist", Index: 3, Kind: KindCheck}},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePath(tc.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParsePathRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	paths := []string{
		"",
		"nope",
		"threepReflection.q1",
		"birthReflection",
		"birthReflection.q4",
		"birthReflection.q1.extra",
		"market.total",
		"unlearnNotes.q1",
		"canvas.price",
		"ideas.3.name",
		"ideas.-1.name",
		"ideas.x.name",
		"ideas.0",
		"ideas.0.stars",
		"founderScores.10",
		"founderScores",
		"checklist.10",
		"checklist.0.done",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			t.Parallel()

			if _, err := ParsePath(p); !errors.Is(err, ErrUnknownField) {
				t.Errorf("expected ErrUnknownField, got %v", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("sets text fields", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		updates := []Update{
			{Path: "birthReflection.q1", Value: "queues at the clinic"},
			{Path: "market.tam", Value: "all clinics"},
			{Path: "canvas.pricing", Value: "$5 per visit"},
			{Path: "ideas.1.name", Value: "Queue app"},
			{Path: "threepReflection", Value: "the queue app"},
		}

		var err error
		for _, u := range updates {
			if a, err = Apply(a, u); err != nil {
				t.Fatalf("%s: unexpected error: %v", u.Path, err)
			}
		}

		for _, u := range updates {
			f, _ := ParsePath(u.Path)
			if got := Value(a, f); got != u.Value {
				t.Errorf("%s: got %q, want %q", u.Path, got, u.Value)
			}
		}
	})

	t.Run("sets scores and checklist items", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		a, err := Apply(a, Update{Path: "ideas.0.pain", Value: " 4 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a, err = Apply(a, Update{Path: "founderScores.2", Value: "3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		a, err = Apply(a, Update{Path: "checklist.5", Value: "true"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if a.Ideas[0].Pain != 4 {
			t.Errorf("pain: got %d, want 4", a.Ideas[0].Pain)
		}
		if a.FounderScores[2] != 3 {
			t.Errorf("founder score: got %d, want 3", a.FounderScores[2])
		}
		if !a.Checklist[5] {
			t.Error("expected checklist item 5 to be done")
		}
	})

	t.Run("does not range-check scores", func(t *testing.T) {
		t.Parallel()

		a, err := Apply(model.NewWorkbookAnswers(), Update{Path: "founderScores.0", Value: "9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.FounderScores[0] != 9 {
			t.Errorf("got %d, want 9", a.FounderScores[0])
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		for _, u := range []Update{
			{Path: "ideas.0.profit", Value: "high"},
			{Path: "founderScores.1", Value: ""},
			{Path: "checklist.0", Value: "maybe"},
		} {
			got, err := Apply(a, u)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("%s: expected ErrInvalidValue, got %v", u.Path, err)
			}
			if got != a {
				t.Errorf("%s: expected the record to be returned unchanged", u.Path)
			}
		}
	})

	t.Run("rejects unknown paths", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		got, err := Apply(a, Update{Path: "market.q4", Value: "x"})
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
		if got != a {
			t.Error("expected the record to be returned unchanged")
		}
	})
}

func TestValueFormatsNumbersAndBooleans(t *testing.T) {
	t.Parallel()

	a := model.NewWorkbookAnswers()
	a = SetIdeaScore(a, 1, model.SkillMatch, 2)
	a = SetChecklist(a, 7, true)

	testCases := []struct {
		path string
		want string
	}{
		{"ideas.1.skillMatch", "2"},
		{"ideas.0.passion", "0"},
		{"founderScores.4", "0"},
		{"checklist.7", "true"},
		{"checklist.6", "false"},
		{"finalReflection.q3", ""},
	}

	for _, tc := range testCases {
		f, err := ParsePath(tc.path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.path, err)
		}
		if got := Value(a, f); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.path, got, tc.want)
		}
	}
}
