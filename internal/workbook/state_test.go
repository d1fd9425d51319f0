package workbook

import (
	"errors"
	"testing"

	"github.com/nao1215/compass/internal/model"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s := New()
	if s.Active != 0 {
		t.Errorf("expected first section active, got %d", s.Active)
	}
	if s.Section().ID != "birth" {
		t.Errorf("expected birth section, got %q", s.Section().ID)
	}
	if err := s.Answers.Validate(); err != nil {
		t.Errorf("expected fully shaped answers, got %v", err)
	}
	if !s.IsFirst() || s.IsLast() {
		t.Error("expected the first section and not the last one")
	}
}

func TestStateNavigation(t *testing.T) {
	t.Parallel()

	last := len(model.Sections) - 1

	t.Run("Prev stays on the first section", func(t *testing.T) {
		t.Parallel()
		if got := New().Prev().Active; got != 0 {
			t.Errorf("got %d, want 0", got)
		}
	})

	t.Run("Next stays on the last section", func(t *testing.T) {
		t.Parallel()
		s := New().Goto(last).Next()
		if s.Active != last {
			t.Errorf("got %d, want %d", s.Active, last)
		}
		if !s.IsLast() {
			t.Error("expected IsLast")
		}
		if s.Section().ID != "checklist" {
			t.Errorf("got %q, want checklist", s.Section().ID)
		}
	})

	t.Run("Goto clamps out-of-range indexes", func(t *testing.T) {
		t.Parallel()
		if got := New().Goto(-5).Active; got != 0 {
			t.Errorf("got %d, want 0", got)
		}
		if got := New().Goto(100).Active; got != last {
			t.Errorf("got %d, want %d", got, last)
		}
	})

	t.Run("Next walks every section in order", func(t *testing.T) {
		t.Parallel()
		s := New()
		for i, sec := range model.Sections {
			if s.Section() != sec {
				t.Errorf("step %d: got %q, want %q", i, s.Section().ID, sec.ID)
			}
			s = s.Next()
		}
	})

	t.Run("navigation keeps the answers", func(t *testing.T) {
		t.Parallel()
		s := New()
		if s.Next().Answers != s.Answers {
			t.Error("expected the same answers record")
		}
	})
}

func TestStateApply(t *testing.T) {
	t.Parallel()

	t.Run("returns a new state", func(t *testing.T) {
		t.Parallel()

		s := New().Goto(2)
		next, err := s.Apply(Update{Path: "checklist.0", Value: "true"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.Answers.Checklist[0] {
			t.Error("expected item 0 to be done")
		}
		if s.Answers.Checklist[0] {
			t.Error("expected the receiver to be unchanged")
		}
		if next.Active != 2 {
			t.Errorf("expected the active section to be kept, got %d", next.Active)
		}
		if next.Summary().ChecklistDone != 1 {
			t.Errorf("expected 1 item done, got %d", next.Summary().ChecklistDone)
		}
	})

	t.Run("keeps the state on error", func(t *testing.T) {
		t.Parallel()

		s := New()
		next, err := s.Apply(Update{Path: "nope", Value: "x"})
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
		if next.Answers != s.Answers {
			t.Error("expected the same answers record")
		}
	})
}
