package main

import (
	"strings"
	"testing"
)

func TestRunSummaryCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints scores and progress", func(t *testing.T) {
		t.Parallel()

		answers, cfg := writeSample(t)
		out, err := runRoot(t, "summary", "--config", cfg, answers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Meal kits", "45", "Born Founder", "2/10"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected summary to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("requires an answers file", func(t *testing.T) {
		t.Parallel()

		if _, err := runRoot(t, "summary"); err == nil {
			t.Error("expected an error without arguments")
		}
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()

		if _, err := runRoot(t, "summary", t.TempDir()+"/missing.yaml"); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}
