package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/compass/internal/model"
)

// SimpleWriter outputs a plain-text summary for terminal display: idea
// totals, the Founder Fit score and checklist progress.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors so the output can be piped to files or other tools.
type SimpleWriter struct {
	baseWriter

	// showEmpty lists every unanswered question.
	showEmpty bool

	// verbose lists each checklist item with its status.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to list unanswered questions.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables the per-item checklist listing.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(answers *model.WorkbookAnswers) (int, error) {
	if err := answers.Validate(); err != nil {
		return 0, fmt.Errorf("cannot generate summary: %w", err)
	}

	var sb strings.Builder
	summary := model.Summarize(answers)

	w.writeHeader(&sb)
	w.writeIdeas(&sb, answers, summary)
	w.writeFounderFit(&sb, summary)
	w.writeChecklist(&sb, answers, summary)
	w.writeProgress(&sb, answers)
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                 FOUNDERS COMPASS PART 2 SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeIdeas writes each idea total with a progress bar.
func (w *SimpleWriter) writeIdeas(sb *strings.Builder, answers *model.WorkbookAnswers, summary model.Summary) {
	w.writeSection(sb, "3P IDEA SCORES")

	for i, idea := range answers.Ideas {
		total := summary.IdeaTotals[i]
		fmt.Fprintf(sb, "  %-30s %s %2d/%d (%s)\n",
			truncateString(IdeaName(idea, i), 30),
			progressBar(total, model.MaxIdeaTotal),
			total, model.MaxIdeaTotal,
			model.IdeaBand(total))
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFounderFit(sb *strings.Builder, summary model.Summary) {
	w.writeSection(sb, "FOUNDER FIT")

	fmt.Fprintf(sb, "  Score:  %d/%d %s %d%%\n",
		summary.FounderTotal, model.MaxFounderTotal,
		progressBar(summary.FounderTotal, model.MaxFounderTotal),
		model.Percent(summary.FounderTotal, model.MaxFounderTotal))
	fmt.Fprintf(sb, "  Label:  %s\n\n", summary.FounderLabel)
}

func (w *SimpleWriter) writeChecklist(sb *strings.Builder, answers *model.WorkbookAnswers, summary model.Summary) {
	w.writeSection(sb, "VALIDATION CHECKLIST")

	fmt.Fprintf(sb, "  %d/%d Complete %s %d%%\n",
		summary.ChecklistDone, summary.ChecklistTotal,
		progressBar(summary.ChecklistDone, summary.ChecklistTotal),
		model.Percent(summary.ChecklistDone, summary.ChecklistTotal))

	if w.verbose {
		sb.WriteString("\n")
		for i, item := range model.ChecklistItems {
			mark := " "
			if answers.Checklist[i] {
				mark = "x"
			}
			fmt.Fprintf(sb, "  [%s] %2d. %s\n", mark, i+1, item)
		}
	}
	sb.WriteString("\n")
}

// writeProgress writes how many free-text questions have an answer.
func (w *SimpleWriter) writeProgress(sb *strings.Builder, answers *model.WorkbookAnswers) {
	w.writeSection(sb, "ANSWERS")

	questions := Questions(answers)
	answered := 0
	for _, q := range questions {
		if q.Answer != "" {
			answered++
		}
	}
	fmt.Fprintf(sb, "  %d of %d questions answered\n", answered, len(questions))

	if w.showEmpty && answered < len(questions) {
		sb.WriteString("\n  Not answered:\n")
		for _, q := range questions {
			if q.Answer == "" {
				fmt.Fprintf(sb, "    - [%s] %s\n", q.Section, q.Label)
			}
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Surge Startups - workfast.ai/surge-startups\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// Question is one free-text question of the workbook with its answer.
type Question struct {
	// Section is the ID of the section the question belongs to, or
	// "final" for the Final Reflection.
	Section string
	Label   string
	Answer  string
}

// Questions lists every free-text question of a fully shaped record in
// report order.
func Questions(a *model.WorkbookAnswers) []Question {
	var qs []Question
	add := func(section string, prompts []model.Prompt, get func(key string) (string, bool)) {
		for _, p := range prompts {
			v, _ := get(p.Key)
			qs = append(qs, Question{Section: section, Label: p.Label, Answer: v})
		}
	}

	add("birth", model.BirthQuestions, a.BirthReflection.Get)
	qs = append(qs, Question{Section: "threep", Label: model.ThreepQuestion.Label, Answer: a.ThreepReflection})
	add("market", model.MarketSizes, a.Market.Get)
	add("market", model.MarketQuestions, a.Market.Get)
	add("leverage", model.LeverageQuestions, a.LeverageNotes.Get)
	add("unlearn", model.UnlearnQuestions, a.UnlearnNotes.Get)
	add("canvas", model.CanvasFields, a.Canvas.Get)
	qs = append(qs, Question{Section: "canvas", Label: model.CanvasQuestion.Label, Answer: a.CanvasReflection})
	add("mvp", model.MVPQuestions, a.MVPReflection.Get)
	add("team", model.TeamQuestions, a.TeamReflection.Get)
	add("final", model.FinalQuestions, a.FinalReflection.Get)
	return qs
}

// progressBar draws a 20-cell bar for value out of maximum.
func progressBar(value, maximum int) string {
	const width = 20
	filled := model.Percent(value, maximum) * width / 100
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
