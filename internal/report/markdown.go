package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/compass/internal/model"
)

// MarkdownWriter outputs the report as GitHub-flavoured Markdown.
// It follows the section order of the HTML report and adds alerts and a
// mermaid chart that render on GitHub.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the answers in Markdown format.
func (w *MarkdownWriter) Write(answers *model.WorkbookAnswers) (int, error) {
	if err := answers.Validate(); err != nil {
		return 0, fmt.Errorf("cannot generate report: %w", err)
	}

	md := markdown.NewMarkdown(w.output)

	md.H1("Founders Compass — Part 2")
	md.PlainText("")
	md.PlainText("Idea to Validation • Surge Startups • workfast.ai/surge-startups")
	md.PlainText("")

	md.H2("1. The Birth of the Idea")
	md.PlainText("")
	w.writeQuestions(md, model.BirthQuestions, answers.BirthReflection.Get)

	w.writeIdeas(md, answers)

	md.H2("3. Market Map: TAM, SAM, SOM")
	md.PlainText("")
	w.writeQuestions(md, model.MarketSizes, answers.Market.Get)
	w.writeQuestions(md, model.MarketQuestions, answers.Market.Get)

	md.H2("4. Leverage Map")
	md.PlainText("")
	w.writeQuestions(md, model.LeverageQuestions, answers.LeverageNotes.Get)

	md.H2("5. Unlearn to Earn")
	md.PlainText("")
	w.writeQuestions(md, model.UnlearnQuestions, answers.UnlearnNotes.Get)

	w.writeFounderFit(md, answers)

	md.H2("7. The Validation Canvas")
	md.PlainText("")
	w.writeQuestions(md, model.CanvasFields, answers.Canvas.Get)
	w.writeAnswer(md, model.CanvasQuestion.Label, answers.CanvasReflection)

	md.H2("8. Minimum Viable Proof (MVP)")
	md.PlainText("")
	w.writeQuestions(md, model.MVPQuestions, answers.MVPReflection.Get)

	md.H2("9. Early Team and Internship Formula")
	md.PlainText("")
	w.writeQuestions(md, model.TeamQuestions, answers.TeamReflection.Get)

	w.writeChecklist(md, answers)

	md.H2("Final Reflection")
	md.PlainText("")
	w.writeQuestions(md, model.FinalQuestions, answers.FinalReflection.Get)

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeAnswer writes a question in bold followed by its answer as a quote.
func (w *MarkdownWriter) writeAnswer(md *markdown.Markdown, label, answer string) {
	md.PlainTextf("**%s**", label)
	md.PlainText("")
	if answer == "" {
		md.PlainText("> _Not answered_")
	} else {
		for _, line := range strings.Split(answer, "\n") {
			md.PlainText(strings.TrimRight("> "+quoteLine(line), " "))
		}
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeQuestions(md *markdown.Markdown, prompts []model.Prompt, get func(key string) (string, bool)) {
	for _, p := range prompts {
		v, _ := get(p.Key)
		w.writeAnswer(md, p.Label, v)
	}
}

// writeIdeas writes the 3P scoring table.
func (w *MarkdownWriter) writeIdeas(md *markdown.Markdown, answers *model.WorkbookAnswers) {
	md.H2("2. The 3P Framework: Passion, Pain, Profit")
	md.PlainText("")

	header := []string{"Idea"}
	for _, d := range model.Dimensions {
		header = append(header, d.String())
	}
	header = append(header, "Total")

	rows := make([][]string, len(answers.Ideas))
	for i, idea := range answers.Ideas {
		row := []string{tableCell(IdeaName(idea, i))}
		for _, d := range model.Dimensions {
			row = append(row, Stars(idea.Score(d)))
		}
		rows[i] = append(row, fmt.Sprintf("**%d/%d**", idea.Total(), model.MaxIdeaTotal))
	}

	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
	w.writeAnswer(md, model.ThreepQuestion.Label, answers.ThreepReflection)
}

// writeFounderFit writes the founder statements and an alert for the total.
func (w *MarkdownWriter) writeFounderFit(md *markdown.Markdown, answers *model.WorkbookAnswers) {
	md.H2("6. Founder Fit Test")
	md.PlainText("")

	rows := make([][]string, len(model.FounderStatements))
	for i, stmt := range model.FounderStatements {
		n := answers.FounderScores[i]
		rows[i] = []string{stmt, fmt.Sprintf("%s (%d/5)", Stars(n), n)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Statement", "Rating"},
		Rows:   rows,
	})
	md.PlainText("")

	total := answers.FounderTotal()
	label := model.FounderLabel(total)
	switch model.FounderBand(total) {
	case model.BandExcellent:
		md.Tip(fmt.Sprintf("Founder Fit: %d/%d, %s", total, model.MaxFounderTotal, label))
	case model.BandGood:
		md.Note(fmt.Sprintf("Founder Fit: %d/%d, %s", total, model.MaxFounderTotal, label))
	case model.BandFair:
		md.Importantf("Founder Fit: %d/%d, %s", total, model.MaxFounderTotal, label)
	default:
		md.Warningf("Founder Fit: %d/%d, %s", total, model.MaxFounderTotal, label)
	}
	md.PlainText("")
}

// writeChecklist writes the checklist table, the completion count and a
// mermaid pie chart of done versus pending items.
func (w *MarkdownWriter) writeChecklist(md *markdown.Markdown, answers *model.WorkbookAnswers) {
	md.H2("10. Validation Checklist")
	md.PlainText("")

	rows := make([][]string, len(model.ChecklistItems))
	for i, item := range model.ChecklistItems {
		status := "Pending"
		if answers.Checklist[i] {
			status = "✅ Done"
		}
		rows[i] = []string{strconv.Itoa(i + 1), item, status}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Action", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	done := answers.ChecklistDone()
	md.PlainTextf("**%d/%d Complete**", done, model.ChecklistItemCount)
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Validation Checklist"),
		piechart.WithShowData(true),
	)
	if done > 0 {
		chart.LabelAndIntValue("Done", uint64(done))
	}
	if pending := model.ChecklistItemCount - done; pending > 0 {
		chart.LabelAndIntValue("Pending", uint64(pending))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	if model.ChecklistBand(done) == model.BandLow {
		md.Cautionf("Only %d of %d validation steps are done.", done, model.ChecklistItemCount)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Generated from Founders Compass Interactive Workbook • Surge Startups • workfast.ai/surge-startups*")
}

// quoteEscaper neutralises raw HTML in quoted answers.
var quoteEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// quoteLine keeps one line of user text inside its block quote: raw HTML
// is escaped and a leading code fence is broken up, so neither can swallow
// the rest of the document.
func quoteLine(line string) string {
	line = quoteEscaper.Replace(line)
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	if strings.HasPrefix(body, "```") || strings.HasPrefix(body, "~~~") {
		rest := strings.TrimLeft(body, body[:1])
		body = strings.Repeat(`\`+body[:1], len(body)-len(rest)) + rest
	}
	return indent + body
}

// tableCell keeps user text from breaking a Markdown table row.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
