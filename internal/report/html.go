package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/compass/internal/model"
)

// Glyphs used by Stars.
const (
	FilledStar = "★"
	EmptyStar  = "☆"
)

// reportTitle is the <title> of the exported document.
const reportTitle = "Founders Compass Part 2"

// reportCSS is inlined into the exported document so that it has no
// external dependencies.
const reportCSS = "body{font-family:Helvetica,Arial,sans-serif;max-width:750px;margin:0 auto;padding:40px 30px;color:#1a1a1a;font-size:13px;line-height:1.6;}" +
	"h1{text-align:center;font-size:24px;margin-bottom:4px;}" +
	".sub{text-align:center;color:#888;font-size:13px;margin-bottom:40px;}" +
	"h2{font-size:17px;border-bottom:3px solid #FFB800;padding-bottom:6px;margin-top:36px;margin-bottom:16px;page-break-after:avoid;}" +
	".qa{margin-bottom:14px;}" +
	".q{font-weight:600;color:#333;margin-bottom:3px;}" +
	".a{background:#f8f8f8;border-left:3px solid #FFB800;padding:8px 12px;border-radius:0 6px 6px 0;min-height:18px;}" +
	"table{width:100%;border-collapse:collapse;margin:12px 0;font-size:12px;}" +
	"th{background:#FFB800;color:#fff;padding:8px 10px;text-align:left;font-weight:600;}" +
	"td{padding:7px 10px;border-bottom:1px solid #eee;}" +
	"tr:nth-child(even){background:#fafafa;}" +
	".sbox{text-align:center;margin:16px 0;padding:16px;border:2px solid #FFB800;border-radius:10px;background:#FFFBEB;}" +
	".snum{font-size:36px;font-weight:800;}" +
	".slbl{font-size:15px;font-weight:600;color:#666;margin-top:4px;}" +
	".done{color:#16a34a;font-weight:600;}" +
	".pend{color:#999;}" +
	".foot{text-align:center;margin-top:40px;padding-top:16px;border-top:2px solid #eee;color:#888;font-size:11px;}" +
	"@media print{body{padding:20px;}}"

// notAnswered replaces an empty answer.
const notAnswered = `<span style="color:#999;font-style:italic;">Not answered</span>`

// escaper escapes user text. A single-pass replacer gives the same result
// as replacing &, < and > in that order and then newlines.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "<br/>",
)

// escape makes user text safe to embed in the report body.
func escape(s string) string {
	return escaper.Replace(s)
}

// Stars renders a rating as five glyphs: n filled stars followed by empty
// ones. n is clamped to 0..5.
func Stars(n int) string {
	n = max(0, min(n, model.MaxScore))
	return strings.Repeat(FilledStar, n) + strings.Repeat(EmptyStar, model.MaxScore-n)
}

// IdeaName returns the name of idea i, or "Idea N" when it has none.
func IdeaName(idea model.Idea, i int) string {
	if idea.Name == "" {
		return "Idea " + strconv.Itoa(i+1)
	}
	return idea.Name
}

// GenerateHTML renders the answers as the exported report.
//
// The output depends only on a. A record that is not fully shaped is
// rejected with an error wrapping model.ErrPartialAnswers.
func GenerateHTML(a *model.WorkbookAnswers) (string, error) {
	if err := a.Validate(); err != nil {
		return "", fmt.Errorf("cannot generate report: %w", err)
	}

	var d htmlDoc
	d.writeHeader()
	d.writeBirth(a)
	d.writeThreep(a)
	d.writeMarket(a)
	d.writeLeverage(a)
	d.writeUnlearn(a)
	d.writeFounderFit(a)
	d.writeCanvas(a)
	d.writeMVP(a)
	d.writeTeam(a)
	d.writeChecklist(a)
	d.writeFinal(a)
	d.writeFooter()
	return d.sb.String(), nil
}

// htmlDoc accumulates the report markup.
type htmlDoc struct {
	sb strings.Builder
}

func (d *htmlDoc) raw(parts ...string) {
	for _, p := range parts {
		d.sb.WriteString(p)
	}
}

func (d *htmlDoc) heading(title string) {
	d.raw("<h2>", title, "</h2>")
}

// qa writes a question label and its answer.
func (d *htmlDoc) qa(label, answer string) {
	d.raw(`<div class="qa"><div class="q">`, label, `</div><div class="a">`)
	if answer == "" {
		d.raw(notAnswered)
	} else {
		d.raw(escape(answer))
	}
	d.raw("</div></div>")
}

// questions writes one qa per prompt, looking answers up by prompt key.
func (d *htmlDoc) questions(prompts []model.Prompt, get func(key string) (string, bool)) {
	for _, p := range prompts {
		v, _ := get(p.Key)
		d.qa(p.Label, v)
	}
}

// tableHeader opens a table with one header row.
func (d *htmlDoc) tableHeader(cols ...string) {
	d.raw("<table><tr>")
	for _, c := range cols {
		d.raw("<th>", c, "</th>")
	}
	d.raw("</tr>")
}

func (d *htmlDoc) scoreBox(number, label string) {
	d.raw(`<div class="sbox"><div class="snum">`, number, "</div>")
	if label != "" {
		d.raw(`<div class="slbl">`, label, "</div>")
	}
	d.raw("</div>")
}

func (d *htmlDoc) writeHeader() {
	d.raw(
		`<!DOCTYPE html><html><head><meta charset="utf-8"/><title>`, reportTitle, "</title>",
		"<style>", reportCSS, "</style></head><body>",
		"<h1>Founders Compass &mdash; Part 2</h1>",
		`<div class="sub">Idea to Validation &bull; Surge Startups &bull; workfast.ai/surge-startups</div>`,
	)
}

func (d *htmlDoc) writeBirth(a *model.WorkbookAnswers) {
	d.heading("1. The Birth of the Idea")
	d.questions(model.BirthQuestions, a.BirthReflection.Get)
}

func (d *htmlDoc) writeThreep(a *model.WorkbookAnswers) {
	d.heading("2. The 3P Framework: Passion, Pain, Profit")

	cols := []string{"Idea"}
	for _, dim := range model.Dimensions {
		cols = append(cols, dim.String())
	}
	d.tableHeader(append(cols, "Total")...)

	for i, idea := range a.Ideas {
		d.raw("<tr><td>", escape(IdeaName(idea, i)), "</td>")
		for _, dim := range model.Dimensions {
			d.raw("<td>", Stars(idea.Score(dim)), "</td>")
		}
		d.raw("<td><strong>", strconv.Itoa(idea.Total()), "/", strconv.Itoa(model.MaxIdeaTotal), "</strong></td></tr>")
	}
	d.raw("</table>")
	d.qa(model.ThreepQuestion.Label, a.ThreepReflection)
}

func (d *htmlDoc) writeMarket(a *model.WorkbookAnswers) {
	d.heading("3. Market Map: TAM, SAM, SOM")
	d.questions(model.MarketSizes, a.Market.Get)
	d.questions(model.MarketQuestions, a.Market.Get)
}

func (d *htmlDoc) writeLeverage(a *model.WorkbookAnswers) {
	d.heading("4. Leverage Map")
	d.questions(model.LeverageQuestions, a.LeverageNotes.Get)
}

func (d *htmlDoc) writeUnlearn(a *model.WorkbookAnswers) {
	d.heading("5. Unlearn to Earn")
	d.questions(model.UnlearnQuestions, a.UnlearnNotes.Get)
}

func (d *htmlDoc) writeFounderFit(a *model.WorkbookAnswers) {
	d.heading("6. Founder Fit Test")
	d.tableHeader("Statement", "Rating")
	for i, stmt := range model.FounderStatements {
		n := a.FounderScores[i]
		d.raw("<tr><td>", stmt, "</td><td>", Stars(n), " (", strconv.Itoa(n), "/5)</td></tr>")
	}
	d.raw("</table>")

	total := a.FounderTotal()
	d.scoreBox(strconv.Itoa(total)+"/"+strconv.Itoa(model.MaxFounderTotal), model.FounderLabel(total))
}

func (d *htmlDoc) writeCanvas(a *model.WorkbookAnswers) {
	d.heading("7. The Validation Canvas")
	d.questions(model.CanvasFields, a.Canvas.Get)
	d.qa(model.CanvasQuestion.Label, a.CanvasReflection)
}

func (d *htmlDoc) writeMVP(a *model.WorkbookAnswers) {
	d.heading("8. Minimum Viable Proof (MVP)")
	d.questions(model.MVPQuestions, a.MVPReflection.Get)
}

func (d *htmlDoc) writeTeam(a *model.WorkbookAnswers) {
	d.heading("9. Early Team and Internship Formula")
	d.questions(model.TeamQuestions, a.TeamReflection.Get)
}

func (d *htmlDoc) writeChecklist(a *model.WorkbookAnswers) {
	d.heading("10. Validation Checklist")
	d.tableHeader("#", "Action", "Status")
	for i, item := range model.ChecklistItems {
		class, status := "pend", "Pending"
		if a.Checklist[i] {
			class, status = "done", "Done"
		}
		d.raw("<tr><td>", strconv.Itoa(i+1), "</td><td>", item, `</td><td class="`, class, `">`, status, "</td></tr>")
	}
	d.raw("</table>")
	d.scoreBox(strconv.Itoa(a.ChecklistDone())+"/"+strconv.Itoa(model.ChecklistItemCount)+" Complete", "")
}

func (d *htmlDoc) writeFinal(a *model.WorkbookAnswers) {
	d.heading("Final Reflection")
	d.questions(model.FinalQuestions, a.FinalReflection.Get)
}

func (d *htmlDoc) writeFooter() {
	d.raw(
		`<div class="foot">Generated from Founders Compass Interactive Workbook &bull; Surge Startups &bull; workfast.ai/surge-startups</div>`,
		"</body></html>",
	)
}

// HTMLWriter writes the exported report.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the answers with GenerateHTML.
func (w *HTMLWriter) Write(answers *model.WorkbookAnswers) (int, error) {
	doc, err := GenerateHTML(answers)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w.output, doc)
}
