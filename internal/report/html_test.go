package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/nao1215/compass/internal/model"
)

// parseReport parses a generated document, failing the test on error.
func parseReport(t *testing.T, doc string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to parse report: %v", err)
	}
	return root
}

// findAll returns every element below n matching the tag and, when class
// is not empty, carrying that class attribute.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && (class == "" || attr(n, "class") == class) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textOf returns the concatenated text below n.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func mustGenerate(t *testing.T, a *model.WorkbookAnswers) string {
	t.Helper()

	doc, err := GenerateHTML(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return doc
}

// sampleAnswers returns a record with a few answers of every kind.
func sampleAnswers() *model.WorkbookAnswers {
	a := model.NewWorkbookAnswers()
	a.BirthReflection.Q1 = "Clinic queues"
	a.Ideas[0] = model.Idea{Name: "Queue app", Passion: 5, Pain: 5, Profit: 5, MarketFit: 5, SkillMatch: 0}
	a.Market.TAM = "All clinics"
	a.Canvas.Pricing = "$5"
	a.FinalReflection.Q2 = "Dr. Rao\nDr. Iyer"
	for i := range a.FounderScores {
		a.FounderScores[i] = 4
	}
	a.Checklist[0] = true
	return a
}

func TestGenerateHTML(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first := mustGenerate(t, sampleAnswers())
		second := mustGenerate(t, sampleAnswers())
		if first != second {
			t.Error("expected identical output for equal records")
		}
	})

	t.Run("writes a self-contained document", func(t *testing.T) {
		t.Parallel()

		doc := mustGenerate(t, model.NewWorkbookAnswers())
		wantPrefix := `<!DOCTYPE html><html><head><meta charset="utf-8"/><title>Founders Compass Part 2</title><style>body{`
		if !strings.HasPrefix(doc, wantPrefix) {
			t.Errorf("unexpected document start: %.120q", doc)
		}
		if !strings.HasSuffix(doc, "workfast.ai/surge-startups</div></body></html>") {
			t.Error("expected the document to end with the footer")
		}
		if strings.Contains(doc, "\n") {
			t.Error("expected no newlines in the document")
		}
		for _, external := range []string{"<link", "<script", "src="} {
			if strings.Contains(doc, external) {
				t.Errorf("expected no external resources, found %q", external)
			}
		}
	})

	t.Run("renders sections in fixed order", func(t *testing.T) {
		t.Parallel()

		root := parseReport(t, mustGenerate(t, model.NewWorkbookAnswers()))

		want := []string{
			"1. The Birth of the Idea",
			"2. The 3P Framework: Passion, Pain, Profit",
			"3. Market Map: TAM, SAM, SOM",
			"4. Leverage Map",
			"5. Unlearn to Earn",
			"6. Founder Fit Test",
			"7. The Validation Canvas",
			"8. Minimum Viable Proof (MVP)",
			"9. Early Team and Internship Formula",
			"10. Validation Checklist",
			"Final Reflection",
		}
		headings := findAll(root, "h2", "")
		if len(headings) != len(want) {
			t.Fatalf("expected %d headings, got %d", len(want), len(headings))
		}
		for i, h := range headings {
			if got := textOf(h); got != want[i] {
				t.Errorf("heading %d: got %q, want %q", i, got, want[i])
			}
		}

		if got := textOf(findAll(root, "h1", "")[0]); got != "Founders Compass — Part 2" {
			t.Errorf("unexpected title: %q", got)
		}
		if len(findAll(root, "table", "")) != 3 {
			t.Error("expected three tables")
		}
	})

	t.Run("escapes markup in answers", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		a.BirthReflection.Q2 = "<script>alert(1)</script> & <b>bold</b>"
		a.Ideas[1].Name = "A&B <Co>"

		doc := mustGenerate(t, a)
		if !strings.Contains(doc, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; &lt;b&gt;bold&lt;/b&gt;") {
			t.Error("expected the answer to be escaped")
		}
		if !strings.Contains(doc, "<td>A&amp;B &lt;Co&gt;</td>") {
			t.Error("expected the idea name to be escaped")
		}

		root := parseReport(t, doc)
		if n := len(findAll(root, "script", "")); n != 0 {
			t.Errorf("expected no script element, got %d", n)
		}
		if n := len(findAll(root, "b", "")); n != 0 {
			t.Errorf("expected no b element, got %d", n)
		}
	})

	t.Run("escapes ampersands before angle brackets", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		a.MVPReflection.Q1 = "&lt;"
		doc := mustGenerate(t, a)
		if !strings.Contains(doc, `<div class="a">&amp;lt;</div>`) {
			t.Error("expected pre-escaped text to be escaped again")
		}
	})

	t.Run("converts newlines to line breaks", func(t *testing.T) {
		t.Parallel()

		doc := mustGenerate(t, sampleAnswers())
		if !strings.Contains(doc, `<div class="a">Dr. Rao<br/>Dr. Iyer</div>`) {
			t.Error("expected newline to become <br/>")
		}
	})

	t.Run("marks empty answers as not answered", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		doc := mustGenerate(t, a)

		if strings.Contains(doc, `<div class="a"></div>`) {
			t.Error("expected no empty answer block")
		}
		want := len(Questions(a))
		if got := strings.Count(doc, "Not answered"); got != want {
			t.Errorf("expected %d placeholders, got %d", want, got)
		}

		root := parseReport(t, doc)
		for _, answer := range findAll(root, "div", "a") {
			span := findAll(answer, "span", "")
			if len(span) != 1 || !strings.Contains(attr(span[0], "style"), "italic") {
				t.Errorf("expected an italic placeholder, got %q", textOf(answer))
			}
		}
	})

	t.Run("does not escape template text", func(t *testing.T) {
		t.Parallel()

		doc := mustGenerate(t, model.NewWorkbookAnswers())
		for _, s := range []string{"&mdash;", "&bull;", "TAM — Total Addressable Market", "<strong>0/25</strong>"} {
			if !strings.Contains(doc, s) {
				t.Errorf("expected %q in the document", s)
			}
		}
		if strings.Contains(doc, "&amp;mdash;") {
			t.Error("expected structural entities to be left alone")
		}
	})

	t.Run("renders idea scores as stars", func(t *testing.T) {
		t.Parallel()

		root := parseReport(t, mustGenerate(t, sampleAnswers()))
		tables := findAll(root, "table", "")
		rows := findAll(tables[0], "tr", "")
		if len(rows) != 1+model.IdeaCount {
			t.Fatalf("expected header plus %d rows, got %d", model.IdeaCount, len(rows))
		}

		cells := findAll(rows[1], "td", "")
		want := []string{"Queue app", "★★★★★", "★★★★★", "★★★★★", "★★★★★", "☆☆☆☆☆", "20/25"}
		if len(cells) != len(want) {
			t.Fatalf("expected %d cells, got %d", len(want), len(cells))
		}
		for i, c := range cells {
			if got := textOf(c); got != want[i] {
				t.Errorf("cell %d: got %q, want %q", i, got, want[i])
			}
		}

		header := findAll(rows[0], "th", "")
		if textOf(header[4]) != "Market Fit" || textOf(header[5]) != "Skill Match" {
			t.Error("expected dimension labels in the header row")
		}
	})

	t.Run("names unnamed ideas by position", func(t *testing.T) {
		t.Parallel()

		doc := mustGenerate(t, sampleAnswers())
		if !strings.Contains(doc, "<tr><td>Idea 2</td>") || !strings.Contains(doc, "<tr><td>Idea 3</td>") {
			t.Error("expected fallback idea names")
		}
	})

	t.Run("renders the founder score box", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			scores []int
			number string
			label  string
		}{
			{[]int{5, 5, 5, 5, 5, 5, 5, 5, 5, 0}, "45/50", "Born Founder"},
			{[]int{5, 5, 5, 5, 5, 5, 5, 5, 4, 0}, "44/50", "Builder in Progress"},
			{[]int{5, 5, 5, 5, 5, 5, 5, 0, 0, 0}, "35/50", "Builder in Progress"},
			{[]int{5, 5, 5, 5, 4, 0, 0, 0, 0, 0}, "24/50", "Needs Reboot"},
		}

		for _, tc := range testCases {
			a := model.NewWorkbookAnswers()
			copy(a.FounderScores, tc.scores)

			root := parseReport(t, mustGenerate(t, a))
			box := findAll(root, "div", "sbox")[0]
			if got := textOf(findAll(box, "div", "snum")[0]); got != tc.number {
				t.Errorf("got %q, want %q", got, tc.number)
			}
			if got := textOf(findAll(box, "div", "slbl")[0]); got != tc.label {
				t.Errorf("%s: got %q, want %q", tc.number, got, tc.label)
			}
		}
	})

	t.Run("renders founder ratings with numbers", func(t *testing.T) {
		t.Parallel()

		doc := mustGenerate(t, sampleAnswers())
		if !strings.Contains(doc, "<td>I enjoy solving tough problems.</td><td>★★★★☆ (4/5)</td>") {
			t.Error("expected rated founder statement row")
		}
	})

	t.Run("renders checklist status in item order", func(t *testing.T) {
		t.Parallel()

		a := model.NewWorkbookAnswers()
		done := map[int]bool{0: true, 1: true, 2: true, 4: true, 6: true, 8: true, 9: true}
		for i := range done {
			a.Checklist[i] = true
		}

		root := parseReport(t, mustGenerate(t, a))
		tables := findAll(root, "table", "")
		rows := findAll(tables[2], "tr", "")[1:]
		if len(rows) != model.ChecklistItemCount {
			t.Fatalf("expected %d rows, got %d", model.ChecklistItemCount, len(rows))
		}
		for i, row := range rows {
			cells := findAll(row, "td", "")
			if textOf(cells[1]) != model.ChecklistItems[i] {
				t.Errorf("row %d: unexpected item %q", i, textOf(cells[1]))
			}
			wantStatus, wantClass := "Pending", "pend"
			if done[i] {
				wantStatus, wantClass = "Done", "done"
			}
			if textOf(cells[2]) != wantStatus || attr(cells[2], "class") != wantClass {
				t.Errorf("row %d: got %q (%s), want %q (%s)",
					i, textOf(cells[2]), attr(cells[2], "class"), wantStatus, wantClass)
			}
		}

		boxes := findAll(root, "div", "sbox")
		if got := textOf(boxes[1]); got != "7/10 Complete" {
			t.Errorf("got %q, want %q", got, "7/10 Complete")
		}
	})

	t.Run("rejects partial records", func(t *testing.T) {
		t.Parallel()

		missingCanvas := model.NewWorkbookAnswers()
		missingCanvas.Canvas = nil
		shortChecklist := model.NewWorkbookAnswers()
		shortChecklist.Checklist = shortChecklist.Checklist[:9]

		for name, a := range map[string]*model.WorkbookAnswers{
			"nil record":      nil,
			"missing canvas":  missingCanvas,
			"short checklist": shortChecklist,
		} {
			doc, err := GenerateHTML(a)
			if !errors.Is(err, model.ErrPartialAnswers) {
				t.Errorf("%s: expected ErrPartialAnswers, got %v", name, err)
			}
			if doc != "" {
				t.Errorf("%s: expected no document", name)
			}
		}
	})
}

func TestStars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		n    int
		want string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{-2, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}

	for _, tc := range testCases {
		got := Stars(tc.n)
		if got != tc.want {
			t.Errorf("Stars(%d) = %q, want %q", tc.n, got, tc.want)
		}
		if n := utf8.RuneCountInString(got); n != 5 {
			t.Errorf("Stars(%d) has %d glyphs, want 5", tc.n, n)
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{"&gt;", "&amp;gt;"},
		{"one\ntwo", "one<br/>two"},
		{`"quoted" 'single'`, `"quoted" 'single'`},
	}

	for _, tc := range testCases {
		if got := escape(tc.in); got != tc.want {
			t.Errorf("escape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the generated document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewHTMLWriter(&buf).Write(sampleAnswers())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}
		if buf.String() != mustGenerate(t, sampleAnswers()) {
			t.Error("expected the GenerateHTML output")
		}
	})

	t.Run("writes nothing for a partial record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := model.NewWorkbookAnswers()
		a.Market = nil
		if _, err := NewHTMLWriter(&buf).Write(a); !errors.Is(err, model.ErrPartialAnswers) {
			t.Errorf("expected ErrPartialAnswers, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected no output")
		}
	})
}
