// Package report renders workbook answers as documents.
//
// GenerateHTML produces the exported report: a single self-contained HTML
// page with inlined styles, meant to be opened in a browser and printed to
// PDF. It is pure and deterministic, so equal records always produce
// byte-identical output.
//
// The package also contains writers for other output formats:
//   - HTMLWriter: the exported report
//   - MarkdownWriter: the same sections as GitHub-flavoured Markdown
//   - JSONWriter: the answers and their derived summary
//   - SimpleWriter: a plain-text summary for terminal display
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
