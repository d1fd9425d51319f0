// Package web holds the templates and static assets of the workbook UI.
package web

import "embed"

// FS holds the page templates (templates/*.html) and the static assets
// served under /static/ (static/*).
//
//go:embed templates/*.html static/*
var FS embed.FS
