// Package server serves the workbook as a web application.
//
// Each browser gets an in-memory session holding one workbook.State. Pages
// are rendered server-side from html/template; the browser posts field
// changes to /update and section moves to /nav, and downloads the report
// from /export (HTML) or /export.md (Markdown). Nothing is written to disk.
//
// Requests pass through request ID, logging (with panic recovery) and
// per-client rate limiting middleware before reaching the handlers.
package server
