// Package model defines the workbook answer record and the fixed catalogues
// that give it meaning.
//
// This package contains the following main types:
//   - WorkbookAnswers: every answer and score a user enters, as one record
//   - Idea: a candidate business idea scored on five dimensions
//   - Summary: values derived from a record (totals, labels, counts)
//
// Derived values are always computed from the record on demand and are never
// stored in it, so a record cannot disagree with its own summary.
//
// The types carry both JSON and YAML tags so answers files and JSON reports
// use the same camelCase keys.
package model
