// Package workbook holds the state of one workbook session and applies
// updates to it.
//
// Updates are pure: every setter takes a record and returns a new one in
// which exactly one leaf differs. Branches the update does not touch are
// shared with the input record, so callers can compare nested pointers to
// find what changed. Sequences are copied and written by index and never
// change length.
//
// Setters do not validate values. A rating outside 0..5 is stored as given;
// constraining input is the job of the caller that reads it (the web form
// or the answers-file loader).
package workbook
